package domain

import "context"

// Resource is a protectable asset that permissions refer to by type.
type Resource struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Type        string `gorm:"size:100;not null" json:"type"`
	Description string `gorm:"size:500" json:"description"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
}

// ResourceRepository defines the data access interface for resources.
type ResourceRepository interface {
	Create(ctx context.Context, res *Resource) error
	GetByID(ctx context.Context, id uint) (*Resource, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Resource], error)
	Update(ctx context.Context, res *Resource) error
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) (*Resource, error)
}

// ResourceService defines the business logic interface for resources.
type ResourceService interface {
	CreateResource(ctx context.Context, name, resType, description string) (*Resource, error)
	GetResource(ctx context.Context, id uint) (*Resource, error)
	ListResources(ctx context.Context, req PageRequest) (*PageResult[Resource], error)
	UpdateResource(ctx context.Context, id uint, name, resType, description string) (*Resource, error)
	DeleteResource(ctx context.Context, id uint) error
	ActivateResource(ctx context.Context, id uint) (*Resource, error)
	DeactivateResource(ctx context.Context, id uint) (*Resource, error)
}
