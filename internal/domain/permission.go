package domain

import "context"

// Permission is a single grantable capability, identified by a unique code
// such as "role.update" or "audit.read". ResourceType and Action split the
// code into its addressable parts for filtering.
type Permission struct {
	BaseModel
	Code         string `gorm:"size:100;uniqueIndex;not null" json:"code"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Description  string `gorm:"size:500" json:"description"`
	ResourceType string `gorm:"size:100" json:"resource_type"`
	Action       string `gorm:"size:100" json:"action"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
}

// PermissionRepository defines the data access interface for permissions.
type PermissionRepository interface {
	Create(ctx context.Context, perm *Permission) error
	GetByID(ctx context.Context, id uint) (*Permission, error)
	GetByIDs(ctx context.Context, ids []uint) ([]Permission, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Permission], error)
	Update(ctx context.Context, perm *Permission) error
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) (*Permission, error)
}

// PermissionService defines the business logic interface for permissions.
type PermissionService interface {
	CreatePermission(ctx context.Context, code, name, description, resourceType, action string) (*Permission, error)
	GetPermission(ctx context.Context, id uint) (*Permission, error)
	ListPermissions(ctx context.Context, req PageRequest) (*PageResult[Permission], error)
	UpdatePermission(ctx context.Context, id uint, name, description, resourceType, action string) (*Permission, error)
	DeletePermission(ctx context.Context, id uint) error
	ActivatePermission(ctx context.Context, id uint) (*Permission, error)
	DeactivatePermission(ctx context.Context, id uint) (*Permission, error)
}
