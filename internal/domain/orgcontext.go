package domain

import "context"

// OrganizationContext scopes role assignments to an organizational unit.
// Contexts may nest through ParentID.
type OrganizationContext struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Code        string `gorm:"size:100" json:"code"`
	Description string `gorm:"size:500" json:"description"`
	ParentID    *uint  `gorm:"index" json:"parent_id,omitempty"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
}

// OrgContextRepository defines the data access interface for organization contexts.
type OrgContextRepository interface {
	Create(ctx context.Context, oc *OrganizationContext) error
	GetByID(ctx context.Context, id uint) (*OrganizationContext, error)
	List(ctx context.Context, req PageRequest) (*PageResult[OrganizationContext], error)
	Update(ctx context.Context, oc *OrganizationContext) error
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) (*OrganizationContext, error)
}

// OrgContextService defines the business logic interface for organization contexts.
type OrgContextService interface {
	CreateOrgContext(ctx context.Context, name, code, description string, parentID *uint) (*OrganizationContext, error)
	GetOrgContext(ctx context.Context, id uint) (*OrganizationContext, error)
	ListOrgContexts(ctx context.Context, req PageRequest) (*PageResult[OrganizationContext], error)
	UpdateOrgContext(ctx context.Context, id uint, name, code, description string, parentID *uint) (*OrganizationContext, error)
	DeleteOrgContext(ctx context.Context, id uint) error
	ActivateOrgContext(ctx context.Context, id uint) (*OrganizationContext, error)
	DeactivateOrgContext(ctx context.Context, id uint) (*OrganizationContext, error)
}
