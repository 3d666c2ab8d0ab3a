package domain

import "context"

// Role groups permissions under a name that can be assigned to users.
// System roles are seeded by the platform and cannot be deleted.
type Role struct {
	BaseModel
	Name        string       `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string       `gorm:"size:500" json:"description"`
	IsSystem    bool         `gorm:"not null;default:false" json:"is_system"`
	IsActive    bool         `gorm:"not null;default:true" json:"is_active"`
	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
}

// RoleRepository defines the data access interface for roles.
type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	GetByID(ctx context.Context, id uint) (*Role, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Role], error)
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) (*Role, error)
	// ReplacePermissions atomically replaces the role's permission set.
	ReplacePermissions(ctx context.Context, roleID uint, permissionIDs []uint) (*Role, error)
}

// RoleService defines the business logic interface for roles.
type RoleService interface {
	CreateRole(ctx context.Context, name, description string) (*Role, error)
	GetRole(ctx context.Context, id uint) (*Role, error)
	ListRoles(ctx context.Context, req PageRequest) (*PageResult[Role], error)
	UpdateRole(ctx context.Context, id uint, name, description string) (*Role, error)
	DeleteRole(ctx context.Context, id uint) error
	ActivateRole(ctx context.Context, id uint) (*Role, error)
	DeactivateRole(ctx context.Context, id uint) (*Role, error)
	SetRolePermissions(ctx context.Context, id uint, permissionIDs []uint) (*Role, error)
}
