package domain

import "context"

// UserRole assigns a role to a user, optionally scoped to an organization
// context. Deactivating an assignment suspends it without losing who
// granted it.
type UserRole struct {
	BaseModel
	UserID       uint  `gorm:"not null;uniqueIndex:idx_user_role_ctx" json:"user_id"`
	RoleID       uint  `gorm:"not null;uniqueIndex:idx_user_role_ctx" json:"role_id"`
	OrgContextID *uint `gorm:"uniqueIndex:idx_user_role_ctx" json:"org_context_id,omitempty"`
	AssignedBy   uint  `json:"assigned_by"`
	IsActive     bool  `gorm:"not null;default:true" json:"is_active"`
}

// UserRoleRepository defines the data access interface for user-role assignments.
type UserRoleRepository interface {
	Create(ctx context.Context, ur *UserRole) error
	GetByID(ctx context.Context, id uint) (*UserRole, error)
	List(ctx context.Context, req PageRequest) (*PageResult[UserRole], error)
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) (*UserRole, error)
}

// UserRoleService defines the business logic interface for user-role assignments.
type UserRoleService interface {
	Assign(ctx context.Context, userID, roleID uint, orgContextID *uint, assignedBy uint) (*UserRole, error)
	GetAssignment(ctx context.Context, id uint) (*UserRole, error)
	ListAssignments(ctx context.Context, req PageRequest) (*PageResult[UserRole], error)
	Revoke(ctx context.Context, id uint) error
	ActivateAssignment(ctx context.Context, id uint) (*UserRole, error)
	DeactivateAssignment(ctx context.Context, id uint) (*UserRole, error)
}
