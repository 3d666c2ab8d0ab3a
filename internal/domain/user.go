package domain

import "context"

// User represents an administrator or managed account in the system.
// Permissions holds grants made directly to the user, on top of whatever
// the user's roles carry.
type User struct {
	BaseModel
	Name         string       `gorm:"size:100;not null" json:"name"`
	Email        string       `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"size:255" json:"-"`
	IsActive     bool         `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser  bool         `gorm:"not null;default:false" json:"is_superuser"`
	Permissions  []Permission `gorm:"many2many:user_permissions" json:"permissions,omitempty"`
}

// SuperuserPermission is the wildcard returned for superusers instead of
// enumerating the whole permission catalog.
const SuperuserPermission = "*"

// UserRepository defines the data access interface for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, req PageRequest) (*PageResult[User], error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) (*User, error)
	// ReplacePermissions atomically replaces the user's direct permission set.
	ReplacePermissions(ctx context.Context, userID uint, permissionIDs []uint) (*User, error)
	// Permissions returns the distinct permission codes granted to the user,
	// the union of direct grants and grants through active role assignments
	// of active roles.
	Permissions(ctx context.Context, id uint) ([]string, error)
}

// UserService defines the business logic interface for users.
type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	ListUsers(ctx context.Context, req PageRequest) (*PageResult[User], error)
	UpdateUser(ctx context.Context, id uint, name, email string) (*User, error)
	DeleteUser(ctx context.Context, id uint) error
	ActivateUser(ctx context.Context, id uint) (*User, error)
	DeactivateUser(ctx context.Context, id uint) (*User, error)
	// SetUserPermissions replaces the user's direct permission set.
	SetUserPermissions(ctx context.Context, id uint, permissionIDs []uint) (*User, error)
	// UserPermissions resolves the user's effective permission codes.
	// Superusers receive the single wildcard entry "*".
	UserPermissions(ctx context.Context, id uint) ([]string, error)
}
