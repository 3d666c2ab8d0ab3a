package user

import (
	"context"
	"strings"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// userService implements domain.UserService.
type userService struct {
	repo  domain.UserRepository
	audit domain.AuditRecorder
}

// NewUserService creates a new UserService with the given repository and
// audit recorder.
func NewUserService(repo domain.UserRepository, audit domain.AuditRecorder) domain.UserService {
	return &userService{repo: repo, audit: audit}
}

// CreateUser validates input, builds a User, and persists it. Accounts
// created here have no credentials until they register or an administrator
// sets a password through the auth module.
func (s *userService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateNameEmail(name, email); err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "user.create",
		ResourceType: "user",
		ResourceID:   user.ID,
		Details:      user.Email,
	})

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUsers returns a paginated list of users.
func (s *userService) ListUsers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.User], error) {
	return s.repo.List(ctx, req)
}

// UpdateUser loads the existing user, applies changes, and persists them.
func (s *userService) UpdateUser(ctx context.Context, id uint, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateNameEmail(name, email); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "user.update",
		ResourceType: "user",
		ResourceID:   user.ID,
		Details:      user.Email,
	})

	return user, nil
}

// DeleteUser removes a user by ID.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "user.delete",
		ResourceType: "user",
		ResourceID:   id,
		Details:      user.Email,
	})

	return nil
}

// ActivateUser marks a user active.
func (s *userService) ActivateUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.setActive(ctx, id, true, "user.activate")
}

// DeactivateUser marks a user inactive. Inactive users cannot log in.
func (s *userService) DeactivateUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.setActive(ctx, id, false, "user.deactivate")
}

func (s *userService) setActive(ctx context.Context, id uint, active bool, action string) (*domain.User, error) {
	user, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       action,
		ResourceType: "user",
		ResourceID:   id,
		Details:      user.Email,
	})

	return user, nil
}

// SetUserPermissions replaces the user's direct permission set.
func (s *userService) SetUserPermissions(ctx context.Context, id uint, permissionIDs []uint) (*domain.User, error) {
	user, err := s.repo.ReplacePermissions(ctx, id, permissionIDs)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "user.set_permissions",
		ResourceType: "user",
		ResourceID:   id,
		Details:      user.Email,
	})

	return user, nil
}

// UserPermissions resolves the user's effective permission codes. Superusers
// receive the single wildcard entry.
func (s *userService) UserPermissions(ctx context.Context, id uint) ([]string, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsSuperuser {
		return []string{domain.SuperuserPermission}, nil
	}
	return s.repo.Permissions(ctx, id)
}

func validateNameEmail(name, email string) error {
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if !strings.Contains(email, "@") {
		return domain.NewAppError(domain.CodeValidation, "email is invalid", nil)
	}
	return nil
}
