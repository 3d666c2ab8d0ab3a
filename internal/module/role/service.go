package role

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// roleService implements domain.RoleService.
type roleService struct {
	repo  domain.RoleRepository
	audit domain.AuditRecorder
}

// NewRoleService creates a new RoleService with the given repository and audit recorder.
func NewRoleService(repo domain.RoleRepository, audit domain.AuditRecorder) domain.RoleService {
	return &roleService{repo: repo, audit: audit}
}

// CreateRole validates input, builds a Role, and persists it via the repository.
func (s *roleService) CreateRole(ctx context.Context, name, description string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validateNameDescription(name, description); err != nil {
		return nil, err
	}

	role := &domain.Role{
		Name:        name,
		Description: description,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "role.create",
		ResourceType: "role",
		ResourceID:   role.ID,
		Details:      role.Name,
	})

	return role, nil
}

// GetRole retrieves a role by ID with its permissions.
func (s *roleService) GetRole(ctx context.Context, id uint) (*domain.Role, error) {
	return s.repo.GetByID(ctx, id)
}

// ListRoles returns a paginated list of roles.
func (s *roleService) ListRoles(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Role], error) {
	return s.repo.List(ctx, req)
}

// UpdateRole loads the existing role, applies changes, and persists them.
func (s *roleService) UpdateRole(ctx context.Context, id uint, name, description string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validateNameDescription(name, description); err != nil {
		return nil, err
	}

	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role.Name = name
	role.Description = description

	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "role.update",
		ResourceType: "role",
		ResourceID:   role.ID,
		Details:      role.Name,
	})

	return role, nil
}

// DeleteRole removes a role by ID. System roles cannot be deleted.
func (s *roleService) DeleteRole(ctx context.Context, id uint) error {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role.IsSystem {
		return domain.NewAppError(domain.CodeForbidden, "system roles cannot be deleted", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "role.delete",
		ResourceType: "role",
		ResourceID:   id,
		Details:      role.Name,
	})

	return nil
}

// ActivateRole marks a role active.
func (s *roleService) ActivateRole(ctx context.Context, id uint) (*domain.Role, error) {
	return s.setActive(ctx, id, true, "role.activate")
}

// DeactivateRole marks a role inactive. Assignments referencing it stop
// granting permissions until it is reactivated.
func (s *roleService) DeactivateRole(ctx context.Context, id uint) (*domain.Role, error) {
	return s.setActive(ctx, id, false, "role.deactivate")
}

func (s *roleService) setActive(ctx context.Context, id uint, active bool, action string) (*domain.Role, error) {
	role, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       action,
		ResourceType: "role",
		ResourceID:   id,
		Details:      role.Name,
	})

	return role, nil
}

// SetRolePermissions replaces the role's permission set.
func (s *roleService) SetRolePermissions(ctx context.Context, id uint, permissionIDs []uint) (*domain.Role, error) {
	role, err := s.repo.ReplacePermissions(ctx, id, permissionIDs)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "role.set_permissions",
		ResourceType: "role",
		ResourceID:   id,
		Details:      role.Name,
	})

	return role, nil
}

// validateNameDescription checks name and description constraints.
// The description is optional but must be at least 3 characters when given.
func validateNameDescription(name, description string) error {
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(name) < 2 {
		return domain.NewAppError(domain.CodeValidation, "name must be at least 2 characters", nil)
	}
	if utf8.RuneCountInString(name) > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must be at most 100 characters", nil)
	}
	if description != "" && utf8.RuneCountInString(description) < 3 {
		return domain.NewAppError(domain.CodeValidation, "description must be at least 3 characters", nil)
	}
	if utf8.RuneCountInString(description) > 500 {
		return domain.NewAppError(domain.CodeValidation, "description must be at most 500 characters", nil)
	}
	return nil
}
