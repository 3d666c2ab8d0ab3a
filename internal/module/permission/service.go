package permission

import (
	"context"
	"strings"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// permissionService implements domain.PermissionService.
type permissionService struct {
	repo  domain.PermissionRepository
	audit domain.AuditRecorder
}

// NewPermissionService creates a new PermissionService with the given
// repository and audit recorder.
func NewPermissionService(repo domain.PermissionRepository, audit domain.AuditRecorder) domain.PermissionService {
	return &permissionService{repo: repo, audit: audit}
}

// CreatePermission validates input, builds a Permission, and persists it.
// The code is immutable after creation.
func (s *permissionService) CreatePermission(ctx context.Context, code, name, description, resourceType, action string) (*domain.Permission, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	resourceType = strings.TrimSpace(resourceType)
	action = strings.TrimSpace(action)

	if code == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "code is required", nil)
	}
	if name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}

	perm := &domain.Permission{
		Code:         code,
		Name:         name,
		Description:  description,
		ResourceType: resourceType,
		Action:       action,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, perm); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "permission.create",
		ResourceType: "permission",
		ResourceID:   perm.ID,
		Details:      perm.Code,
	})

	return perm, nil
}

// GetPermission retrieves a permission by ID.
func (s *permissionService) GetPermission(ctx context.Context, id uint) (*domain.Permission, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPermissions returns a paginated list of permissions.
func (s *permissionService) ListPermissions(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Permission], error) {
	return s.repo.List(ctx, req)
}

// UpdatePermission loads the existing permission, applies changes, and
// persists them. The code cannot be changed.
func (s *permissionService) UpdatePermission(ctx context.Context, id uint, name, description, resourceType, action string) (*domain.Permission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}

	perm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	perm.Name = name
	perm.Description = strings.TrimSpace(description)
	perm.ResourceType = strings.TrimSpace(resourceType)
	perm.Action = strings.TrimSpace(action)

	if err := s.repo.Update(ctx, perm); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "permission.update",
		ResourceType: "permission",
		ResourceID:   perm.ID,
		Details:      perm.Code,
	})

	return perm, nil
}

// DeletePermission removes a permission by ID. Role associations are dropped
// with it.
func (s *permissionService) DeletePermission(ctx context.Context, id uint) error {
	perm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "permission.delete",
		ResourceType: "permission",
		ResourceID:   id,
		Details:      perm.Code,
	})

	return nil
}

// ActivatePermission marks a permission active.
func (s *permissionService) ActivatePermission(ctx context.Context, id uint) (*domain.Permission, error) {
	return s.setActive(ctx, id, true, "permission.activate")
}

// DeactivatePermission marks a permission inactive. Roles keep the
// association but the permission no longer takes effect.
func (s *permissionService) DeactivatePermission(ctx context.Context, id uint) (*domain.Permission, error) {
	return s.setActive(ctx, id, false, "permission.deactivate")
}

func (s *permissionService) setActive(ctx context.Context, id uint, active bool, action string) (*domain.Permission, error) {
	perm, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       action,
		ResourceType: "permission",
		ResourceID:   id,
		Details:      perm.Code,
	})

	return perm, nil
}
