package resource

import (
	"context"
	"strings"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// resourceService implements domain.ResourceService.
type resourceService struct {
	repo  domain.ResourceRepository
	audit domain.AuditRecorder
}

// NewResourceService creates a new ResourceService with the given repository
// and audit recorder.
func NewResourceService(repo domain.ResourceRepository, audit domain.AuditRecorder) domain.ResourceService {
	return &resourceService{repo: repo, audit: audit}
}

// CreateResource validates input, builds a Resource, and persists it.
func (s *resourceService) CreateResource(ctx context.Context, name, resType, description string) (*domain.Resource, error) {
	name = strings.TrimSpace(name)
	resType = strings.TrimSpace(resType)
	description = strings.TrimSpace(description)

	if name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if resType == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "type is required", nil)
	}

	res := &domain.Resource{
		Name:        name,
		Type:        resType,
		Description: description,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "resource.create",
		ResourceType: "resource",
		ResourceID:   res.ID,
		Details:      res.Name,
	})

	return res, nil
}

// GetResource retrieves a resource by ID.
func (s *resourceService) GetResource(ctx context.Context, id uint) (*domain.Resource, error) {
	return s.repo.GetByID(ctx, id)
}

// ListResources returns a paginated list of resources.
func (s *resourceService) ListResources(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Resource], error) {
	return s.repo.List(ctx, req)
}

// UpdateResource loads the existing resource, applies changes, and persists them.
func (s *resourceService) UpdateResource(ctx context.Context, id uint, name, resType, description string) (*domain.Resource, error) {
	name = strings.TrimSpace(name)
	resType = strings.TrimSpace(resType)

	if name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if resType == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "type is required", nil)
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res.Name = name
	res.Type = resType
	res.Description = strings.TrimSpace(description)

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "resource.update",
		ResourceType: "resource",
		ResourceID:   res.ID,
		Details:      res.Name,
	})

	return res, nil
}

// DeleteResource removes a resource by ID.
func (s *resourceService) DeleteResource(ctx context.Context, id uint) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "resource.delete",
		ResourceType: "resource",
		ResourceID:   id,
		Details:      res.Name,
	})

	return nil
}

// ActivateResource marks a resource active.
func (s *resourceService) ActivateResource(ctx context.Context, id uint) (*domain.Resource, error) {
	return s.setActive(ctx, id, true, "resource.activate")
}

// DeactivateResource marks a resource inactive.
func (s *resourceService) DeactivateResource(ctx context.Context, id uint) (*domain.Resource, error) {
	return s.setActive(ctx, id, false, "resource.deactivate")
}

func (s *resourceService) setActive(ctx context.Context, id uint, active bool, action string) (*domain.Resource, error) {
	res, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       action,
		ResourceType: "resource",
		ResourceID:   id,
		Details:      res.Name,
	})

	return res, nil
}
