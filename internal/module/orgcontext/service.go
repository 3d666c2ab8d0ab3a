package orgcontext

import (
	"context"
	"strings"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// orgContextService implements domain.OrgContextService.
type orgContextService struct {
	repo  domain.OrgContextRepository
	audit domain.AuditRecorder
}

// NewOrgContextService creates a new OrgContextService with the given
// repository and audit recorder.
func NewOrgContextService(repo domain.OrgContextRepository, audit domain.AuditRecorder) domain.OrgContextService {
	return &orgContextService{repo: repo, audit: audit}
}

// CreateOrgContext validates input, builds an OrganizationContext, and
// persists it. A parent, when given, must exist.
func (s *orgContextService) CreateOrgContext(ctx context.Context, name, code, description string, parentID *uint) (*domain.OrganizationContext, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}

	if err := s.checkParent(ctx, parentID, 0); err != nil {
		return nil, err
	}

	oc := &domain.OrganizationContext{
		Name:        name,
		Code:        strings.TrimSpace(code),
		Description: strings.TrimSpace(description),
		ParentID:    parentID,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, oc); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "org_context.create",
		ResourceType: "org_context",
		ResourceID:   oc.ID,
		Details:      oc.Name,
	})

	return oc, nil
}

// GetOrgContext retrieves an organization context by ID.
func (s *orgContextService) GetOrgContext(ctx context.Context, id uint) (*domain.OrganizationContext, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOrgContexts returns a paginated list of organization contexts.
func (s *orgContextService) ListOrgContexts(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.OrganizationContext], error) {
	return s.repo.List(ctx, req)
}

// UpdateOrgContext loads the existing context, applies changes, and persists
// them. A context cannot be its own parent.
func (s *orgContextService) UpdateOrgContext(ctx context.Context, id uint, name, code, description string, parentID *uint) (*domain.OrganizationContext, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}

	if err := s.checkParent(ctx, parentID, id); err != nil {
		return nil, err
	}

	oc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oc.Name = name
	oc.Code = strings.TrimSpace(code)
	oc.Description = strings.TrimSpace(description)
	oc.ParentID = parentID

	if err := s.repo.Update(ctx, oc); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "org_context.update",
		ResourceType: "org_context",
		ResourceID:   oc.ID,
		Details:      oc.Name,
	})

	return oc, nil
}

// DeleteOrgContext removes an organization context by ID.
func (s *orgContextService) DeleteOrgContext(ctx context.Context, id uint) error {
	oc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "org_context.delete",
		ResourceType: "org_context",
		ResourceID:   id,
		Details:      oc.Name,
	})

	return nil
}

// ActivateOrgContext marks an organization context active.
func (s *orgContextService) ActivateOrgContext(ctx context.Context, id uint) (*domain.OrganizationContext, error) {
	return s.setActive(ctx, id, true, "org_context.activate")
}

// DeactivateOrgContext marks an organization context inactive.
func (s *orgContextService) DeactivateOrgContext(ctx context.Context, id uint) (*domain.OrganizationContext, error) {
	return s.setActive(ctx, id, false, "org_context.deactivate")
}

func (s *orgContextService) setActive(ctx context.Context, id uint, active bool, action string) (*domain.OrganizationContext, error) {
	oc, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       action,
		ResourceType: "org_context",
		ResourceID:   id,
		Details:      oc.Name,
	})

	return oc, nil
}

// checkParent verifies the parent exists and is not the context itself.
func (s *orgContextService) checkParent(ctx context.Context, parentID *uint, selfID uint) error {
	if parentID == nil {
		return nil
	}
	if selfID != 0 && *parentID == selfID {
		return domain.NewAppError(domain.CodeValidation, "a context cannot be its own parent", nil)
	}
	if _, err := s.repo.GetByID(ctx, *parentID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "parent context does not exist", nil)
		}
		return err
	}
	return nil
}
