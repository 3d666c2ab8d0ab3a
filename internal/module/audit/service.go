package audit

import (
	"context"
	"log/slog"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// auditService implements domain.AuditService.
type auditService struct {
	repo domain.AuditRepository
}

// NewAuditService creates a new AuditService with the given repository.
func NewAuditService(repo domain.AuditRepository) domain.AuditService {
	return &auditService{repo: repo}
}

// Record appends an audit entry. A failed write is logged but never
// propagated: auditing must not fail the mutation it describes.
func (s *auditService) Record(ctx context.Context, entry domain.AuditEntry) {
	log := &domain.AuditLog{
		ActorID:      entry.ActorID,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Details:      entry.Details,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		slog.ErrorContext(ctx, "audit record failed",
			slog.String("action", entry.Action),
			slog.String("resource_type", entry.ResourceType),
			slog.Any("error", err),
		)
	}
}

// ListLogs returns a paginated, filtered view of the audit trail.
func (s *auditService) ListLogs(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.AuditLog], error) {
	return s.repo.List(ctx, req)
}
