package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// failingRepo rejects every write.
type failingRepo struct{}

func (failingRepo) Create(context.Context, *domain.AuditLog) error {
	return errors.New("disk full")
}

func (failingRepo) List(context.Context, domain.PageRequest) (*domain.PageResult[domain.AuditLog], error) {
	return nil, errors.New("disk full")
}

// capturingRepo stores created logs.
type capturingRepo struct {
	logs []*domain.AuditLog
}

func (c *capturingRepo) Create(_ context.Context, log *domain.AuditLog) error {
	c.logs = append(c.logs, log)
	return nil
}

func (c *capturingRepo) List(context.Context, domain.PageRequest) (*domain.PageResult[domain.AuditLog], error) {
	return &domain.PageResult[domain.AuditLog]{}, nil
}

func TestRecord(t *testing.T) {
	repo := &capturingRepo{}
	svc := NewAuditService(repo)

	svc.Record(context.Background(), domain.AuditEntry{
		ActorID:      7,
		Action:       "role.create",
		ResourceType: "role",
		ResourceID:   3,
		Details:      "editor",
	})

	if len(repo.logs) != 1 {
		t.Fatalf("got %d logs; want 1", len(repo.logs))
	}
	log := repo.logs[0]
	if log.ActorID != 7 || log.Action != "role.create" || log.ResourceID != 3 {
		t.Errorf("log=%+v; want actor 7, role.create, resource 3", log)
	}
}

// Recording must never surface repository failures to the caller: the
// admin operation already succeeded.
func TestRecord_SwallowsRepositoryError(t *testing.T) {
	svc := NewAuditService(failingRepo{})

	svc.Record(context.Background(), domain.AuditEntry{Action: "role.create"})
}
