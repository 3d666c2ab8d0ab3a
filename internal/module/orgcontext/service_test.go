package orgcontext

import (
	"context"
	"testing"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// fakeOrgContextRepo is an in-memory stand-in for the repository.
type fakeOrgContextRepo struct {
	contexts map[uint]*domain.OrganizationContext
	nextID   uint
}

func newFakeOrgContextRepo() *fakeOrgContextRepo {
	return &fakeOrgContextRepo{contexts: make(map[uint]*domain.OrganizationContext), nextID: 1}
}

func (f *fakeOrgContextRepo) Create(_ context.Context, oc *domain.OrganizationContext) error {
	oc.ID = f.nextID
	f.nextID++
	cp := *oc
	f.contexts[oc.ID] = &cp
	return nil
}

func (f *fakeOrgContextRepo) GetByID(_ context.Context, id uint) (*domain.OrganizationContext, error) {
	oc, ok := f.contexts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *oc
	return &cp, nil
}

func (f *fakeOrgContextRepo) List(_ context.Context, req domain.PageRequest) (*domain.PageResult[domain.OrganizationContext], error) {
	items := make([]domain.OrganizationContext, 0, len(f.contexts))
	for _, oc := range f.contexts {
		items = append(items, *oc)
	}
	return &domain.PageResult[domain.OrganizationContext]{Items: items, Total: int64(len(items))}, nil
}

func (f *fakeOrgContextRepo) Update(_ context.Context, oc *domain.OrganizationContext) error {
	if _, ok := f.contexts[oc.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *oc
	f.contexts[oc.ID] = &cp
	return nil
}

func (f *fakeOrgContextRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.contexts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.contexts, id)
	return nil
}

func (f *fakeOrgContextRepo) SetActive(_ context.Context, id uint, active bool) (*domain.OrganizationContext, error) {
	oc, ok := f.contexts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	oc.IsActive = active
	cp := *oc
	return &cp, nil
}

type recordingAudit struct {
	entries []domain.AuditEntry
}

func (r *recordingAudit) Record(_ context.Context, entry domain.AuditEntry) {
	r.entries = append(r.entries, entry)
}

func TestCreateOrgContext(t *testing.T) {
	audit := &recordingAudit{}
	svc := NewOrgContextService(newFakeOrgContextRepo(), audit)

	oc, err := svc.CreateOrgContext(context.Background(), " Engineering ", " eng ", "", nil)
	if err != nil {
		t.Fatalf("CreateOrgContext: %v", err)
	}
	if oc.Name != "Engineering" || oc.Code != "eng" {
		t.Errorf("got %+v; want trimmed Engineering/eng", oc)
	}
	if !oc.IsActive {
		t.Error("new contexts start active")
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != "org_context.create" {
		t.Errorf("audit entries=%+v; want one org_context.create", audit.entries)
	}
}

func TestCreateOrgContext_EmptyName(t *testing.T) {
	svc := NewOrgContextService(newFakeOrgContextRepo(), &recordingAudit{})

	if _, err := svc.CreateOrgContext(context.Background(), "  ", "x", "", nil); !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateOrgContext_UnknownParent(t *testing.T) {
	svc := NewOrgContextService(newFakeOrgContextRepo(), &recordingAudit{})

	parent := uint(999)
	_, err := svc.CreateOrgContext(context.Background(), "Engineering", "eng", "", &parent)
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for missing parent, got %v", err)
	}
}

func TestCreateOrgContext_WithParent(t *testing.T) {
	repo := newFakeOrgContextRepo()
	svc := NewOrgContextService(repo, &recordingAudit{})
	ctx := context.Background()

	root, err := svc.CreateOrgContext(ctx, "Company", "co", "", nil)
	if err != nil {
		t.Fatalf("create root: %v", err)
	}

	child, err := svc.CreateOrgContext(ctx, "Engineering", "eng", "", &root.ID)
	if err != nil {
		t.Fatalf("create child: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != root.ID {
		t.Errorf("ParentID=%v; want %d", child.ParentID, root.ID)
	}
}

func TestUpdateOrgContext_OwnParent(t *testing.T) {
	repo := newFakeOrgContextRepo()
	svc := NewOrgContextService(repo, &recordingAudit{})
	ctx := context.Background()

	oc, err := svc.CreateOrgContext(ctx, "Engineering", "eng", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.UpdateOrgContext(ctx, oc.ID, "Engineering", "eng", "", &oc.ID)
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for self-parent, got %v", err)
	}
}

func TestUpdateOrgContext(t *testing.T) {
	repo := newFakeOrgContextRepo()
	audit := &recordingAudit{}
	svc := NewOrgContextService(repo, audit)
	ctx := context.Background()

	oc, err := svc.CreateOrgContext(ctx, "Engineering", "eng", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.UpdateOrgContext(ctx, oc.ID, "Platform", "plat", "infra teams", nil)
	if err != nil {
		t.Fatalf("UpdateOrgContext: %v", err)
	}
	if got.Name != "Platform" || got.Code != "plat" || got.Description != "infra teams" {
		t.Errorf("got %+v; want updated fields", got)
	}
	if audit.entries[len(audit.entries)-1].Action != "org_context.update" {
		t.Errorf("last audit action=%q; want org_context.update", audit.entries[len(audit.entries)-1].Action)
	}
}

func TestDeleteOrgContext(t *testing.T) {
	repo := newFakeOrgContextRepo()
	audit := &recordingAudit{}
	svc := NewOrgContextService(repo, audit)
	ctx := context.Background()

	oc, err := svc.CreateOrgContext(ctx, "Engineering", "eng", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteOrgContext(ctx, oc.ID); err != nil {
		t.Fatalf("DeleteOrgContext: %v", err)
	}
	if _, ok := repo.contexts[oc.ID]; ok {
		t.Error("context should be gone")
	}
	if err := svc.DeleteOrgContext(ctx, oc.ID); !domain.IsNotFound(err) {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestActivateDeactivateOrgContext(t *testing.T) {
	repo := newFakeOrgContextRepo()
	audit := &recordingAudit{}
	svc := NewOrgContextService(repo, audit)
	ctx := context.Background()

	oc, err := svc.CreateOrgContext(ctx, "Engineering", "eng", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.DeactivateOrgContext(ctx, oc.ID)
	if err != nil {
		t.Fatalf("DeactivateOrgContext: %v", err)
	}
	if got.IsActive {
		t.Error("context should be inactive")
	}
	if audit.entries[len(audit.entries)-1].Action != "org_context.deactivate" {
		t.Errorf("last audit action=%q; want org_context.deactivate", audit.entries[len(audit.entries)-1].Action)
	}

	got, err = svc.ActivateOrgContext(ctx, oc.ID)
	if err != nil {
		t.Fatalf("ActivateOrgContext: %v", err)
	}
	if !got.IsActive {
		t.Error("context should be active again")
	}
}
