package role

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// fakeRoleRepo is a hand-written in-memory stand-in for the repository.
type fakeRoleRepo struct {
	roles     map[uint]*domain.Role
	nextID    uint
	failWith  error
	deleted   []uint
	setActive []uint
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: make(map[uint]*domain.Role), nextID: 1}
}

func (f *fakeRoleRepo) Create(ctx context.Context, role *domain.Role) error {
	if f.failWith != nil {
		return f.failWith
	}
	role.ID = f.nextID
	f.nextID++
	cp := *role
	f.roles[role.ID] = &cp
	return nil
}

func (f *fakeRoleRepo) GetByID(ctx context.Context, id uint) (*domain.Role, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	role, ok := f.roles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *role
	return &cp, nil
}

func (f *fakeRoleRepo) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Role], error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	items := make([]domain.Role, 0, len(f.roles))
	for _, r := range f.roles {
		items = append(items, *r)
	}
	return &domain.PageResult[domain.Role]{Items: items, Total: int64(len(items)), Page: req.Page, PageSize: req.PageSize}, nil
}

func (f *fakeRoleRepo) Update(ctx context.Context, role *domain.Role) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.roles[role.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *role
	f.roles[role.ID] = &cp
	return nil
}

func (f *fakeRoleRepo) Delete(ctx context.Context, id uint) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.roles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.roles, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRoleRepo) SetActive(ctx context.Context, id uint, active bool) (*domain.Role, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	role, ok := f.roles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	role.IsActive = active
	f.setActive = append(f.setActive, id)
	cp := *role
	return &cp, nil
}

func (f *fakeRoleRepo) ReplacePermissions(ctx context.Context, roleID uint, permissionIDs []uint) (*domain.Role, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	role, ok := f.roles[roleID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	role.Permissions = make([]domain.Permission, len(permissionIDs))
	for i, id := range permissionIDs {
		role.Permissions[i] = domain.Permission{BaseModel: domain.BaseModel{ID: id}}
	}
	cp := *role
	return &cp, nil
}

// recordingAudit captures audit entries without touching a database.
type recordingAudit struct {
	entries []domain.AuditEntry
}

func (r *recordingAudit) Record(ctx context.Context, entry domain.AuditEntry) {
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) lastAction() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1].Action
}

func TestCreateRole(t *testing.T) {
	repo := newFakeRoleRepo()
	audit := &recordingAudit{}
	svc := NewRoleService(repo, audit)

	role, err := svc.CreateRole(context.Background(), "  editor  ", "content editors")
	if err != nil {
		t.Fatalf("CreateRole: %v", err)
	}
	if role.Name != "editor" {
		t.Errorf("Name=%q; want trimmed editor", role.Name)
	}
	if !role.IsActive {
		t.Error("new roles start active")
	}
	if audit.lastAction() != "role.create" {
		t.Errorf("audit action=%q; want role.create", audit.lastAction())
	}
}

func TestCreateRole_Validation(t *testing.T) {
	svc := NewRoleService(newFakeRoleRepo(), &recordingAudit{})
	ctx := context.Background()

	tests := []struct {
		name        string
		roleName    string
		description string
	}{
		{"empty_name", "", ""},
		{"short_name", "x", ""},
		{"long_name", strings.Repeat("a", 101), ""},
		{"short_description", "editor", "ab"},
		{"long_description", "editor", strings.Repeat("a", 501)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRole(ctx, tt.roleName, tt.description)
			if !domain.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateRole_RepoFailure(t *testing.T) {
	repo := newFakeRoleRepo()
	repo.failWith = errors.New("db down")
	audit := &recordingAudit{}
	svc := NewRoleService(repo, audit)

	_, err := svc.CreateRole(context.Background(), "editor", "")
	if err == nil {
		t.Fatal("expected error from failing repository")
	}
	if len(audit.entries) != 0 {
		t.Error("no audit entry should be recorded on failure")
	}
}

func TestUpdateRole(t *testing.T) {
	repo := newFakeRoleRepo()
	audit := &recordingAudit{}
	svc := NewRoleService(repo, audit)
	ctx := context.Background()

	role, _ := svc.CreateRole(ctx, "editor", "old description")

	updated, err := svc.UpdateRole(ctx, role.ID, "editor", "new description")
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if updated.Description != "new description" {
		t.Errorf("Description=%q; want new description", updated.Description)
	}
	if audit.lastAction() != "role.update" {
		t.Errorf("audit action=%q; want role.update", audit.lastAction())
	}
}

func TestDeleteRole_SystemRoleForbidden(t *testing.T) {
	repo := newFakeRoleRepo()
	audit := &recordingAudit{}
	svc := NewRoleService(repo, audit)
	ctx := context.Background()

	system := &domain.Role{Name: "superadmin", IsSystem: true}
	if err := repo.Create(ctx, system); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := svc.DeleteRole(ctx, system.ID)
	if !domain.IsForbidden(err) {
		t.Errorf("expected forbidden error, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("system role must not be deleted")
	}
}

func TestDeleteRole(t *testing.T) {
	repo := newFakeRoleRepo()
	audit := &recordingAudit{}
	svc := NewRoleService(repo, audit)
	ctx := context.Background()

	role, _ := svc.CreateRole(ctx, "editor", "")
	if err := svc.DeleteRole(ctx, role.ID); err != nil {
		t.Fatalf("DeleteRole: %v", err)
	}
	if audit.lastAction() != "role.delete" {
		t.Errorf("audit action=%q; want role.delete", audit.lastAction())
	}
}

func TestActivateDeactivateRole(t *testing.T) {
	repo := newFakeRoleRepo()
	audit := &recordingAudit{}
	svc := NewRoleService(repo, audit)
	ctx := context.Background()

	role, _ := svc.CreateRole(ctx, "editor", "")

	got, err := svc.DeactivateRole(ctx, role.ID)
	if err != nil {
		t.Fatalf("DeactivateRole: %v", err)
	}
	if got.IsActive {
		t.Error("role should be inactive")
	}
	if audit.lastAction() != "role.deactivate" {
		t.Errorf("audit action=%q; want role.deactivate", audit.lastAction())
	}

	got, err = svc.ActivateRole(ctx, role.ID)
	if err != nil {
		t.Fatalf("ActivateRole: %v", err)
	}
	if !got.IsActive {
		t.Error("role should be active again")
	}
	if audit.lastAction() != "role.activate" {
		t.Errorf("audit action=%q; want role.activate", audit.lastAction())
	}
}

func TestSetRolePermissions(t *testing.T) {
	repo := newFakeRoleRepo()
	audit := &recordingAudit{}
	svc := NewRoleService(repo, audit)
	ctx := context.Background()

	role, _ := svc.CreateRole(ctx, "editor", "")

	got, err := svc.SetRolePermissions(ctx, role.ID, []uint{1, 2, 3})
	if err != nil {
		t.Fatalf("SetRolePermissions: %v", err)
	}
	if len(got.Permissions) != 3 {
		t.Errorf("got %d permissions; want 3", len(got.Permissions))
	}
	if audit.lastAction() != "role.set_permissions" {
		t.Errorf("audit action=%q; want role.set_permissions", audit.lastAction())
	}
}
