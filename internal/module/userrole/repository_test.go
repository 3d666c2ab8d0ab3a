package userrole

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.UserRole{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreate_DuplicateAssignment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRoleRepository(db)
	ctx := context.Background()

	ctxID := uint(3)
	first := &domain.UserRole{UserID: 1, RoleID: 2, OrgContextID: &ctxID, IsActive: true}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	dup := &domain.UserRole{UserID: 1, RoleID: 2, OrgContextID: &ctxID}
	err := repo.Create(ctx, dup)
	if !domain.IsAlreadyExists(err) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}

	// The same pair in a different context is a distinct assignment.
	otherCtx := uint(4)
	other := &domain.UserRole{UserID: 1, RoleID: 2, OrgContextID: &otherCtx}
	if err := repo.Create(ctx, other); err != nil {
		t.Errorf("different context should be allowed: %v", err)
	}
}

// The composite unique index cannot catch global duplicates because SQL
// treats NULL org_context_id values as distinct rows.
func TestCreate_DuplicateGlobalAssignment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRoleRepository(db)
	ctx := context.Background()

	first := &domain.UserRole{UserID: 1, RoleID: 2, IsActive: true}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	dup := &domain.UserRole{UserID: 1, RoleID: 2}
	if err := repo.Create(ctx, dup); !domain.IsAlreadyExists(err) {
		t.Errorf("expected ErrAlreadyExists for duplicate global assignment, got %v", err)
	}

	// A scoped assignment of the same pair is still distinct from the global one.
	ctxID := uint(3)
	scoped := &domain.UserRole{UserID: 1, RoleID: 2, OrgContextID: &ctxID}
	if err := repo.Create(ctx, scoped); err != nil {
		t.Errorf("scoped assignment alongside global should be allowed: %v", err)
	}
}

func TestDeleteAndSetActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRoleRepository(db)
	ctx := context.Background()

	ur := &domain.UserRole{UserID: 1, RoleID: 2, IsActive: true}
	if err := repo.Create(ctx, ur); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.SetActive(ctx, ur.ID, false)
	if err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if got.IsActive {
		t.Error("IsActive should be false")
	}
	if got.UserID != 1 || got.RoleID != 2 {
		t.Errorf("other fields changed: %+v", got)
	}

	if err := repo.Delete(ctx, ur.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, ur.ID); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, ur.ID); !domain.IsNotFound(err) {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestList_FilterByUserAndRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRoleRepository(db)
	ctx := context.Background()

	seed := []domain.UserRole{
		{UserID: 1, RoleID: 10, IsActive: true},
		{UserID: 1, RoleID: 11, IsActive: false},
		{UserID: 2, RoleID: 10, IsActive: true},
	}
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	result, err := repo.List(ctx, domain.PageRequest{
		Page: 1, PageSize: 20, Sort: "id:asc",
		Filter: map[string]string{"user_id": "1"},
	})
	if err != nil {
		t.Fatalf("List by user: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("user filter Total=%d; want 2", result.Total)
	}

	result, err = repo.List(ctx, domain.PageRequest{
		Page: 1, PageSize: 20, Sort: "id:asc",
		Filter: map[string]string{"role_id": "10", "is_active": "true"},
	})
	if err != nil {
		t.Fatalf("List by role+active: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("role filter Total=%d; want 2", result.Total)
	}
}
