package role

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// setupTestDB creates an in-memory SQLite database with the role tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Role{}, &domain.Permission{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	role := &domain.Role{Name: "editor", Description: "content editors", IsActive: true}
	if err := repo.Create(ctx, role); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if role.ID == 0 {
		t.Fatal("expected non-zero ID after Create")
	}

	got, err := repo.GetByID(ctx, role.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "editor" || !got.IsActive {
		t.Errorf("got %+v; want Name=editor IsActive=true", got)
	}
	if len(got.Permissions) != 0 {
		t.Errorf("expected no permissions, got %d", len(got.Permissions))
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Role{Name: "editor"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := repo.Create(ctx, &domain.Role{Name: "editor"})
	if !domain.IsAlreadyExists(err) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	roles := make([]*domain.Role, 3)
	for i := range roles {
		roles[i] = &domain.Role{Name: fmt.Sprintf("role%d", i)}
		if err := repo.Create(ctx, roles[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := repo.Delete(ctx, roles[1].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	result, err := repo.List(ctx, domain.PageRequest{Page: 1, PageSize: 20, Sort: "id:asc"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("Total=%d; want 2", result.Total)
	}
	if result.Items[0].ID != roles[0].ID || result.Items[1].ID != roles[2].ID {
		t.Errorf("remaining order changed: got %d,%d; want %d,%d",
			result.Items[0].ID, result.Items[1].ID, roles[0].ID, roles[2].ID)
	}
}

func TestDelete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)

	err := repo.Delete(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetActive_TouchesOnlyFlag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	role := &domain.Role{Name: "editor", Description: "unchanged", IsActive: true}
	if err := repo.Create(ctx, role); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.SetActive(ctx, role.ID, false)
	if err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if got.IsActive {
		t.Error("IsActive should be false")
	}
	if got.Name != "editor" || got.Description != "unchanged" {
		t.Errorf("other fields changed: %+v", got)
	}

	got, err = repo.SetActive(ctx, role.ID, true)
	if err != nil {
		t.Fatalf("SetActive back: %v", err)
	}
	if !got.IsActive {
		t.Error("IsActive should be true again")
	}
}

func TestSetActive_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)

	_, err := repo.SetActive(context.Background(), 999, true)
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReplacePermissions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	perms := make([]domain.Permission, 3)
	for i := range perms {
		perms[i] = domain.Permission{Code: fmt.Sprintf("perm.%d", i), Name: fmt.Sprintf("Perm %d", i), IsActive: true}
		if err := db.Create(&perms[i]).Error; err != nil {
			t.Fatalf("seed permission: %v", err)
		}
	}

	role := &domain.Role{Name: "editor"}
	if err := repo.Create(ctx, role); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ReplacePermissions(ctx, role.ID, []uint{perms[0].ID, perms[1].ID})
	if err != nil {
		t.Fatalf("ReplacePermissions: %v", err)
	}
	if len(got.Permissions) != 2 {
		t.Fatalf("got %d permissions; want 2", len(got.Permissions))
	}

	// Replace, not append.
	got, err = repo.ReplacePermissions(ctx, role.ID, []uint{perms[2].ID})
	if err != nil {
		t.Fatalf("second ReplacePermissions: %v", err)
	}
	if len(got.Permissions) != 1 || got.Permissions[0].Code != "perm.2" {
		t.Errorf("got %+v; want only perm.2", got.Permissions)
	}

	// Clearing with an empty set.
	got, err = repo.ReplacePermissions(ctx, role.ID, nil)
	if err != nil {
		t.Fatalf("clear ReplacePermissions: %v", err)
	}
	if len(got.Permissions) != 0 {
		t.Errorf("got %d permissions; want 0", len(got.Permissions))
	}
}

func TestReplacePermissions_UnknownID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	role := &domain.Role{Name: "editor"}
	if err := repo.Create(ctx, role); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := repo.ReplacePermissions(ctx, role.ID, []uint{12345})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestReplacePermissions_RoleNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)

	_, err := repo.ReplacePermissions(context.Background(), 999, nil)
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_SearchAndFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	seed := []domain.Role{
		{Name: "admin", Description: "full access", IsActive: true},
		{Name: "editor", Description: "content access", IsActive: true},
		{Name: "viewer", Description: "read only", IsActive: false},
	}
	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	result, err := repo.List(ctx, domain.PageRequest{
		Page: 1, PageSize: 20, Sort: "id:asc",
		Search: "access",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("search Total=%d; want 2", result.Total)
	}

	result, err = repo.List(ctx, domain.PageRequest{
		Page: 1, PageSize: 20, Sort: "id:asc",
		Filter: map[string]string{"is_active": "false"},
	})
	if err != nil {
		t.Fatalf("List with filter: %v", err)
	}
	if result.Total != 1 || result.Items[0].Name != "viewer" {
		t.Errorf("filter got %+v; want only viewer", result.Items)
	}
}
