package audit

import (
	"context"
	"testing"
	"time"

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
	if err := db.AutoMigrate(&domain.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedLog(t *testing.T, db *gorm.DB, actorID uint, action, resourceType string, createdAt time.Time) {
	t.Helper()
	log := domain.AuditLog{
		ActorID:      actorID,
		Action:       action,
		ResourceType: resourceType,
		CreatedAt:    createdAt,
	}
	if err := db.Create(&log).Error; err != nil {
		t.Fatalf("seed log: %v", err)
	}
}

func TestCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	log := &domain.AuditLog{ActorID: 1, Action: "role.create", ResourceType: "role", ResourceID: 7, Details: "editor"}
	if err := repo.Create(ctx, log); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if log.ID == 0 {
		t.Fatal("expected non-zero ID")
	}

	result, err := repo.List(ctx, domain.PageRequest{Page: 1, PageSize: 20, Sort: "id:desc"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Total=%d; want 1", result.Total)
	}
}

func TestList_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()
	now := time.Now()

	seedLog(t, db, 1, "role.create", "role", now)
	seedLog(t, db, 1, "role.delete", "role", now)
	seedLog(t, db, 2, "user.create", "user", now)

	result, err := repo.List(ctx, domain.PageRequest{
		Page: 1, PageSize: 20, Sort: "id:asc",
		Filter: map[string]string{"actor_id": "1"},
	})
	if err != nil {
		t.Fatalf("List by actor: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("actor filter Total=%d; want 2", result.Total)
	}

	result, err = repo.List(ctx, domain.PageRequest{
		Page: 1, PageSize: 20, Sort: "id:asc",
		Filter: map[string]string{"actor_id": "1", "action": "role.delete"},
	})
	if err != nil {
		t.Fatalf("List by actor+action: %v", err)
	}
	if result.Total != 1 || result.Items[0].Action != "role.delete" {
		t.Errorf("combined filter got %+v; want only role.delete", result.Items)
	}
}

func TestList_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()
	now := time.Now()

	seedLog(t, db, 1, "role.create", "role", now)
	seedLog(t, db, 1, "user.create", "user", now)
	seedLog(t, db, 1, "user.delete", "user", now)

	result, err := repo.List(ctx, domain.PageRequest{
		Page: 1, PageSize: 20, Sort: "id:asc",
		Search: "create",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total=%d; want 2", result.Total)
	}
}

func TestList_DateRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	seedLog(t, db, 1, "a", "role", time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))
	seedLog(t, db, 1, "b", "role", time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC))
	seedLog(t, db, 1, "c", "role", time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	result, err := repo.List(ctx, domain.PageRequest{
		Page: 1, PageSize: 20, Sort: "id:asc",
		Filter: map[string]string{"from": "2026-02-01", "to": "2026-03-01"},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Total != 1 || result.Items[0].Action != "b" {
		t.Errorf("date range got %+v; want only b", result.Items)
	}

	// Unparseable bounds are ignored, not an error.
	result, err = repo.List(ctx, domain.PageRequest{
		Page: 1, PageSize: 20, Sort: "id:asc",
		Filter: map[string]string{"from": "not-a-date"},
	})
	if err != nil {
		t.Fatalf("List with bad date: %v", err)
	}
	if result.Total != 3 {
		t.Errorf("Total=%d; want 3", result.Total)
	}
}
