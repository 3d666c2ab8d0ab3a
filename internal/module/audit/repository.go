package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields   = []string{"id", "actor_id", "action", "resource_type", "created_at"}
	allowedFilterFields = []string{"actor_id", "action", "resource_type", "resource_id"}
	searchFields        = []string{"action", "resource_type", "details"}
)

// Accepted layouts for the from/to date-range filters.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// auditRepository implements domain.AuditRepository using GORM.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new AuditRepository backed by the given GORM database.
func NewAuditRepository(db *gorm.DB) domain.AuditRepository {
	return &auditRepository{db: db}
}

// Create appends a new audit log entry.
func (r *auditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// List returns a paginated, filtered view of the audit trail. Beyond the
// shared search and structured filters it honors "from" and "to" query
// parameters as an inclusive created_at range.
func (r *auditRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.AuditLog], error) {
	return pkg.ListModel[domain.AuditLog](ctx, r.db, req, pkg.ListSpec{
		SearchFields: searchFields,
		FilterFields: allowedFilterFields,
		SortFields:   allowedSortFields,
		Scopes:       []func(db *gorm.DB) *gorm.DB{dateRange(req)},
	})
}

// dateRange returns a scope applying the from/to created_at bounds, when present.
func dateRange(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from, ok := parseDate(req.Filter["from"]); ok {
			db = db.Where("created_at >= ?", from)
		}
		if to, ok := parseDate(req.Filter["to"]); ok {
			db = db.Where("created_at <= ?", to)
		}
		return db
	}
}

// parseDate accepts RFC3339 timestamps or plain dates. Unparseable values
// are ignored rather than rejected, matching the silent-skip behavior of
// the structured filter scope.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
