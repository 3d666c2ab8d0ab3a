package orgcontext

import (
	"context"

	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

var (
	allowedSortFields   = []string{"id", "name", "code", "created_at", "updated_at"}
	allowedFilterFields = []string{"name", "code", "parent_id", "is_active"}
	searchFields        = []string{"name", "code", "description"}
)

// orgContextRepository implements domain.OrgContextRepository using GORM.
type orgContextRepository struct {
	db *gorm.DB
}

// NewOrgContextRepository creates a new OrgContextRepository backed by the given database.
func NewOrgContextRepository(db *gorm.DB) domain.OrgContextRepository {
	return &orgContextRepository{db: db}
}

// Create inserts a new organization context into the database.
func (r *orgContextRepository) Create(ctx context.Context, oc *domain.OrganizationContext) error {
	if err := r.db.WithContext(ctx).Create(oc).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves an organization context by ID.
func (r *orgContextRepository) GetByID(ctx context.Context, id uint) (*domain.OrganizationContext, error) {
	var oc domain.OrganizationContext
	if err := r.db.WithContext(ctx).First(&oc, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &oc, nil
}

// List returns a paginated, sorted, searched, and filtered list of organization contexts.
func (r *orgContextRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.OrganizationContext], error) {
	return pkg.ListModel[domain.OrganizationContext](ctx, r.db, req, pkg.ListSpec{
		SearchFields: searchFields,
		FilterFields: allowedFilterFields,
		SortFields:   allowedSortFields,
	})
}

// Update saves changes to an existing organization context.
func (r *orgContextRepository) Update(ctx context.Context, oc *domain.OrganizationContext) error {
	if err := r.db.WithContext(ctx).Save(oc).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes an organization context by ID.
func (r *orgContextRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.OrganizationContext{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive updates only the is_active flag and returns the refreshed context.
func (r *orgContextRepository) SetActive(ctx context.Context, id uint, active bool) (*domain.OrganizationContext, error) {
	result := r.db.WithContext(ctx).Model(&domain.OrganizationContext{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return nil, pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
