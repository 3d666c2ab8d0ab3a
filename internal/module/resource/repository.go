package resource

import (
	"context"

	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

var (
	allowedSortFields   = []string{"id", "name", "type", "created_at", "updated_at"}
	allowedFilterFields = []string{"name", "type", "is_active"}
	searchFields        = []string{"name", "type", "description"}
)

// resourceRepository implements domain.ResourceRepository using GORM.
type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new ResourceRepository backed by the given database.
func NewResourceRepository(db *gorm.DB) domain.ResourceRepository {
	return &resourceRepository{db: db}
}

// Create inserts a new resource into the database.
func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a resource by ID.
func (r *resourceRepository) GetByID(ctx context.Context, id uint) (*domain.Resource, error) {
	var res domain.Resource
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &res, nil
}

// List returns a paginated, sorted, searched, and filtered list of resources.
func (r *resourceRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Resource], error) {
	return pkg.ListModel[domain.Resource](ctx, r.db, req, pkg.ListSpec{
		SearchFields: searchFields,
		FilterFields: allowedFilterFields,
		SortFields:   allowedSortFields,
	})
}

// Update saves changes to an existing resource.
func (r *resourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	if err := r.db.WithContext(ctx).Save(res).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a resource by ID.
func (r *resourceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Resource{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive updates only the is_active flag and returns the refreshed resource.
func (r *resourceRepository) SetActive(ctx context.Context, id uint, active bool) (*domain.Resource, error) {
	result := r.db.WithContext(ctx).Model(&domain.Resource{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return nil, pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
