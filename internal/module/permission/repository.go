package permission

import (
	"context"

	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

var (
	allowedSortFields   = []string{"id", "code", "name", "created_at", "updated_at"}
	allowedFilterFields = []string{"code", "resource_type", "action", "is_active"}
	searchFields        = []string{"code", "name", "description"}
)

// permissionRepository implements domain.PermissionRepository using GORM.
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new PermissionRepository backed by the given database.
func NewPermissionRepository(db *gorm.DB) domain.PermissionRepository {
	return &permissionRepository{db: db}
}

// Create inserts a new permission into the database.
func (r *permissionRepository) Create(ctx context.Context, perm *domain.Permission) error {
	if err := r.db.WithContext(ctx).Create(perm).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a permission by ID.
func (r *permissionRepository) GetByID(ctx context.Context, id uint) (*domain.Permission, error) {
	var perm domain.Permission
	if err := r.db.WithContext(ctx).First(&perm, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &perm, nil
}

// GetByIDs retrieves the permissions matching the given ids. Missing ids are
// simply absent from the result; the caller decides whether that is an error.
func (r *permissionRepository) GetByIDs(ctx context.Context, ids []uint) ([]domain.Permission, error) {
	perms := []domain.Permission{}
	if len(ids) == 0 {
		return perms, nil
	}
	if err := r.db.WithContext(ctx).Find(&perms, ids).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return perms, nil
}

// List returns a paginated, sorted, searched, and filtered list of permissions.
func (r *permissionRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Permission], error) {
	return pkg.ListModel[domain.Permission](ctx, r.db, req, pkg.ListSpec{
		SearchFields: searchFields,
		FilterFields: allowedFilterFields,
		SortFields:   allowedSortFields,
	})
}

// Update saves changes to an existing permission.
func (r *permissionRepository) Update(ctx context.Context, perm *domain.Permission) error {
	if err := r.db.WithContext(ctx).Save(perm).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a permission by ID.
func (r *permissionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Permission{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive updates only the is_active flag and returns the refreshed permission.
func (r *permissionRepository) SetActive(ctx context.Context, id uint, active bool) (*domain.Permission, error) {
	result := r.db.WithContext(ctx).Model(&domain.Permission{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return nil, pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
