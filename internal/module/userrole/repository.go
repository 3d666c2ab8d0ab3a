package userrole

import (
	"context"

	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

var (
	allowedSortFields   = []string{"id", "user_id", "role_id", "created_at", "updated_at"}
	allowedFilterFields = []string{"user_id", "role_id", "org_context_id", "assigned_by", "is_active"}
)

// userRoleRepository implements domain.UserRoleRepository using GORM.
type userRoleRepository struct {
	db *gorm.DB
}

// NewUserRoleRepository creates a new UserRoleRepository backed by the given database.
func NewUserRoleRepository(db *gorm.DB) domain.UserRoleRepository {
	return &userRoleRepository{db: db}
}

// Create inserts a new assignment. The unique index on (user_id, role_id,
// org_context_id) rejects scoped duplicates, but SQL treats NULL values as
// distinct, so global (context-free) duplicates must be checked explicitly.
func (r *userRoleRepository) Create(ctx context.Context, ur *domain.UserRole) error {
	dup := r.db.WithContext(ctx).Model(&domain.UserRole{}).
		Where("user_id = ? AND role_id = ?", ur.UserID, ur.RoleID)
	if ur.OrgContextID != nil {
		dup = dup.Where("org_context_id = ?", *ur.OrgContextID)
	} else {
		dup = dup.Where("org_context_id IS NULL")
	}

	var count int64
	if err := dup.Count(&count).Error; err != nil {
		return pkg.MapDBError(err)
	}
	if count > 0 {
		return domain.ErrAlreadyExists
	}

	if err := r.db.WithContext(ctx).Create(ur).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves an assignment by ID.
func (r *userRoleRepository) GetByID(ctx context.Context, id uint) (*domain.UserRole, error) {
	var ur domain.UserRole
	if err := r.db.WithContext(ctx).First(&ur, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &ur, nil
}

// List returns a paginated, sorted, and filtered list of assignments.
// Assignments have no free-text fields, so q is ignored.
func (r *userRoleRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.UserRole], error) {
	return pkg.ListModel[domain.UserRole](ctx, r.db, req, pkg.ListSpec{
		FilterFields: allowedFilterFields,
		SortFields:   allowedSortFields,
	})
}

// Delete removes an assignment by ID.
func (r *userRoleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.UserRole{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive updates only the is_active flag and returns the refreshed assignment.
func (r *userRoleRepository) SetActive(ctx context.Context, id uint, active bool) (*domain.UserRole, error) {
	result := r.db.WithContext(ctx).Model(&domain.UserRole{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return nil, pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
