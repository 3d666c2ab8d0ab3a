package role

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields   = []string{"id", "name", "created_at", "updated_at"}
	allowedFilterFields = []string{"name", "is_active", "is_system"}
	searchFields        = []string{"name", "description"}
)

// roleRepository implements domain.RoleRepository using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository backed by the given GORM database.
func NewRoleRepository(db *gorm.DB) domain.RoleRepository {
	return &roleRepository{db: db}
}

// Create inserts a new role into the database.
func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a role with its permissions preloaded.
func (r *roleRepository) GetByID(ctx context.Context, id uint) (*domain.Role, error) {
	var role domain.Role
	if err := r.db.WithContext(ctx).Preload("Permissions").First(&role, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &role, nil
}

// List returns a paginated, sorted, searched, and filtered list of roles.
// Permissions are not loaded on the list path.
func (r *roleRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Role], error) {
	return pkg.ListModel[domain.Role](ctx, r.db, req, pkg.ListSpec{
		SearchFields: searchFields,
		FilterFields: allowedFilterFields,
		SortFields:   allowedSortFields,
	})
}

// Update saves changes to an existing role. Associations are not touched;
// use ReplacePermissions for the permission set.
func (r *roleRepository) Update(ctx context.Context, role *domain.Role) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(role).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a role by ID.
func (r *roleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Role{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive updates only the is_active flag and returns the refreshed role.
func (r *roleRepository) SetActive(ctx context.Context, id uint, active bool) (*domain.Role, error) {
	result := r.db.WithContext(ctx).Model(&domain.Role{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return nil, pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// ReplacePermissions atomically replaces the role's permission set inside a
// transaction. All referenced permission ids must exist.
func (r *roleRepository) ReplacePermissions(ctx context.Context, roleID uint, permissionIDs []uint) (*domain.Role, error) {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var role domain.Role
		if err := tx.First(&role, roleID).Error; err != nil {
			return pkg.MapDBError(err)
		}

		perms := []domain.Permission{}
		if len(permissionIDs) > 0 {
			if err := tx.Find(&perms, permissionIDs).Error; err != nil {
				return pkg.MapDBError(err)
			}
			if len(perms) != len(permissionIDs) {
				return domain.NewAppError(domain.CodeValidation,
					fmt.Sprintf("unknown permission ids: requested %d, found %d", len(permissionIDs), len(perms)), nil)
			}
		}

		if err := tx.Model(&role).Association("Permissions").Replace(perms); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, roleID)
}
