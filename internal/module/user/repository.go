package user

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

var (
	allowedSortFields   = []string{"id", "name", "email", "created_at", "updated_at"}
	allowedFilterFields = []string{"name", "email", "is_active", "is_superuser"}
	searchFields        = []string{"name", "email"}
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository backed by the given database.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a user with its direct permissions preloaded.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Preload("Permissions").First(&user, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email address.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &user, nil
}

// List returns a paginated, sorted, searched, and filtered list of users.
func (r *userRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.User], error) {
	return pkg.ListModel[domain.User](ctx, r.db, req, pkg.ListSpec{
		SearchFields: searchFields,
		FilterFields: allowedFilterFields,
		SortFields:   allowedSortFields,
	})
}

// Update saves changes to an existing user. Associations are not touched;
// use ReplacePermissions for the direct permission set.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a user by ID.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive updates only the is_active flag and returns the refreshed user.
func (r *userRepository) SetActive(ctx context.Context, id uint, active bool) (*domain.User, error) {
	result := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return nil, pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// ReplacePermissions atomically replaces the user's direct permission set
// inside a transaction. All referenced permission ids must exist.
func (r *userRepository) ReplacePermissions(ctx context.Context, userID uint, permissionIDs []uint) (*domain.User, error) {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.First(&user, userID).Error; err != nil {
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

		if err := tx.Model(&user).Association("Permissions").Replace(perms); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, userID)
}

// Permissions resolves the distinct permission codes the user holds, the
// union of direct grants and grants through active assignments of active
// roles. Inactive permissions are excluded from both sources.
func (r *userRepository) Permissions(ctx context.Context, id uint) ([]string, error) {
	viaRoles := []string{}
	err := r.db.WithContext(ctx).
		Table("permissions").
		Distinct("permissions.code").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN roles ON roles.id = role_permissions.role_id AND roles.is_active = ?", true).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id AND user_roles.is_active = ?", true).
		Where("user_roles.user_id = ? AND permissions.is_active = ?", id, true).
		Pluck("permissions.code", &viaRoles).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}

	direct := []string{}
	err = r.db.WithContext(ctx).
		Table("permissions").
		Distinct("permissions.code").
		Joins("JOIN user_permissions ON user_permissions.permission_id = permissions.id").
		Where("user_permissions.user_id = ? AND permissions.is_active = ?", id, true).
		Pluck("permissions.code", &direct).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}

	seen := make(map[string]struct{}, len(viaRoles)+len(direct))
	codes := []string{}
	for _, code := range append(viaRoles, direct...) {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}
