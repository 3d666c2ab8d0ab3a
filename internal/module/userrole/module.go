package userrole

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// UserRoleModule bundles the user-role assignment feature.
type UserRoleModule struct {
	Repository domain.UserRoleRepository
	Service    domain.UserRoleService
	handler    *UserRoleHandler
}

// NewModule wires the user-role module. It needs the user, role, and
// organization context repositories for referential checks on assignment.
func NewModule(
	db *gorm.DB,
	users domain.UserRepository,
	roles domain.RoleRepository,
	orgs domain.OrgContextRepository,
	audit domain.AuditRecorder,
) *UserRoleModule {
	if db == nil {
		panic("userrole: db is required")
	}
	if users == nil || roles == nil || orgs == nil {
		panic("userrole: user, role, and org context repositories are required")
	}
	if audit == nil {
		panic("userrole: audit recorder is required")
	}

	repo := NewUserRoleRepository(db)
	svc := NewUserRoleService(repo, users, roles, orgs, audit)

	return &UserRoleModule{
		Repository: repo,
		Service:    svc,
		handler:    NewUserRoleHandler(svc),
	}
}

// RegisterRoutes mounts the user-role REST API under the given group.
func (m *UserRoleModule) RegisterRoutes(api *gin.RouterGroup, guard func(permission string) gin.HandlerFunc) {
	assignments := api.Group("/user-roles")
	{
		assignments.GET("", guard("user_role.read"), m.handler.List)
		assignments.GET("/:id", guard("user_role.read"), m.handler.Get)
		assignments.POST("", guard("user_role.write"), m.handler.Assign)
		assignments.DELETE("/:id", guard("user_role.write"), m.handler.Revoke)
		assignments.POST("/:id/activate", guard("user_role.write"), m.handler.Activate)
		assignments.POST("/:id/deactivate", guard("user_role.write"), m.handler.Deactivate)
	}
}
