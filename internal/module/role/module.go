package role

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// RoleModule bundles the role feature: repository, service, and handler.
type RoleModule struct {
	Repository domain.RoleRepository
	Service    domain.RoleService
	handler    *RoleHandler
}

// NewModule wires the role module from its dependencies.
func NewModule(db *gorm.DB, audit domain.AuditRecorder) *RoleModule {
	if db == nil {
		panic("role: db is required")
	}
	if audit == nil {
		panic("role: audit recorder is required")
	}

	repo := NewRoleRepository(db)
	svc := NewRoleService(repo, audit)

	return &RoleModule{
		Repository: repo,
		Service:    svc,
		handler:    NewRoleHandler(svc),
	}
}

// RegisterRoutes mounts the role REST API under the given group. The guard
// wraps each route with a permission check.
func (m *RoleModule) RegisterRoutes(api *gin.RouterGroup, guard func(permission string) gin.HandlerFunc) {
	roles := api.Group("/roles")
	{
		roles.GET("", guard("role.read"), m.handler.List)
		roles.GET("/:id", guard("role.read"), m.handler.Get)
		roles.POST("", guard("role.write"), m.handler.Create)
		roles.PUT("/:id", guard("role.write"), m.handler.Update)
		roles.DELETE("/:id", guard("role.write"), m.handler.Delete)
		roles.POST("/:id/activate", guard("role.write"), m.handler.Activate)
		roles.POST("/:id/deactivate", guard("role.write"), m.handler.Deactivate)
		roles.PUT("/:id/permissions", guard("role.write"), m.handler.SetPermissions)
	}
}
