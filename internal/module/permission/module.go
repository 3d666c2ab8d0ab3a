package permission

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// PermissionModule bundles the permission feature: repository, service, and handler.
type PermissionModule struct {
	Repository domain.PermissionRepository
	Service    domain.PermissionService
	handler    *PermissionHandler
}

// NewModule wires the permission module from its dependencies.
func NewModule(db *gorm.DB, audit domain.AuditRecorder) *PermissionModule {
	if db == nil {
		panic("permission: db is required")
	}
	if audit == nil {
		panic("permission: audit recorder is required")
	}

	repo := NewPermissionRepository(db)
	svc := NewPermissionService(repo, audit)

	return &PermissionModule{
		Repository: repo,
		Service:    svc,
		handler:    NewPermissionHandler(svc),
	}
}

// RegisterRoutes mounts the permission REST API under the given group.
func (m *PermissionModule) RegisterRoutes(api *gin.RouterGroup, guard func(permission string) gin.HandlerFunc) {
	perms := api.Group("/permissions")
	{
		perms.GET("", guard("permission.read"), m.handler.List)
		perms.GET("/:id", guard("permission.read"), m.handler.Get)
		perms.POST("", guard("permission.write"), m.handler.Create)
		perms.PUT("/:id", guard("permission.write"), m.handler.Update)
		perms.DELETE("/:id", guard("permission.write"), m.handler.Delete)
		perms.POST("/:id/activate", guard("permission.write"), m.handler.Activate)
		perms.POST("/:id/deactivate", guard("permission.write"), m.handler.Deactivate)
	}
}
