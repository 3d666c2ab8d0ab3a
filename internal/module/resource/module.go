package resource

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// ResourceModule bundles the resource feature: repository, service, and handler.
type ResourceModule struct {
	Repository domain.ResourceRepository
	Service    domain.ResourceService
	handler    *ResourceHandler
}

// NewModule wires the resource module from its dependencies.
func NewModule(db *gorm.DB, audit domain.AuditRecorder) *ResourceModule {
	if db == nil {
		panic("resource: db is required")
	}
	if audit == nil {
		panic("resource: audit recorder is required")
	}

	repo := NewResourceRepository(db)
	svc := NewResourceService(repo, audit)

	return &ResourceModule{
		Repository: repo,
		Service:    svc,
		handler:    NewResourceHandler(svc),
	}
}

// RegisterRoutes mounts the resource REST API under the given group.
func (m *ResourceModule) RegisterRoutes(api *gin.RouterGroup, guard func(permission string) gin.HandlerFunc) {
	resources := api.Group("/resources")
	{
		resources.GET("", guard("resource.read"), m.handler.List)
		resources.GET("/:id", guard("resource.read"), m.handler.Get)
		resources.POST("", guard("resource.write"), m.handler.Create)
		resources.PUT("/:id", guard("resource.write"), m.handler.Update)
		resources.DELETE("/:id", guard("resource.write"), m.handler.Delete)
		resources.POST("/:id/activate", guard("resource.write"), m.handler.Activate)
		resources.POST("/:id/deactivate", guard("resource.write"), m.handler.Deactivate)
	}
}
