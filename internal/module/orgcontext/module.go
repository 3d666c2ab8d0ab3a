package orgcontext

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// OrgContextModule bundles the organization context feature.
type OrgContextModule struct {
	Repository domain.OrgContextRepository
	Service    domain.OrgContextService
	handler    *OrgContextHandler
}

// NewModule wires the organization context module from its dependencies.
func NewModule(db *gorm.DB, audit domain.AuditRecorder) *OrgContextModule {
	if db == nil {
		panic("orgcontext: db is required")
	}
	if audit == nil {
		panic("orgcontext: audit recorder is required")
	}

	repo := NewOrgContextRepository(db)
	svc := NewOrgContextService(repo, audit)

	return &OrgContextModule{
		Repository: repo,
		Service:    svc,
		handler:    NewOrgContextHandler(svc),
	}
}

// RegisterRoutes mounts the organization context REST API under the given group.
func (m *OrgContextModule) RegisterRoutes(api *gin.RouterGroup, guard func(permission string) gin.HandlerFunc) {
	contexts := api.Group("/org-contexts")
	{
		contexts.GET("", guard("org_context.read"), m.handler.List)
		contexts.GET("/:id", guard("org_context.read"), m.handler.Get)
		contexts.POST("", guard("org_context.write"), m.handler.Create)
		contexts.PUT("/:id", guard("org_context.write"), m.handler.Update)
		contexts.DELETE("/:id", guard("org_context.write"), m.handler.Delete)
		contexts.POST("/:id/activate", guard("org_context.write"), m.handler.Activate)
		contexts.POST("/:id/deactivate", guard("org_context.write"), m.handler.Deactivate)
	}
}
