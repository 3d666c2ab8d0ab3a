package audit

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// AuditModule bundles the audit log feature. Its Service doubles as the
// AuditRecorder handed to every mutating module.
type AuditModule struct {
	Repository domain.AuditRepository
	Service    domain.AuditService
	handler    *AuditHandler
}

// NewModule wires the audit module from its dependencies.
func NewModule(db *gorm.DB) *AuditModule {
	if db == nil {
		panic("audit: db is required")
	}

	repo := NewAuditRepository(db)
	svc := NewAuditService(repo)

	return &AuditModule{
		Repository: repo,
		Service:    svc,
		handler:    NewAuditHandler(svc),
	}
}

// RegisterRoutes registers audit log API routes.
func (m *AuditModule) RegisterRoutes(api *gin.RouterGroup, guard func(permission string) gin.HandlerFunc) {
	api.GET("/audit-logs", guard("audit.read"), m.handler.List)
}
