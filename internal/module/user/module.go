package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// UserModule bundles the user feature: repository, service, and handler.
type UserModule struct {
	Repository domain.UserRepository
	Service    domain.UserService
	handler    *UserHandler
}

// NewModule wires the user module from its dependencies.
func NewModule(db *gorm.DB, audit domain.AuditRecorder) *UserModule {
	if db == nil {
		panic("user: db is required")
	}
	if audit == nil {
		panic("user: audit recorder is required")
	}

	repo := NewUserRepository(db)
	svc := NewUserService(repo, audit)

	return &UserModule{
		Repository: repo,
		Service:    svc,
		handler:    NewUserHandler(svc),
	}
}

// RegisterRoutes mounts the user REST API under the given group.
func (m *UserModule) RegisterRoutes(api *gin.RouterGroup, guard func(permission string) gin.HandlerFunc) {
	users := api.Group("/users")
	{
		users.GET("", guard("user.read"), m.handler.List)
		users.GET("/:id", guard("user.read"), m.handler.Get)
		users.GET("/:id/permissions", guard("user.read"), m.handler.Permissions)
		users.POST("", guard("user.write"), m.handler.Create)
		users.PUT("/:id", guard("user.write"), m.handler.Update)
		users.PUT("/:id/permissions", guard("user.write"), m.handler.SetPermissions)
		users.DELETE("/:id", guard("user.write"), m.handler.Delete)
		users.POST("/:id/activate", guard("user.write"), m.handler.Activate)
		users.POST("/:id/deactivate", guard("user.write"), m.handler.Deactivate)
	}
}
