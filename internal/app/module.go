package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// The guard wraps routes with a permission check; modules decide which
// permission code each route needs.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup, guard func(permission string) gin.HandlerFunc)
}
