package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

const authUserIDContextKey = "auth_user_id"

// Auth returns a gin middleware that authenticates requests with a bearer
// JWT. Paths listed in publicPaths bypass authentication. On success the
// authenticated user id is stored in the gin.Context for handlers.
func Auth(jwtSvc jwt.Service, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := public[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			pkg.Error(c, domain.ErrUnauthorized)
			c.Abort()
			return
		}

		token, err := jwtSvc.ValidateAndParse(raw)
		if err != nil {
			pkg.Error(c, domain.ErrUnauthorized)
			c.Abort()
			return
		}

		userID, err := strconv.ParseUint(token.UserID, 10, 64)
		if err != nil {
			pkg.Error(c, domain.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(authUserIDContextKey, uint(userID))
		c.Request = c.Request.WithContext(domain.WithActor(c.Request.Context(), uint(userID)))
		c.Next()
	}
}

// RequirePermission returns a gin middleware that rejects the request with
// 403 unless the authenticated user holds the given permission code (or the
// superuser wildcard). It must run after Auth.
func RequirePermission(svc domain.UserService, code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := CurrentUserID(c)
		if userID == 0 {
			pkg.Error(c, domain.ErrUnauthorized)
			c.Abort()
			return
		}

		perms, err := svc.UserPermissions(c.Request.Context(), userID)
		if err != nil {
			pkg.Error(c, err)
			c.Abort()
			return
		}

		for _, p := range perms {
			if p == domain.SuperuserPermission || p == code {
				c.Next()
				return
			}
		}

		pkg.Error(c, domain.ErrForbidden)
		c.Abort()
	}
}

// CurrentUserID returns the authenticated user id stored by Auth, or 0 when
// the request is unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	if v, exists := c.Get(authUserIDContextKey); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
