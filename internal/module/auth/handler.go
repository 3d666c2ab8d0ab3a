package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/middleware"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

// AuthHandler handles REST API requests for authentication.
type AuthHandler struct {
	svc Service
}

// NewHandler creates a new AuthHandler with the given service.
func NewHandler(svc Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tokenResp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, tokenResp)
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "user registered successfully",
		Data: RegisterResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}

// ChangePassword handles POST /api/v1/auth/change-password for the
// authenticated user.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
