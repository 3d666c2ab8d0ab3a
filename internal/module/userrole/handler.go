package userrole

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/middleware"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

// UserRoleHandler handles REST API requests for user-role assignments.
type UserRoleHandler struct {
	svc domain.UserRoleService
}

// NewUserRoleHandler creates a new UserRoleHandler with the given service.
func NewUserRoleHandler(svc domain.UserRoleService) *UserRoleHandler {
	return &UserRoleHandler{svc: svc}
}

// Assign handles POST /api/v1/user-roles. The authenticated user is recorded
// as the grantor.
func (h *UserRoleHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	ur, err := h.svc.Assign(c.Request.Context(), req.UserID, req.RoleID, req.OrgContextID, middleware.CurrentUserID(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    ur,
	})
}

// Get handles GET /api/v1/user-roles/:id.
func (h *UserRoleHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	ur, err := h.svc.GetAssignment(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, ur)
}

// List handles GET /api/v1/user-roles.
func (h *UserRoleHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListAssignments(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Revoke handles DELETE /api/v1/user-roles/:id.
func (h *UserRoleHandler) Revoke(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Revoke(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Activate handles POST /api/v1/user-roles/:id/activate.
func (h *UserRoleHandler) Activate(c *gin.Context) {
	h.setActive(c, h.svc.ActivateAssignment)
}

// Deactivate handles POST /api/v1/user-roles/:id/deactivate.
func (h *UserRoleHandler) Deactivate(c *gin.Context) {
	h.setActive(c, h.svc.DeactivateAssignment)
}

func (h *UserRoleHandler) setActive(c *gin.Context, fn func(ctx context.Context, id uint) (*domain.UserRole, error)) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	ur, err := fn(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, ur)
}
