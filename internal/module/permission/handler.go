package permission

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

// PermissionHandler handles REST API requests for the permission resource.
type PermissionHandler struct {
	svc domain.PermissionService
}

// NewPermissionHandler creates a new PermissionHandler with the given service.
func NewPermissionHandler(svc domain.PermissionService) *PermissionHandler {
	return &PermissionHandler{svc: svc}
}

// Create handles POST /api/v1/permissions.
func (h *PermissionHandler) Create(c *gin.Context) {
	var req CreatePermissionRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	perm, err := h.svc.CreatePermission(c.Request.Context(), req.Code, req.Name, req.Description, req.ResourceType, req.Action)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    perm,
	})
}

// Get handles GET /api/v1/permissions/:id.
func (h *PermissionHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	perm, err := h.svc.GetPermission(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, perm)
}

// List handles GET /api/v1/permissions.
func (h *PermissionHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListPermissions(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/permissions/:id.
func (h *PermissionHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdatePermissionRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	perm, err := h.svc.UpdatePermission(c.Request.Context(), id, req.Name, req.Description, req.ResourceType, req.Action)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, perm)
}

// Delete handles DELETE /api/v1/permissions/:id.
func (h *PermissionHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeletePermission(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Activate handles POST /api/v1/permissions/:id/activate.
func (h *PermissionHandler) Activate(c *gin.Context) {
	h.setActive(c, h.svc.ActivatePermission)
}

// Deactivate handles POST /api/v1/permissions/:id/deactivate.
func (h *PermissionHandler) Deactivate(c *gin.Context) {
	h.setActive(c, h.svc.DeactivatePermission)
}

func (h *PermissionHandler) setActive(c *gin.Context, fn func(ctx context.Context, id uint) (*domain.Permission, error)) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	perm, err := fn(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, perm)
}
