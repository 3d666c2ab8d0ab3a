package resource

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

// ResourceHandler handles REST API requests for the resource catalog.
type ResourceHandler struct {
	svc domain.ResourceService
}

// NewResourceHandler creates a new ResourceHandler with the given service.
func NewResourceHandler(svc domain.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// Create handles POST /api/v1/resources.
func (h *ResourceHandler) Create(c *gin.Context) {
	var req CreateResourceRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	res, err := h.svc.CreateResource(c.Request.Context(), req.Name, req.Type, req.Description)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    res,
	})
}

// Get handles GET /api/v1/resources/:id.
func (h *ResourceHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	res, err := h.svc.GetResource(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, res)
}

// List handles GET /api/v1/resources.
func (h *ResourceHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListResources(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/resources/:id.
func (h *ResourceHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateResourceRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	res, err := h.svc.UpdateResource(c.Request.Context(), id, req.Name, req.Type, req.Description)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, res)
}

// Delete handles DELETE /api/v1/resources/:id.
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteResource(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Activate handles POST /api/v1/resources/:id/activate.
func (h *ResourceHandler) Activate(c *gin.Context) {
	h.setActive(c, h.svc.ActivateResource)
}

// Deactivate handles POST /api/v1/resources/:id/deactivate.
func (h *ResourceHandler) Deactivate(c *gin.Context) {
	h.setActive(c, h.svc.DeactivateResource)
}

func (h *ResourceHandler) setActive(c *gin.Context, fn func(ctx context.Context, id uint) (*domain.Resource, error)) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	res, err := fn(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, res)
}
