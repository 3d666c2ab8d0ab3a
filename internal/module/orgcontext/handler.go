package orgcontext

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

// OrgContextHandler handles REST API requests for organization contexts.
type OrgContextHandler struct {
	svc domain.OrgContextService
}

// NewOrgContextHandler creates a new OrgContextHandler with the given service.
func NewOrgContextHandler(svc domain.OrgContextService) *OrgContextHandler {
	return &OrgContextHandler{svc: svc}
}

// Create handles POST /api/v1/org-contexts.
func (h *OrgContextHandler) Create(c *gin.Context) {
	var req CreateOrgContextRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	oc, err := h.svc.CreateOrgContext(c.Request.Context(), req.Name, req.Code, req.Description, req.ParentID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    oc,
	})
}

// Get handles GET /api/v1/org-contexts/:id.
func (h *OrgContextHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	oc, err := h.svc.GetOrgContext(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, oc)
}

// List handles GET /api/v1/org-contexts.
func (h *OrgContextHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListOrgContexts(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/org-contexts/:id.
func (h *OrgContextHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateOrgContextRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	oc, err := h.svc.UpdateOrgContext(c.Request.Context(), id, req.Name, req.Code, req.Description, req.ParentID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, oc)
}

// Delete handles DELETE /api/v1/org-contexts/:id.
func (h *OrgContextHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteOrgContext(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Activate handles POST /api/v1/org-contexts/:id/activate.
func (h *OrgContextHandler) Activate(c *gin.Context) {
	h.setActive(c, h.svc.ActivateOrgContext)
}

// Deactivate handles POST /api/v1/org-contexts/:id/deactivate.
func (h *OrgContextHandler) Deactivate(c *gin.Context) {
	h.setActive(c, h.svc.DeactivateOrgContext)
}

func (h *OrgContextHandler) setActive(c *gin.Context, fn func(ctx context.Context, id uint) (*domain.OrganizationContext, error)) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	oc, err := fn(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, oc)
}
