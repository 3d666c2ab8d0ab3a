package audit

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/rbacadmin/internal/domain"
	"github.com/simp-lee/rbacadmin/internal/pkg"
)

// AuditHandler handles REST API requests for the audit log resource.
// The audit trail is read-only over HTTP; entries are recorded internally
// by the mutating services.
type AuditHandler struct {
	svc domain.AuditService
}

// NewAuditHandler creates a new AuditHandler with the given service.
func NewAuditHandler(svc domain.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// List handles GET /api/v1/audit-logs.
//
// Supported query parameters beyond the shared page/page_size/sort/q set:
// actor_id, action, resource_type, resource_id (exact match) and from/to
// (inclusive created_at range, RFC3339 or YYYY-MM-DD).
func (h *AuditHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListLogs(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}
