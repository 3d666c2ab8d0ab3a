package orgcontext

// CreateOrgContextRequest represents the input for creating an organization context.
type CreateOrgContextRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Code        string `json:"code" form:"code" binding:"omitempty,max=100"`
	Description string `json:"description" form:"description" binding:"omitempty,max=500"`
	ParentID    *uint  `json:"parent_id" form:"parent_id"`
}

// UpdateOrgContextRequest represents the input for updating an organization context.
type UpdateOrgContextRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Code        string `json:"code" form:"code" binding:"omitempty,max=100"`
	Description string `json:"description" form:"description" binding:"omitempty,max=500"`
	ParentID    *uint  `json:"parent_id" form:"parent_id"`
}
