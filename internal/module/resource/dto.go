package resource

// CreateResourceRequest represents the input for creating a new resource.
type CreateResourceRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Type        string `json:"type" form:"type" binding:"required,min=2,max=100"`
	Description string `json:"description" form:"description" binding:"omitempty,max=500"`
}

// UpdateResourceRequest represents the input for updating a resource.
type UpdateResourceRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Type        string `json:"type" form:"type" binding:"required,min=2,max=100"`
	Description string `json:"description" form:"description" binding:"omitempty,max=500"`
}
