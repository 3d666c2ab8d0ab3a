package permission

// CreatePermissionRequest represents the input for creating a new permission.
type CreatePermissionRequest struct {
	Code         string `json:"code" form:"code" binding:"required,min=2,max=100"`
	Name         string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Description  string `json:"description" form:"description" binding:"omitempty,max=500"`
	ResourceType string `json:"resource_type" form:"resource_type" binding:"omitempty,max=100"`
	Action       string `json:"action" form:"action" binding:"omitempty,max=100"`
}

// UpdatePermissionRequest represents the input for updating a permission.
// The code is immutable and therefore absent.
type UpdatePermissionRequest struct {
	Name         string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Description  string `json:"description" form:"description" binding:"omitempty,max=500"`
	ResourceType string `json:"resource_type" form:"resource_type" binding:"omitempty,max=100"`
	Action       string `json:"action" form:"action" binding:"omitempty,max=100"`
}
