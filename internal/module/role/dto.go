package role

// CreateRoleRequest represents the input for creating a new role.
type CreateRoleRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" form:"description" binding:"omitempty,min=3,max=500"`
}

// UpdateRoleRequest represents the input for updating an existing role.
type UpdateRoleRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" form:"description" binding:"omitempty,min=3,max=500"`
}

// SetPermissionsRequest represents the input for replacing a role's permission set.
type SetPermissionsRequest struct {
	PermissionIDs []uint `json:"permission_ids" binding:"required"`
}
