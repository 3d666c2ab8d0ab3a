package user

// CreateUserRequest represents the input for creating a new user.
type CreateUserRequest struct {
	Name  string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" form:"email" binding:"required,email,max=255"`
}

// UpdateUserRequest represents the input for updating a user.
type UpdateUserRequest struct {
	Name  string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" form:"email" binding:"required,email,max=255"`
}

// SetPermissionsRequest represents the input for replacing a user's direct
// permission set. An empty list clears all direct grants.
type SetPermissionsRequest struct {
	PermissionIDs []uint `json:"permission_ids" binding:"required"`
}
