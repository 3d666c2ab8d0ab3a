package userrole

// AssignRequest represents the input for assigning a role to a user.
type AssignRequest struct {
	UserID       uint  `json:"user_id" binding:"required"`
	RoleID       uint  `json:"role_id" binding:"required"`
	OrgContextID *uint `json:"org_context_id"`
}
