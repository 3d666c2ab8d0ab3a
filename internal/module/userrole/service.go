package userrole

import (
	"context"
	"fmt"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// userRoleService implements domain.UserRoleService.
type userRoleService struct {
	repo  domain.UserRoleRepository
	users domain.UserRepository
	roles domain.RoleRepository
	orgs  domain.OrgContextRepository
	audit domain.AuditRecorder
}

// NewUserRoleService creates a new UserRoleService. The user, role, and
// organization context repositories are used to verify referenced entities
// before an assignment is created.
func NewUserRoleService(
	repo domain.UserRoleRepository,
	users domain.UserRepository,
	roles domain.RoleRepository,
	orgs domain.OrgContextRepository,
	audit domain.AuditRecorder,
) domain.UserRoleService {
	return &userRoleService{repo: repo, users: users, roles: roles, orgs: orgs, audit: audit}
}

// Assign grants a role to a user, optionally scoped to an organization
// context. The user, role, and context must all exist.
func (s *userRoleService) Assign(ctx context.Context, userID, roleID uint, orgContextID *uint, assignedBy uint) (*domain.UserRole, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "user does not exist", nil)
		}
		return nil, err
	}
	if _, err := s.roles.GetByID(ctx, roleID); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "role does not exist", nil)
		}
		return nil, err
	}
	if orgContextID != nil {
		if _, err := s.orgs.GetByID(ctx, *orgContextID); err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, "organization context does not exist", nil)
			}
			return nil, err
		}
	}

	ur := &domain.UserRole{
		UserID:       userID,
		RoleID:       roleID,
		OrgContextID: orgContextID,
		AssignedBy:   assignedBy,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, ur); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "user_role.assign",
		ResourceType: "user_role",
		ResourceID:   ur.ID,
		Details:      assignmentDetails(ur),
	})

	return ur, nil
}

// GetAssignment retrieves an assignment by ID.
func (s *userRoleService) GetAssignment(ctx context.Context, id uint) (*domain.UserRole, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAssignments returns a paginated list of assignments.
func (s *userRoleService) ListAssignments(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.UserRole], error) {
	return s.repo.List(ctx, req)
}

// Revoke permanently removes an assignment.
func (s *userRoleService) Revoke(ctx context.Context, id uint) error {
	ur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       "user_role.revoke",
		ResourceType: "user_role",
		ResourceID:   id,
		Details:      assignmentDetails(ur),
	})

	return nil
}

// ActivateAssignment resumes a suspended assignment.
func (s *userRoleService) ActivateAssignment(ctx context.Context, id uint) (*domain.UserRole, error) {
	return s.setActive(ctx, id, true, "user_role.activate")
}

// DeactivateAssignment suspends an assignment without deleting it.
func (s *userRoleService) DeactivateAssignment(ctx context.Context, id uint) (*domain.UserRole, error) {
	return s.setActive(ctx, id, false, "user_role.deactivate")
}

func (s *userRoleService) setActive(ctx context.Context, id uint, active bool, action string) (*domain.UserRole, error) {
	ur, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      domain.ActorFromContext(ctx),
		Action:       action,
		ResourceType: "user_role",
		ResourceID:   id,
		Details:      assignmentDetails(ur),
	})

	return ur, nil
}

func assignmentDetails(ur *domain.UserRole) string {
	if ur.OrgContextID != nil {
		return fmt.Sprintf("user=%d role=%d ctx=%d", ur.UserID, ur.RoleID, *ur.OrgContextID)
	}
	return fmt.Sprintf("user=%d role=%d", ur.UserID, ur.RoleID)
}
