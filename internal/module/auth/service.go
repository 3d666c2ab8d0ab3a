package auth

import (
	"context"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/simp-lee/jwt"

	"github.com/simp-lee/rbacadmin/internal/domain"
)

// Service defines the authentication operations.
type Service interface {
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID uint, current, next string) error
}

// authService implements Service.
type authService struct {
	jwtSvc      jwt.Service
	userRepo    domain.UserRepository
	audit       domain.AuditRecorder
	tokenExpiry time.Duration
}

// NewService creates a new auth Service.
func NewService(jwtSvc jwt.Service, userRepo domain.UserRepository, audit domain.AuditRecorder, tokenExpiry time.Duration) Service {
	return &authService{
		jwtSvc:      jwtSvc,
		userRepo:    userRepo,
		audit:       audit,
		tokenExpiry: tokenExpiry,
	}
}

// Login authenticates a user by email and password and returns a JWT token.
// Inactive accounts are rejected.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Don't reveal whether the user exists — always return unauthorized.
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !user.IsActive {
		return nil, domain.NewAppError(domain.CodeForbidden, "account is deactivated", nil)
	}

	token, err := s.jwtSvc.GenerateToken(
		strconv.FormatUint(uint64(user.ID), 10),
		nil, // roles travel through the database, not the token
		s.tokenExpiry,
	)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to generate token", err)
	}

	parsedToken, parseErr := s.jwtSvc.ParseToken(token)
	if parseErr != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to parse generated token", parseErr)
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      user.ID,
		Action:       "auth.login",
		ResourceType: "user",
		ResourceID:   user.ID,
		Details:      user.Email,
	})

	return &TokenResponse{
		Token:     token,
		ExpiresAt: parsedToken.ExpiresAt.Unix(),
	}, nil
}

// validateRegisterInput validates registration input. name and email are expected
// to be pre-trimmed by callers; TrimSpace here ensures the validator is self-contained.
func validateRegisterInput(name, email, password string) error {
	nameLen := utf8.RuneCountInString(strings.TrimSpace(name))
	if nameLen == 0 {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if nameLen > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must not exceed 100 characters", nil)
	}
	trimmedEmail := strings.TrimSpace(email)
	if len(trimmedEmail) == 0 {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	addr, err := mail.ParseAddress(trimmedEmail)
	if err != nil || addr.Name != "" || addr.Address != trimmedEmail {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	return validatePassword(password)
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return domain.NewAppError(domain.CodeValidation, "password must be at least 8 characters", nil)
	}
	if len(password) > 72 {
		return domain.NewAppError(domain.CodeValidation, "password must not exceed 72 characters", nil)
	}
	return nil
}

// Register creates a new user with the given credentials.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateRegisterInput(name, email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	user := domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      user.ID,
		Action:       "auth.register",
		ResourceType: "user",
		ResourceID:   user.ID,
		Details:      user.Email,
	})

	return &user, nil
}

// ChangePassword replaces the user's password after verifying the current one.
// All of the user's tokens are revoked so stolen tokens die with the old password.
func (s *authService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	if err := validatePassword(next); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return domain.NewAppError(domain.CodeValidation, "current password is incorrect", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	user.PasswordHash = string(hash)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.jwtSvc.RevokeAllUserTokens(strconv.FormatUint(uint64(userID), 10)); err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to revoke tokens", err)
	}

	s.audit.Record(ctx, domain.AuditEntry{
		ActorID:      userID,
		Action:       "auth.change_password",
		ResourceType: "user",
		ResourceID:   userID,
		Details:      user.Email,
	})

	return nil
}
