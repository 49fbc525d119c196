// Package service implements the application's use cases on top of the
// repository layer.
package service

import (
	"context"

	"spacedout/internal/middleware"
	"spacedout/internal/models"
	"spacedout/internal/repository"
	"spacedout/internal/validation"
)

// AuthService handles registration, login, and token verification.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new account with an established session. Duplicate
// emails are rejected with a conflict error.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("User already exists")
	}

	user, err := models.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and rotates the session. Wrong email and wrong
// password produce the same error so the response does not leak which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.VerifyPassword(password) {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}

	if err := user.RenewSession(); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

// RenewWithUpdateToken issues a fresh session from a valid update token. This
// is the recovery path when the session token has expired.
func (s *AuthService) RenewWithUpdateToken(ctx context.Context, updateToken string) (*models.User, error) {
	user, err := s.userRepo.GetByUpdateToken(ctx, updateToken)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.VerifyUpdateToken(updateToken) {
		return nil, models.NewUnauthorizedError("Invalid update token")
	}

	if err := user.RenewSession(); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifySession resolves a session token to its user, rejecting unknown and
// expired tokens.
func (s *AuthService) VerifySession(ctx context.Context, sessionToken string) (*models.User, error) {
	user, err := s.userRepo.GetBySessionToken(ctx, sessionToken)
	if err != nil {
		middleware.SessionVerifications.WithLabelValues("error").Inc()
		return nil, err
	}
	if user == nil {
		middleware.SessionVerifications.WithLabelValues("unknown").Inc()
		return nil, models.NewUnauthorizedError("Invalid session token")
	}
	if !user.VerifySessionToken(sessionToken) {
		middleware.SessionVerifications.WithLabelValues("expired").Inc()
		return nil, models.NewUnauthorizedError("Session expired")
	}

	middleware.SessionVerifications.WithLabelValues("ok").Inc()
	return user, nil
}
