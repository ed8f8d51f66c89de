package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/starford/doctrail/internal/apperr"
	"github.com/starford/doctrail/internal/models"
	"github.com/starford/doctrail/internal/store"
)

// Service handles accounts and the administrator enrollment gate.
type Service struct {
	store  store.RecordStore
	tokens *TokenManager
}

// NewService creates a new auth service.
func NewService(st store.RecordStore, tokens *TokenManager) *Service {
	return &Service{store: st, tokens: tokens}
}

// SignUp creates the single administrator account and returns it with a
// session token. The admin singleton is claimed by a conditional store write,
// so of two concurrent sign-ups exactly one succeeds; the loser gets
// apperr.ErrDenied regardless of any pre-check.
func (s *Service) SignUp(_ context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", apperr.ErrValidation)
	}

	// UX short-circuit only; the authoritative check is the conditional
	// insert below.
	exists, err := s.store.AdminExists()
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", fmt.Errorf("%w: sign-up is disabled, only one administrator account is allowed", apperr.ErrDenied)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("cannot hash password: %w", err)
	}

	user, err := s.store.CreateUser(email, string(hash))
	if err != nil {
		return nil, "", err
	}

	if err := s.store.RegisterAdmin(user.ID); err != nil {
		// Lost the enrollment race; roll back the account row.
		_ = s.store.DeleteUser(user.ID)
		if errors.Is(err, apperr.ErrDenied) {
			return nil, "", fmt.Errorf("%w: administrator registration already taken", apperr.ErrDenied)
		}
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials and returns the account with a session token.
// A wrong email and a wrong password are indistinguishable to the caller.
func (s *Service) Login(_ context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", apperr.ErrValidation)
	}

	user, err := s.store.GetUserByEmail(email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperr.ErrDenied)
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperr.ErrDenied)
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// AdminExists reports whether the administrator singleton has been created.
func (s *Service) AdminExists(_ context.Context) (bool, error) {
	return s.store.AdminExists()
}

// Verify validates a session token and returns its claims.
func (s *Service) Verify(token string) (*UserClaims, error) {
	return s.tokens.Verify(token)
}
