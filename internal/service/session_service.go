// Package service applies dashboard policy on top of the raw DeGiro client:
// input validation before any network call, the dividend soft-fail rule, and
// transaction date-range defaulting.
package service

import (
	"context"
	"fmt"

	"github.com/degiro-dashboard/backend/internal/apperrors"
	"github.com/degiro-dashboard/backend/internal/degiro"
)

// SessionService owns the authentication handshake. It holds no session
// state; callers carry the returned session id across subsequent calls.
type SessionService struct {
	client degiro.Client
}

// NewSessionService creates a new SessionService backed by the given client.
func NewSessionService(client degiro.Client) *SessionService {
	return &SessionService{client: client}
}

// Login authenticates against DeGiro. Empty credentials are rejected before
// any network call.
func (s *SessionService) Login(ctx context.Context, username, password string) (degiro.LoginResult, error) {
	if username == "" || password == "" {
		return degiro.LoginResult{}, fmt.Errorf("%w: username and password are required", apperrors.ErrInvalidInput)
	}
	return s.client.Login(ctx, username, password)
}

// VerifyTOTP completes a login that required a one-time password. On success
// it yields a usable session exactly like Login.
func (s *SessionService) VerifyTOTP(ctx context.Context, username, password, oneTimePassword string) (degiro.LoginResult, error) {
	if username == "" || password == "" {
		return degiro.LoginResult{}, fmt.Errorf("%w: username and password are required", apperrors.ErrInvalidInput)
	}
	if oneTimePassword == "" {
		return degiro.LoginResult{}, fmt.Errorf("%w: oneTimePassword is required", apperrors.ErrInvalidInput)
	}
	return s.client.VerifyTOTP(ctx, username, password, oneTimePassword)
}
