package service

import (
	"context"
	"fmt"

	"github.com/degiro-dashboard/backend/internal/apperrors"
	"github.com/degiro-dashboard/backend/internal/degiro"
)

// AccountService resolves account metadata for a session. The profile is not
// cached here; callers may cache it for the lifetime of their session.
type AccountService struct {
	client degiro.Client
}

// NewAccountService creates a new AccountService backed by the given client.
func NewAccountService(client degiro.Client) *AccountService {
	return &AccountService{client: client}
}

// GetClientProfile fetches the client profile tied to a session. A rejected
// session surfaces as apperrors.ErrSessionExpired, the same way it does on
// every data fetch.
func (s *AccountService) GetClientProfile(ctx context.Context, sessionID string) (degiro.ClientProfile, error) {
	if sessionID == "" {
		return degiro.ClientProfile{}, fmt.Errorf("%w: sessionId is required", apperrors.ErrInvalidInput)
	}
	return s.client.GetClientProfile(ctx, sessionID)
}
