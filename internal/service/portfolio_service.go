package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/degiro-dashboard/backend/internal/apperrors"
	"github.com/degiro-dashboard/backend/internal/degiro"
)

// PortfolioService fetches holdings snapshots and product metadata.
type PortfolioService struct {
	client degiro.Client
}

// NewPortfolioService creates a new PortfolioService backed by the given client.
func NewPortfolioService(client degiro.Client) *PortfolioService {
	return &PortfolioService{client: client}
}

// GetPortfolio returns the current holdings snapshot, passed through verbatim.
func (s *PortfolioService) GetPortfolio(ctx context.Context, sessionID string, intAccount int) (json.RawMessage, error) {
	if err := requireSession(sessionID, intAccount); err != nil {
		return nil, err
	}
	return s.client.GetPortfolio(ctx, sessionID, intAccount)
}

// GetProducts returns metadata for the given product ids. The id list must be
// non-empty; the client batches large lists transparently.
func (s *PortfolioService) GetProducts(ctx context.Context, sessionID string, intAccount int, productIDs []string) (degiro.ProductMap, error) {
	if err := requireSession(sessionID, intAccount); err != nil {
		return nil, err
	}
	if len(productIDs) == 0 {
		return nil, fmt.Errorf("%w: productIds cannot be empty", apperrors.ErrInvalidInput)
	}
	return s.client.GetProducts(ctx, sessionID, intAccount, productIDs)
}

// requireSession validates the (sessionId, intAccount) pair every data fetch
// needs.
func requireSession(sessionID string, intAccount int) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionId is required", apperrors.ErrInvalidInput)
	}
	if intAccount <= 0 {
		return fmt.Errorf("%w: intAccount is required", apperrors.ErrInvalidInput)
	}
	return nil
}
