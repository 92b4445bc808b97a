package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/degiro-dashboard/backend/internal/apperrors"
	"github.com/degiro-dashboard/backend/internal/degiro"
)

// DividendResult carries dividend records plus an optional warning. Warning is
// set when the broker's dividend endpoint was in its maintenance window and
// the data was skipped; dividend data is supplementary and must never block a
// portfolio sync.
type DividendResult struct {
	Data    []json.RawMessage `json:"data"`
	Warning string            `json:"warning,omitempty"`
}

// DividendService fetches dividend history with the maintenance soft-fail
// policy applied.
type DividendService struct {
	client degiro.Client
}

// NewDividendService creates a new DividendService backed by the given client.
func NewDividendService(client degiro.Client) *DividendService {
	return &DividendService{client: client}
}

// GetDividends returns the dividend history for an account. A maintenance
// window resolves to an empty result with a warning, not an error; session
// expiry and genuine upstream failures still propagate.
func (s *DividendService) GetDividends(ctx context.Context, sessionID string, intAccount int) (DividendResult, error) {
	if err := requireSession(sessionID, intAccount); err != nil {
		return DividendResult{}, err
	}

	records, err := s.client.GetDividends(ctx, sessionID, intAccount)
	if err != nil {
		if errors.Is(err, apperrors.ErrDividendsUnavailable) {
			return DividendResult{
				Data:    []json.RawMessage{},
				Warning: "dividend data temporarily unavailable: " + err.Error(),
			}, nil
		}
		return DividendResult{}, err
	}

	if records == nil {
		records = []json.RawMessage{}
	}
	return DividendResult{Data: records}, nil
}
