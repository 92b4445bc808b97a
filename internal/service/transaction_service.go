package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/degiro-dashboard/backend/internal/degiro"
)

// transactionDateLayout is the zero-padded DD/MM/YYYY format DeGiro expects.
// Dates are free text at this layer and not parsed further.
const transactionDateLayout = "02/01/2006"

// TransactionService fetches transaction history with date-range defaulting.
type TransactionService struct {
	client degiro.Client
	now    func() time.Time
}

// NewTransactionService creates a new TransactionService backed by the given
// client.
func NewTransactionService(client degiro.Client) *TransactionService {
	return &TransactionService{client: client, now: time.Now}
}

// GetTransactions returns the transaction history bounded by the inclusive
// [fromDate, toDate] range. A missing side of the range defaults to
// [one year before today, today], computed from the clock at call time.
func (s *TransactionService) GetTransactions(ctx context.Context, sessionID string, intAccount int, fromDate, toDate string) ([]json.RawMessage, error) {
	if err := requireSession(sessionID, intAccount); err != nil {
		return nil, err
	}

	defaultFrom, defaultTo := defaultTransactionRange(s.now())
	if fromDate == "" {
		fromDate = defaultFrom
	}
	if toDate == "" {
		toDate = defaultTo
	}

	return s.client.GetTransactions(ctx, sessionID, intAccount, fromDate, toDate)
}

// defaultTransactionRange computes the default query window of exactly one
// year ending today.
func defaultTransactionRange(now time.Time) (fromDate, toDate string) {
	return now.AddDate(-1, 0, 0).Format(transactionDateLayout), now.Format(transactionDateLayout)
}
