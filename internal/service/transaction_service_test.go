package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/degiro-dashboard/backend/internal/apperrors"
	"github.com/degiro-dashboard/backend/internal/testutil"
)

func TestDefaultTransactionRange(t *testing.T) {
	t.Run("spans exactly one year ending today", func(t *testing.T) {
		now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

		from, to := defaultTransactionRange(now)
		if from != "15/06/2023" {
			t.Errorf("Expected fromDate 15/06/2023, got %s", from)
		}
		if to != "15/06/2024" {
			t.Errorf("Expected toDate 15/06/2024, got %s", to)
		}
	})

	t.Run("zero-pads day and month", func(t *testing.T) {
		now := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)

		from, to := defaultTransactionRange(now)
		if from != "03/02/2023" || to != "03/02/2024" {
			t.Errorf("Expected zero-padded 03/02/2023..03/02/2024, got %s..%s", from, to)
		}
	})
}

func TestTransactionService_GetTransactions(t *testing.T) {
	t.Run("forwards an explicit range unchanged", func(t *testing.T) {
		mock := testutil.NewMockDegiroClient()
		svc := NewTransactionService(mock)

		_, err := svc.GetTransactions(context.Background(), "sid", 123, "01/01/2020", "31/12/2020")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if mock.LastFromDate != "01/01/2020" || mock.LastToDate != "31/12/2020" {
			t.Errorf("Expected explicit range to pass through, got %s..%s", mock.LastFromDate, mock.LastToDate)
		}
	})

	t.Run("defaults a missing range to the last year at call time", func(t *testing.T) {
		mock := testutil.NewMockDegiroClient()
		svc := NewTransactionService(mock)
		svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

		_, err := svc.GetTransactions(context.Background(), "sid", 123, "", "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if mock.LastFromDate != "15/06/2023" {
			t.Errorf("Expected default fromDate 15/06/2023, got %s", mock.LastFromDate)
		}
		if mock.LastToDate != "15/06/2024" {
			t.Errorf("Expected default toDate 15/06/2024, got %s", mock.LastToDate)
		}
	})

	t.Run("fills only the missing side of the range", func(t *testing.T) {
		mock := testutil.NewMockDegiroClient()
		svc := NewTransactionService(mock)
		svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

		_, err := svc.GetTransactions(context.Background(), "sid", 123, "01/01/2024", "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if mock.LastFromDate != "01/01/2024" {
			t.Errorf("Expected explicit fromDate to survive, got %s", mock.LastFromDate)
		}
		if mock.LastToDate != "15/06/2024" {
			t.Errorf("Expected defaulted toDate 15/06/2024, got %s", mock.LastToDate)
		}
	})

	t.Run("computes the default from the clock, not a memoized value", func(t *testing.T) {
		mock := testutil.NewMockDegiroClient()
		svc := NewTransactionService(mock)

		day := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return day }
		//nolint:errcheck
		svc.GetTransactions(context.Background(), "sid", 123, "", "")
		first := mock.LastToDate

		day = day.AddDate(0, 0, 1)
		//nolint:errcheck
		svc.GetTransactions(context.Background(), "sid", 123, "", "")
		second := mock.LastToDate

		if first == second {
			t.Errorf("Expected the default range to move with the clock, got %s twice", first)
		}
	})

	t.Run("rejects a missing session pair", func(t *testing.T) {
		mock := testutil.NewMockDegiroClient()
		svc := NewTransactionService(mock)

		if _, err := svc.GetTransactions(context.Background(), "", 123, "", ""); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("Expected invalid-input error, got %v", err)
		}
	})
}
