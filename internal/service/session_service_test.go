package service

import (
	"context"
	"errors"
	"testing"

	"github.com/degiro-dashboard/backend/internal/apperrors"
	"github.com/degiro-dashboard/backend/internal/degiro"
	"github.com/degiro-dashboard/backend/internal/testutil"
)

func TestSessionService_Login(t *testing.T) {
	t.Run("rejects empty credentials before any network call", func(t *testing.T) {
		mock := testutil.NewMockDegiroClient()
		svc := NewSessionService(mock)

		_, err := svc.Login(context.Background(), "", "hunter2")
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("Expected invalid-input error, got %v", err)
		}
		if mock.Calls != 0 {
			t.Errorf("Expected no client calls, got %d", mock.Calls)
		}

		_, err = svc.Login(context.Background(), "alice", "")
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("Expected invalid-input error, got %v", err)
		}
	})

	t.Run("passes a successful login through", func(t *testing.T) {
		mock := testutil.NewMockDegiroClient()
		svc := NewSessionService(mock)

		result, err := svc.Login(context.Background(), "alice", "hunter2")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result.Outcome != degiro.OutcomeSuccess || result.SessionID == "" {
			t.Errorf("Expected success with a session, got %+v", result)
		}
	})

	t.Run("passes a rejection through untouched", func(t *testing.T) {
		mock := testutil.NewMockDegiroClient().WithLoginResult(degiro.LoginResult{
			Outcome:    degiro.OutcomeRejected,
			Status:     degiro.StatusAuthFailed,
			StatusText: "badCredentials",
		})
		svc := NewSessionService(mock)

		result, err := svc.Login(context.Background(), "alice", "wrong-password")
		if err != nil {
			t.Fatalf("Expected a rejection result, not an error: %v", err)
		}
		if result.Status != degiro.StatusAuthFailed {
			t.Errorf("Expected AUTH_FAILED status, got %q", result.Status)
		}
	})
}

func TestSessionService_VerifyTOTP(t *testing.T) {
	t.Run("rejects a missing one-time password locally", func(t *testing.T) {
		mock := testutil.NewMockDegiroClient()
		svc := NewSessionService(mock)

		_, err := svc.VerifyTOTP(context.Background(), "alice", "hunter2", "")
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("Expected invalid-input error, got %v", err)
		}
		if mock.Calls != 0 {
			t.Errorf("Expected no client calls, got %d", mock.Calls)
		}
	})

	t.Run("yields a usable session on success", func(t *testing.T) {
		mock := testutil.NewMockDegiroClient()
		svc := NewSessionService(mock)

		result, err := svc.VerifyTOTP(context.Background(), "alice", "hunter2", "123456")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result.Outcome != degiro.OutcomeSuccess || result.SessionID == "" {
			t.Errorf("Expected success with a session, got %+v", result)
		}
	})
}
