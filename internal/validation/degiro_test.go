package validation

import (
	"errors"
	"testing"

	"github.com/degiro-dashboard/backend/internal/api/request"
)

func TestValidateLogin(t *testing.T) {
	t.Run("accepts a complete credential pair", func(t *testing.T) {
		req := request.LoginRequest{Username: "alice", Password: "s3cret"}
		if err := ValidateLogin(req); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("rejects a missing username", func(t *testing.T) {
		req := request.LoginRequest{Password: "s3cret"}
		if err := ValidateLogin(req); !errors.Is(err, ErrMissingField) {
			t.Errorf("Expected missing-field error, got %v", err)
		}
	})

	t.Run("rejects a missing password", func(t *testing.T) {
		req := request.LoginRequest{Username: "alice"}
		if err := ValidateLogin(req); !errors.Is(err, ErrMissingField) {
			t.Errorf("Expected missing-field error, got %v", err)
		}
	})
}

func TestValidateProducts(t *testing.T) {
	valid := request.ProductsRequest{
		SessionID:  "sid",
		IntAccount: 123,
		ProductIDs: []string{"331868"},
	}

	t.Run("accepts a complete request", func(t *testing.T) {
		if err := ValidateProducts(valid); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("rejects a missing session id", func(t *testing.T) {
		req := valid
		req.SessionID = ""
		if err := ValidateProducts(req); !errors.Is(err, ErrMissingField) {
			t.Errorf("Expected missing-field error, got %v", err)
		}
	})

	t.Run("rejects a non-positive intAccount", func(t *testing.T) {
		req := valid
		req.IntAccount = 0
		if err := ValidateProducts(req); err == nil {
			t.Error("Expected error for intAccount 0")
		}
	})

	t.Run("rejects an empty id list", func(t *testing.T) {
		req := valid
		req.ProductIDs = nil
		if err := ValidateProducts(req); !errors.Is(err, ErrEmptySlice) {
			t.Errorf("Expected empty-slice error, got %v", err)
		}
	})
}

func TestValidateDateRange(t *testing.T) {
	t.Run("accepts an empty range", func(t *testing.T) {
		if err := ValidateDateRange("", ""); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("accepts zero-padded DD/MM/YYYY dates", func(t *testing.T) {
		if err := ValidateDateRange("03/02/2023", "15/06/2024"); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("rejects ISO dates", func(t *testing.T) {
		if err := ValidateDateRange("2024-06-15", ""); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Expected invalid-date error, got %v", err)
		}
	})

	t.Run("rejects a malformed toDate", func(t *testing.T) {
		if err := ValidateDateRange("", "31/13/2024"); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Expected invalid-date error, got %v", err)
		}
	})
}
