package validation

import (
	"fmt"

	"github.com/degiro-dashboard/backend/internal/api/request"
)

// ValidateLogin checks the credential fields of a login request. The
// one-time password is optional; when present it selects the TOTP flow.
func ValidateLogin(req request.LoginRequest) error {
	if req.Username == "" {
		return fmt.Errorf("%w: username", ErrMissingField)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password", ErrMissingField)
	}
	return nil
}

// ValidateProducts checks a product lookup request.
func ValidateProducts(req request.ProductsRequest) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId", ErrMissingField)
	}
	if req.IntAccount <= 0 {
		return fmt.Errorf("intAccount must be positive, got %d", req.IntAccount)
	}
	if len(req.ProductIDs) == 0 {
		return fmt.Errorf("%w: productIds", ErrEmptySlice)
	}
	return nil
}

// ValidateDateRange checks an optional transaction date range. Empty sides
// are allowed; they default downstream.
func ValidateDateRange(fromDate, toDate string) error {
	if fromDate != "" {
		if err := ValidateDate(fromDate); err != nil {
			return fmt.Errorf("fromDate: %w", err)
		}
	}
	if toDate != "" {
		if err := ValidateDate(toDate); err != nil {
			return fmt.Errorf("toDate: %w", err)
		}
	}
	return nil
}
