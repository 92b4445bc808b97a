// Package validation provides request validation helpers for the API layer.
package validation

import (
	"fmt"
	"time"
)

// Common validation errors
var (
	ErrMissingField = fmt.Errorf("missing required field")
	ErrInvalidDate  = fmt.Errorf("invalid date, expected DD/MM/YYYY")
	ErrEmptySlice   = fmt.Errorf("slice cannot be empty")
)

// ValidateDate checks that a string is a zero-padded DD/MM/YYYY date.
func ValidateDate(value string) error {
	if _, err := time.Parse("02/01/2006", value); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, value)
	}
	return nil
}
