// Package handlers contains the HTTP layer adapters. Each handler parses a
// request, delegates to a service, and maps the shared error taxonomy onto
// HTTP statuses. Upstream error messages are preserved in the details field,
// never swallowed.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/degiro-dashboard/backend/internal/api/response"
	"github.com/degiro-dashboard/backend/internal/apperrors"
)

// parseJSON decodes a JSON request body into the given type.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}

// sessionParams extracts the sessionId/intAccount query pair shared by every
// data-fetch endpoint.
func sessionParams(r *http.Request) (string, int, error) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		return "", 0, errors.New("missing required query parameter: sessionId")
	}

	raw := r.URL.Query().Get("intAccount")
	if raw == "" {
		return "", 0, errors.New("missing required query parameter: intAccount")
	}
	intAccount, err := strconv.Atoi(raw)
	if err != nil || intAccount <= 0 {
		return "", 0, fmt.Errorf("invalid intAccount: %q", raw)
	}

	return sessionID, intAccount, nil
}

// respondServiceError maps service errors onto HTTP statuses: invalid input
// is the caller's fault (400), an expired session requires a fresh login
// (401), and anything else is an upstream failure (502) with the raw message
// in details.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		response.RespondError(w, http.StatusBadRequest, message, err.Error())
	case errors.Is(err, apperrors.ErrSessionExpired):
		response.RespondError(w, http.StatusUnauthorized, "session expired or invalid", err.Error())
	default:
		response.RespondError(w, http.StatusBadGateway, message, err.Error())
	}
}
