package handlers

import (
	"net/http"

	"github.com/degiro-dashboard/backend/internal/api/request"
	"github.com/degiro-dashboard/backend/internal/api/response"
	"github.com/degiro-dashboard/backend/internal/degiro"
	"github.com/degiro-dashboard/backend/internal/service"
	"github.com/degiro-dashboard/backend/internal/validation"
)

// TOTP challenge marker returned to the frontend. The client resends the same
// credentials with oneTimePassword filled in.
const statusTOTPRequired = "TOTP_REQUIRED"

// AuthHandler handles HTTP requests for the login endpoint.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the sessionService.
type AuthHandler struct {
	sessionService *service.SessionService
}

// NewAuthHandler creates a new AuthHandler with the provided service dependency.
func NewAuthHandler(sessionService *service.SessionService) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
	}
}

// Login handles POST requests to authenticate against DeGiro. One endpoint
// covers both steps of the handshake: a body without oneTimePassword starts a
// login, a body with it completes a TOTP challenge.
//
// Endpoint: POST /api/login
// Request Body: LoginRequest (username, password, and optionally oneTimePassword)
// Response: 200 OK with {sessionId, status: "SUCCESS"} on success
// Response: 200 OK with {status: "TOTP_REQUIRED"} when a one-time password is needed
// Error: 400 Bad Request if the body is missing or malformed
// Error: 401 Unauthorized if DeGiro rejects the credentials or the code
// Error: 502 Bad Gateway if DeGiro is unreachable
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateLogin(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	var result degiro.LoginResult
	if req.OneTimePassword != "" {
		result, err = h.sessionService.VerifyTOTP(r.Context(), req.Username, req.Password, req.OneTimePassword)
	} else {
		result, err = h.sessionService.Login(r.Context(), req.Username, req.Password)
	}
	if err != nil {
		respondServiceError(w, "login failed", err)
		return
	}

	switch result.Outcome {
	case degiro.OutcomeSuccess:
		response.RespondJSON(w, http.StatusOK, map[string]string{
			"sessionId": result.SessionID,
			"status":    degiro.StatusSuccess,
		})
	case degiro.OutcomeTOTPRequired:
		response.RespondJSON(w, http.StatusOK, map[string]string{
			"status": statusTOTPRequired,
		})
	default:
		message := "Invalid username or password"
		if result.Status != degiro.StatusAuthFailed && result.StatusText != "" {
			message = result.StatusText
		}
		response.RespondError(w, http.StatusUnauthorized, message, nil)
	}
}
