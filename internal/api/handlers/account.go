package handlers

import (
	"net/http"

	"github.com/degiro-dashboard/backend/internal/api/response"
	"github.com/degiro-dashboard/backend/internal/service"
)

// AccountHandler handles HTTP requests for account metadata.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler with the provided service dependency.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// GetClientProfile handles GET requests to resolve the account behind a
// session. The intAccount in the response is what every data fetch needs.
//
// Endpoint: GET /api/client?sessionId=...
// Response: 200 OK with ClientProfile
// Error: 400 Bad Request if sessionId is missing
// Error: 401 Unauthorized if the session is expired or invalid
// Error: 502 Bad Gateway if DeGiro is unreachable
func (h *AccountHandler) GetClientProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		response.RespondError(w, http.StatusBadRequest, "missing required query parameter: sessionId", nil)
		return
	}

	profile, err := h.accountService.GetClientProfile(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, "failed to retrieve client profile", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, profile)
}
