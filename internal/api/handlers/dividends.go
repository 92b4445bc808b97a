package handlers

import (
	"net/http"

	"github.com/degiro-dashboard/backend/internal/api/response"
	"github.com/degiro-dashboard/backend/internal/service"
)

// DividendHandler handles HTTP requests for dividend history.
type DividendHandler struct {
	dividendService *service.DividendService
}

// NewDividendHandler creates a new DividendHandler with the provided service dependency.
func NewDividendHandler(dividendService *service.DividendService) *DividendHandler {
	return &DividendHandler{
		dividendService: dividendService,
	}
}

// GetDividends handles GET requests for dividend and corporate-action history.
// When the broker's dividend endpoint is in its maintenance window, this still
// returns 200 with an empty data array and a warning, so a portfolio sync is
// never blocked by supplementary data.
//
// Endpoint: GET /api/dividends?sessionId=...&intAccount=...
// Response: 200 OK with {data: [...]} or {data: [], warning: "..."}
// Error: 400 Bad Request if a query parameter is missing or malformed
// Error: 401 Unauthorized if the session is expired or invalid
// Error: 502 Bad Gateway if DeGiro fails outside the maintenance case
func (h *DividendHandler) GetDividends(w http.ResponseWriter, r *http.Request) {
	sessionID, intAccount, err := sessionParams(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.dividendService.GetDividends(r.Context(), sessionID, intAccount)
	if err != nil {
		respondServiceError(w, "failed to retrieve dividends", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
