package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/degiro-dashboard/backend/internal/api/response"
	"github.com/degiro-dashboard/backend/internal/service"
	"github.com/degiro-dashboard/backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction history.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// GetTransactions handles GET requests for transaction history. Dates use the
// DD/MM/YYYY format DeGiro expects; a missing side of the range defaults to
// one year before today, or today.
//
// Endpoint: GET /api/transactions?sessionId=...&intAccount=...[&fromDate=...&toDate=...]
// Response: 200 OK with {data: [...]}
// Error: 400 Bad Request if a parameter is missing or a date is malformed
// Error: 401 Unauthorized if the session is expired or invalid
// Error: 502 Bad Gateway if DeGiro is unreachable
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	sessionID, intAccount, err := sessionParams(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	fromDate := r.URL.Query().Get("fromDate")
	toDate := r.URL.Query().Get("toDate")
	if err := validation.ValidateDateRange(fromDate, toDate); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transactions, err := h.transactionService.GetTransactions(r.Context(), sessionID, intAccount, fromDate, toDate)
	if err != nil {
		respondServiceError(w, "failed to retrieve transactions", err)
		return
	}

	if transactions == nil {
		transactions = []json.RawMessage{}
	}
	response.RespondJSON(w, http.StatusOK, map[string][]json.RawMessage{"data": transactions})
}
