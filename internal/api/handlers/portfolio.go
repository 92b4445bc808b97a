package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/degiro-dashboard/backend/internal/api/request"
	"github.com/degiro-dashboard/backend/internal/api/response"
	"github.com/degiro-dashboard/backend/internal/service"
	"github.com/degiro-dashboard/backend/internal/validation"
)

// PortfolioHandler handles HTTP requests for holdings and product metadata.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// GetPortfolio handles GET requests for the current holdings snapshot.
// The broker payload is passed through verbatim; the frontend owns its shape.
//
// Endpoint: GET /api/portfolio?sessionId=...&intAccount=...
// Response: 200 OK with the raw portfolio snapshot
// Error: 400 Bad Request if a query parameter is missing or malformed
// Error: 401 Unauthorized if the session is expired or invalid
// Error: 502 Bad Gateway if DeGiro is unreachable
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	sessionID, intAccount, err := sessionParams(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	snapshot, err := h.portfolioService.GetPortfolio(r.Context(), sessionID, intAccount)
	if err != nil {
		respondServiceError(w, "failed to retrieve portfolio", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, json.RawMessage(snapshot))
}

// GetProducts handles POST requests to resolve product metadata by id. The id
// list rides in the body because portfolios can hold hundreds of positions,
// more than a query string comfortably carries.
//
// Endpoint: POST /api/products
// Request Body: ProductsRequest (sessionId, intAccount, productIds)
// Response: 200 OK with a map of product id to metadata
// Error: 400 Bad Request if validation fails or the body is malformed
// Error: 401 Unauthorized if the session is expired or invalid
// Error: 502 Bad Gateway if any product batch fails
func (h *PortfolioHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ProductsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateProducts(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	products, err := h.portfolioService.GetProducts(r.Context(), req.SessionID, req.IntAccount, req.ProductIDs)
	if err != nil {
		respondServiceError(w, "failed to retrieve products", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, products)
}
