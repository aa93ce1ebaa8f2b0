package handler

import (
	"encoding/json"
	"net/http"

	"freshmart/internal/model"
	"freshmart/internal/session"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	session *session.Session
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(s *session.Session, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		session: s,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.session.Cart())
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.session.AddItem(r.Context(), req.ProductID, req.Quantity); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.session.Cart())
}

// UpdateItem handles PUT /api/cart/items/{id} requests. A quantity of zero
// or less removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := pathSuffix(r.URL.Path, "/api/cart/items/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var req model.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	h.session.UpdateQuantity(productID, req.Quantity)
	writeJSON(w, http.StatusOK, h.session.Cart())
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := pathSuffix(r.URL.Path, "/api/cart/items/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	h.session.RemoveItem(productID)
	writeJSON(w, http.StatusOK, h.session.Cart())
}
