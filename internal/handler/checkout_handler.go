package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"freshmart/internal/model"
	"freshmart/internal/session"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles order confirmation and order lookup requests.
type CheckoutHandler struct {
	session *session.Session
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(s *session.Session, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		session: s,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// Confirm handles POST /api/checkout/confirm requests.
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.ConfirmOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	summary, err := h.session.ConfirmOrder(r.Context(), req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, summary)
}

// GetByNumber handles GET /api/orders/{orderNumber} requests. The leading
// `#` of a display number may be omitted or URL-encoded by the client.
func (h *CheckoutHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	number := pathSuffix(r.URL.Path, "/api/orders/")
	if number == "" {
		writeError(w, http.StatusBadRequest, "order number is required", h.logger)
		return
	}
	if !strings.HasPrefix(number, "#") {
		number = "#" + number
	}

	order := h.session.TrackOrder(number)
	if order == nil {
		writeDomainError(w, model.ErrOrderNotFound, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
