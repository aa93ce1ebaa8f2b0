package handler

import (
	"encoding/json"
	"net/http"

	"freshmart/internal/model"
	"freshmart/internal/session"

	"github.com/rs/zerolog"
)

// AddressHandler handles saved-address HTTP requests.
type AddressHandler struct {
	session *session.Session
	logger  zerolog.Logger
}

// NewAddressHandler creates a new address handler.
func NewAddressHandler(s *session.Session, logger zerolog.Logger) *AddressHandler {
	return &AddressHandler{
		session: s,
		logger:  logger.With().Str("handler", "address").Logger(),
	}
}

// List handles GET /api/addresses requests.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	addresses, err := h.session.Addresses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve addresses", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, addresses)
}

// Create handles POST /api/addresses requests.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var addr model.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	saved, err := h.session.SaveAddress(r.Context(), addr)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}
