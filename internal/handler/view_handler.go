package handler

import (
	"encoding/json"
	"net/http"

	"freshmart/internal/session"
	"freshmart/internal/view"

	"github.com/rs/zerolog"
)

// ViewHandler handles page-navigation HTTP requests.
type ViewHandler struct {
	session *session.Session
	logger  zerolog.Logger
}

// NewViewHandler creates a new view handler.
func NewViewHandler(s *session.Session, logger zerolog.Logger) *ViewHandler {
	return &ViewHandler{
		session: s,
		logger:  logger.With().Str("handler", "view").Logger(),
	}
}

type viewResponse struct {
	Page view.Page `json:"page"`
}

type navigateRequest struct {
	Page view.Page `json:"page"`
}

// Get handles GET /api/view requests.
func (h *ViewHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, viewResponse{Page: h.session.CurrentPage()})
}

// Navigate handles POST /api/view/navigate requests.
func (h *ViewHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.session.Navigate(req.Page); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, viewResponse{Page: h.session.CurrentPage()})
}

// Back handles POST /api/view/back requests.
func (h *ViewHandler) Back(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, viewResponse{Page: h.session.Back()})
}
