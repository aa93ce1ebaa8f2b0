package handler

import (
	"net/http"

	"freshmart/internal/session"

	"github.com/rs/zerolog"
)

// WishlistHandler handles wishlist HTTP requests.
type WishlistHandler struct {
	session *session.Session
	logger  zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(s *session.Session, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		session: s,
		logger:  logger.With().Str("handler", "wishlist").Logger(),
	}
}

// List handles GET /api/wishlist requests.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.session.Wishlist())
}

// Add handles POST /api/wishlist/{productId} requests. Adding a product
// already on the list is a no-op.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := pathSuffix(r.URL.Path, "/api/wishlist/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	if err := h.session.AddToWishlist(r.Context(), productID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.session.Wishlist())
}

// Remove handles DELETE /api/wishlist/{productId} requests.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := pathSuffix(r.URL.Path, "/api/wishlist/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	h.session.RemoveFromWishlist(productID)
	writeJSON(w, http.StatusOK, h.session.Wishlist())
}
