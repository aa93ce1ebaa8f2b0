package handler

import (
	"net/http"
	"strconv"

	"freshmart/internal/catalog"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	catalog catalog.Catalog
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(cat catalog.Catalog, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: cat,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests. A `category` query parameter
// filters by category, `q` runs a text search, otherwise the full catalogue
// is returned with pagination.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query()

	if category := query.Get("category"); category != "" {
		products, err := h.catalog.GetByCategory(r.Context(), category)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, products)
		return
	}

	if q := query.Get("q"); q != "" {
		products, err := h.catalog.Search(r.Context(), q)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to search products", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, products)
		return
	}

	limit := 10 // default
	if limitStr := query.Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	offset := 0 // default
	if offsetStr := query.Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset parameter", h.logger)
			return
		}
	}

	products, err := h.catalog.GetAll(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := pathSuffix(r.URL.Path, "/api/products/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.catalog.GetByID(r.Context(), productID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve product", h.logger)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Categories handles GET /api/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve categories", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// pathSuffix extracts the path segment after the given prefix, without a
// routing library.
func pathSuffix(path, prefix string) string {
	if len(path) <= len(prefix) {
		return ""
	}
	return path[len(prefix):]
}
