package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freshmart/internal/addressbook"
	"freshmart/internal/catalog"
	"freshmart/internal/checkout"
	"freshmart/internal/kv"
	"freshmart/internal/model"
	"freshmart/internal/notify"
	"freshmart/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHandlerSession builds a real in-memory session over the seeded
// catalogue; every collaborator is in-process, so handler tests exercise the
// genuine flows.
func newHandlerSession() *session.Session {
	logger := zerolog.Nop()
	assembler := checkout.NewAssembler(checkout.DefaultConfig(), nil, logger)
	book := addressbook.NewBook(kv.NewMemoryStore(), logger)
	return session.New(catalog.NewSeededCatalog(), assembler, book, notify.NewLogNotifier(logger), logger)
}

func decodeJSON(w *httptest.ResponseRecorder, v interface{}) error {
	return json.NewDecoder(w.Body).Decode(v)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, decodeJSON(w, &resp))
	return resp
}

func TestCartHandler_AddItem(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			method:         http.MethodPost,
			body:           `{"productId": "1", "quantity": 2}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown product",
			method:         http.MethodPost,
			body:           `{"productId": "999", "quantity": 1}`,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
		},
		{
			name:           "Out of stock",
			method:         http.MethodPost,
			body:           `{"productId": "4", "quantity": 1}`,
			expectedStatus: http.StatusConflict,
			expectedCode:   model.ErrCodeOutOfStock,
		},
		{
			name:           "Non-positive quantity",
			method:         http.MethodPost,
			body:           `{"productId": "1", "quantity": 0}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidQuantity,
		},
		{
			name:           "Invalid body",
			method:         http.MethodPost,
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			body:           "",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCartHandler(newHandlerSession(), zerolog.Nop())

			req := httptest.NewRequest(tt.method, "/api/cart/items", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.AddItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			}
		})
	}
}

func TestCartHandler_AddItemMergesDuplicates(t *testing.T) {
	handler := NewCartHandler(newHandlerSession(), zerolog.Nop())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
			strings.NewReader(`{"productId": "1", "quantity": 2}`))
		w := httptest.NewRecorder()
		handler.AddItem(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	var cart model.CartView
	require.NoError(t, decodeJSON(w, &cart))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 4, cart.Lines[0].Quantity)
	assert.Equal(t, 4, cart.ItemCount)
}

func TestCartHandler_UpdateItem(t *testing.T) {
	s := newHandlerSession()
	handler := NewCartHandler(s, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"productId": "1", "quantity": 3}`))
	handler.AddItem(httptest.NewRecorder(), req)

	// Replace the quantity in place.
	req = httptest.NewRequest(http.MethodPut, "/api/cart/items/1",
		strings.NewReader(`{"quantity": 5}`))
	w := httptest.NewRecorder()
	handler.UpdateItem(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, s.Cart().ItemCount)

	// Zero removes the line.
	req = httptest.NewRequest(http.MethodPut, "/api/cart/items/1",
		strings.NewReader(`{"quantity": 0}`))
	w = httptest.NewRecorder()
	handler.UpdateItem(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.Cart().Lines)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	s := newHandlerSession()
	handler := NewCartHandler(s, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"productId": "2", "quantity": 1}`))
	handler.AddItem(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodDelete, "/api/cart/items/2", nil)
	w := httptest.NewRecorder()
	handler.RemoveItem(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.Cart().Lines)

	// Removing again is a silent no-op.
	req = httptest.NewRequest(http.MethodDelete, "/api/cart/items/2", nil)
	w = httptest.NewRecorder()
	handler.RemoveItem(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Missing id segment.
	req = httptest.NewRequest(http.MethodDelete, "/api/cart/items/", nil)
	w = httptest.NewRecorder()
	handler.RemoveItem(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
