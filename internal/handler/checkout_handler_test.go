package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freshmart/internal/model"
	"freshmart/internal/session"
	"freshmart/internal/view"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const confirmBody = `{
	"paymentMethod": "paypal",
	"address": {
		"firstName": "John",
		"lastName": "Doe",
		"streetAddress": "1 Main St",
		"city": "Springfield"
	}
}`

func sessionAtCheckout(t *testing.T) *session.Session {
	t.Helper()
	s := newHandlerSession()
	require.NoError(t, s.AddItem(context.Background(), "1", 2))
	require.NoError(t, s.Navigate(view.PageCheckout))
	return s
}

func TestCheckoutHandler_Confirm(t *testing.T) {
	s := sessionAtCheckout(t)
	handler := NewCheckoutHandler(s, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/confirm", strings.NewReader(confirmBody))
	w := httptest.NewRecorder()
	handler.Confirm(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var summary model.OrderSummary
	require.NoError(t, decodeJSON(w, &summary))
	assert.True(t, strings.HasPrefix(summary.OrderNumber, "#SOD"))
	assert.Equal(t, model.PaymentPayPal, summary.PaymentMethod)

	// The session moved on and the cart is gone.
	assert.Equal(t, view.PageOrderConfirmation, s.CurrentPage())
	assert.Empty(t, s.Cart().Lines)
}

func TestCheckoutHandler_ConfirmErrors(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(t *testing.T) *session.Session
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Not on checkout page",
			setup:          func(t *testing.T) *session.Session { return newHandlerSession() },
			body:           confirmBody,
			expectedStatus: http.StatusConflict,
			expectedCode:   model.ErrCodeInvalidTransition,
		},
		{
			name:           "Unknown payment method",
			setup:          sessionAtCheckout,
			body:           strings.Replace(confirmBody, "paypal", "bitcoin", 1),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidPayment,
		},
		{
			name:           "Missing address",
			setup:          sessionAtCheckout,
			body:           `{"paymentMethod": "card"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
		},
		{
			name:           "Unknown saved address",
			setup:          sessionAtCheckout,
			body:           `{"paymentMethod": "card", "addressId": "no-such-id"}`,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeAddressNotFound,
		},
		{
			name:           "Invalid body",
			setup:          sessionAtCheckout,
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCheckoutHandler(tt.setup(t), zerolog.Nop())

			req := httptest.NewRequest(http.MethodPost, "/api/checkout/confirm", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Confirm(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			}
		})
	}
}

func TestCheckoutHandler_GetByNumber(t *testing.T) {
	s := sessionAtCheckout(t)
	handler := NewCheckoutHandler(s, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/confirm", strings.NewReader(confirmBody))
	w := httptest.NewRecorder()
	handler.Confirm(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var summary model.OrderSummary
	require.NoError(t, decodeJSON(w, &summary))

	// The leading # may be dropped by the client.
	req = httptest.NewRequest(http.MethodGet, "/api/orders/"+strings.TrimPrefix(summary.OrderNumber, "#"), nil)
	w = httptest.NewRecorder()
	handler.GetByNumber(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var tracked model.OrderSummary
	require.NoError(t, decodeJSON(w, &tracked))
	assert.Equal(t, summary.ID, tracked.ID)
}

func TestCheckoutHandler_GetByNumberNotFound(t *testing.T) {
	handler := NewCheckoutHandler(newHandlerSession(), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/orders/SOD999999", nil)
	w := httptest.NewRecorder()
	handler.GetByNumber(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, model.ErrCodeOrderNotFound, decodeError(t, w).Error)
}
