package session

import (
	"context"
	"testing"

	"freshmart/internal/addressbook"
	"freshmart/internal/catalog"
	"freshmart/internal/checkout"
	"freshmart/internal/kv"
	"freshmart/internal/model"
	"freshmart/internal/notify"
	"freshmart/internal/view"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(recorder notify.Notifier) *Session {
	logger := zerolog.Nop()
	assembler := checkout.NewAssembler(checkout.DefaultConfig(), nil, logger)
	book := addressbook.NewBook(kv.NewMemoryStore(), logger)
	return New(catalog.NewSeededCatalog(), assembler, book, recorder, logger)
}

func testRequest() model.ConfirmOrderRequest {
	return model.ConfirmOrderRequest{
		PaymentMethod: model.PaymentPayPal,
		Address: &model.Address{
			FirstName:     "John",
			LastName:      "Doe",
			StreetAddress: "1 Main St",
			City:          "Springfield",
		},
	}
}

func TestSession_AddItem(t *testing.T) {
	recorder := notify.NewRecorder()
	s := newTestSession(recorder)

	require.NoError(t, s.AddItem(context.Background(), "1", 2))
	require.NoError(t, s.AddItem(context.Background(), "2", 1))

	cart := s.Cart()
	assert.Equal(t, 3, cart.ItemCount)
	assert.InDelta(t, 7.97, cart.Subtotal, 1e-9)

	notifications := recorder.Notifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, "Added Organic Bananas to cart", notifications[0].Message)
}

func TestSession_AddItemErrors(t *testing.T) {
	s := newTestSession(notify.NewRecorder())

	tests := []struct {
		name      string
		productID string
		quantity  int
		wantErr   error
	}{
		{name: "unknown product", productID: "999", quantity: 1, wantErr: model.ErrProductNotFound},
		{name: "out of stock", productID: "4", quantity: 1, wantErr: model.ErrOutOfStock},
		{name: "zero quantity", productID: "1", quantity: 0, wantErr: model.ErrInvalidQuantity},
		{name: "negative quantity", productID: "1", quantity: -3, wantErr: model.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddItem(context.Background(), tt.productID, tt.quantity)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, 0, s.Cart().ItemCount)
}

func TestSession_CheckoutRequiresNonEmptyCart(t *testing.T) {
	s := newTestSession(notify.NewRecorder())

	err := s.Navigate(view.PageCheckout)
	require.ErrorIs(t, err, model.ErrEmptyCart)
	assert.Equal(t, view.PageHome, s.CurrentPage())

	require.NoError(t, s.AddItem(context.Background(), "1", 1))
	require.NoError(t, s.Navigate(view.PageCheckout))
	assert.Equal(t, view.PageCheckout, s.CurrentPage())
}

func TestSession_ConfirmationPageUnreachableByNavigation(t *testing.T) {
	s := newTestSession(notify.NewRecorder())
	require.NoError(t, s.AddItem(context.Background(), "1", 1))
	require.NoError(t, s.Navigate(view.PageCheckout))

	// Even from the checkout page, navigation must not show the
	// confirmation page: no order has been confirmed.
	err := s.Navigate(view.PageOrderConfirmation)
	require.ErrorIs(t, err, model.ErrInvalidTransition)
	assert.Equal(t, view.PageCheckout, s.CurrentPage())
	assert.Equal(t, 1, s.Cart().ItemCount)
}

func TestSession_ConfirmOrder(t *testing.T) {
	recorder := notify.NewRecorder()
	s := newTestSession(recorder)

	require.NoError(t, s.AddItem(context.Background(), "1", 2))
	require.NoError(t, s.Navigate(view.PageCart))
	require.NoError(t, s.Navigate(view.PageCheckout))
	recorder.Reset()

	summary, err := s.ConfirmOrder(context.Background(), testRequest())
	require.NoError(t, err)

	// Confirmation clears the cart, shows the confirmation page and toasts.
	assert.Equal(t, 0, s.Cart().ItemCount)
	assert.Equal(t, view.PageOrderConfirmation, s.CurrentPage())

	notifications := recorder.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, notify.KindSuccess, notifications[0].Kind)
	assert.Equal(t, "Order confirmed successfully!", notifications[0].Message)

	// The summary is retrievable by order number afterwards.
	tracked := s.TrackOrder(summary.OrderNumber)
	require.NotNil(t, tracked)
	assert.Equal(t, summary.ID, tracked.ID)

	latest := s.LatestOrder()
	require.NotNil(t, latest)
	assert.Equal(t, summary.OrderNumber, latest.OrderNumber)
}

func TestSession_ConfirmOrderOnlyFromCheckout(t *testing.T) {
	s := newTestSession(notify.NewRecorder())
	require.NoError(t, s.AddItem(context.Background(), "1", 1))

	_, err := s.ConfirmOrder(context.Background(), testRequest())
	require.ErrorIs(t, err, model.ErrInvalidTransition)
	assert.Equal(t, 1, s.Cart().ItemCount)
}

func TestSession_ConfirmOrderIsOneWay(t *testing.T) {
	s := newTestSession(notify.NewRecorder())
	require.NoError(t, s.AddItem(context.Background(), "1", 1))
	require.NoError(t, s.Navigate(view.PageCheckout))

	_, err := s.ConfirmOrder(context.Background(), testRequest())
	require.NoError(t, err)

	// Back from the confirmation page goes home, not to checkout, and the
	// cart stays empty: nothing reconstructs it from the completed order.
	assert.Equal(t, view.PageHome, s.Back())
	assert.Equal(t, 0, s.Cart().ItemCount)
	require.ErrorIs(t, s.Navigate(view.PageCheckout), model.ErrEmptyCart)
}

func TestSession_ConfirmOrderWithSavedAddress(t *testing.T) {
	s := newTestSession(notify.NewRecorder())
	require.NoError(t, s.AddItem(context.Background(), "1", 1))

	saved, err := s.SaveAddress(context.Background(), model.Address{
		FirstName:     "Jane",
		LastName:      "Roe",
		StreetAddress: "2 Oak Ave",
	})
	require.NoError(t, err)
	require.NoError(t, s.Navigate(view.PageCheckout))

	summary, err := s.ConfirmOrder(context.Background(), model.ConfirmOrderRequest{
		PaymentMethod: model.PaymentCard,
		AddressID:     saved.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", summary.Address.FirstName)
}

func TestSession_ConfirmOrderAddressErrors(t *testing.T) {
	s := newTestSession(notify.NewRecorder())
	require.NoError(t, s.AddItem(context.Background(), "1", 1))
	require.NoError(t, s.Navigate(view.PageCheckout))

	_, err := s.ConfirmOrder(context.Background(), model.ConfirmOrderRequest{
		PaymentMethod: model.PaymentCard,
		AddressID:     "no-such-id",
	})
	require.ErrorIs(t, err, model.ErrAddressNotFound)

	_, err = s.ConfirmOrder(context.Background(), model.ConfirmOrderRequest{
		PaymentMethod: model.PaymentCard,
	})
	require.ErrorIs(t, err, model.ErrMissingField)

	// Failed confirmations leave the cart and page untouched.
	assert.Equal(t, 1, s.Cart().ItemCount)
	assert.Equal(t, view.PageCheckout, s.CurrentPage())
}

func TestSession_Wishlist(t *testing.T) {
	recorder := notify.NewRecorder()
	s := newTestSession(recorder)

	require.NoError(t, s.AddToWishlist(context.Background(), "7"))
	require.NoError(t, s.AddToWishlist(context.Background(), "7"))
	require.ErrorIs(t, s.AddToWishlist(context.Background(), "999"), model.ErrProductNotFound)

	entries := s.Wishlist()
	require.Len(t, entries, 1)
	assert.Equal(t, "Greek Yogurt", entries[0].Product.Name)

	// Only the first add toasts; the duplicate is silent.
	require.Len(t, recorder.Notifications(), 1)
	assert.Equal(t, "Added Greek Yogurt to wishlist", recorder.Notifications()[0].Message)

	s.RemoveFromWishlist("7")
	assert.Empty(t, s.Wishlist())
}

func TestSession_TrackUnknownOrder(t *testing.T) {
	s := newTestSession(notify.NewRecorder())
	assert.Nil(t, s.TrackOrder("#SOD123456"))
	assert.Nil(t, s.LatestOrder())
}
