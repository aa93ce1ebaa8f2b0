package session

import (
	"context"
	"fmt"

	"freshmart/internal/addressbook"
	"freshmart/internal/cart"
	"freshmart/internal/catalog"
	"freshmart/internal/checkout"
	"freshmart/internal/model"
	"freshmart/internal/notify"
	"freshmart/internal/view"
	"freshmart/internal/wishlist"

	"github.com/rs/zerolog"
)

// Session is the storefront shell for the single active shopper. It owns the
// cart, the page selector, the wishlist and the order log, and coordinates
// the one-way checkout-to-confirmation handoff between them.
type Session struct {
	catalog   catalog.Catalog
	cart      *cart.Store
	view      *view.Selector
	wishlist  *wishlist.Store
	assembler *checkout.Assembler
	orders    *checkout.Log
	addresses *addressbook.Book
	notifier  notify.Notifier
	logger    zerolog.Logger
}

// New creates a session with an empty cart showing the home page.
func New(
	cat catalog.Catalog,
	assembler *checkout.Assembler,
	addresses *addressbook.Book,
	notifier notify.Notifier,
	logger zerolog.Logger,
) *Session {
	logger = logger.With().Str("component", "session").Logger()
	return &Session{
		catalog:   cat,
		cart:      cart.NewStore(notifier, logger),
		view:      view.NewSelector(logger),
		wishlist:  wishlist.NewStore(logger),
		assembler: assembler,
		orders:    checkout.NewLog(logger),
		addresses: addresses,
		notifier:  notifier,
		logger:    logger,
	}
}

// AddItem looks the product up in the catalogue and adds it to the cart.
func (s *Session) AddItem(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}
	if !product.InStock {
		s.notifier.Show(notify.KindError, fmt.Sprintf("%s is out of stock", product.Name))
		return model.ErrOutOfStock
	}

	s.cart.AddItem(*product, quantity)
	return nil
}

// UpdateQuantity replaces a cart line's quantity; zero or less removes it.
func (s *Session) UpdateQuantity(productID string, quantity int) {
	s.cart.UpdateQuantity(productID, quantity)
}

// RemoveItem removes a cart line; absent lines are a no-op.
func (s *Session) RemoveItem(productID string) {
	s.cart.RemoveItem(productID)
}

// Cart returns the current cart snapshot.
func (s *Session) Cart() model.CartView {
	return s.cart.View()
}

// CurrentPage returns the active page.
func (s *Session) CurrentPage() view.Page {
	return s.view.Current()
}

// Navigate moves to the target page. The checkout page is unreachable with
// an empty cart. The confirmation page is never reachable by navigation,
// even from checkout: only ConfirmOrder shows it, after an order exists.
func (s *Session) Navigate(page view.Page) error {
	if page == view.PageCheckout && s.cart.Len() == 0 {
		return model.ErrEmptyCart
	}
	if page == view.PageOrderConfirmation {
		return model.ErrInvalidTransition
	}
	return s.view.Show(page)
}

// Back returns to the active page's fixed predecessor.
func (s *Session) Back() view.Page {
	return s.view.Back()
}

// AddToWishlist puts a catalogue product on the wishlist.
func (s *Session) AddToWishlist(ctx context.Context, productID string) error {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	if s.wishlist.Add(*product) {
		s.notifier.Show(notify.KindSuccess, fmt.Sprintf("Added %s to wishlist", product.Name))
	}
	return nil
}

// RemoveFromWishlist takes a product off the wishlist.
func (s *Session) RemoveFromWishlist(productID string) {
	if s.wishlist.Remove(productID) {
		s.notifier.Show(notify.KindSuccess, "Item removed from wishlist")
	}
}

// Wishlist returns the wishlist entries in added order.
func (s *Session) Wishlist() []wishlist.Entry {
	return s.wishlist.Entries()
}

// Addresses returns the saved address list; the checkout page reads it on
// entry.
func (s *Session) Addresses(ctx context.Context) ([]model.Address, error) {
	return s.addresses.List(ctx)
}

// SaveAddress persists a new delivery address.
func (s *Session) SaveAddress(ctx context.Context, addr model.Address) (*model.Address, error) {
	return s.addresses.Save(ctx, addr)
}

// ConfirmOrder is the checkout page's confirm action. It assembles the
// order summary, records it, clears the cart and transitions to the
// confirmation page. The transition is one-way: nothing reconstructs a cart
// from a completed order.
func (s *Session) ConfirmOrder(ctx context.Context, req model.ConfirmOrderRequest) (*model.OrderSummary, error) {
	if s.view.Current() != view.PageCheckout {
		return nil, model.ErrInvalidTransition
	}

	addr, err := s.resolveAddress(ctx, req)
	if err != nil {
		return nil, err
	}

	summary, err := s.assembler.Assemble(ctx, s.cart.Lines(), *addr, req.PaymentMethod, req.CouponCode)
	if err != nil {
		return nil, err
	}

	s.orders.Record(*summary)
	s.cart.Clear()
	if err := s.view.Show(view.PageOrderConfirmation); err != nil {
		// Unreachable while this session holds the only reference to the
		// selector; logged rather than surfaced to the shopper.
		s.logger.Error().Err(err).Msg("failed to show confirmation page")
	}
	s.notifier.Show(notify.KindSuccess, "Order confirmed successfully!")

	s.logger.Info().
		Str("order_number", summary.OrderNumber).
		Float64("total", summary.Total).
		Msg("order confirmed")

	return summary, nil
}

// TrackOrder returns a confirmed order by its number, or nil if unknown.
func (s *Session) TrackOrder(number string) *model.OrderSummary {
	return s.orders.GetByNumber(number)
}

// LatestOrder returns the most recently confirmed order, or nil.
func (s *Session) LatestOrder() *model.OrderSummary {
	return s.orders.Latest()
}

func (s *Session) resolveAddress(ctx context.Context, req model.ConfirmOrderRequest) (*model.Address, error) {
	if req.AddressID != "" {
		addr, err := s.addresses.Get(ctx, req.AddressID)
		if err != nil {
			return nil, err
		}
		if addr == nil {
			return nil, model.ErrAddressNotFound
		}
		return addr, nil
	}

	if req.Address != nil {
		return req.Address, nil
	}

	return nil, model.ErrMissingField
}
