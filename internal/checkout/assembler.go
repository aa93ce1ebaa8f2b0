package checkout

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/mail"
	"time"

	"freshmart/internal/coupon"
	"freshmart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config holds the checkout pricing constants. Shipping and taxes are fixed
// at zero in this system; there is no rate engine behind them.
type Config struct {
	Shipping       float64
	Taxes          float64
	CouponDiscount float64
}

// DefaultConfig returns the demo pricing constants.
func DefaultConfig() Config {
	return Config{
		Shipping:       0,
		Taxes:          0,
		CouponDiscount: 10,
	}
}

// Assembler combines a cart snapshot with delivery and payment details into
// an immutable OrderSummary.
type Assembler struct {
	cfg      Config
	resolver coupon.Resolver
	logger   zerolog.Logger
	now      func() time.Time
}

// NewAssembler creates a checkout assembler. resolver may be nil, in which
// case the configured coupon discount applies unconditionally and supplied
// codes are ignored.
func NewAssembler(cfg Config, resolver coupon.Resolver, logger zerolog.Logger) *Assembler {
	return &Assembler{
		cfg:      cfg,
		resolver: resolver,
		logger:   logger.With().Str("component", "checkout").Logger(),
		now:      time.Now,
	}
}

// Assemble builds the order summary for the given cart lines. The lines are
// copied into the summary; later cart mutations cannot alter it. The total
// is subtotal + shipping + taxes - coupon discount, with no floor: a
// discount larger than the subtotal produces a negative total.
func (a *Assembler) Assemble(
	ctx context.Context,
	lines []model.CartLine,
	addr model.Address,
	method model.PaymentMethod,
	couponCode *string,
) (*model.OrderSummary, error) {
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}
	if !method.IsValid() {
		return nil, model.ErrInvalidPayment
	}
	if err := validateAddress(addr); err != nil {
		return nil, err
	}

	discount := a.cfg.CouponDiscount
	if couponCode != nil && *couponCode != "" && a.resolver != nil {
		amount, err := a.resolver.Resolve(ctx, *couponCode)
		if err != nil {
			a.logger.Warn().
				Str("coupon_code", *couponCode).
				Err(err).
				Msg("invalid coupon code")
			return nil, err
		}
		discount = amount
	}

	subtotal := 0.0
	for _, line := range lines {
		subtotal += line.Product.Price * float64(line.Quantity)
	}
	total := subtotal + a.cfg.Shipping + a.cfg.Taxes - discount

	now := a.now()
	summary := &model.OrderSummary{
		ID:                uuid.New(),
		OrderNumber:       orderNumber(now),
		PaymentMethod:     method,
		EstimatedDelivery: now.Add(48 * time.Hour),
		Address:           addr,
		Lines:             copyLines(lines),
		Subtotal:          subtotal,
		Shipping:          a.cfg.Shipping,
		Taxes:             a.cfg.Taxes,
		CouponDiscount:    discount,
		Total:             total,
		CreatedAt:         now,
	}

	if method.RequiresTransaction() {
		tx := transactionID()
		summary.TransactionID = &tx
	}

	a.logger.Info().
		Str("order_id", summary.ID.String()).
		Str("order_number", summary.OrderNumber).
		Str("payment_method", string(method)).
		Int("line_count", len(summary.Lines)).
		Float64("total", total).
		Msg("order assembled")

	return summary, nil
}

// validateAddress applies the checkout form's required-field and email rules.
func validateAddress(addr model.Address) error {
	if addr.FirstName == "" || addr.LastName == "" || addr.StreetAddress == "" {
		return model.ErrMissingField
	}
	if addr.Email != "" {
		if _, err := mail.ParseAddress(addr.Email); err != nil {
			return model.ErrInvalidEmail
		}
	}
	return nil
}

// orderNumber derives the customer-facing order number from the confirmation
// timestamp, keeping the storefront's #SOD display format. Order identity is
// the uuid; this is presentation only.
func orderNumber(t time.Time) string {
	return fmt.Sprintf("#SOD%06d", t.UnixMilli()%1_000_000)
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// transactionID mints a TR-prefixed pseudo-random reference for non-cash
// payments.
func transactionID() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = base36[rand.IntN(len(base36))]
	}
	return "TR" + string(b)
}

func copyLines(lines []model.CartLine) []model.CartLine {
	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	return out
}
