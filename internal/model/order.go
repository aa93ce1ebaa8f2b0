package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod identifies how an order is paid.
type PaymentMethod string

// Supported payment methods.
const (
	PaymentPayPal         PaymentMethod = "paypal"
	PaymentCard           PaymentMethod = "card"
	PaymentGooglePay      PaymentMethod = "google-pay"
	PaymentCashOnDelivery PaymentMethod = "cash-on-delivery"
)

// IsValid reports whether the payment method is one of the supported values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentPayPal, PaymentCard, PaymentGooglePay, PaymentCashOnDelivery:
		return true
	}
	return false
}

// RequiresTransaction reports whether confirming with this method mints a
// transaction id. Cash on delivery settles offline and gets none.
func (m PaymentMethod) RequiresTransaction() bool {
	return m != PaymentCashOnDelivery
}

// Address holds the delivery details captured at checkout. The same shape is
// stored in the saved-address list, where ID and IsDefault are meaningful.
type Address struct {
	ID            string `json:"id,omitempty"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Company       string `json:"company,omitempty"`
	Country       string `json:"country"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsDefault     bool   `json:"isDefault"`
}

// OrderSummary is the immutable record created at purchase confirmation.
// Lines are copied from the cart at confirmation time; mutating the cart
// afterwards must not alter a stored summary.
type OrderSummary struct {
	ID                uuid.UUID     `json:"id"`
	OrderNumber       string        `json:"orderNumber"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	TransactionID     *string       `json:"transactionId,omitempty"`
	EstimatedDelivery time.Time     `json:"estimatedDelivery"`
	Address           Address       `json:"deliveryAddress"`
	Lines             []CartLine    `json:"lines"`
	Subtotal          float64       `json:"subtotal"`
	Shipping          float64       `json:"shipping"`
	Taxes             float64       `json:"taxes"`
	CouponDiscount    float64       `json:"couponDiscount"`
	Total             float64       `json:"total"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// ConfirmOrderRequest is the payload for confirming the checkout.
// Either AddressID (a saved address) or Address must be supplied.
type ConfirmOrderRequest struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CouponCode    *string       `json:"couponCode,omitempty"`
	AddressID     string        `json:"addressId,omitempty"`
	Address       *Address      `json:"address,omitempty"`
}
