package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// PlaceOrderInput carries everything needed to submit an order.
type PlaceOrderInput struct {
	Billing       entity.Address `json:"billing_address" validate:"required"`
	Shipping      entity.Address `json:"shipping_address" validate:"required"`
	PaymentMethod string         `json:"payment_method" validate:"required"`
	CustomerNote  string         `json:"customer_note,omitempty"`
}

// ConfirmPaymentInput carries the gateway callback parameters for an
// order awaiting payment.
type ConfirmPaymentInput struct {
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// AbandonInput carries the order key issued at order creation. Only the
// client that placed the order holds it, which is what authorizes
// cancelling a guest-created order.
type AbandonInput struct {
	OrderKey string `json:"order_key" validate:"required"`
}

// CheckoutUsecase defines the interface for the order placement flow.
//
// The flow is a state machine: PlaceOrder moves a checkout from
// collecting-input through submitting-order to awaiting-payment,
// ConfirmPayment moves it to confirmed, and Abandon cancels an order
// that never received payment so a retry starts clean.
type CheckoutUsecase interface {
	// Prefill returns the saved addresses of the authenticated customer
	// for seeding the checkout form.
	Prefill(ctx context.Context, session *entity.Session) (*entity.CheckoutDraft, error)

	// PlaceOrder validates the input, submits the order and returns the
	// confirmation holding the gateway order reference. Item totals are
	// never taken from the caller; the backend prices the order.
	PlaceOrder(ctx context.Context, session *entity.Session, input PlaceOrderInput) (*entity.OrderConfirmation, error)

	// ConfirmPayment verifies the gateway signature, marks the order
	// paid and clears the cart item by item.
	ConfirmPayment(ctx context.Context, session *entity.Session, orderID int64, input ConfirmPaymentInput) (*entity.PaymentReceipt, error)

	// Abandon cancels an order whose payment was dismissed so the cart
	// items are not stranded on a pending order. The caller must present
	// the order key from the order confirmation, the order must belong to
	// the session's customer when it has one, and only pending orders are
	// cancellable.
	Abandon(ctx context.Context, session *entity.Session, orderID int64, input AbandonInput) error

	// LookupPostcode resolves a postal code to its district and state
	// for address autofill.
	LookupPostcode(ctx context.Context, pincode string) (*entity.PostcodeInfo, error)
}
