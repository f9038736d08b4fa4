package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutRepository wraps the commerce checkout resource.
type CheckoutRepository interface {
	// Prefill returns the draft billing/shipping data for the current
	// identity, used to populate the address forms.
	Prefill(ctx context.Context, session *entity.Session, nonce string) (*entity.CheckoutDraft, error)

	// Submit creates the order from the current cart.
	Submit(ctx context.Context, session *entity.Session, nonce string, order *entity.OrderRequest) (*entity.OrderConfirmation, error)

	// Confirm posts the gateway's transaction identifiers back to the
	// backend to mark an order paid.
	Confirm(ctx context.Context, session *entity.Session, nonce string, orderID int64, confirmation *entity.PaymentConfirmation) (*entity.OrderConfirmation, error)
}
