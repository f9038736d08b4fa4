// Package repository defines the ports to the remote resources the
// storefront consumes. All durable state lives behind these interfaces in
// the external commerce platform; implementations are thin REST adapters.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Sentinel errors shared by repository implementations.
var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// AddItemInput identifies a product to add, with quantity and any variation
// selection for configurable products.
type AddItemInput struct {
	ID        int64                       `json:"id"`
	Quantity  int                         `json:"quantity"`
	Variation []entity.VariationAttribute `json:"variation,omitempty"`
}

// CartRepository wraps the commerce cart resource. Every call selects
// Bearer auth when the session carries a token and Basic auth otherwise;
// the nonce argument is the anti-forgery token captured from a prior
// response and may be empty on the first fetch.
type CartRepository interface {
	// Fetch returns the cart and the anti-forgery nonce for follow-up
	// mutations, taken from the response header with a body fallback.
	Fetch(ctx context.Context, session *entity.Session) (*entity.Cart, string, error)

	AddItem(ctx context.Context, session *entity.Session, nonce string, input AddItemInput) (*entity.Cart, error)

	RemoveItem(ctx context.Context, session *entity.Session, nonce, itemKey string) (*entity.Cart, error)

	// UpdateItem sets the quantity of an existing line item. Callers are
	// responsible for never passing a quantity below 1.
	UpdateItem(ctx context.Context, session *entity.Session, nonce, itemKey string, quantity int) (*entity.Cart, error)

	ApplyCoupon(ctx context.Context, session *entity.Session, nonce, code string) (*entity.Cart, error)

	RemoveCoupon(ctx context.Context, session *entity.Session, nonce, code string) (*entity.Cart, error)
}

// CartCache holds a short-lived copy of the remote cart plus the last known
// nonce per identity bucket. Invalidation happens only after successful
// mutations; reads fall through on miss.
type CartCache interface {
	GetCart(ctx context.Context, key string) (*entity.Cart, bool)
	SetCart(ctx context.Context, key string, cart *entity.Cart) error
	Invalidate(ctx context.Context, key string) error

	GetNonce(ctx context.Context, key string) (string, bool)
	SetNonce(ctx context.Context, key, nonce string) error
}
