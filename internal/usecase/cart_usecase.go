package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddItemInput defines the data required to add a product to the cart.
type AddItemInput struct {
	ID        int64                       `json:"id" validate:"required"`
	Quantity  int                         `json:"quantity" validate:"required"`
	Variation []entity.VariationAttribute `json:"variation,omitempty"`
}

// UpdateItemInput changes the quantity of an existing line item.
type UpdateItemInput struct {
	Key      string `json:"key" validate:"required"`
	Quantity int    `json:"quantity" validate:"required"`
}

// CouponInput carries a coupon code to apply or remove.
type CouponInput struct {
	Code string `json:"code" validate:"required"`
}

// CartUsecase defines the interface for cart read and mutation operations.
// Mutations are serialized per line item; a second mutation on an item
// whose first mutation is still in flight fails with ErrItemBusy.
type CartUsecase interface {
	// GetCart returns the current cart, served from cache when fresh.
	GetCart(ctx context.Context, session *entity.Session) (*entity.Cart, error)

	AddItem(ctx context.Context, session *entity.Session, input AddItemInput) (*entity.Cart, error)
	RemoveItem(ctx context.Context, session *entity.Session, key string) (*entity.Cart, error)
	UpdateItem(ctx context.Context, session *entity.Session, input UpdateItemInput) (*entity.Cart, error)

	ApplyCoupon(ctx context.Context, session *entity.Session, code string) (*entity.Cart, error)
	RemoveCoupon(ctx context.Context, session *entity.Session, code string) (*entity.Cart, error)

	// MergeGuestCart transfers every line item of the guest cart into the
	// authenticated customer's cart, then removes the transferred items
	// from the guest cart. Partial failures are reported in the summary,
	// never as an error.
	MergeGuestCart(ctx context.Context, guest, customer *entity.Session) (*entity.MergeSummary, error)
}
