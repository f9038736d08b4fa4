package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistInput identifies a product on the customer's wishlist.
type WishlistInput struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

// WishlistUsecase defines the interface for wishlist operations.
// The wishlist requires an authenticated session.
type WishlistUsecase interface {
	List(ctx context.Context, session *entity.Session) ([]*entity.WishlistEntry, error)
	Add(ctx context.Context, session *entity.Session, productID int64) error
	Remove(ctx context.Context, session *entity.Session, productID int64) error

	// MoveAllToCart adds every wishlisted product to the cart and removes
	// the ones that were added from the wishlist. Products run one at a
	// time; a failing product is counted and skipped.
	MoveAllToCart(ctx context.Context, session *entity.Session) (*entity.MoveSummary, error)
}
