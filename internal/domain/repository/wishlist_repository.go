package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistRepository wraps the wishlist service, a distinct backend from
// the commerce platform. Duplicate adds are idempotent only if that backend
// enforces it; nothing is verified here.
type WishlistRepository interface {
	List(ctx context.Context, userID int64) ([]*entity.WishlistEntry, error)
	Add(ctx context.Context, userID, productID int64) error
	Remove(ctx context.Context, userID, productID int64) error
}
