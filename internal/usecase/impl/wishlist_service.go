package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	cartUsecase  usecase.CartUsecase
	logger       *slog.Logger
}

// NewWishlistService creates a new wishlist service instance.
func NewWishlistService(wishlistRepo repository.WishlistRepository, cartUsecase usecase.CartUsecase, logger *slog.Logger) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		cartUsecase:  cartUsecase,
		logger:       logger,
	}
}

func (s *wishlistService) List(ctx context.Context, session *entity.Session) ([]*entity.WishlistEntry, error) {
	if !session.IsAuthenticated() {
		return nil, domainerrors.ErrSessionRequired
	}

	entries, err := s.wishlistRepo.List(ctx, session.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return entries, nil
}

func (s *wishlistService) Add(ctx context.Context, session *entity.Session, productID int64) error {
	if !session.IsAuthenticated() {
		return domainerrors.ErrSessionRequired
	}

	return s.wishlistRepo.Add(ctx, session.CustomerID, productID)
}

func (s *wishlistService) Remove(ctx context.Context, session *entity.Session, productID int64) error {
	if !session.IsAuthenticated() {
		return domainerrors.ErrSessionRequired
	}

	return s.wishlistRepo.Remove(ctx, session.CustomerID, productID)
}

// MoveAllToCart adds every wishlisted product to the cart, one product at a
// time so the cart mutations never contend with each other. A product is
// removed from the wishlist only after its cart add succeeded.
func (s *wishlistService) MoveAllToCart(ctx context.Context, session *entity.Session) (*entity.MoveSummary, error) {
	entries, err := s.List(ctx, session)
	if err != nil {
		return nil, err
	}

	summary := &entity.MoveSummary{Total: len(entries)}
	for _, entry := range entries {
		_, err := s.cartUsecase.AddItem(ctx, session, usecase.AddItemInput{
			ID:       entry.ProductID,
			Quantity: 1,
		})
		if err != nil {
			s.logger.Warn("wishlist move: cart add failed",
				slog.Int64("product_id", entry.ProductID), slog.Any("error", err))
			summary.Failed = append(summary.Failed, entry.ProductID)

			continue
		}

		if err := s.wishlistRepo.Remove(ctx, session.CustomerID, entry.ProductID); err != nil {
			// The product made it to the cart; a stale wishlist entry is
			// the lesser problem.
			s.logger.Warn("wishlist move: entry removal failed",
				slog.Int64("product_id", entry.ProductID), slog.Any("error", err))
		}
		summary.Moved++
	}

	return summary, nil
}
