// Package impl provides the concrete implementations of the usecase
// interfaces.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type cartService struct {
	cartRepo repository.CartRepository
	cache    repository.CartCache
	guard    *itemGuard
	logger   *slog.Logger
}

// NewCartService creates a new cart service instance.
func NewCartService(cartRepo repository.CartRepository, cache repository.CartCache, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		cartRepo: cartRepo,
		cache:    cache,
		guard:    newItemGuard(),
		logger:   logger,
	}
}

// GetCart serves the cached cart when a fresh copy exists, otherwise
// fetches from the backend and refreshes both the cart and nonce caches.
func (s *cartService) GetCart(ctx context.Context, session *entity.Session) (*entity.Cart, error) {
	bucket := session.CacheKey()
	if cart, ok := s.cache.GetCart(ctx, bucket); ok {
		return cart, nil
	}

	return s.refresh(ctx, session)
}

func (s *cartService) AddItem(ctx context.Context, session *entity.Session, input usecase.AddItemInput) (*entity.Cart, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	return s.mutate(ctx, session, "add:"+strconv.FormatInt(input.ID, 10), func(nonce string) (*entity.Cart, error) {
		return s.cartRepo.AddItem(ctx, session, nonce, repository.AddItemInput{
			ID:        input.ID,
			Quantity:  input.Quantity,
			Variation: input.Variation,
		})
	})
}

func (s *cartService) RemoveItem(ctx context.Context, session *entity.Session, key string) (*entity.Cart, error) {
	return s.mutate(ctx, session, key, func(nonce string) (*entity.Cart, error) {
		return s.cartRepo.RemoveItem(ctx, session, nonce, key)
	})
}

func (s *cartService) UpdateItem(ctx context.Context, session *entity.Session, input usecase.UpdateItemInput) (*entity.Cart, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	return s.mutate(ctx, session, input.Key, func(nonce string) (*entity.Cart, error) {
		return s.cartRepo.UpdateItem(ctx, session, nonce, input.Key, input.Quantity)
	})
}

// ApplyCoupon is a no-op success when the code is already on the cart.
func (s *cartService) ApplyCoupon(ctx context.Context, session *entity.Session, code string) (*entity.Cart, error) {
	current, err := s.GetCart(ctx, session)
	if err != nil {
		return nil, err
	}
	if current.HasCoupon(code) {
		return current, nil
	}

	return s.mutate(ctx, session, "coupon:"+code, func(nonce string) (*entity.Cart, error) {
		return s.cartRepo.ApplyCoupon(ctx, session, nonce, code)
	})
}

func (s *cartService) RemoveCoupon(ctx context.Context, session *entity.Session, code string) (*entity.Cart, error) {
	return s.mutate(ctx, session, "coupon:"+code, func(nonce string) (*entity.Cart, error) {
		return s.cartRepo.RemoveCoupon(ctx, session, nonce, code)
	})
}

// MergeGuestCart transfers guest line items into the customer cart.
//
// The guest cart is fetched first; an empty guest cart is a no-op. Items
// are added one at a time to the customer cart, collecting successes and
// failures, and only the successfully added items are removed from the
// guest cart afterwards. A failed guest-side removal is logged and
// swallowed: a duplicated item is recoverable, a lost one is not.
func (s *cartService) MergeGuestCart(ctx context.Context, guest, customer *entity.Session) (*entity.MergeSummary, error) {
	guestCart, guestNonce, err := s.cartRepo.Fetch(ctx, guest)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch guest cart")
	}

	summary := &entity.MergeSummary{Total: len(guestCart.Items)}
	if guestCart.IsEmpty() {
		return summary, nil
	}

	_, customerNonce, err := s.cartRepo.Fetch(ctx, customer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch customer cart")
	}
	if customerNonce == "" {
		return nil, domainerrors.ErrNonceUnavailable
	}

	for _, item := range guestCart.Items {
		merged := entity.MergeItem{ID: item.ID, Key: item.Key, Quantity: item.Quantity}

		_, err := s.cartRepo.AddItem(ctx, customer, customerNonce, repository.AddItemInput{
			ID:        item.ID,
			Quantity:  item.Quantity,
			Variation: item.Variation,
		})
		if err != nil {
			s.logger.Warn("cart merge: add to customer cart failed",
				slog.Int64("product_id", item.ID), slog.Any("error", err))
			summary.Failed++
			summary.Errors = append(summary.Errors, merged)

			continue
		}

		summary.Added++
		summary.Items = append(summary.Items, merged)
	}

	for _, item := range summary.Items {
		if _, err := s.cartRepo.RemoveItem(ctx, guest, guestNonce, item.Key); err != nil {
			s.logger.Warn("cart merge: guest item removal failed, item kept on both carts",
				slog.String("item_key", item.Key), slog.Any("error", err))
		}
	}

	if err := s.cache.Invalidate(ctx, guest.CacheKey()); err != nil {
		s.logger.Warn("cart cache invalidation failed", slog.Any("error", err))
	}
	if err := s.cache.Invalidate(ctx, customer.CacheKey()); err != nil {
		s.logger.Warn("cart cache invalidation failed", slog.Any("error", err))
	}

	return summary, nil
}

// mutate runs one serialized cart mutation: claim the item slot, ensure a
// nonce, execute, and on success replace the cached copy with the cart the
// backend returned.
func (s *cartService) mutate(ctx context.Context, session *entity.Session, itemKey string, op func(nonce string) (*entity.Cart, error)) (*entity.Cart, error) {
	if err := s.guard.acquire(session.CacheKey() + "|" + itemKey); err != nil {
		return nil, err
	}
	defer s.guard.release(session.CacheKey() + "|" + itemKey)

	nonce, err := s.nonce(ctx, session)
	if err != nil {
		return nil, err
	}

	cart, err := op(nonce)
	if err != nil {
		return nil, err
	}

	s.store(ctx, session, cart)

	return cart, nil
}

// nonce returns the cached anti-forgery token for the session's bucket,
// fetching the cart to obtain one when the cache has none.
func (s *cartService) nonce(ctx context.Context, session *entity.Session) (string, error) {
	if nonce, ok := s.cache.GetNonce(ctx, session.CacheKey()); ok {
		return nonce, nil
	}

	if _, err := s.refresh(ctx, session); err != nil {
		return "", err
	}

	nonce, ok := s.cache.GetNonce(ctx, session.CacheKey())
	if !ok {
		return "", domainerrors.ErrNonceUnavailable
	}

	return nonce, nil
}

// refresh fetches the cart from the backend and repopulates the caches.
func (s *cartService) refresh(ctx context.Context, session *entity.Session) (*entity.Cart, error) {
	cart, nonce, err := s.cartRepo.Fetch(ctx, session)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch cart")
	}

	s.store(ctx, session, cart)
	if nonce != "" {
		if err := s.cache.SetNonce(ctx, session.CacheKey(), nonce); err != nil {
			s.logger.Warn("nonce cache write failed", slog.Any("error", err))
		}
	}

	return cart, nil
}

func (s *cartService) store(ctx context.Context, session *entity.Session, cart *entity.Cart) {
	if cart == nil {
		return
	}
	if err := s.cache.SetCart(ctx, session.CacheKey(), cart); err != nil {
		s.logger.Warn("cart cache write failed", slog.Any("error", err))
	}
}
