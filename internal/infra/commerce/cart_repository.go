package commerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

// cartRepository implements repository.CartRepository against the
// storefront cart resource.
type cartRepository struct {
	client *Client
}

// NewCartRepository is the constructor for the cart repository.
func NewCartRepository(client *Client) repository.CartRepository {
	return &cartRepository{client: client}
}

// Fetch returns the cart for the session's identity, plus the anti-forgery
// nonce taken from the response header with the body fields as fallback.
func (r *cartRepository) Fetch(ctx context.Context, session *entity.Session) (*entity.Cart, string, error) {
	cart := &entity.Cart{}
	headers, err := r.client.do(ctx, request{
		method:  http.MethodGet,
		base:    r.client.cfg.StoreURL,
		path:    "cart",
		session: session,
		out:     cart,
	})
	if err != nil {
		if domainerrors.IsRemoteStatus(err, http.StatusNotFound) {
			return nil, "", repository.ErrCartNotFound
		}

		return nil, "", mapCartError(err)
	}

	nonce := headers.Get(nonceHeader)
	if nonce == "" {
		nonce = cart.BodyNonce()
	}

	return cart, nonce, nil
}

// AddItem adds a product to the cart, preserving any variation selection.
func (r *cartRepository) AddItem(ctx context.Context, session *entity.Session, nonce string, input repository.AddItemInput) (*entity.Cart, error) {
	cart := &entity.Cart{}
	_, err := r.client.do(ctx, request{
		method:  http.MethodPost,
		base:    r.client.cfg.StoreURL,
		path:    "cart/add-item",
		body:    input,
		session: session,
		nonce:   nonce,
		out:     cart,
	})
	if err != nil {
		return nil, mapCartError(err)
	}

	return cart, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, session *entity.Session, nonce, itemKey string) (*entity.Cart, error) {
	cart := &entity.Cart{}
	_, err := r.client.do(ctx, request{
		method:  http.MethodPost,
		base:    r.client.cfg.StoreURL,
		path:    "cart/remove-item",
		query:   url.Values{"key": {itemKey}},
		body:    struct{}{},
		session: session,
		nonce:   nonce,
		out:     cart,
	})
	if err != nil {
		return nil, mapCartError(err)
	}

	return cart, nil
}

func (r *cartRepository) UpdateItem(ctx context.Context, session *entity.Session, nonce, itemKey string, quantity int) (*entity.Cart, error) {
	cart := &entity.Cart{}
	_, err := r.client.do(ctx, request{
		method: http.MethodPost,
		base:   r.client.cfg.StoreURL,
		path:   "cart/update-item",
		query: url.Values{
			"key":      {itemKey},
			"quantity": {strconv.Itoa(quantity)},
		},
		body:    struct{}{},
		session: session,
		nonce:   nonce,
		out:     cart,
	})
	if err != nil {
		return nil, mapCartError(err)
	}

	return cart, nil
}

func (r *cartRepository) ApplyCoupon(ctx context.Context, session *entity.Session, nonce, code string) (*entity.Cart, error) {
	cart := &entity.Cart{}
	_, err := r.client.do(ctx, request{
		method:  http.MethodPost,
		base:    r.client.cfg.StoreURL,
		path:    "cart/apply-coupon",
		body:    map[string]string{"code": code},
		session: session,
		nonce:   nonce,
		out:     cart,
	})
	if err != nil {
		return nil, mapCartError(err)
	}

	return cart, nil
}

func (r *cartRepository) RemoveCoupon(ctx context.Context, session *entity.Session, nonce, code string) (*entity.Cart, error) {
	cart := &entity.Cart{}
	_, err := r.client.do(ctx, request{
		method:  http.MethodDelete,
		base:    r.client.cfg.StoreURL,
		path:    "cart/coupons",
		body:    map[string]string{"code": code},
		session: session,
		nonce:   nonce,
		out:     cart,
	})
	if err != nil {
		return nil, mapCartError(err)
	}

	return cart, nil
}

// mapCartError translates a tripped circuit breaker into the cart-specific
// unavailability error; everything else passes through unchanged.
func mapCartError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domainerrors.ErrCartUnavailable
	}

	return err
}
