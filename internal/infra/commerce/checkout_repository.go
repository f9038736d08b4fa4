package commerce

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// checkoutRepository implements repository.CheckoutRepository against the
// storefront checkout resource.
type checkoutRepository struct {
	client *Client
}

// NewCheckoutRepository is the constructor for the checkout repository.
func NewCheckoutRepository(client *Client) repository.CheckoutRepository {
	return &checkoutRepository{client: client}
}

func (r *checkoutRepository) Prefill(ctx context.Context, session *entity.Session, nonce string) (*entity.CheckoutDraft, error) {
	draft := &entity.CheckoutDraft{}
	_, err := r.client.do(ctx, request{
		method:  http.MethodGet,
		base:    r.client.cfg.StoreURL,
		path:    "checkout",
		session: session,
		nonce:   nonce,
		out:     draft,
	})
	if err != nil {
		return nil, err
	}

	return draft, nil
}

func (r *checkoutRepository) Submit(ctx context.Context, session *entity.Session, nonce string, order *entity.OrderRequest) (*entity.OrderConfirmation, error) {
	confirmation := &entity.OrderConfirmation{}
	_, err := r.client.do(ctx, request{
		method:  http.MethodPost,
		base:    r.client.cfg.StoreURL,
		path:    "checkout",
		body:    order,
		session: session,
		nonce:   nonce,
		out:     confirmation,
	})
	if err != nil {
		return nil, err
	}

	return confirmation, nil
}

func (r *checkoutRepository) Confirm(ctx context.Context, session *entity.Session, nonce string, orderID int64, confirmation *entity.PaymentConfirmation) (*entity.OrderConfirmation, error) {
	result := &entity.OrderConfirmation{}
	_, err := r.client.do(ctx, request{
		method:  http.MethodPost,
		base:    r.client.cfg.StoreURL,
		path:    "checkout/" + strconv.FormatInt(orderID, 10),
		body:    confirmation,
		session: session,
		nonce:   nonce,
		out:     result,
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
