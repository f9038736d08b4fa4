package commerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

// orderRepository implements repository.OrderRepository against the
// management API orders resource.
type orderRepository struct {
	client *Client
}

// NewOrderRepository is the constructor for the order repository.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	var orders []*entity.Order
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "orders",
		query:      url.Values{"customer": {strconv.FormatInt(customerID, 10)}},
		forceBasic: true,
		out:        &orders,
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) FindByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	order := &entity.Order{}
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "orders/" + strconv.FormatInt(orderID, 10),
		forceBasic: true,
		out:        order,
	})
	if err != nil {
		if domainerrors.IsRemoteStatus(err, http.StatusNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, err
	}

	return order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error) {
	order := &entity.Order{}
	_, err := r.client.do(ctx, request{
		method:     http.MethodPut,
		base:       r.client.cfg.APIURL,
		path:       "orders/" + strconv.FormatInt(orderID, 10),
		body:       map[string]string{"status": string(status)},
		forceBasic: true,
		out:        order,
	})
	if err != nil {
		if domainerrors.IsRemoteStatus(err, http.StatusNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, err
	}

	return order, nil
}
