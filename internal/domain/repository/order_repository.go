package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderRepository wraps the commerce orders resource.
type OrderRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error)
	FindByID(ctx context.Context, orderID int64) (*entity.Order, error)

	// UpdateStatus moves an order to the given status. Used to cancel
	// abandoned unpaid orders after a dismissed payment sheet.
	UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error)
}
