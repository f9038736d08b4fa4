package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// CatalogUsecase defines the interface for read-only storefront data.
type CatalogUsecase interface {
	Products(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, error)
	Product(ctx context.Context, id int64) (*entity.Product, error)
	Categories(ctx context.Context) ([]*entity.Category, error)

	// PaymentGateways returns only the enabled gateways, sorted by their
	// configured display order.
	PaymentGateways(ctx context.Context) ([]*entity.PaymentGateway, error)

	ShippingMethods(ctx context.Context) ([]*entity.ShippingMethod, error)
	ShippingClasses(ctx context.Context) ([]*entity.ShippingClass, error)
	Taxes(ctx context.Context) ([]*entity.TaxRate, error)

	// Coupons returns coupons that are neither expired nor exhausted.
	Coupons(ctx context.Context) ([]*entity.Coupon, error)

	PageBySlug(ctx context.Context, slug string) (*entity.Page, error)
}
