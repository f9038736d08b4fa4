package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductQuery mirrors the backend's product listing parameters. Zero
// values are omitted from the outgoing query string.
type ProductQuery struct {
	Page          int
	PerPage       int
	Search        string
	Slug          string
	Category      string
	OrderBy       string // date, price, popularity, rating, title
	Order         string // asc, desc
	MinPrice      int
	MaxPrice      int
	Featured      bool
	Attribute     string
	AttributeTerm string
}

// CatalogRepository wraps the read-only catalog resources: products,
// categories, payment gateways, shipping configuration, taxes and CMS pages.
type CatalogRepository interface {
	Products(ctx context.Context, query ProductQuery) ([]*entity.Product, error)
	ProductByID(ctx context.Context, productID int64) (*entity.Product, error)
	Categories(ctx context.Context) ([]*entity.Category, error)
	PaymentGateways(ctx context.Context) ([]*entity.PaymentGateway, error)
	ShippingMethods(ctx context.Context) ([]*entity.ShippingMethod, error)
	ShippingClasses(ctx context.Context) ([]*entity.ShippingClass, error)
	Taxes(ctx context.Context) ([]*entity.TaxRate, error)
	Coupons(ctx context.Context) ([]*entity.Coupon, error)
	PageBySlug(ctx context.Context, slug string) (*entity.Page, error)
}
