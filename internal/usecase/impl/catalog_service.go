package impl

import (
	"context"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) Products(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, error) {
	products, err := s.catalogRepo.Products(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (s *catalogService) Product(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.catalogRepo.ProductByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.catalogRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// PaymentGateways filters out disabled gateways and orders the rest by
// their configured display position.
func (s *catalogService) PaymentGateways(ctx context.Context) ([]*entity.PaymentGateway, error) {
	gateways, err := s.catalogRepo.PaymentGateways(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment gateways")
	}

	enabled := make([]*entity.PaymentGateway, 0, len(gateways))
	for _, gw := range gateways {
		if gw.Enabled {
			enabled = append(enabled, gw)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Order < enabled[j].Order
	})

	return enabled, nil
}

func (s *catalogService) ShippingMethods(ctx context.Context) ([]*entity.ShippingMethod, error) {
	methods, err := s.catalogRepo.ShippingMethods(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipping methods")
	}

	return methods, nil
}

func (s *catalogService) ShippingClasses(ctx context.Context) ([]*entity.ShippingClass, error) {
	classes, err := s.catalogRepo.ShippingClasses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipping classes")
	}

	return classes, nil
}

func (s *catalogService) Taxes(ctx context.Context) ([]*entity.TaxRate, error) {
	taxes, err := s.catalogRepo.Taxes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list taxes")
	}

	return taxes, nil
}

// Coupons drops coupons that have expired or exhausted their usage limit;
// the backend lists them regardless.
func (s *catalogService) Coupons(ctx context.Context) ([]*entity.Coupon, error) {
	coupons, err := s.catalogRepo.Coupons(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	now := time.Now()
	usable := make([]*entity.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		if couponUsable(coupon, now) {
			usable = append(usable, coupon)
		}
	}

	return usable, nil
}

func (s *catalogService) PageBySlug(ctx context.Context, slug string) (*entity.Page, error) {
	page, err := s.catalogRepo.PageBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load page")
	}

	return page, nil
}

func couponUsable(coupon *entity.Coupon, now time.Time) bool {
	if coupon.UsageLimit != nil && coupon.UsageCount >= *coupon.UsageLimit {
		return false
	}
	if coupon.DateExpires != nil && *coupon.DateExpires != "" {
		// The backend reports expiry as a naive local timestamp.
		expires, err := time.Parse("2006-01-02T15:04:05", *coupon.DateExpires)
		if err == nil && now.After(expires) {
			return false
		}
	}

	return true
}
