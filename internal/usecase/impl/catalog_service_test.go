package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) Products(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, error) {
	args := m.Called(ctx, query)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *mockCatalogRepository) ProductByID(ctx context.Context, productID int64) (*entity.Product, error) {
	args := m.Called(ctx, productID)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *mockCatalogRepository) Categories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*entity.Category)

	return categories, args.Error(1)
}

func (m *mockCatalogRepository) PaymentGateways(ctx context.Context) ([]*entity.PaymentGateway, error) {
	args := m.Called(ctx)
	gateways, _ := args.Get(0).([]*entity.PaymentGateway)

	return gateways, args.Error(1)
}

func (m *mockCatalogRepository) ShippingMethods(ctx context.Context) ([]*entity.ShippingMethod, error) {
	args := m.Called(ctx)
	methods, _ := args.Get(0).([]*entity.ShippingMethod)

	return methods, args.Error(1)
}

func (m *mockCatalogRepository) ShippingClasses(ctx context.Context) ([]*entity.ShippingClass, error) {
	args := m.Called(ctx)
	classes, _ := args.Get(0).([]*entity.ShippingClass)

	return classes, args.Error(1)
}

func (m *mockCatalogRepository) Taxes(ctx context.Context) ([]*entity.TaxRate, error) {
	args := m.Called(ctx)
	taxes, _ := args.Get(0).([]*entity.TaxRate)

	return taxes, args.Error(1)
}

func (m *mockCatalogRepository) Coupons(ctx context.Context) ([]*entity.Coupon, error) {
	args := m.Called(ctx)
	coupons, _ := args.Get(0).([]*entity.Coupon)

	return coupons, args.Error(1)
}

func (m *mockCatalogRepository) PageBySlug(ctx context.Context, slug string) (*entity.Page, error) {
	args := m.Called(ctx, slug)
	page, _ := args.Get(0).(*entity.Page)

	return page, args.Error(1)
}

func TestCatalogService_PaymentGateways_FiltersAndSorts(t *testing.T) {
	catalogRepo := &mockCatalogRepository{}
	service := NewCatalogService(catalogRepo)

	ctx := context.Background()
	catalogRepo.On("PaymentGateways", ctx).Return([]*entity.PaymentGateway{
		{ID: "cheque", Enabled: false, Order: 0},
		{ID: "cod", Enabled: true, Order: 2},
		{ID: "razorpay", Enabled: true, Order: 1},
	}, nil)

	gateways, err := service.PaymentGateways(ctx)
	require.NoError(t, err)
	require.Len(t, gateways, 2)
	assert.Equal(t, "razorpay", gateways[0].ID)
	assert.Equal(t, "cod", gateways[1].ID)
}

func TestCatalogService_Coupons_DropsExpiredAndExhausted(t *testing.T) {
	catalogRepo := &mockCatalogRepository{}
	service := NewCatalogService(catalogRepo)

	ctx := context.Background()
	past := time.Now().Add(-24 * time.Hour).Format("2006-01-02T15:04:05")
	future := time.Now().Add(24 * time.Hour).Format("2006-01-02T15:04:05")
	limit := 5

	catalogRepo.On("Coupons", ctx).Return([]*entity.Coupon{
		{Code: "EXPIRED", DateExpires: &past},
		{Code: "ACTIVE", DateExpires: &future},
		{Code: "EXHAUSTED", UsageCount: 5, UsageLimit: &limit},
		{Code: "OPEN"},
	}, nil)

	coupons, err := service.Coupons(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 2)
	assert.Equal(t, "ACTIVE", coupons[0].Code)
	assert.Equal(t, "OPEN", coupons[1].Code)
}

func TestCatalogService_Products_PassesQueryThrough(t *testing.T) {
	catalogRepo := &mockCatalogRepository{}
	service := NewCatalogService(catalogRepo)

	ctx := context.Background()
	query := repository.ProductQuery{Category: "rings", PerPage: 12, OrderBy: "price", Order: "asc"}
	catalogRepo.On("Products", ctx, query).Return([]*entity.Product{{ID: 1}}, nil)

	products, err := service.Products(ctx, query)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
