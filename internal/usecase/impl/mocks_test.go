package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify mocks for the repository and service ports.

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) Fetch(ctx context.Context, session *entity.Session) (*entity.Cart, string, error) {
	args := m.Called(ctx, session)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.String(1), args.Error(2)
}

func (m *mockCartRepository) AddItem(ctx context.Context, session *entity.Session, nonce string, input repository.AddItemInput) (*entity.Cart, error) {
	args := m.Called(ctx, session, nonce, input)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *mockCartRepository) RemoveItem(ctx context.Context, session *entity.Session, nonce, itemKey string) (*entity.Cart, error) {
	args := m.Called(ctx, session, nonce, itemKey)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *mockCartRepository) UpdateItem(ctx context.Context, session *entity.Session, nonce, itemKey string, quantity int) (*entity.Cart, error) {
	args := m.Called(ctx, session, nonce, itemKey, quantity)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *mockCartRepository) ApplyCoupon(ctx context.Context, session *entity.Session, nonce, code string) (*entity.Cart, error) {
	args := m.Called(ctx, session, nonce, code)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *mockCartRepository) RemoveCoupon(ctx context.Context, session *entity.Session, nonce, code string) (*entity.Cart, error) {
	args := m.Called(ctx, session, nonce, code)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

type mockCartCache struct {
	mock.Mock
}

func (m *mockCartCache) GetCart(ctx context.Context, key string) (*entity.Cart, bool) {
	args := m.Called(ctx, key)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Bool(1)
}

func (m *mockCartCache) SetCart(ctx context.Context, key string, cart *entity.Cart) error {
	return m.Called(ctx, key, cart).Error(0)
}

func (m *mockCartCache) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCartCache) GetNonce(ctx context.Context, key string) (string, bool) {
	args := m.Called(ctx, key)

	return args.String(0), args.Bool(1)
}

func (m *mockCartCache) SetNonce(ctx context.Context, key, nonce string) error {
	return m.Called(ctx, key, nonce).Error(0)
}

type mockCheckoutRepository struct {
	mock.Mock
}

func (m *mockCheckoutRepository) Prefill(ctx context.Context, session *entity.Session, nonce string) (*entity.CheckoutDraft, error) {
	args := m.Called(ctx, session, nonce)
	draft, _ := args.Get(0).(*entity.CheckoutDraft)

	return draft, args.Error(1)
}

func (m *mockCheckoutRepository) Submit(ctx context.Context, session *entity.Session, nonce string, order *entity.OrderRequest) (*entity.OrderConfirmation, error) {
	args := m.Called(ctx, session, nonce, order)
	confirmation, _ := args.Get(0).(*entity.OrderConfirmation)

	return confirmation, args.Error(1)
}

func (m *mockCheckoutRepository) Confirm(ctx context.Context, session *entity.Session, nonce string, orderID int64, confirmation *entity.PaymentConfirmation) (*entity.OrderConfirmation, error) {
	args := m.Called(ctx, session, nonce, orderID, confirmation)
	result, _ := args.Get(0).(*entity.OrderConfirmation)

	return result, args.Error(1)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	args := m.Called(ctx, orderID)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, orderID, status)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

type mockPaymentVerifier struct {
	mock.Mock
}

func (m *mockPaymentVerifier) VerifySignature(gatewayOrderID, paymentID, signature string) error {
	return m.Called(gatewayOrderID, paymentID, signature).Error(0)
}

type mockPostcodeLookup struct {
	mock.Mock
}

func (m *mockPostcodeLookup) Lookup(ctx context.Context, pincode string) (*entity.PostcodeInfo, error) {
	args := m.Called(ctx, pincode)
	info, _ := args.Get(0).(*entity.PostcodeInfo)

	return info, args.Error(1)
}

type mockWishlistRepository struct {
	mock.Mock
}

func (m *mockWishlistRepository) List(ctx context.Context, userID int64) ([]*entity.WishlistEntry, error) {
	args := m.Called(ctx, userID)
	entries, _ := args.Get(0).([]*entity.WishlistEntry)

	return entries, args.Error(1)
}

func (m *mockWishlistRepository) Add(ctx context.Context, userID, productID int64) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *mockWishlistRepository) Remove(ctx context.Context, userID, productID int64) error {
	return m.Called(ctx, userID, productID).Error(0)
}

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	customer, _ := args.Get(0).(*entity.Customer)

	return customer, args.Error(1)
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, customerID int64) (*entity.Customer, error) {
	args := m.Called(ctx, customerID)
	customer, _ := args.Get(0).(*entity.Customer)

	return customer, args.Error(1)
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *entity.Customer, password string) (*entity.Customer, error) {
	args := m.Called(ctx, customer, password)
	created, _ := args.Get(0).(*entity.Customer)

	return created, args.Error(1)
}

func (m *mockCustomerRepository) Update(ctx context.Context, customerID int64, update *repository.CustomerUpdate) (*entity.Customer, error) {
	args := m.Called(ctx, customerID, update)
	customer, _ := args.Get(0).(*entity.Customer)

	return customer, args.Error(1)
}

func (m *mockCustomerRepository) ChangePassword(ctx context.Context, customerID int64, newPassword string) error {
	return m.Called(ctx, customerID, newPassword).Error(0)
}

type mockIdentityRepository struct {
	mock.Mock
}

func (m *mockIdentityRepository) Authenticate(ctx context.Context, username, password string) (*entity.AuthToken, error) {
	args := m.Called(ctx, username, password)
	token, _ := args.Get(0).(*entity.AuthToken)

	return token, args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) ParseClaims(token string) (*entity.SessionClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*entity.SessionClaims)

	return claims, args.Error(1)
}

type mockCartUsecase struct {
	mock.Mock
}

func (m *mockCartUsecase) GetCart(ctx context.Context, session *entity.Session) (*entity.Cart, error) {
	args := m.Called(ctx, session)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *mockCartUsecase) AddItem(ctx context.Context, session *entity.Session, input usecase.AddItemInput) (*entity.Cart, error) {
	args := m.Called(ctx, session, input)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *mockCartUsecase) RemoveItem(ctx context.Context, session *entity.Session, key string) (*entity.Cart, error) {
	args := m.Called(ctx, session, key)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *mockCartUsecase) UpdateItem(ctx context.Context, session *entity.Session, input usecase.UpdateItemInput) (*entity.Cart, error) {
	args := m.Called(ctx, session, input)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *mockCartUsecase) ApplyCoupon(ctx context.Context, session *entity.Session, code string) (*entity.Cart, error) {
	args := m.Called(ctx, session, code)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *mockCartUsecase) RemoveCoupon(ctx context.Context, session *entity.Session, code string) (*entity.Cart, error) {
	args := m.Called(ctx, session, code)
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *mockCartUsecase) MergeGuestCart(ctx context.Context, guest, customer *entity.Session) (*entity.MergeSummary, error) {
	args := m.Called(ctx, guest, customer)
	summary, _ := args.Get(0).(*entity.MergeSummary)

	return summary, args.Error(1)
}
