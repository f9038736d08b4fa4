package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture() (*mockCheckoutRepository, *mockCartRepository, *mockOrderRepository, *mockCartCache, *mockPaymentVerifier, *mockPostcodeLookup, usecase.CheckoutUsecase) {
	checkoutRepo := &mockCheckoutRepository{}
	cartRepo := &mockCartRepository{}
	orderRepo := &mockOrderRepository{}
	cache := &mockCartCache{}
	verifier := &mockPaymentVerifier{}
	postcodes := &mockPostcodeLookup{}
	service := NewCheckoutService(checkoutRepo, cartRepo, orderRepo, cache, verifier, postcodes, testLogger())

	return checkoutRepo, cartRepo, orderRepo, cache, verifier, postcodes, service
}

func validAddress() entity.Address {
	return entity.Address{
		FirstName: "Jane",
		LastName:  "Doe",
		Address1:  "1 Main St",
		City:      "Mumbai",
		State:     "MH",
		Postcode:  "400001",
		Country:   "IN",
		Email:     "jane@example.com",
		Phone:     "9999999999",
	}
}

func TestCheckoutService_PlaceOrder_MissingFieldsNeverHitNetwork(t *testing.T) {
	checkoutRepo, cartRepo, _, _, _, _, service := newCheckoutFixture()

	incomplete := validAddress()
	incomplete.City = ""

	_, err := service.PlaceOrder(context.Background(), authedSession(), usecase.PlaceOrderInput{
		Billing:       incomplete,
		Shipping:      validAddress(),
		PaymentMethod: "razorpay",
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredFields)
	checkoutRepo.AssertNotCalled(t, "Submit")
	cartRepo.AssertNotCalled(t, "Fetch")
}

func TestCheckoutService_PlaceOrder_MissingBillingContactRejected(t *testing.T) {
	checkoutRepo, _, _, _, _, _, service := newCheckoutFixture()

	billing := validAddress()
	billing.Phone = ""

	_, err := service.PlaceOrder(context.Background(), authedSession(), usecase.PlaceOrderInput{
		Billing:       billing,
		Shipping:      validAddress(),
		PaymentMethod: "razorpay",
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredFields)
	checkoutRepo.AssertNotCalled(t, "Submit")
}

func TestCheckoutService_PlaceOrder_GatewayOrderAwaitsPayment(t *testing.T) {
	checkoutRepo, _, _, cache, _, _, service := newCheckoutFixture()

	ctx := context.Background()
	session := authedSession()

	cache.On("GetNonce", ctx, "customer:42").Return("nonce-1", true)
	checkoutRepo.On("Submit", ctx, session, "nonce-1", mock.MatchedBy(func(order *entity.OrderRequest) bool {
		return order.PaymentMethod == "razorpay"
	})).Return(&entity.OrderConfirmation{
		OrderID:         1001,
		Status:          "pending",
		RazorpayOrderID: "order_xyz",
	}, nil)

	confirmation, err := service.PlaceOrder(ctx, session, usecase.PlaceOrderInput{
		Billing:       validAddress(),
		Shipping:      validAddress(),
		PaymentMethod: "razorpay",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutAwaitingPayment, confirmation.State)
	assert.Equal(t, int64(1001), confirmation.OrderID)
}

func TestCheckoutService_PlaceOrder_OfflineMethodConfirmsImmediately(t *testing.T) {
	checkoutRepo, _, _, cache, _, _, service := newCheckoutFixture()

	ctx := context.Background()
	session := authedSession()

	cache.On("GetNonce", ctx, "customer:42").Return("nonce-1", true)
	checkoutRepo.On("Submit", ctx, session, "nonce-1", mock.Anything).Return(&entity.OrderConfirmation{
		OrderID: 1002,
		Status:  "processing",
	}, nil)

	confirmation, err := service.PlaceOrder(ctx, session, usecase.PlaceOrderInput{
		Billing:       validAddress(),
		Shipping:      validAddress(),
		PaymentMethod: "cod",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutConfirmed, confirmation.State)
}

func TestCheckoutService_PlaceOrder_TransportFailureBecomesCheckoutFailed(t *testing.T) {
	checkoutRepo, _, _, cache, _, _, service := newCheckoutFixture()

	ctx := context.Background()
	session := authedSession()

	cache.On("GetNonce", ctx, "customer:42").Return("nonce-1", true)
	checkoutRepo.On("Submit", ctx, session, "nonce-1", mock.Anything).
		Return(nil, errors.New("connection reset"))

	_, err := service.PlaceOrder(ctx, session, usecase.PlaceOrderInput{
		Billing:       validAddress(),
		Shipping:      validAddress(),
		PaymentMethod: "razorpay",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutFailed)
}

func TestCheckoutService_ConfirmPayment_BadSignatureStopsBeforeConfirm(t *testing.T) {
	checkoutRepo, _, _, _, verifier, _, service := newCheckoutFixture()

	verifier.On("VerifySignature", "order_xyz", "pay_1", "sig").
		Return(domainerrors.ErrPaymentVerification)

	_, err := service.ConfirmPayment(context.Background(), authedSession(), 1001, usecase.ConfirmPaymentInput{
		PaymentID: "pay_1",
		OrderID:   "order_xyz",
		Signature: "sig",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentVerification)
	checkoutRepo.AssertNotCalled(t, "Confirm")
}

func TestCheckoutService_ConfirmPayment_ClearsEveryCartLine(t *testing.T) {
	checkoutRepo, cartRepo, _, cache, verifier, _, service := newCheckoutFixture()

	ctx := context.Background()
	session := authedSession()
	remaining := cartWithItems(
		entity.LineItem{Key: "k1", ID: 1, Quantity: 1},
		entity.LineItem{Key: "k2", ID: 2, Quantity: 2},
	)

	verifier.On("VerifySignature", "order_xyz", "pay_1", "sig").Return(nil)
	cache.On("GetNonce", ctx, "customer:42").Return("nonce-1", true)
	checkoutRepo.On("Prefill", ctx, session, "nonce-1").Return(&entity.CheckoutDraft{
		BillingAddress:  validAddress(),
		ShippingAddress: validAddress(),
	}, nil)
	checkoutRepo.On("Confirm", ctx, session, "nonce-1", int64(1001), mock.MatchedBy(func(conf *entity.PaymentConfirmation) bool {
		return conf.SetPaid && conf.RazorpayPaymentID == "pay_1" && conf.TransactionID == "pay_1"
	})).Return(&entity.OrderConfirmation{OrderID: 1001, Status: "processing"}, nil)
	cartRepo.On("Fetch", ctx, session).Return(remaining, "nonce-1", nil)
	cartRepo.On("RemoveItem", ctx, session, "nonce-1", "k1").Return(cartWithItems(), nil)
	cartRepo.On("RemoveItem", ctx, session, "nonce-1", "k2").Return(cartWithItems(), nil)
	cache.On("Invalidate", ctx, "customer:42").Return(nil)

	receipt, err := service.ConfirmPayment(ctx, session, 1001, usecase.ConfirmPaymentInput{
		PaymentID: "pay_1",
		OrderID:   "order_xyz",
		Signature: "sig",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, receipt.ItemsCleared)
	assert.Equal(t, entity.CheckoutConfirmed, receipt.State)
	cartRepo.AssertNumberOfCalls(t, "RemoveItem", 2)
}

func TestCheckoutService_ConfirmPayment_PartialClearCounted(t *testing.T) {
	checkoutRepo, cartRepo, _, cache, verifier, _, service := newCheckoutFixture()

	ctx := context.Background()
	session := authedSession()
	remaining := cartWithItems(
		entity.LineItem{Key: "k1", ID: 1, Quantity: 1},
		entity.LineItem{Key: "k2", ID: 2, Quantity: 1},
	)

	verifier.On("VerifySignature", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	cache.On("GetNonce", ctx, "customer:42").Return("nonce-1", true)
	checkoutRepo.On("Prefill", ctx, session, "nonce-1").Return(&entity.CheckoutDraft{}, nil)
	checkoutRepo.On("Confirm", ctx, session, "nonce-1", int64(1001), mock.Anything).
		Return(&entity.OrderConfirmation{OrderID: 1001, Status: "processing"}, nil)
	cartRepo.On("Fetch", ctx, session).Return(remaining, "nonce-1", nil)
	cartRepo.On("RemoveItem", ctx, session, "nonce-1", "k1").Return(cartWithItems(), nil)
	cartRepo.On("RemoveItem", ctx, session, "nonce-1", "k2").Return(nil, errors.New("conflict"))
	cache.On("Invalidate", ctx, "customer:42").Return(nil)

	receipt, err := service.ConfirmPayment(ctx, session, 1001, usecase.ConfirmPaymentInput{
		PaymentID: "pay_1",
		OrderID:   "order_xyz",
		Signature: "sig",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.ItemsCleared)
}

func TestCheckoutService_Abandon_CancelsOwnPendingOrder(t *testing.T) {
	_, _, orderRepo, _, _, _, service := newCheckoutFixture()

	ctx := context.Background()
	orderRepo.On("FindByID", ctx, int64(1001)).Return(&entity.Order{
		ID:         1001,
		OrderKey:   "wc_order_abc",
		Status:     entity.OrderPending,
		CustomerID: 42,
	}, nil)
	orderRepo.On("UpdateStatus", ctx, int64(1001), entity.OrderCancelled).
		Return(&entity.Order{ID: 1001, Status: entity.OrderCancelled}, nil)

	err := service.Abandon(ctx, authedSession(), 1001, usecase.AbandonInput{OrderKey: "wc_order_abc"})
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestCheckoutService_Abandon_GuestOrderNeedsTheOrderKey(t *testing.T) {
	_, _, orderRepo, _, _, _, service := newCheckoutFixture()

	ctx := context.Background()
	orderRepo.On("FindByID", ctx, int64(555)).Return(&entity.Order{
		ID:       555,
		OrderKey: "wc_order_secret",
		Status:   entity.OrderPending,
	}, nil)

	err := service.Abandon(ctx, entity.Guest(), 555, usecase.AbandonInput{OrderKey: "wc_order_guess"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	orderRepo.AssertNotCalled(t, "UpdateStatus")

	orderRepo.ExpectedCalls = nil
	orderRepo.On("FindByID", ctx, int64(555)).Return(&entity.Order{
		ID:       555,
		OrderKey: "wc_order_secret",
		Status:   entity.OrderPending,
	}, nil)
	orderRepo.On("UpdateStatus", ctx, int64(555), entity.OrderCancelled).
		Return(&entity.Order{ID: 555, Status: entity.OrderCancelled}, nil)

	err = service.Abandon(ctx, entity.Guest(), 555, usecase.AbandonInput{OrderKey: "wc_order_secret"})
	require.NoError(t, err)
}

func TestCheckoutService_Abandon_ForeignOrderRefused(t *testing.T) {
	_, _, orderRepo, _, _, _, service := newCheckoutFixture()

	ctx := context.Background()
	orderRepo.On("FindByID", ctx, int64(556)).Return(&entity.Order{
		ID:         556,
		OrderKey:   "wc_order_abc",
		Status:     entity.OrderPending,
		CustomerID: 99,
	}, nil)

	err := service.Abandon(ctx, authedSession(), 556, usecase.AbandonInput{OrderKey: "wc_order_abc"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	orderRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestCheckoutService_Abandon_PaidOrderNotCancellable(t *testing.T) {
	_, _, orderRepo, _, _, _, service := newCheckoutFixture()

	ctx := context.Background()
	orderRepo.On("FindByID", ctx, int64(557)).Return(&entity.Order{
		ID:         557,
		OrderKey:   "wc_order_abc",
		Status:     entity.OrderCompleted,
		CustomerID: 42,
	}, nil)

	err := service.Abandon(ctx, authedSession(), 557, usecase.AbandonInput{OrderKey: "wc_order_abc"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCheckoutState)
	orderRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestCheckoutService_LookupPostcode_Delegates(t *testing.T) {
	_, _, _, _, _, postcodes, service := newCheckoutFixture()

	ctx := context.Background()
	postcodes.On("Lookup", ctx, "400001").Return(&entity.PostcodeInfo{
		Pincode:  "400001",
		District: "Mumbai",
		State:    "Maharashtra",
	}, nil)

	info, err := service.LookupPostcode(ctx, "400001")
	require.NoError(t, err)
	assert.Equal(t, "Maharashtra", info.State)
}

func TestCheckoutState_Transitions(t *testing.T) {
	assert.True(t, entity.CheckoutCollecting.CanTransition(entity.CheckoutSubmitting))
	assert.True(t, entity.CheckoutSubmitting.CanTransition(entity.CheckoutAwaitingPayment))
	assert.True(t, entity.CheckoutAwaitingPayment.CanTransition(entity.CheckoutCollecting))
	assert.False(t, entity.CheckoutConfirmed.CanTransition(entity.CheckoutSubmitting))
	assert.False(t, entity.CheckoutCollecting.CanTransition(entity.CheckoutConfirmed))
}
