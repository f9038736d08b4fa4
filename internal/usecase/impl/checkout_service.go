package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

const razorpayMethod = "razorpay"

type checkoutService struct {
	checkoutRepo repository.CheckoutRepository
	cartRepo     repository.CartRepository
	orderRepo    repository.OrderRepository
	cache        repository.CartCache
	verifier     service.PaymentVerifier
	postcodes    service.PostcodeLookup
	logger       *slog.Logger
}

// NewCheckoutService creates a new checkout service instance.
func NewCheckoutService(
	checkoutRepo repository.CheckoutRepository,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	cache repository.CartCache,
	verifier service.PaymentVerifier,
	postcodes service.PostcodeLookup,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		checkoutRepo: checkoutRepo,
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		cache:        cache,
		verifier:     verifier,
		postcodes:    postcodes,
		logger:       logger,
	}
}

func (s *checkoutService) Prefill(ctx context.Context, session *entity.Session) (*entity.CheckoutDraft, error) {
	nonce, err := s.nonce(ctx, session)
	if err != nil {
		return nil, err
	}

	draft, err := s.checkoutRepo.Prefill(ctx, session, nonce)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load checkout draft")
	}

	return draft, nil
}

// PlaceOrder submits the current cart as an order. The address gate runs
// before any network call; a checkout missing required fields never leaves
// the collecting-input state.
func (s *checkoutService) PlaceOrder(ctx context.Context, session *entity.Session, input usecase.PlaceOrderInput) (*entity.OrderConfirmation, error) {
	if err := requireAddressFields(&input.Billing, &input.Shipping); err != nil {
		return nil, err
	}
	if input.PaymentMethod == "" {
		return nil, domainerrors.ErrMissingRequiredFields
	}

	state := entity.CheckoutCollecting
	state, err := advance(state, entity.CheckoutSubmitting)
	if err != nil {
		return nil, err
	}

	nonce, err := s.nonce(ctx, session)
	if err != nil {
		return nil, err
	}

	confirmation, err := s.checkoutRepo.Submit(ctx, session, nonce, &entity.OrderRequest{
		BillingAddress:  input.Billing,
		ShippingAddress: input.Shipping,
		CustomerNote:    input.CustomerNote,
		PaymentMethod:   input.PaymentMethod,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, errors.Wrap(err, "order submission failed")
		}

		return nil, domainerrors.ErrCheckoutFailed
	}

	next := entity.CheckoutConfirmed
	if confirmation.RazorpayOrderID != "" {
		next = entity.CheckoutAwaitingPayment
	}
	if confirmation.State, err = advance(state, next); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		slog.Int64("order_id", confirmation.OrderID),
		slog.String("state", string(confirmation.State)))

	return confirmation, nil
}

// ConfirmPayment verifies the gateway signature, marks the order paid and
// clears the cart one line at a time. Cleared lines are counted so the
// caller can tell a partial clear from a full one.
func (s *checkoutService) ConfirmPayment(ctx context.Context, session *entity.Session, orderID int64, input usecase.ConfirmPaymentInput) (*entity.PaymentReceipt, error) {
	state, err := advance(entity.CheckoutAwaitingPayment, entity.CheckoutConfirmed)
	if err != nil {
		return nil, err
	}

	if err := s.verifier.VerifySignature(input.OrderID, input.PaymentID, input.Signature); err != nil {
		return nil, err
	}

	nonce, err := s.nonce(ctx, session)
	if err != nil {
		return nil, err
	}

	draft, err := s.checkoutRepo.Prefill(ctx, session, nonce)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load checkout draft")
	}

	confirmation, err := s.checkoutRepo.Confirm(ctx, session, nonce, orderID, &entity.PaymentConfirmation{
		BillingAddress:     draft.BillingAddress,
		ShippingAddress:    draft.ShippingAddress,
		PaymentMethod:      razorpayMethod,
		PaymentMethodTitle: "Razorpay",
		TransactionID:      input.PaymentID,
		SetPaid:            true,
		RazorpayPaymentID:  input.PaymentID,
		RazorpayOrderID:    input.OrderID,
		RazorpaySignature:  input.Signature,
	})
	if err != nil {
		return nil, errors.Wrap(err, "payment confirmation failed")
	}

	receipt := &entity.PaymentReceipt{
		OrderID: confirmation.OrderID,
		Status:  confirmation.Status,
		State:   state,
	}
	receipt.ItemsCleared = s.clearCart(ctx, session, nonce)

	return receipt, nil
}

// Abandon cancels an unpaid order after a dismissed payment sheet so its
// items are not stranded; the next checkout attempt creates a fresh order.
//
// The order is loaded first and must match the presented order key, belong
// to the session's customer when it has one, and still be pending. A wrong
// key or a foreign order reads as not found; anything already paid or
// otherwise progressed refuses the transition.
func (s *checkoutService) Abandon(ctx context.Context, session *entity.Session, orderID int64, input usecase.AbandonInput) error {
	if _, err := advance(entity.CheckoutAwaitingPayment, entity.CheckoutCollecting); err != nil {
		return err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load order")
	}

	if order.OrderKey == "" || order.OrderKey != input.OrderKey {
		return domainerrors.ErrNotFound
	}
	if order.CustomerID != 0 && order.CustomerID != session.CustomerID {
		return domainerrors.ErrNotFound
	}
	if order.Status != entity.OrderPending {
		return domainerrors.ErrInvalidCheckoutState
	}

	if _, err := s.orderRepo.UpdateStatus(ctx, orderID, entity.OrderCancelled); err != nil {
		return errors.Wrap(err, "failed to cancel abandoned order")
	}

	s.logger.Info("unpaid order cancelled", slog.Int64("order_id", orderID))

	return nil
}

func (s *checkoutService) LookupPostcode(ctx context.Context, pincode string) (*entity.PostcodeInfo, error) {
	return s.postcodes.Lookup(ctx, pincode)
}

// clearCart removes every line of the cart, returning how many were
// removed. Failures are logged and skipped; the backend usually empties
// the cart itself once the order is paid.
func (s *checkoutService) clearCart(ctx context.Context, session *entity.Session, nonce string) int {
	cart, _, err := s.cartRepo.Fetch(ctx, session)
	if err != nil {
		s.logger.Warn("post-payment cart fetch failed", slog.Any("error", err))

		return 0
	}

	cleared := 0
	for _, item := range cart.Items {
		if _, err := s.cartRepo.RemoveItem(ctx, session, nonce, item.Key); err != nil {
			s.logger.Warn("post-payment item removal failed",
				slog.String("item_key", item.Key), slog.Any("error", err))

			continue
		}
		cleared++
	}

	if err := s.cache.Invalidate(ctx, session.CacheKey()); err != nil {
		s.logger.Warn("cart cache invalidation failed", slog.Any("error", err))
	}

	return cleared
}

func (s *checkoutService) nonce(ctx context.Context, session *entity.Session) (string, error) {
	if nonce, ok := s.cache.GetNonce(ctx, session.CacheKey()); ok {
		return nonce, nil
	}

	cart, nonce, err := s.cartRepo.Fetch(ctx, session)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch cart")
	}
	if nonce == "" {
		nonce = cart.BodyNonce()
	}
	if nonce == "" {
		return "", domainerrors.ErrNonceUnavailable
	}

	if err := s.cache.SetNonce(ctx, session.CacheKey(), nonce); err != nil {
		s.logger.Warn("nonce cache write failed", slog.Any("error", err))
	}

	return nonce, nil
}

// advance validates one state transition of the checkout flow.
func advance(from, to entity.CheckoutState) (entity.CheckoutState, error) {
	if !from.CanTransition(to) {
		return from, domainerrors.ErrInvalidCheckoutState
	}

	return to, nil
}

// requireAddressFields enforces the mandatory address fields before any
// order traffic is generated.
func requireAddressFields(billing, shipping *entity.Address) error {
	for _, addr := range []*entity.Address{billing, shipping} {
		if addr.FirstName == "" || addr.LastName == "" || addr.Address1 == "" ||
			addr.City == "" || addr.State == "" || addr.Postcode == "" {
			return domainerrors.ErrMissingRequiredFields
		}
	}
	if billing.Email == "" || billing.Phone == "" {
		return domainerrors.ErrMissingRequiredFields
	}

	return nil
}
