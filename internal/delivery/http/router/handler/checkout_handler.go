package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for checkout handlers.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Prefill returns the saved addresses for seeding the checkout form.
func (h *CheckoutHandler) Prefill(c echo.Context) error {
	draft, err := h.uc.Prefill(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, draft, "")
}

// PlaceOrder submits the current cart as an order.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	confirmation, err := h.uc.PlaceOrder(c.Request().Context(), middleware.CurrentSession(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, confirmation, "Order placed")
}

// ConfirmPayment verifies the payment result and marks the order paid.
func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input usecase.ConfirmPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment confirmation input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	receipt, err := h.uc.ConfirmPayment(c.Request().Context(), middleware.CurrentSession(c), orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipt, "Payment confirmed")
}

// Abandon cancels an order whose payment sheet was dismissed. The order
// key from the order confirmation authorizes the cancellation.
func (h *CheckoutHandler) Abandon(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input usecase.AbandonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid abandon input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Abandon(c.Request().Context(), middleware.CurrentSession(c), orderID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"order_id": orderID}, "Order cancelled")
}

// LookupPostcode resolves a postal code for address autofill.
func (h *CheckoutHandler) LookupPostcode(c echo.Context) error {
	info, err := h.uc.LookupPostcode(c.Request().Context(), c.Param("pincode"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, info, "")
}

func orderIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
