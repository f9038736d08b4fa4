package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GetCart returns the caller's cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.uc.GetCart(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem adds a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid add-item input")
	}

	cart, err := h.uc.AddItem(c.Request().Context(), middleware.CurrentSession(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// RemoveItem removes one line item by its cart key.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing item key")
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), middleware.CurrentSession(c), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// UpdateItem changes the quantity of one line item.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var input usecase.UpdateItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update-item input")
	}
	input.Key = c.Param("key")

	cart, err := h.uc.UpdateItem(c.Request().Context(), middleware.CurrentSession(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item quantity updated")
}

// ApplyCoupon applies a coupon code to the cart.
func (h *CartHandler) ApplyCoupon(c echo.Context) error {
	var input usecase.CouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	cart, err := h.uc.ApplyCoupon(c.Request().Context(), middleware.CurrentSession(c), input.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Coupon applied")
}

// RemoveCoupon removes a coupon code from the cart.
func (h *CartHandler) RemoveCoupon(c echo.Context) error {
	var input usecase.CouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	cart, err := h.uc.RemoveCoupon(c.Request().Context(), middleware.CurrentSession(c), input.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Coupon removed")
}

// Merge transfers the shared guest cart into the authenticated customer's
// cart. Normally triggered automatically at login; exposed for retries.
func (h *CartHandler) Merge(c echo.Context) error {
	summary, err := h.uc.MergeGuestCart(c.Request().Context(), entity.Guest(), middleware.CurrentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Cart merged")
}
