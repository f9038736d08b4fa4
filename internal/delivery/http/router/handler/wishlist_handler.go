package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for wishlist handlers.
type WishlistHandler struct {
	uc usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// List returns the customer's wishlist entries.
func (h *WishlistHandler) List(c echo.Context) error {
	entries, err := h.uc.List(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// Add puts a product on the wishlist.
func (h *WishlistHandler) Add(c echo.Context) error {
	var input usecase.WishlistInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Add(c.Request().Context(), middleware.CurrentSession(c), input.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, input, "Added to wishlist")
}

// Remove takes a product off the wishlist.
func (h *WishlistHandler) Remove(c echo.Context) error {
	var input usecase.WishlistInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Remove(c.Request().Context(), middleware.CurrentSession(c), input.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, input, "Removed from wishlist")
}

// MoveToCart moves every wishlisted product into the cart.
func (h *WishlistHandler) MoveToCart(c echo.Context) error {
	summary, err := h.uc.MoveAllToCart(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Wishlist moved to cart")
}
