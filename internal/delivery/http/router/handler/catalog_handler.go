package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the read-only catalog handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Products lists products with the backend's filter parameters passed
// through from the query string.
func (h *CatalogHandler) Products(c echo.Context) error {
	query := repository.ProductQuery{
		Page:          intQuery(c, "page"),
		PerPage:       intQuery(c, "per_page"),
		Search:        c.QueryParam("search"),
		Slug:          c.QueryParam("slug"),
		Category:      c.QueryParam("category"),
		OrderBy:       c.QueryParam("orderby"),
		Order:         c.QueryParam("order"),
		MinPrice:      intQuery(c, "min_price"),
		MaxPrice:      intQuery(c, "max_price"),
		Featured:      c.QueryParam("featured") == "true",
		Attribute:     c.QueryParam("attribute"),
		AttributeTerm: c.QueryParam("attribute_term"),
	}

	products, err := h.uc.Products(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Product returns one product by id.
func (h *CatalogHandler) Product(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.Product(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Categories lists all product categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// PaymentGateways lists the enabled payment methods in display order.
func (h *CatalogHandler) PaymentGateways(c echo.Context) error {
	gateways, err := h.uc.PaymentGateways(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, gateways, "")
}

// ShippingMethods lists the configured shipping methods.
func (h *CatalogHandler) ShippingMethods(c echo.Context) error {
	methods, err := h.uc.ShippingMethods(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, methods, "")
}

// ShippingClasses lists the configured shipping classes.
func (h *CatalogHandler) ShippingClasses(c echo.Context) error {
	classes, err := h.uc.ShippingClasses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, classes, "")
}

// Taxes lists the configured tax rates.
func (h *CatalogHandler) Taxes(c echo.Context) error {
	taxes, err := h.uc.Taxes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, taxes, "")
}

// Coupons lists the coupons still usable today.
func (h *CatalogHandler) Coupons(c echo.Context) error {
	coupons, err := h.uc.Coupons(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "")
}

// Page returns a CMS page by slug.
func (h *CatalogHandler) Page(c echo.Context) error {
	page, err := h.uc.PageBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

func intQuery(c echo.Context, name string) int {
	n, _ := strconv.Atoi(c.QueryParam(name))

	return n
}
