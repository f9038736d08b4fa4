// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	CustomerHandler *handler.CustomerHandler
	CatalogHandler  *handler.CatalogHandler
	WishlistHandler *handler.WishlistHandler

	SessionMiddleware   *middleware.SessionMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.SessionMiddleware.Resolve)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.SessionHandler.Login)
		authGroup.POST("/logout", r.params.SessionHandler.Logout)
	}

	// Cart routes work for guests and customers alike; the session decides
	// which remote cart is addressed.
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:key", r.params.CartHandler.UpdateItem)
		cartGroup.DELETE("/items/:key", r.params.CartHandler.RemoveItem)
		cartGroup.POST("/coupons", r.params.CartHandler.ApplyCoupon)
		cartGroup.DELETE("/coupons", r.params.CartHandler.RemoveCoupon)
		cartGroup.POST("/merge", r.params.CartHandler.Merge, r.params.SessionMiddleware.RequireAuth)
	}

	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.GET("", r.params.CheckoutHandler.Prefill)
		checkoutGroup.POST("", r.params.CheckoutHandler.PlaceOrder)
		checkoutGroup.POST("/:id/payment", r.params.CheckoutHandler.ConfirmPayment)
		checkoutGroup.POST("/:id/abandon", r.params.CheckoutHandler.Abandon)
		checkoutGroup.GET("/postcode/:pincode", r.params.CheckoutHandler.LookupPostcode)
	}

	// Customer account routes
	e.POST("/customers", r.params.CustomerHandler.Register)
	customerGroup := e.Group("/customers/me")
	customerGroup.Use(r.params.SessionMiddleware.RequireAuth)
	{
		customerGroup.GET("", r.params.CustomerHandler.Profile)
		customerGroup.PUT("", r.params.CustomerHandler.UpdateProfile)
		customerGroup.PUT("/password", r.params.CustomerHandler.ChangePassword)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.params.SessionMiddleware.RequireAuth)
	{
		orderGroup.GET("", r.params.CustomerHandler.Orders)
		orderGroup.GET("/:id", r.params.CustomerHandler.Order)
	}

	// Read-only catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.params.CatalogHandler.Products)
		catalogGroup.GET("/products/:id", r.params.CatalogHandler.Product)
		catalogGroup.GET("/categories", r.params.CatalogHandler.Categories)
		catalogGroup.GET("/payment-gateways", r.params.CatalogHandler.PaymentGateways)
		catalogGroup.GET("/shipping-methods", r.params.CatalogHandler.ShippingMethods)
		catalogGroup.GET("/shipping-classes", r.params.CatalogHandler.ShippingClasses)
		catalogGroup.GET("/taxes", r.params.CatalogHandler.Taxes)
		catalogGroup.GET("/coupons", r.params.CatalogHandler.Coupons)
		catalogGroup.GET("/pages/:slug", r.params.CatalogHandler.Page)
	}

	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.params.SessionMiddleware.RequireAuth)
	{
		wishlistGroup.GET("", r.params.WishlistHandler.List)
		wishlistGroup.POST("/items", r.params.WishlistHandler.Add)
		wishlistGroup.DELETE("/items", r.params.WishlistHandler.Remove)
		wishlistGroup.POST("/move-to-cart", r.params.WishlistHandler.MoveToCart)
	}
}
