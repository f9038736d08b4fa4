package entity

// Cart is the remote cart record as reported by the commerce backend. The
// storefront never computes totals or discounts itself; it caches and
// displays what the backend returns.
type Cart struct {
	Items   []LineItem      `json:"items"`
	Coupons []AppliedCoupon `json:"coupons"`
	Totals  CartTotals      `json:"totals"`

	// Some backend builds return the anti-forgery token in the body rather
	// than the response header; both fields are fallbacks for the header.
	CartNonce string `json:"cart_nonce,omitempty"`
	Nonce     string `json:"nonce,omitempty"`
}

// LineItem is one product/variation/quantity entry within the cart.
type LineItem struct {
	Key       string               `json:"key"`
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	Quantity  int                  `json:"quantity"`
	Permalink string               `json:"permalink,omitempty"`
	Variation []VariationAttribute `json:"variation,omitempty"`
	Images    []ItemImage          `json:"images,omitempty"`
	Prices    ItemPrices           `json:"prices"`
	Totals    ItemTotals           `json:"totals"`
}

// VariationAttribute selects one attribute/value pair of a configurable
// product, e.g. {"attribute": "pa_metal", "value": "rose-gold"}.
type VariationAttribute struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

type ItemImage struct {
	Thumbnail string `json:"thumbnail,omitempty"`
	Alt       string `json:"alt,omitempty"`
}

type ItemPrices struct {
	Price        string `json:"price"`
	RegularPrice string `json:"regular_price,omitempty"`
	SalePrice    string `json:"sale_price,omitempty"`
}

type ItemTotals struct {
	LineTotal string `json:"line_total"`
}

// AppliedCoupon is a backend-validated discount attached to the cart.
type AppliedCoupon struct {
	Code   string       `json:"code"`
	Totals CouponTotals `json:"totals"`
}

type CouponTotals struct {
	TotalDiscount string `json:"total_discount"`
}

// CartTotals are minor-unit amounts reported as strings by the backend.
type CartTotals struct {
	TotalItems     string `json:"total_items"`
	TotalDiscount  string `json:"total_discount"`
	TotalShipping  string `json:"total_shipping"`
	TotalPrice     string `json:"total_price"`
	CurrencySymbol string `json:"currency_symbol"`
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// HasCoupon reports whether the given code is already applied.
func (c *Cart) HasCoupon(code string) bool {
	if c == nil {
		return false
	}
	for _, coupon := range c.Coupons {
		if coupon.Code == code {
			return true
		}
	}

	return false
}

// BodyNonce returns the anti-forgery token embedded in the cart body, if any.
func (c *Cart) BodyNonce() string {
	if c == nil {
		return ""
	}
	if c.CartNonce != "" {
		return c.CartNonce
	}

	return c.Nonce
}
