package entity

// Product is a catalog record passed through from the commerce backend.
// Only the fields the storefront surfaces are modeled; unknown fields are
// dropped on decode.
type Product struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	Featured      bool           `json:"featured"`
	Description   string         `json:"description"`
	ShortDesc     string         `json:"short_description"`
	Price         string         `json:"price"`
	RegularPrice  string         `json:"regular_price"`
	SalePrice     string         `json:"sale_price"`
	OnSale        bool           `json:"on_sale"`
	StockStatus   string         `json:"stock_status"`
	Images        []ProductImage `json:"images"`
	Categories    []CategoryRef  `json:"categories"`
	AverageRating string         `json:"average_rating"`
	RatingCount   int            `json:"rating_count"`
}

type ProductImage struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Category is a product category with its display image.
type Category struct {
	ID     int64         `json:"id"`
	Name   string        `json:"name"`
	Slug   string        `json:"slug"`
	Parent int64         `json:"parent"`
	Count  int           `json:"count"`
	Image  *ProductImage `json:"image,omitempty"`
}

// PaymentGateway is one payment method offered at checkout. Order controls
// display position and may arrive as either a string or a number.
type PaymentGateway struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Enabled     bool   `json:"enabled"`
	MethodTitle string `json:"method_title"`
}

// ShippingMethod is a backend-configured shipping option.
type ShippingMethod struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ShippingClass groups products for shipping rate purposes.
type ShippingClass struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TaxRate is a backend-configured tax entry.
type TaxRate struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Rate  string `json:"rate"`
	Class string `json:"class"`
}

// Page is a CMS page fetched by slug (about, contact, policies).
type Page struct {
	ID      int64       `json:"id"`
	Slug    string      `json:"slug"`
	Title   RenderedStr `json:"title"`
	Content RenderedStr `json:"content"`
}

// RenderedStr is the CMS "rendered" wrapper around HTML content.
type RenderedStr struct {
	Rendered string `json:"rendered"`
}

// Coupon is a backend-validated discount definition, listed so the
// storefront can offer applicable codes at checkout.
type Coupon struct {
	ID            int64   `json:"id"`
	Code          string  `json:"code"`
	Amount        string  `json:"amount"`
	DiscountType  string  `json:"discount_type"`
	Description   string  `json:"description"`
	DateExpires   *string `json:"date_expires"`
	UsageCount    int     `json:"usage_count"`
	UsageLimit    *int    `json:"usage_limit"`
	FreeShipping  bool    `json:"free_shipping"`
	MinimumAmount string  `json:"minimum_amount"`
	MaximumAmount string  `json:"maximum_amount"`
}
