package entity

import "time"

// OrderStatus is the backend-owned order lifecycle enum.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
	OrderFailed     OrderStatus = "failed"
	OrderRefunded   OrderStatus = "refunded"
)

// Order is a remote order record. Immutable from the storefront's
// perspective except for the post-payment confirmation and the explicit
// cancellation of abandoned unpaid orders.
type Order struct {
	ID                 int64           `json:"id"`
	OrderKey           string          `json:"order_key"`
	Status             OrderStatus     `json:"status"`
	Currency           string          `json:"currency"`
	Total              string          `json:"total"`
	DiscountTotal      string          `json:"discount_total"`
	ShippingTotal      string          `json:"shipping_total"`
	PaymentMethod      string          `json:"payment_method"`
	PaymentMethodTitle string          `json:"payment_method_title"`
	TransactionID      string          `json:"transaction_id,omitempty"`
	CustomerID         int64           `json:"customer_id"`
	CustomerNote       string          `json:"customer_note,omitempty"`
	Billing            Address         `json:"billing"`
	Shipping           Address         `json:"shipping"`
	LineItems          []OrderLineItem `json:"line_items"`
	DateCreated        time.Time       `json:"date_created"`
}

// OrderLineItem is one purchased product line within an order.
type OrderLineItem struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
}
