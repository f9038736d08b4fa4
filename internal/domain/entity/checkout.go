package entity

// CheckoutState is the explicit state of one checkout flow. The original
// storefront tracked these implicitly through loading flags; here every
// transition is validated.
type CheckoutState string

const (
	CheckoutCollecting      CheckoutState = "collecting-input"
	CheckoutSubmitting      CheckoutState = "submitting-order"
	CheckoutAwaitingPayment CheckoutState = "awaiting-payment"
	CheckoutConfirmed       CheckoutState = "confirmed"
	CheckoutFailed          CheckoutState = "failed"
)

// validCheckoutTransitions enumerates the allowed edges of the flow.
var validCheckoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutCollecting:      {CheckoutSubmitting},
	CheckoutSubmitting:      {CheckoutAwaitingPayment, CheckoutConfirmed, CheckoutFailed},
	CheckoutAwaitingPayment: {CheckoutConfirmed, CheckoutCollecting, CheckoutFailed},
}

// CanTransition reports whether moving from s to next is a legal step.
// Dismissing the payment sheet returns awaiting-payment to collecting-input.
func (s CheckoutState) CanTransition(next CheckoutState) bool {
	for _, allowed := range validCheckoutTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Address is a billing or shipping block in the shape the commerce backend
// expects. Email and phone are required on billing only.
type Address struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1" validate:"required"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Postcode  string `json:"postcode" validate:"required"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CheckoutDraft is the prefill record returned by the backend's checkout
// resource before submission.
type CheckoutDraft struct {
	BillingAddress  Address `json:"billing_address"`
	ShippingAddress Address `json:"shipping_address"`
	CustomerNote    string  `json:"customer_note,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
}

// OrderRequest is the order-creation payload posted to the checkout
// resource. Totals are deliberately absent: the backend computes them.
type OrderRequest struct {
	BillingAddress   Address        `json:"billing_address"`
	ShippingAddress  Address        `json:"shipping_address"`
	CustomerNote     string         `json:"customer_note,omitempty"`
	CreateAccount    bool           `json:"create_account,omitempty"`
	CustomerPassword string         `json:"customer_password,omitempty"`
	PaymentMethod    string         `json:"payment_method"`
	PaymentData      []PaymentDatum `json:"payment_data,omitempty"`
	Extensions       map[string]any `json:"extensions,omitempty"`
}

// PaymentDatum is a key/value pair forwarded to the selected gateway.
type PaymentDatum struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// OrderConfirmation is the backend's response to order creation.
type OrderConfirmation struct {
	OrderID         int64         `json:"order_id"`
	OrderKey        string        `json:"order_key"`
	Status          string        `json:"status"`
	RazorpayOrderID string        `json:"razorpay_order_id,omitempty"`
	State           CheckoutState `json:"state,omitempty"`
}

// PaymentConfirmation is posted back to the backend after the hosted
// payment sheet reports success, marking the order paid.
type PaymentConfirmation struct {
	BillingAddress     Address `json:"billing_address"`
	ShippingAddress    Address `json:"shipping_address"`
	CustomerNote       string  `json:"customer_note,omitempty"`
	PaymentMethod      string  `json:"payment_method"`
	PaymentMethodTitle string  `json:"payment_method_title"`
	TransactionID      string  `json:"transaction_id"`
	SetPaid            bool    `json:"set_paid"`
	RazorpayPaymentID  string  `json:"razorpay_payment_id"`
	RazorpayOrderID    string  `json:"razorpay_order_id"`
	RazorpaySignature  string  `json:"razorpay_signature"`
}

// PaymentReceipt summarizes a confirmed payment, including how many cart
// lines were cleared afterwards.
type PaymentReceipt struct {
	OrderID      int64         `json:"order_id"`
	Status       string        `json:"status"`
	ItemsCleared int           `json:"items_cleared"`
	State        CheckoutState `json:"state"`
}

// PostcodeInfo is the result of the postal pincode lookup used to auto-fill
// city and state during input collection.
type PostcodeInfo struct {
	Pincode  string `json:"pincode"`
	District string `json:"district"`
	State    string `json:"state"`
}
