package service

// PaymentVerifier checks that a hosted-payment result genuinely came from
// the gateway before the order is marked paid.
type PaymentVerifier interface {
	// VerifySignature validates the gateway signature over the
	// (gateway order id, payment id) pair.
	VerifySignature(gatewayOrderID, paymentID, signature string) error
}
