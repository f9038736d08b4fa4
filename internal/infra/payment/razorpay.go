// Package payment implements verification of hosted-payment results.
package payment

import (
	"github.com/pkg/errors"
	"github.com/razorpay/razorpay-go/utils"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

type razorpayVerifier struct {
	keySecret string
}

// NewRazorpayVerifier is the constructor for the Razorpay payment verifier.
func NewRazorpayVerifier(cfg *config.Config) (service.PaymentVerifier, error) {
	if cfg.Razorpay == nil || cfg.Razorpay.KeySecret == "" {
		return nil, errors.New("razorpay keySecret is required")
	}

	return &razorpayVerifier{keySecret: cfg.Razorpay.KeySecret}, nil
}

// VerifySignature checks the HMAC signature the payment sheet returned.
// The order is only marked paid after this passes; the widget's word alone
// is never trusted.
func (v *razorpayVerifier) VerifySignature(gatewayOrderID, paymentID, signature string) error {
	if gatewayOrderID == "" || paymentID == "" || signature == "" {
		return domainerrors.ErrPaymentVerification.WithDetails("missing gateway identifiers")
	}

	params := map[string]interface{}{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  signature,
	}
	if !utils.VerifyPaymentSignature(params, signature, v.keySecret) {
		return domainerrors.ErrPaymentVerification
	}

	return nil
}
