// File: services/booking/payment.go
package booking

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler settles the pay-online path at submission. Pay-at-salon
// bookings never touch it.
type PaymentHandler interface {
	// ProcessOnline charges the user and returns the payment reference.
	ProcessOnline(ctx context.Context, userID string, amount float64) (string, error)
}

// StripePaymentHandler charges via Stripe payment intents.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler returns a PaymentHandler backed by Stripe.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// ProcessOnline creates a payment intent for the booking total.
func (h *StripePaymentHandler) ProcessOnline(ctx context.Context, userID string, amount float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{"userId": userID},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	h.logger.Info("payment intent created",
		zap.String("paymentIntent", pi.ID),
		zap.String("userID", userID),
		zap.Float64("amount", amount))
	return pi.ID, nil
}
