package service

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/spec-kit/class-booking-service/internal/config"
	apperrors "github.com/spec-kit/class-booking-service/pkg/util/errorutil"
)

// PaymentService is a stateless pass-through to the payment provider: it
// converts a price into a provider-side payment intent and hands the client
// secret back. The amount comes straight from the caller and is not
// cross-checked against any stored class price.
type PaymentService struct {
	client   *client.API
	currency string
}

// NewPaymentService initializes the Stripe-backed bridge.
func NewPaymentService(cfg config.PaymentConfig) *PaymentService {
	sc := &client.API{}
	sc.Init(cfg.StripeSecretKey, nil)
	return &PaymentService{client: sc, currency: cfg.Currency}
}

// CreateIntent requests a payment intent for the price, charged in the
// single configured currency, and returns the client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price < 0 {
		return "", apperrors.NewValidationError("price must be non-negative", nil)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(MinorUnits(price)),
		Currency: stripe.String(s.currency),
	}
	params.Context = ctx

	intent, err := s.client.PaymentIntents.New(params)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return intent.ClientSecret, nil
}

// MinorUnits converts a base-currency price to the provider's integer minor
// units.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
