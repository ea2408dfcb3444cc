// Package payments wraps the Stripe payment-intent API behind a small
// interface so handlers can be tested with a double. The service only
// mints intents and relays the client secret; payment lifecycle, webhooks,
// and refunds are out of scope.
package payments

import (
	"context"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// IntentCreator mints a payment intent for an amount in minor units and
// returns the client-usable secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64) (clientSecret string, err error)
}

// StripeClient is the production IntentCreator. The underlying client is
// stateless and safe for concurrent use.
type StripeClient struct {
	api      *client.API
	currency string
}

// NewStripeClient builds a StripeClient with the given secret key and
// currency code (e.g. "usd").
func NewStripeClient(secretKey, currency string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api, currency: currency}
}

// CreateIntent requests a card payment intent for the given amount.
func (c *StripeClient) CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
