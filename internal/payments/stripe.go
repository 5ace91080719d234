package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// IntentClient requests a charge intent from the payment processor and
// returns only the client-facing secret needed to complete the charge.
type IntentClient interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

// MinorUnits converts a price to minor units the way the processor expects:
// multiply by 100 and truncate.
func MinorUnits(price float64) int64 {
	return int64(math.Trunc(price * 100))
}

type stripeClient struct {
	api *client.API
}

// NewStripeClient builds an IntentClient over the Stripe API.
func NewStripeClient(secretKey string) IntentClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeClient{api: api}
}

func (c *stripeClient) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
