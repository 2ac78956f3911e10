package utils

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// PaymentProcessor mints payment intents against Stripe. A nil processor
// is never constructed; the handler checks configuration at startup.
type PaymentProcessor struct {
	api *client.API
}

func NewPaymentProcessor(secretKey string) *PaymentProcessor {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &PaymentProcessor{api: api}
}

// CreateIntent asks the provider for a USD payment intent over the given
// minor-unit amount and returns the client secret the frontend confirms
// with. Provider failures are passed through with their message; there is
// no retry.
func (p *PaymentProcessor) CreateIntent(ctx context.Context, amountMinor int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("creating payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// AmountMinorUnits converts a price in major currency units to the minor
// units the provider bills in, rounding half up: 19.99 -> 1999.
func AmountMinorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Shift(2).Round(0).IntPart()
}
