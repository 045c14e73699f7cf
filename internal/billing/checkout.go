package billing

import (
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// CheckoutProvider creates hosted checkout sessions for subscription signup.
type CheckoutProvider interface {
	// CreateSession returns the URL the customer should be redirected to.
	CreateSession(priceID string) (string, error)
}

// StripeProvider creates Stripe Checkout sessions in subscription mode.
type StripeProvider struct {
	frontendURL string
}

// NewStripeProvider configures the Stripe client with the given secret key.
// Success and cancel redirects point back at frontendURL.
func NewStripeProvider(secretKey, frontendURL string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{frontendURL: strings.TrimSuffix(frontendURL, "/")}
}

// CreateSession creates a subscription checkout session for the given price.
func (p *StripeProvider) CreateSession(priceID string) (string, error) {
	if priceID == "" {
		return "", fmt.Errorf("price ID required")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.frontendURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(p.frontendURL + "/cancel"),
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("creating checkout session: %w", err)
	}

	return sess.URL, nil
}
