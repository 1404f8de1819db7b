package checkout

import (
	"context"

	"github.com/stripe/stripe-go/v72"
)

// Service creates hosted checkout sessions for quotes
type Service interface {
	CreateSession(ctx context.Context, req Request) (*Session, error)
}

// SessionCreator is the Stripe call used to open a session.
type SessionCreator func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
