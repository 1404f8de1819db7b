package checkout

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "reship/internal/errors"
	"reship/internal/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
)

type service struct {
	config     Config
	newSession SessionCreator
}

// NewService creates a checkout service. A nil creator uses the Stripe API.
func NewService(config Config, creator SessionCreator) Service {
	if config.SecretKey != "" {
		stripe.Key = config.SecretKey
	}
	if config.Currency == "" {
		config.Currency = "EUR"
	}
	if creator == nil {
		creator = session.New
	}
	return &service{config: config, newSession: creator}
}

func (s *service) CreateSession(ctx context.Context, req Request) (*Session, error) {
	if req.Quote == nil {
		return nil, ErrMissingQuote
	}
	if s.config.SuccessURL == "" || s.config.CancelURL == "" {
		return nil, ErrMissingRedirect
	}

	amount := toCents(req.Quote.Total)
	if amount <= 0 {
		return nil, ErrNothingToPay
	}

	currency := req.Quote.Currency
	if currency == "" {
		currency = s.config.Currency
	}
	currency = strings.ToLower(currency)
	reference := uuid.NewString()

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(s.config.SuccessURL),
		CancelURL:          stripe.String(s.config.CancelURL),
		ClientReferenceID:  stripe.String(reference),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(lineItemName(req.Quote)),
					},
					UnitAmount: stripe.Int64(amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.AddMetadata("chargeable_weight_kg", strconv.FormatFloat(req.Quote.ChargeableWeight, 'f', 3, 64))
	params.AddMetadata("storage_fee_source", string(req.Quote.StorageFeeSource))
	if req.PackageID != nil {
		params.AddMetadata("package_id", strconv.FormatUint(uint64(*req.PackageID), 10))
	}

	sess, err := s.newSession(params)
	if err != nil {
		return nil, apperrors.ErrCheckoutFailed.Wrap(err)
	}

	return &Session{
		ID:              sess.ID,
		URL:             sess.URL,
		ClientReference: reference,
		AmountCents:     amount,
		Currency:        currency,
	}, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func lineItemName(q *models.Quote) string {
	if q.ZoneCode != "" {
		return fmt.Sprintf("Shipment %.2f kg to zone %s", q.ChargeableWeight, q.ZoneCode)
	}
	return fmt.Sprintf("Shipment %.2f kg", q.ChargeableWeight)
}
