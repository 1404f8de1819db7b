package checkout

import "reship/internal/models"

// Config holds the Stripe checkout settings
type Config struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
	Currency   string
}

type Request struct {
	Quote         *models.Quote
	CustomerEmail string
	PackageID     *uint
}

type Session struct {
	ID              string `json:"session_id"`
	URL             string `json:"url"`
	ClientReference string `json:"client_reference_id"`
	AmountCents     int64  `json:"amount_cents"`
	Currency        string `json:"currency"`
}
