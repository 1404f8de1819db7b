package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"reship/internal/models"
	"reship/internal/services/checkout"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutSession(t *testing.T) {
	quote := &models.Quote{ChargeableWeight: 1.2, BasePrice: 20, Total: 20, Currency: "EUR"}

	quotes := new(MockQuoteService)
	quotes.On("ComputeQuote", mock.Anything, mock.Anything).Return(quote, nil)
	sessions := new(MockCheckoutService)
	sessions.On("CreateSession", mock.Anything, checkout.Request{Quote: quote, CustomerEmail: "ana@example.com"}).
		Return(&checkout.Session{ID: "cs_1", URL: "https://checkout.stripe.test/cs_1", AmountCents: 2000, Currency: "eur"}, nil)

	h := NewCheckoutHandler(quotes, sessions)
	app := fiber.New()
	app.Post("/api/checkout/sessions", h.CreateSession)

	req := httptest.NewRequest("POST", "/api/checkout/sessions", strings.NewReader(
		`{"shipment":{"weight_kg":1,"length_cm":30,"width_cm":20,"height_cm":10,"destination":"DE","tier":"free"},"customer_email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := decode(t, resp.Body)["data"].(map[string]interface{})
	session := data["session"].(map[string]interface{})
	assert.Equal(t, "https://checkout.stripe.test/cs_1", session["url"])
	sessions.AssertExpectations(t)
}

func TestCreateCheckoutSession_NothingToPay(t *testing.T) {
	quote := &models.Quote{Total: 0}
	quotes := new(MockQuoteService)
	quotes.On("ComputeQuote", mock.Anything, mock.Anything).Return(quote, nil)
	sessions := new(MockCheckoutService)
	sessions.On("CreateSession", mock.Anything, mock.Anything).Return(nil, checkout.ErrNothingToPay)

	h := NewCheckoutHandler(quotes, sessions)
	app := fiber.New()
	app.Post("/api/checkout/sessions", h.CreateSession)

	req := httptest.NewRequest("POST", "/api/checkout/sessions", strings.NewReader(`{"shipment":{"weight_kg":1,"destination":"DE","tier":"free"}}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
