package handlers

import (
	"errors"

	"reship/internal/models"
	"reship/internal/services/checkout"
	"reship/internal/services/pricing"
	"reship/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	quotes   pricing.Service
	checkout checkout.Service
}

func NewCheckoutHandler(quotes pricing.Service, checkout checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		quotes:   quotes,
		checkout: checkout,
	}
}

// CreateSession quotes the shipment and opens a hosted checkout for its total:
// POST /api/checkout/sessions
func (h *CheckoutHandler) CreateSession(c *fiber.Ctx) error {
	var input struct {
		Shipment      models.ShipmentRequest `json:"shipment"`
		CustomerEmail string                 `json:"customer_email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	quote, err := h.quotes.ComputeQuote(c.UserContext(), input.Shipment)
	if err != nil {
		return response.FromError(c, err)
	}

	session, err := h.checkout.CreateSession(c.UserContext(), checkout.Request{
		Quote:         quote,
		CustomerEmail: input.CustomerEmail,
		PackageID:     input.Shipment.PackageID,
	})
	if err != nil {
		if errors.Is(err, checkout.ErrNothingToPay) {
			return response.BadRequest(c, err.Error())
		}
		return response.FromError(c, err)
	}

	return response.Created(c, "Checkout session created", fiber.Map{
		"quote":   quote,
		"session": session,
	})
}
