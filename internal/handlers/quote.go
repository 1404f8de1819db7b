package handlers

import (
	"context"

	"reship/internal/models"
	"reship/internal/services/pricing"
	"reship/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// ZoneCatalog serves zone snapshots and can drop its cached copy.
type ZoneCatalog interface {
	pricing.ZoneProvider
	Invalidate(ctx context.Context) error
}

type QuoteHandler struct {
	quotes pricing.Service
	zones  ZoneCatalog
}

func NewQuoteHandler(quotes pricing.Service, zones ZoneCatalog) *QuoteHandler {
	return &QuoteHandler{
		quotes: quotes,
		zones:  zones,
	}
}

// CreateQuote prices a shipment: POST /api/quotes
func (h *QuoteHandler) CreateQuote(c *fiber.Ctx) error {
	var req models.ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	quote, err := h.quotes.ComputeQuote(c.UserContext(), req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Quote computed", quote)
}

// ListZones returns the zone snapshot quotes are priced against: GET /api/zones
func (h *QuoteHandler) ListZones(c *fiber.Ctx) error {
	table, err := h.zones.Snapshot(c.UserContext())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Pricing zones", fiber.Map{
		"zones": table.Zones(),
		"count": table.Len(),
	})
}
