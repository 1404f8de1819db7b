// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"reship/internal/app"
	"reship/internal/handlers"
	"reship/internal/middleware"
	"reship/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(router fiber.Router, services *app.Services, jwtSecret string) {
	quoteHandler := handlers.NewQuoteHandler(services.Quotes, services.Zones)
	checkoutHandler := handlers.NewCheckoutHandler(services.Quotes, services.Checkout)
	adminHandler := handlers.NewAdminHandler(services.Accrual, services.Packages, services.Ledger, services.Zones, nil)

	api := router.Group("/api")

	// Public endpoints
	api.Post("/quotes", quoteHandler.CreateQuote)
	api.Get("/zones", quoteHandler.ListZones)
	api.Post("/checkout/sessions", checkoutHandler.CreateSession)

	authMiddleware := middleware.NewAuthMiddleware(jwtSecret)
	setupAdminRoutes(api, adminHandler, authMiddleware)
}

func setupAdminRoutes(api fiber.Router, h *handlers.AdminHandler, authMiddleware *middleware.AuthMiddleware) {
	admin := api.Group("/admin", authMiddleware.Handler, middleware.OperatorOnly)

	admin.Post("/accrual/run", middleware.HasPermission(models.PermissionAccrualRun), h.RunAccrual)

	packages := admin.Group("/packages")
	packages.Get("/:id", h.GetPackage)
	packages.Post("/:id/recompute", middleware.HasPermission(models.PermissionAccrualRun), h.RecomputePackage)
	packages.Post("/:id/receive", middleware.HasPermission(models.PermissionPackageWrite), h.ReceivePackage)
	packages.Post("/:id/ship", middleware.HasPermission(models.PermissionPackageWrite), h.ShipPackage)
	packages.Put("/:id/fee-override", middleware.HasPermission(models.PermissionFeeOverride), h.SetFeeOverride)

	admin.Post("/zones/invalidate", middleware.HasPermission(models.PermissionZonesAdmin), h.InvalidateZones)
}
