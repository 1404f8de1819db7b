package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	apperrors "reship/internal/errors"
	"reship/internal/repositories"
	"reship/internal/services/accrual"
	"reship/internal/utils"
	"reship/internal/utils/response"
	"reship/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the operator endpoints under /api/admin.
type AdminHandler struct {
	accrual  accrual.Service
	packages repositories.PackageRepository
	ledger   repositories.LedgerRepository
	zones    ZoneCatalog
	now      func() time.Time
}

func NewAdminHandler(
	accrualService accrual.Service,
	packages repositories.PackageRepository,
	ledger repositories.LedgerRepository,
	zones ZoneCatalog,
	now func() time.Time,
) *AdminHandler {
	if now == nil {
		now = time.Now
	}
	return &AdminHandler{
		accrual:  accrualService,
		packages: packages,
		ledger:   ledger,
		zones:    zones,
		now:      now,
	}
}

// RunAccrual recomputes every received package. Per-package failures are in
// the results; the request itself only fails when packages cannot be listed.
// An optional ?at=RFC3339 replays the batch for another instant.
func (h *AdminHandler) RunAccrual(c *fiber.Ctx) error {
	at := h.now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "at must be an RFC3339 timestamp")
		}
		at = parsed
	}

	if claims, err := utils.GetUserClaims(c); err == nil {
		log.Printf("accrual batch requested by operator %d", claims.UserID)
	}

	result, err := h.accrual.RunBatch(c.UserContext(), at)
	if err != nil {
		log.Printf("accrual batch failed: %v", err)
		return response.ServerError(c, "Failed to run accrual batch")
	}

	return response.Success(c, "Accrual batch completed", result)
}

// GetPackage returns a package with its fee as of now and its ledger row, if any.
func (h *AdminHandler) GetPackage(c *fiber.Ctx) error {
	id, err := packageID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid package id")
	}

	pkg, err := h.packages.GetByID(c.UserContext(), id)
	if err != nil {
		return response.FromError(c, err)
	}

	fee, err := h.accrual.StorageFee(c.UserContext(), id, h.now())
	if err != nil {
		return response.FromError(c, err)
	}

	entry, err := h.ledger.GetByPackageID(c.UserContext(), id)
	if err != nil && !errors.Is(err, repositories.ErrLedgerEntryNotFound) {
		log.Printf("ledger lookup for package %d failed: %v", id, err)
		return response.ServerError(c, "Failed to load ledger entry")
	}

	return response.Success(c, "Package retrieved", fiber.Map{
		"package":     pkg,
		"storage_fee": fee,
		"ledger":      entry,
	})
}

func (h *AdminHandler) RecomputePackage(c *fiber.Ctx) error {
	id, err := packageID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid package id")
	}

	result, err := h.accrual.Recompute(c.UserContext(), id, h.now())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Package recomputed", result)
}

func (h *AdminHandler) ReceivePackage(c *fiber.Ctx) error {
	id, err := packageID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid package id")
	}

	pkg, err := h.packages.MarkReceived(c.UserContext(), id, h.now())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Package received", pkg)
}

func (h *AdminHandler) ShipPackage(c *fiber.Ctx) error {
	id, err := packageID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid package id")
	}

	// Freeze the fee at the moment of shipping; nothing accrues afterwards.
	if _, err := h.accrual.Recompute(c.UserContext(), id, h.now()); err != nil {
		return response.FromError(c, err)
	}

	pkg, err := h.packages.MarkShipped(c.UserContext(), id, h.now())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Package shipped", pkg)
}

// SetFeeOverride stores an operator fee. An amount of 0 or null clears it.
func (h *AdminHandler) SetFeeOverride(c *fiber.Ctx) error {
	id, err := packageID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid package id")
	}

	var input struct {
		Amount *float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	amount := input.Amount
	if amount != nil {
		v := validation.New()
		v.FeeOverride(*amount)
		if !v.Valid() {
			return response.FromError(c, apperrors.ErrInvalidOverride.WithFields(v.Errors))
		}
		if *amount == 0 {
			amount = nil
		}
	}

	pkg, err := h.packages.SetFeeOverride(c.UserContext(), id, amount)
	if err != nil {
		return response.FromError(c, err)
	}

	if claims, err := utils.GetUserClaims(c); err == nil {
		log.Printf("fee override on package %d set by operator %d", id, claims.UserID)
	}

	return response.Success(c, "Fee override updated", pkg)
}

func (h *AdminHandler) InvalidateZones(c *fiber.Ctx) error {
	if err := h.zones.Invalidate(c.UserContext()); err != nil {
		log.Printf("zone cache invalidation failed: %v", err)
		return response.ServerError(c, "Failed to invalidate zone cache")
	}
	return response.Success(c, "Zone cache invalidated", nil)
}

var errInvalidID = errors.New("invalid id")

func packageID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}
