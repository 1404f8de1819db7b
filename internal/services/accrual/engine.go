package accrual

import (
	"fmt"
	"time"

	"reship/internal/models"

	"github.com/google/uuid"
)

// State is where a package sits in its storage life.
type State string

const (
	StateAwaitingStorage State = "awaiting_storage"
	StateFreeWindow      State = "free_window"
	StateChargeable      State = "chargeable"
)

// Input is everything Compute needs about one package.
type Input struct {
	PackageID        uint
	Tier             models.SubscriptionTier
	StorageStartDate *time.Time
	DailyRate        float64
	FeeOverride      *float64
}

func InputFromPackage(pkg *models.StoredPackage) Input {
	in := Input{
		PackageID:   pkg.ID,
		Tier:        pkg.OwnerTier,
		DailyRate:   pkg.DailyRate,
		FeeOverride: pkg.FeeOverride,
	}
	if pkg.State != models.PackageAwaiting {
		in.StorageStartDate = pkg.StorageStartDate
	}
	return in
}

// Accrual is the storage position of one package at ComputedAt.
type Accrual struct {
	PackageID      uint                 `json:"package_id"`
	State          State                `json:"state"`
	DaysStored     int                  `json:"days_stored"`
	FreeAllowance  int                  `json:"free_allowance"`
	ChargeableDays int                  `json:"chargeable_days"`
	DailyRate      float64              `json:"daily_rate"`
	Fee            models.FeeValue      `json:"fee"`
	Status         models.StorageStatus `json:"status"`
	ComputedAt     time.Time            `json:"computed_at"`
}

// Compute derives the accrual from the start date, tier and now only.
// A zero DailyRate means DefaultDailyRate.
func Compute(in Input, now time.Time) (Accrual, error) {
	allowance, err := FreeAllowance(in.Tier)
	if err != nil {
		return Accrual{}, fmt.Errorf("compute accrual for package %d: %w", in.PackageID, err)
	}

	rate := in.DailyRate
	if rate == 0 {
		rate = DefaultDailyRate
	}
	if rate < 0 {
		return Accrual{}, fmt.Errorf("compute accrual for package %d: %w", in.PackageID, ErrInvalidDailyRate)
	}

	a := Accrual{
		PackageID:     in.PackageID,
		State:         StateAwaitingStorage,
		FreeAllowance: allowance,
		DailyRate:     rate,
		Fee:           models.Computed(0),
		Status:        models.StorageFree,
		ComputedAt:    now,
	}
	if in.StorageStartDate == nil || in.StorageStartDate.IsZero() {
		return a, nil
	}

	a.DaysStored = DaysStored(*in.StorageStartDate, now)
	if a.DaysStored > allowance {
		a.State = StateChargeable
		a.ChargeableDays = a.DaysStored - allowance
	} else {
		a.State = StateFreeWindow
	}

	computed := models.RoundCents(float64(a.ChargeableDays) * rate)
	a.Fee = models.ResolveFee(computed, in.FeeOverride)
	if a.Fee.Amount > 0 {
		a.Status = models.StorageCharged
	}

	return a, nil
}

// DaysStored counts whole days between start and now, never below zero.
func DaysStored(start, now time.Time) int {
	elapsed := now.Sub(start)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / day)
}

// Update returns the package columns owned by the engine.
func (a Accrual) Update() models.AccrualUpdate {
	return models.AccrualUpdate{
		PackageID:             a.PackageID,
		ComputedAt:            a.ComputedAt,
		AccruedFreeDays:       a.FreeAllowance,
		CurrentDaysStored:     a.DaysStored,
		CurrentChargeableDays: a.ChargeableDays,
		CurrentFee:            a.Fee.Amount,
		FeeSource:             a.Fee.Source,
		Status:                a.Status,
	}
}

// LedgerEntry builds the ledger row for this accrual. The id is fresh; the
// repository keeps the existing row's id when the package already has one.
func (a Accrual) LedgerEntry() *models.AccrualLedgerEntry {
	return &models.AccrualLedgerEntry{
		ID:             uuid.NewString(),
		PackageID:      a.PackageID,
		DaysStored:     a.DaysStored,
		ChargeableDays: a.ChargeableDays,
		Fee:            a.Fee.Amount,
		ComputedFee:    a.Fee.Computed,
		FeeSource:      a.Fee.Source,
		ComputedAt:     a.ComputedAt,
		Details: models.NewJSON(map[string]interface{}{
			"state":          string(a.State),
			"free_allowance": a.FreeAllowance,
			"daily_rate":     a.DailyRate,
		}),
	}
}
