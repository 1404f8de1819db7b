package models

import "time"

// PackageState is the warehouse lifecycle of a package.
type PackageState string

const (
	PackageAwaiting PackageState = "awaiting"
	PackageReceived PackageState = "received"
	PackageShipped  PackageState = "shipped"
)

// StorageStatus is written by the accrual engine only.
type StorageStatus string

const (
	StorageFree    StorageStatus = "free"
	StorageCharged StorageStatus = "charged"
)

type StoredPackage struct {
	ID               uint             `gorm:"primarykey" json:"id"`
	OwnerID          uint             `gorm:"index" json:"owner_id"`
	OwnerTier        SubscriptionTier `gorm:"type:varchar(32);not null;default:'free'" json:"owner_tier"`
	State            PackageState     `gorm:"type:varchar(16);index;not null;default:'awaiting'" json:"state"`
	Description      string           `gorm:"size:255" json:"description"`
	StorageStartDate *time.Time       `json:"storage_start_date"`
	ShippedAt        *time.Time       `json:"shipped_at"`

	// Accrual fields.
	LastComputedAt        *time.Time    `json:"last_computed_at"`
	AccruedFreeDays       int           `gorm:"default:0" json:"accrued_free_days"`
	CurrentDaysStored     int           `gorm:"default:0" json:"current_days_stored"`
	CurrentChargeableDays int           `gorm:"default:0" json:"current_chargeable_days"`
	CurrentFee            float64       `gorm:"default:0" json:"current_fee"`
	FeeSource             FeeSource     `gorm:"type:varchar(32);default:'computed'" json:"fee_source"`
	Status                StorageStatus `gorm:"type:varchar(16);default:'free'" json:"status"`

	// Operator fields. A DailyRate of 0 means the configured rate; nil or
	// non-positive FeeOverride means no override.
	DailyRate   float64  `gorm:"default:0" json:"daily_rate"`
	FeeOverride *float64 `json:"fee_override"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccrualUpdate carries exactly the columns the accrual engine owns.
type AccrualUpdate struct {
	PackageID             uint
	ComputedAt            time.Time
	AccruedFreeDays       int
	CurrentDaysStored     int
	CurrentChargeableDays int
	CurrentFee            float64
	FeeSource             FeeSource
	Status                StorageStatus
}

// AccrualLedgerEntry is unique per package and replaced on every recompute.
type AccrualLedgerEntry struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	PackageID      uint      `gorm:"uniqueIndex;not null" json:"package_id"`
	DaysStored     int       `json:"days_stored"`
	ChargeableDays int       `json:"chargeable_days"`
	Fee            float64   `json:"fee"`
	ComputedFee    float64   `json:"computed_fee"`
	FeeSource      FeeSource `gorm:"type:varchar(32)" json:"fee_source"`
	ComputedAt     time.Time `json:"computed_at"`
	Details        JSON      `gorm:"type:jsonb" json:"details"`
	UpdatedAt      time.Time `json:"updated_at"`
}
