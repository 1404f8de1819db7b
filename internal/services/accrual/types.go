package accrual

import "time"

// Config holds accrual settings
type Config struct {
	DailyRate      float64
	Workers        int
	PackageTimeout time.Duration
}

// PackageResult is the outcome of recomputing one package in a batch.
type PackageResult struct {
	PackageID     uint     `json:"package_id"`
	Accrual       *Accrual `json:"accrual,omitempty"`
	Updated       bool     `json:"updated"`
	LedgerWritten bool     `json:"ledger_written"`
	Err           error    `json:"-"`
	Error         string   `json:"error,omitempty"`
}

// BatchResult aggregates a batch run. Results are ordered by package id.
//
// UpdatedCount counts packages whose row was written and FailedCount those
// with any error. A package whose row was written but whose ledger write
// failed is in both, so the two can sum to more than len(Results).
type BatchResult struct {
	RunAt        time.Time       `json:"run_at"`
	UpdatedCount int             `json:"updated_count"`
	FailedCount  int             `json:"failed_count"`
	Duration     time.Duration   `json:"duration_ns"`
	Results      []PackageResult `json:"results"`
}
