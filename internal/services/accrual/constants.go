package accrual

import "time"

// Default configuration values
const (
	DefaultDailyRate      = 1.00
	DefaultWorkers        = 8
	DefaultPackageTimeout = 10 * time.Second
)

const day = 24 * time.Hour
