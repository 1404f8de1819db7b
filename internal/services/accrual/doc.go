/*
Package accrual computes warehouse storage fees.

Every received package gets a free storage window sized by its owner's
subscription tier. Past the window each started day costs the daily rate.
Compute is pure: it derives everything from the storage start date, the
tier and now, so running it again with the same now gives the same result.

Usage:

	svc := accrual.NewService(packages, ledger, accrual.Config{}, metrics)

	// Recompute every received package.
	result, err := svc.RunBatch(ctx, time.Now())

	// Quote-time lookup, no writes.
	fee, err := svc.StorageFee(ctx, packageID, time.Now())

Batch semantics:

RunBatch fans out over packages with a bounded number of workers and a
timeout per package. A failed package is logged and reported in its
PackageResult; it never stops the rest of the batch.
*/
package accrual
