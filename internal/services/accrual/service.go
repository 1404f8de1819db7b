package accrual

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	apperrors "reship/internal/errors"
	"reship/internal/models"
	"reship/internal/repositories"

	"golang.org/x/sync/errgroup"
)

type service struct {
	packages PackageRepository
	ledger   LedgerRepository
	config   Config
	metrics  MetricsCollector
}

// NewService creates a new accrual service
func NewService(
	packages PackageRepository,
	ledger LedgerRepository,
	config Config,
	metrics MetricsCollector,
) Service {
	if packages == nil {
		panic("package repository is required")
	}
	if ledger == nil {
		panic("ledger repository is required")
	}

	if config.DailyRate <= 0 {
		config.DailyRate = DefaultDailyRate
	}
	if config.Workers <= 0 {
		config.Workers = DefaultWorkers
	}
	if config.PackageTimeout <= 0 {
		config.PackageTimeout = DefaultPackageTimeout
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		packages: packages,
		ledger:   ledger,
		config:   config,
		metrics:  metrics,
	}
}

func (s *service) RunBatch(ctx context.Context, now time.Time) (*BatchResult, error) {
	start := time.Now()

	pkgs, err := s.packages.ListReceived(ctx)
	if err != nil {
		return nil, fmt.Errorf("run accrual batch: list received packages: %w", err)
	}

	results := make([]PackageResult, len(pkgs))

	var g errgroup.Group
	g.SetLimit(s.config.Workers)

	for i := range pkgs {
		i := i
		pkg := &pkgs[i]
		g.Go(func() error {
			// Errors stay in the result so one package never cancels the others.
			results[i] = s.processOne(ctx, pkg, now)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(a, b int) bool { return results[a].PackageID < results[b].PackageID })

	batch := &BatchResult{
		RunAt:    now,
		Results:  results,
		Duration: time.Since(start),
	}
	for _, r := range results {
		if r.Updated {
			batch.UpdatedCount++
		}
		if r.Err != nil {
			batch.FailedCount++
		}
	}

	s.metrics.RecordBatchDuration(batch.Duration)
	log.Printf("accrual batch run_at=%s packages=%d updated=%d failed=%d dur=%dms",
		now.Format(time.RFC3339), len(results), batch.UpdatedCount, batch.FailedCount, batch.Duration.Milliseconds())

	return batch, nil
}

func (s *service) processOne(ctx context.Context, pkg *models.StoredPackage, now time.Time) PackageResult {
	ctx, cancel := context.WithTimeout(ctx, s.config.PackageTimeout)
	defer cancel()

	res := PackageResult{PackageID: pkg.ID}

	a, ledgerWritten, err := s.apply(ctx, pkg, now)
	if a != nil {
		res.Accrual = a
		res.Updated = true
	}
	res.LedgerWritten = ledgerWritten

	if err != nil {
		res.Err = err
		res.Error = err.Error()
		s.metrics.RecordPackageResult(classify(err))
		log.Printf("accrual: package_id=%d failed: %v", pkg.ID, err)
		return res
	}

	s.metrics.RecordPackageResult(ResultUpdated)
	s.metrics.RecordFee(a.Fee.Source, a.Fee.Amount)
	return res
}

// apply computes and persists one package. The returned accrual is non-nil
// once the package row has been written, even if the ledger write fails.
func (s *service) apply(ctx context.Context, pkg *models.StoredPackage, now time.Time) (*Accrual, bool, error) {
	in := InputFromPackage(pkg)
	if in.DailyRate == 0 {
		in.DailyRate = s.config.DailyRate
	}

	a, err := Compute(in, now)
	if err != nil {
		return nil, false, err
	}

	if err := s.packages.UpdateAccrual(ctx, a.Update()); err != nil {
		return nil, false, fmt.Errorf("update package %d: %w", pkg.ID, err)
	}

	// The ledger only holds packages that owe something.
	if a.Fee.Amount <= 0 {
		if err := s.ledger.Delete(ctx, pkg.ID); err != nil {
			return &a, false, fmt.Errorf("clear ledger for package %d: %w", pkg.ID, err)
		}
		return &a, false, nil
	}

	if err := s.ledger.Upsert(ctx, a.LedgerEntry()); err != nil {
		return &a, false, fmt.Errorf("upsert ledger for package %d: %w", pkg.ID, err)
	}
	return &a, true, nil
}

func (s *service) Recompute(ctx context.Context, packageID uint, now time.Time) (*Accrual, error) {
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("recompute package %d: %w", packageID, err)
	}
	if pkg.State != models.PackageReceived {
		return nil, apperrors.ErrPackageState.Wrap(fmt.Errorf("package %d is %s", packageID, pkg.State))
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.PackageTimeout)
	defer cancel()

	a, _, err := s.apply(ctx, pkg, now)
	if err != nil {
		return a, fmt.Errorf("recompute package %d: %w", packageID, err)
	}
	return a, nil
}

func (s *service) StorageFee(ctx context.Context, packageID uint, now time.Time) (models.FeeValue, error) {
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return models.FeeValue{}, err
	}

	switch pkg.State {
	case models.PackageShipped:
		// No accrual after shipping: report what was last written.
		return models.ResolveFee(pkg.CurrentFee, pkg.FeeOverride), nil
	case models.PackageAwaiting:
		return models.Computed(0), nil
	}

	in := InputFromPackage(pkg)
	if in.DailyRate == 0 {
		in.DailyRate = s.config.DailyRate
	}
	a, err := Compute(in, now)
	if err != nil {
		return models.FeeValue{}, err
	}
	return a.Fee, nil
}

func classify(err error) string {
	switch {
	case errors.Is(err, repositories.ErrWriteConflict):
		return ResultConflict
	case errors.Is(err, context.DeadlineExceeded):
		return ResultTimeout
	}
	return ResultFailed
}
