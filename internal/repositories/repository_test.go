package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"reship/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statementLog collects the SQL gorm builds without executing it.
type statementLog struct {
	mu   sync.Mutex
	sqls []string
}

func (l *statementLog) record(tx *gorm.DB) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sqls = append(l.sqls, tx.Statement.SQL.String())
}

func (l *statementLog) last(t *testing.T) string {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	require.NotEmpty(t, l.sqls)
	return l.sqls[len(l.sqls)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *statementLog) {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=reship dbname=reship sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	stmts := &statementLog{}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("reship:record", stmts.record))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("reship:record", stmts.record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("reship:record", stmts.record))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("reship:record", stmts.record))
	return db, stmts
}

func TestLedgerRepository_UpsertKeyedByPackage(t *testing.T) {
	db, stmts := newDryRunDB(t)
	repo := NewLedgerRepository(db)

	err := repo.Upsert(context.Background(), &models.AccrualLedgerEntry{
		ID:        "5b0f8f5e-3f7a-4d7e-9f0e-2f1d6c1c9a11",
		PackageID: 7,
		Fee:       2.00,
	})
	require.NoError(t, err)

	sql := stmts.last(t)
	assert.Contains(t, sql, `INSERT INTO "accrual_ledger_entries"`)
	assert.Contains(t, sql, `ON CONFLICT ("package_id") DO UPDATE SET`)
	assert.Contains(t, sql, `"fee"="excluded"."fee"`)
	assert.Contains(t, sql, `"details"="excluded"."details"`)
	// The existing row keeps its id.
	assert.NotContains(t, sql, `"id"="excluded"."id"`)
}

func TestLedgerRepository_Delete(t *testing.T) {
	db, stmts := newDryRunDB(t)

	require.NoError(t, NewLedgerRepository(db).Delete(context.Background(), 7))

	assert.Regexp(t, `^DELETE FROM "accrual_ledger_entries" WHERE package_id = \$1$`, stmts.last(t))
}

func TestPackageRepository_UpdateAccrualStatement(t *testing.T) {
	db, stmts := newDryRunDB(t)
	repo := NewPackageRepository(db)

	err := repo.UpdateAccrual(context.Background(), models.AccrualUpdate{
		PackageID:  3,
		ComputedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		CurrentFee: 2.00,
		FeeSource:  models.FeeSourceComputed,
		Status:     models.StorageCharged,
	})
	// Nothing is executed, so no row matches the guard.
	assert.ErrorIs(t, err, ErrPackageNotFound)

	sql := stmts.last(t)
	assert.Contains(t, sql, `UPDATE "stored_packages" SET`)
	assert.Contains(t, sql, `"current_fee"=`)
	assert.Contains(t, sql, `"status"=`)
	assert.Regexp(t, `WHERE id = \$\d+ AND state = \$\d+$`, sql)
	assert.NotContains(t, sql, `"daily_rate"`)
	assert.NotContains(t, sql, `"fee_override"`)
	assert.NotContains(t, sql, `"state"=`)
}

func TestPackageRepository_ListReceivedStatement(t *testing.T) {
	db, stmts := newDryRunDB(t)

	pkgs, err := NewPackageRepository(db).ListReceived(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pkgs)

	assert.Equal(t, `SELECT * FROM "stored_packages" WHERE state = $1 ORDER BY id`, stmts.last(t))
}
