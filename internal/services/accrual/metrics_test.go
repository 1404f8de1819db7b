package accrual

import (
	"testing"
	"time"

	"reship/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg)

	c.RecordPackageResult(ResultUpdated)
	c.RecordPackageResult(ResultUpdated)
	c.RecordPackageResult(ResultConflict)
	c.RecordFee(models.FeeSourceComputed, 2.00)
	c.RecordFee(models.FeeSourceManualOverride, 7.50)
	c.RecordBatchDuration(150 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.packages.WithLabelValues(ResultUpdated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.packages.WithLabelValues(ResultConflict)))
	assert.Equal(t, 7.50, testutil.ToFloat64(c.fees.WithLabelValues(string(models.FeeSourceManualOverride))))
	assert.Equal(t, 1, testutil.CollectAndCount(c.batchDuration))
}

func TestPrometheusCollector_SkipsNonPositiveFees(t *testing.T) {
	c := NewPrometheusCollector(prometheus.NewRegistry())

	assert.NotPanics(t, func() {
		c.RecordFee(models.FeeSourceManualOverride, -4.00)
		c.RecordFee(models.FeeSourceComputed, 0)
	})
	c.RecordFee(models.FeeSourceComputed, 1.50)

	assert.Equal(t, 1.50, testutil.ToFloat64(c.fees.WithLabelValues(string(models.FeeSourceComputed))))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.fees.WithLabelValues(string(models.FeeSourceManualOverride))))
}
