package accrual

import (
	"time"

	"reship/internal/models"

	"github.com/prometheus/client_golang/prometheus"
)

// Package result labels
const (
	ResultUpdated  = "updated"
	ResultFailed   = "failed"
	ResultConflict = "conflict"
	ResultTimeout  = "timeout"
)

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordBatchDuration(time.Duration)   {}
func (n *NoopMetricsCollector) RecordPackageResult(string)          {}
func (n *NoopMetricsCollector) RecordFee(models.FeeSource, float64) {}

// PrometheusCollector exports batch metrics.
type PrometheusCollector struct {
	batchDuration prometheus.Histogram
	packages      *prometheus.CounterVec
	fees          *prometheus.CounterVec
}

func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "storage_accrual_batch_duration_seconds",
			Help:    "Duration of storage accrual batch runs",
			Buckets: prometheus.DefBuckets,
		}),
		packages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storage_accrual_packages_total",
			Help: "Packages processed by the accrual batch, by result",
		}, []string{"result"}),
		fees: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storage_accrual_fee_amount_total",
			Help: "Sum of storage fees written by the accrual batch, by fee source",
		}, []string{"source"}),
	}
	reg.MustRegister(c.batchDuration, c.packages, c.fees)
	return c
}

func (c *PrometheusCollector) RecordBatchDuration(d time.Duration) {
	c.batchDuration.Observe(d.Seconds())
}

func (c *PrometheusCollector) RecordPackageResult(result string) {
	c.packages.WithLabelValues(result).Inc()
}

func (c *PrometheusCollector) RecordFee(source models.FeeSource, amount float64) {
	// Counters only go up.
	if amount <= 0 {
		return
	}
	c.fees.WithLabelValues(string(source)).Add(amount)
}
