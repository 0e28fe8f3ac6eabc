package storage

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// table read/write latency
	opDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cookiemap_storage_operation_duration_seconds",
			Help:    "Flat-file table operation time in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "table", "status"},
	)

	opTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookiemap_storage_operations_total",
			Help: "Total number of flat-file table operations",
		},
		[]string{"operation", "table", "status"},
	)

	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookiemap_storage_errors_total",
			Help: "Total number of flat-file table errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// content that failed to decode and was served as an empty table
	malformedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookiemap_storage_malformed_total",
			Help: "Number of reads that found malformed table content",
		},
		[]string{"table"},
	)

	rowsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cookiemap_storage_rows",
			Help: "Row count seen by the last table read or write",
		},
		[]string{"table"},
	)
)

func observe(operation, table string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
		errorsTotal.WithLabelValues(operation, table, fmt.Sprintf("%T", err)).Inc()
	}
	opDuration.WithLabelValues(operation, table, status).Observe(time.Since(start).Seconds())
	opTotal.WithLabelValues(operation, table, status).Inc()
}
