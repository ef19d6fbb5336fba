package metrics

import (
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "swimclub_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	invoiceBuildTotal   *prometheus.CounterVec
	invoiceBuildLatency *prometheus.HistogramVec

	invoiceExportTotal   *prometheus.CounterVec
	invoiceExportLatency *prometheus.HistogramVec

	invoiceWarningsTotal *prometheus.CounterVec
)

// Init registers observability metrics and DB-backed gauges.
func Init(db *sql.DB, logger *log.Logger) {
	registerOnce.Do(func() {
		invoiceBuildTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "invoice_build_total",
				Help: "Total monthly invoice computations by result",
			},
			[]string{"result"},
		)
		invoiceBuildLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "invoice_build_latency_seconds",
				Help:    "Monthly invoice computation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		invoiceExportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "invoice_export_total",
				Help: "Total invoice export operations by format and result",
			},
			[]string{"format", "result"},
		)
		invoiceExportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "invoice_export_latency_seconds",
				Help:    "Invoice export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		invoiceWarningsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "invoice_skipped_records_total",
				Help: "Total source records excluded from invoices by warning kind",
			},
			[]string{"kind"},
		)

		prometheus.MustRegister(
			invoiceBuildTotal,
			invoiceBuildLatency,
			invoiceExportTotal,
			invoiceExportLatency,
			invoiceWarningsTotal,
		)

		if db != nil {
			registerDBMetrics(db, logger)
		}
	})
}

// ObserveInvoiceBuild records invoice computation latency and result.
func ObserveInvoiceBuild(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if invoiceBuildTotal != nil {
		invoiceBuildTotal.WithLabelValues(result).Inc()
	}
	if invoiceBuildLatency != nil {
		invoiceBuildLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveInvoiceExport records export latency and result.
func ObserveInvoiceExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if invoiceExportTotal != nil {
		invoiceExportTotal.WithLabelValues(format, result).Inc()
	}
	if invoiceExportLatency != nil {
		invoiceExportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// IncInvoiceWarning counts a source record excluded from an invoice.
func IncInvoiceWarning(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	if invoiceWarningsTotal != nil {
		invoiceWarningsTotal.WithLabelValues(kind).Inc()
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
