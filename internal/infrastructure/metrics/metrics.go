package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the report-engine Prometheus metrics. Construct once per
// process; promauto registers against the default registry.
type Metrics struct {
	ReportsGenerated *prometheus.CounterVec
	ReportDuration   *prometheus.HistogramVec
	ReportMovements  *prometheus.HistogramVec
}

// New creates and registers the report-engine metrics.
func New() *Metrics {
	return &Metrics{
		ReportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fluxocaixa_reports_generated_total",
				Help: "Total number of cash-flow reports generated by ledger kind and status",
			},
			[]string{"kind", "status"},
		),
		ReportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fluxocaixa_report_duration_seconds",
				Help:    "Duration of cash-flow report generation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		ReportMovements: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fluxocaixa_report_movements",
				Help:    "Number of ledger movements aggregated per report",
				Buckets: []float64{0, 10, 100, 1000, 10000, 100000},
			},
			[]string{"kind"},
		),
	}
}
