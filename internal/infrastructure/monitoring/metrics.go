package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	CustomersOnboardedTotal   prometheus.Counter
	ReferenceRaceRetriesTotal prometheus.Counter
}

var (
	HTTP = HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dvdstore_http_requests_total",
				Help: "Total number of HTTP requests received.",
			},
			[]string{"method", "path", "code"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dvdstore_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "code"},
		),
	}

	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dvdstore_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		CustomersOnboardedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dvdstore_customers_onboarded_total",
				Help: "Total number of customers successfully onboarded.",
			},
		),
		ReferenceRaceRetriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dvdstore_reference_race_retries_total",
				Help: "Total number of onboarding retries after losing a reference-row insert race.",
			},
		),
	}
)

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordCustomerOnboarded() {
	Business.CustomersOnboardedTotal.Inc()
}

func RecordReferenceRaceRetry() {
	Business.ReferenceRaceRetriesTotal.Inc()
}
