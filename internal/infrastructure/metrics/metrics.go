package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Approval workflow metrics
	ProposalsCreated  *prometheus.CounterVec
	ProposalConflicts prometheus.Counter
	Resolutions       *prometheus.CounterVec
	ArchivesCreated   prometheus.Counter

	// Balance metrics
	BalanceComputations    *prometheus.CounterVec
	BalanceComputeDuration prometheus.Histogram
	BalanceCacheHits       prometheus.Counter
	BalanceCacheMisses     prometheus.Counter

	// Ledger metrics
	EntriesRecorded *prometheus.CounterVec
	EntryAmount     prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Approval workflow metrics
		ProposalsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_proposals_created_total",
				Help: "Total change requests staged",
			},
			[]string{"target_type", "operation"},
		),
		ProposalConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_proposal_conflicts_total",
			Help: "Total proposals rejected because a request was already pending",
		}),
		Resolutions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_resolutions_total",
				Help: "Total change requests resolved by decision and operation",
			},
			[]string{"decision", "operation"},
		),
		ArchivesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_archives_created_total",
			Help: "Total records moved to the archive",
		}),

		// Balance metrics
		BalanceComputations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_balance_computations_total",
				Help: "Total balance recomputations by account kind",
			},
			[]string{"kind"},
		),
		BalanceComputeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "backoffice_balance_compute_duration_seconds",
			Help:    "Duration of balance recomputations",
			Buckets: prometheus.DefBuckets,
		}),
		BalanceCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_balance_cache_hits_total",
			Help: "Total balance reads served from cache",
		}),
		BalanceCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_balance_cache_misses_total",
			Help: "Total balance reads that required recomputation",
		}),

		// Ledger metrics
		EntriesRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_entries_recorded_total",
				Help: "Total ledger entries recorded by kind and type",
			},
			[]string{"entry_kind", "type"},
		),
		EntryAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "backoffice_entry_amount",
			Help:    "Recorded entry amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "backoffice_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),
	}
}
