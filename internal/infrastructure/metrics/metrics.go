package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/iho/pinledger/internal/domain"
	"github.com/iho/pinledger/internal/usecase"
)

var _ usecase.Recorder = (*Metrics)(nil)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger operation metrics
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	AmountMoved       *prometheus.HistogramVec

	// Credential metrics
	AuthFailures prometheus.Counter

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pinledger_operations_total",
				Help: "Total ledger operations by type and outcome",
			},
			[]string{"operation", "outcome"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pinledger_operation_duration_seconds",
				Help:    "Duration of ledger operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		AmountMoved: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pinledger_operation_amount",
				Help:    "Amounts of successful balance mutations",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"operation"},
		),

		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "pinledger_auth_failures_total",
			Help: "Total operations rejected because of a wrong PIN",
		}),

		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "pinledger_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}

// ObserveOperation implements usecase.Recorder.
func (m *Metrics) ObserveOperation(op domain.Operation, outcome string, amount decimal.Decimal, duration time.Duration) {
	m.Operations.WithLabelValues(string(op), outcome).Inc()
	m.OperationDuration.WithLabelValues(string(op)).Observe(duration.Seconds())

	if outcome == domain.KindUnauthorized.String() {
		m.AuthFailures.Inc()
	}

	switch op {
	case domain.OperationWithdraw, domain.OperationDeposit, domain.OperationTransfer:
		if outcome == usecase.OutcomeSuccess {
			m.AmountMoved.WithLabelValues(string(op)).Observe(amount.InexactFloat64())
		}
	}
}
