package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers the payment flow: checkouts started, status transitions by
// source, webhook outcomes and gateway latency.
type Metrics struct {
	Initialized     *prometheus.CounterVec
	Transitions     *prometheus.CounterVec
	Webhooks        *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec
	OrphansRestored *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Initialized: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "museum_payments_initialized_total",
			Help: "Checkouts initialized with the gateway by kind and outcome",
		}, []string{"kind", "result"}),
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "museum_payment_status_transitions_total",
			Help: "Payment record status changes by kind, new status and source",
		}, []string{"kind", "status", "source"}),
		Webhooks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "museum_payment_webhooks_total",
			Help: "Gateway webhook deliveries by outcome",
		}, []string{"result"}),
		GatewayDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "museum_payment_gateway_duration_seconds",
			Help:    "Latency of gateway calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		OrphansRestored: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "museum_payment_orphans_restored_total",
			Help: "Gateway transactions missing locally that the sweep recreated",
		}, []string{"kind"}),
	}
}

func (m *Metrics) IncrementInitialized(kind, result string) {
	m.Initialized.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) IncrementTransition(kind, status, source string) {
	m.Transitions.WithLabelValues(kind, status, source).Inc()
}

func (m *Metrics) IncrementWebhook(result string) {
	m.Webhooks.WithLabelValues(result).Inc()
}

// ObserveGateway records a gateway call. Call with time.Now() at the start.
func (m *Metrics) ObserveGateway(operation string, start time.Time) {
	m.GatewayDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementOrphanRestored(kind string) {
	m.OrphansRestored.WithLabelValues(kind).Inc()
}
