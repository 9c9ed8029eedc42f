package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks account lifecycle events.
type Metrics struct {
	UsersRegistered prometheus.Counter
	Logins          *prometheus.CounterVec
	OTPIssued       *prometheus.CounterVec
	OTPChecks       *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "museum_users_registered_total",
			Help: "Total number of accounts created",
		}),
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "museum_logins_total",
			Help: "Login attempts by outcome",
		}, []string{"result"}),
		OTPIssued: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "museum_otp_issued_total",
			Help: "One-time codes issued by purpose",
		}, []string{"purpose"}),
		OTPChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "museum_otp_checks_total",
			Help: "One-time code checks by purpose and outcome",
		}, []string{"purpose", "result"}),
	}
}

func (m *Metrics) IncrementRegistered() {
	m.UsersRegistered.Inc()
}

func (m *Metrics) IncrementLogin(result string) {
	m.Logins.WithLabelValues(result).Inc()
}

func (m *Metrics) IncrementOTPIssued(purpose string) {
	m.OTPIssued.WithLabelValues(purpose).Inc()
}

func (m *Metrics) IncrementOTPCheck(purpose, result string) {
	m.OTPChecks.WithLabelValues(purpose, result).Inc()
}
