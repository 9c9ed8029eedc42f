package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks training sign-ups.
type Metrics struct {
	Registrations      *prometheus.CounterVec
	ConfirmationEmails *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "museum_training_registrations_total",
			Help: "Training registrations by mode",
		}, []string{"mode"}),
		ConfirmationEmails: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "museum_training_confirmation_emails_total",
			Help: "Training confirmation emails by outcome",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncrementRegistration(mode string) {
	m.Registrations.WithLabelValues(mode).Inc()
}

func (m *Metrics) IncrementConfirmationEmail(result string) {
	m.ConfirmationEmails.WithLabelValues(result).Inc()
}
