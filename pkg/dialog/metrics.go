package dialog

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the optional prometheus wiring for the dialog layer. A nil
// *Metrics is valid everywhere it's used (StateMachine.metrics, Timer
// callers) — dialog tracking must work the same whether or not a caller
// wired a registry, so every method below is a nil-safe no-op.
type Metrics struct {
	active          prometheus.Gauge
	transitions     *prometheus.CounterVec
	stops           *prometheus.CounterVec
	retransmissions *prometheus.CounterVec
	sessionEvents   *prometheus.CounterVec
}

// NewMetrics builds and registers the dialog layer's collectors against
// reg, using the usual prometheus.NewGauge/NewCounterVec + MustRegister
// pattern.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sipdialog",
			Name:      "dialogs_active",
			Help:      "Number of dialogs currently tracked across all calls.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sipdialog",
			Name:      "status_transitions_total",
			Help:      "Number of dialog status transitions, by source and destination status.",
		}, []string{"from", "to"}),
		stops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sipdialog",
			Name:      "dialog_stops_total",
			Help:      "Number of dialogs that reached the stop status, by normalized reason.",
		}, []string{"reason"}),
		retransmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sipdialog",
			Name:      "response_retransmissions_total",
			Help:      "Number of 2xx response retransmissions sent while waiting for ACK.",
		}, []string{"outcome"}),
		sessionEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sipdialog",
			Name:      "session_events_total",
			Help:      "Number of session (SDP) events emitted, by kind.",
		}, []string{"kind"}),
	}

	if reg != nil {
		reg.MustRegister(m.active, m.transitions, m.stops, m.retransmissions, m.sessionEvents)
	}

	return m
}

func (m *Metrics) observeTransition(from, to StatusKind) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
	m.active.Set(float64(ActiveDialogs()))
}

func (m *Metrics) observeStop(reason StopReason) {
	if m == nil {
		return
	}
	m.stops.WithLabelValues(string(reason)).Inc()
	m.active.Set(float64(ActiveDialogs()))
}

func (m *Metrics) observeRetransmission(outcome string) {
	if m == nil {
		return
	}
	m.retransmissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeSessionEvent(kind SessionEventKind) {
	if m == nil {
		return
	}
	m.sessionEvents.WithLabelValues(kind.String()).Inc()
}
