package dialog

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetricsObserveTransitionAndStop covers the supplemented prometheus
// wiring end to end: a *Metrics built against a real registry, driven
// through a StateMachine, actually moves its collectors rather than only
// exercising the nil-receiver no-op branch.
func TestMetricsObserveTransitionAndStop(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	timer := NewTimer(func(FireEvent) {})
	sm := NewStateMachine(nil, "app1", DefaultConfig(), NopNotifier{}, &stubTransport{}, timer, metrics, nil)

	req := newTestInvite("a", "", 1, "")
	resp := newTestResponse(req, 200, "b", "")
	dlg := Create("app1", RoleUAC, req, resp)
	call := NewCall(dlg.CallID)
	call.Dialogs = append(call.Dialogs, dlg)

	dlg = sm.StatusUpdate(AcceptedUAC, dlg, call)

	require.Equal(t, float64(1), testutil.ToFloat64(metrics.transitions.WithLabelValues(StatusInit.String(), StatusAcceptedUAC.String())))
	assert.Equal(t, float64(ActiveDialogs()), testutil.ToFloat64(metrics.active))

	activeBefore := ActiveDialogs()
	sm.StatusUpdate(Stop(ReasonBusy), dlg, call)

	require.Equal(t, float64(1), testutil.ToFloat64(metrics.stops.WithLabelValues(string(ReasonBusy))))
	assert.Equal(t, float64(activeBefore-1), testutil.ToFloat64(metrics.active))

	mf, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mf, "the collectors registered with reg should surface on Gather")
}

// TestMetricsObserveRetransmissionAndSessionEvent covers the two
// collectors TestMetricsObserveTransitionAndStop doesn't reach.
func TestMetricsObserveRetransmissionAndSessionEvent(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	metrics.observeRetransmission("sent")
	metrics.observeSessionEvent(SessionEventStart)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.retransmissions.WithLabelValues("sent")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.sessionEvents.WithLabelValues("start")))
}
