package dialog

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimerKind names the two timer kinds §4.6 arms per dialog.
type TimerKind int

const (
	TimerRetrans TimerKind = iota
	TimerTimeout
)

func (k TimerKind) String() string {
	if k == TimerRetrans {
		return "retrans"
	}
	return "timeout"
}

// FireEvent is what a Timer delivers when a scheduled callback fires.
type FireEvent struct {
	Kind     TimerKind
	DialogID DialogID
	Token    uuid.UUID
}

// Handle is the opaque token returned by Timer.Start. Its Token is
// compared against the token recorded on the FireEvent so a cancel
// racing an already-fired timer can be told apart from a live one (§5).
type Handle struct {
	Kind  TimerKind
	Token uuid.UUID
}

// Timer is the C1 collaborator: schedule one-shot callbacks for a
// (dialog id, kind) pair, cancellable, narrowed to the two timer kinds
// this package names. Pending timers are kept in a mutex-guarded map
// keyed by a per-handle generation token (a uuid), so a cancel is a map
// delete and a fire whose token is no longer pending is dropped.
type Timer struct {
	mu      sync.Mutex
	pending map[uuid.UUID]*time.Timer
	fire    func(FireEvent)
}

// NewTimer returns a Timer that invokes fire (from an arbitrary
// goroutine — timer callbacks always run on their own goroutine in the
// standard library) whenever an un-cancelled timer expires.
func NewTimer(fire func(FireEvent)) *Timer {
	return &Timer{
		pending: make(map[uuid.UUID]*time.Timer),
		fire:    fire,
	}
}

// Start arms a new timer of the given kind for dialogID, firing after
// d. It returns the Handle to later Cancel it.
func (t *Timer) Start(dialogID DialogID, kind TimerKind, d time.Duration) *Handle {
	token := uuid.New()
	h := &Handle{Kind: kind, Token: token}

	t.mu.Lock()
	t.pending[token] = time.AfterFunc(d, func() {
		t.mu.Lock()
		_, stillPending := t.pending[token]
		delete(t.pending, token)
		t.mu.Unlock()

		if stillPending {
			t.fire(FireEvent{Kind: kind, DialogID: dialogID, Token: token})
		}
	})
	t.mu.Unlock()

	return h
}

// Cancel is idempotent and tolerates a handle that already fired: if the
// underlying time.Timer already fired and its goroutine is racing to
// deliver the event, removing the token here from the pending set makes
// that delivery a no-op (see the stillPending check in Start).
func (t *Timer) Cancel(h *Handle) {
	if h == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	tm, ok := t.pending[h.Token]
	if !ok {
		return
	}
	tm.Stop()
	delete(t.pending, h.Token)
}

// Dispatch is the C8 timer dispatcher: it maps a fired timer event to a
// forced status_update, per §4.6. dialog and call are the current
// values for the dialog the event was scheduled against; the caller is
// expected to have already looked them up via Find. If the dialog is no
// longer present (it was already removed from the Call), Dispatch treats
// the event as stale and does nothing.
func Dispatch(sm *StateMachine, event FireEvent, dlg *Dialog, call *Call) (*Dialog, *Call, HibernateHint) {
	if dlg == nil {
		err := newError(KindStaleTimer, "dispatch",
			fmt.Errorf("dialog %s not found for %s timer", event.DialogID.String(), event.Kind))
		sm.logger().Warn("stale timer", F("dialog_id", event.DialogID.String()), ErrField(err))
		return nil, call, HibernateNone
	}

	switch event.Kind {
	case TimerRetrans:
		return dispatchRetrans(sm, event, dlg, call)
	case TimerTimeout:
		return dispatchTimeout(sm, event, dlg, call)
	default:
		return dlg, call, HibernateNone
	}
}

func dispatchRetrans(sm *StateMachine, event FireEvent, dlg *Dialog, call *Call) (*Dialog, *Call, HibernateHint) {
	if dlg.RetransTimer == nil || dlg.RetransTimer.Token != event.Token {
		err := newError(KindStaleTimer, "dispatch_retrans", fmt.Errorf("token mismatch for dialog %s", dlg.ID.String()))
		sm.logger().Warn("stale retrans timer", F("dialog_id", dlg.ID.String()), ErrField(err))
		return dlg, call, HibernateNone
	}

	if dlg.Status.Kind != StatusAcceptedUAS {
		// §4.6: retrans firing in any other status is a stale timer.
		err := newError(KindStaleTimer, "dispatch_retrans", fmt.Errorf("dialog left accepted_uas, now %s", dlg.Status))
		sm.logger().Warn("stale retrans timer", F("dialog_id", dlg.ID.String()), ErrField(err))
		return dlg, call, HibernateNone
	}

	if resendErr := sm.transport.ResendResponse(sm.ctx, dlg.InviteResp, ResendOpts{GlobalID: dlg.ID.String()}); resendErr != nil {
		err := newError(KindTransportFailure, "dispatch_retrans", resendErr)
		sm.logger().Warn("retransmission failed, giving up", F("dialog_id", dlg.ID.String()), ErrField(err))
		sm.metrics.observeRetransmission("failed")
		updated := sm.StatusUpdate(Stop(ReasonAckTimeout), dlg, call)
		return updated, call, storeAfterStatus(call, updated)
	}
	sm.metrics.observeRetransmission("sent")

	next := dlg.NextRetrans
	if next > sm.config.T2 {
		next = sm.config.T2
	}
	doubled := next * 2
	if doubled > sm.config.T2 {
		doubled = sm.config.T2
	}

	dlg.RetransTimer = sm.timer.Start(dlg.ID, TimerRetrans, next)
	dlg.NextRetrans = doubled
	return dlg, call, HibernateNone
}

func dispatchTimeout(sm *StateMachine, event FireEvent, dlg *Dialog, call *Call) (*Dialog, *Call, HibernateHint) {
	if dlg.TimeoutTimer == nil || dlg.TimeoutTimer.Token != event.Token {
		err := newError(KindStaleTimer, "dispatch_timeout", fmt.Errorf("token mismatch for dialog %s", dlg.ID.String()))
		sm.logger().Warn("stale timeout timer", F("dialog_id", dlg.ID.String()), ErrField(err))
		return dlg, call, HibernateNone
	}

	reason := ReasonTimeout
	if dlg.Status.Kind == StatusAcceptedUAC || dlg.Status.Kind == StatusAcceptedUAS {
		reason = ReasonAckTimeout
	}

	updated := sm.StatusUpdate(Stop(reason), dlg, call)
	return updated, call, storeAfterStatus(call, updated)
}

// storeAfterStatus runs the Call-scoped store update for a dialog whose
// status the dispatcher just forced, returning the resulting hint.
func storeAfterStatus(call *Call, dlg *Dialog) HibernateHint {
	_, hint := Store(dlg, call)
	return hint
}
