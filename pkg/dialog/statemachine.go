package dialog

import (
	"context"
	"strconv"
	"time"
)

// StateMachine is C5: it drives Dialog.Status transitions, arms/cancels
// timers, invokes the C4 updaters, and emits notifications. One
// StateMachine is shared across every Call a process handles — it holds
// no per-dialog state itself, only the collaborators (§6).
type StateMachine struct {
	ctx       context.Context
	appID     string
	config    Config
	notifier  Notifier
	transport Transport
	timer     *Timer
	metrics   *Metrics
	log       Logger
}

// NewStateMachine wires the C5 collaborators together, taking every
// dependency explicitly rather than reaching for a global.
func NewStateMachine(ctx context.Context, appID string, config Config, notifier Notifier, transport Transport, timer *Timer, metrics *Metrics, log Logger) *StateMachine {
	if ctx == nil {
		ctx = context.Background()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &StateMachine{
		ctx: ctx, appID: appID, config: config,
		notifier: notifier, transport: transport, timer: timer,
		metrics: metrics, log: log,
	}
}

func (sm *StateMachine) logger() Logger {
	if sm.log == nil {
		return noopLogger{}
	}
	return sm.log
}

// resolveStopReason applies normalizeReason (§4.2, P5) when reason looks
// like a raw SIP status code, and passes anything else (an internally
// raised reason such as ReasonTimeout) straight through.
func resolveStopReason(reason StopReason) StopReason {
	if code, err := strconv.Atoi(string(reason)); err == nil {
		return normalizeReason(code)
	}
	return reason
}

// StatusUpdate is C5's status_update(new_status, dialog, call) → dialog
// operation (§4.2). Callers are expected to have already stored the
// current INVITE request/response pair on dlg (InviteReq/InviteResp)
// before calling this for any transition that runs route/target/session
// update.
func (sm *StateMachine) StatusUpdate(newStatus Status, dlg *Dialog, call *Call) *Dialog {
	old := dlg.Status
	now := time.Now()

	if old.Kind == StatusInit {
		sm.notifier.DialogUpdate(DialogEvent{Kind: DialogEventStart, DialogID: dlg.ID})
	}

	sm.timer.Cancel(dlg.RetransTimer)
	sm.timer.Cancel(dlg.TimeoutTimer)
	dlg.RetransTimer = nil
	dlg.TimeoutTimer = nil

	dlg.Updated = now

	if newStatus.Kind == StatusStop {
		reason := resolveStopReason(newStatus.Reason)
		dlg.Status = Stop(reason)
		dlg.StopReason = reason

		sm.notifier.DialogUpdate(DialogEvent{Kind: DialogEventStop, DialogID: dlg.ID, StopReason: reason})

		if dlg.MediaStarted {
			sm.notifier.SessionUpdate(SessionEvent{Kind: SessionEventStop, DialogID: dlg.ID})
			sm.metrics.observeSessionEvent(SessionEventStop)
			dlg.MediaStarted = false
		}

		dialogCounter.dec()
		sm.metrics.observeStop(reason)
		return dlg
	}

	if newStatus.Kind != old.Kind {
		dlg.Status = newStatus
		sm.notifier.DialogUpdate(DialogEvent{Kind: DialogEventStatus, DialogID: dlg.ID, Status: newStatus})
		sm.metrics.observeTransition(old.Kind, newStatus.Kind)
	} else {
		dlg.Status = newStatus
	}

	dlg.TimeoutTimer = sm.timer.Start(dlg.ID, TimerTimeout, sm.config.TDialog)

	if dlg.MediaStarted && newStatus.Kind == StatusBye {
		sm.notifier.SessionUpdate(SessionEvent{Kind: SessionEventStop, DialogID: dlg.ID})
		sm.metrics.observeSessionEvent(SessionEventStop)
		dlg.MediaStarted = false
	}

	switch newStatus.Kind {
	case StatusProceedingUAC, StatusProceedingUAS, StatusAcceptedUAC, StatusAcceptedUAS:
		dlg = routeUpdate(sm.transport, sm.appID, dlg.InviteClass, dlg.InviteReq, dlg.InviteResp, dlg)
		dlg = targetUpdate(sm.notifier, now, dlg.InviteClass, dlg.InviteReq, dlg.InviteResp, sm.logger(), dlg)
		dlg = sessionUpdate(sm.notifier, sm.metrics, dlg)
	case StatusConfirmed:
		dlg = sessionUpdate(sm.notifier, sm.metrics, dlg)
		dlg.InviteReq, dlg.InviteResp = nil, nil
		dlg.InviteClass = 0
	case StatusBye:
		// no further updates.
	}

	if newStatus.Kind == StatusAcceptedUAS {
		dlg.RetransTimer = sm.timer.Start(dlg.ID, TimerRetrans, sm.config.T1)
		dlg.NextRetrans = 2 * sm.config.T1
	}

	return dlg
}
