package dialog

// DialogEventKind enumerates the dialog_update notification variants of
// §6.
type DialogEventKind int

const (
	DialogEventStart DialogEventKind = iota
	DialogEventStatus
	DialogEventTargetUpdate
	DialogEventStop
)

// DialogEvent is delivered synchronously from the state machine to the
// application layer via Notifier.DialogUpdate.
type DialogEvent struct {
	Kind       DialogEventKind
	DialogID   DialogID
	Status     Status     // set when Kind == DialogEventStatus
	StopReason StopReason // set when Kind == DialogEventStop
}

// SessionEventKind enumerates the session_update notification variants
// of §6.
type SessionEventKind int

const (
	SessionEventStart SessionEventKind = iota
	SessionEventUpdate
	SessionEventStop
)

func (k SessionEventKind) String() string {
	switch k {
	case SessionEventStart:
		return "start"
	case SessionEventUpdate:
		return "update"
	case SessionEventStop:
		return "stop"
	default:
		return "unknown"
	}
}

// SessionEvent is delivered synchronously via Notifier.SessionUpdate.
type SessionEvent struct {
	Kind      SessionEventKind
	DialogID  DialogID
	LocalSDP  *SDP // set for Start/Update
	RemoteSDP *SDP // set for Start/Update
}

// Notifier is the outbound interface to the application handler (§6).
// Implementations must not block the calling context for long: per §5,
// notifications are emitted synchronously from the same serialized
// context that drives the state machine.
type Notifier interface {
	DialogUpdate(DialogEvent)
	SessionUpdate(SessionEvent)
}

// NopNotifier discards every event; useful in tests that only care about
// the resulting Dialog/Call state.
type NopNotifier struct{}

func (NopNotifier) DialogUpdate(DialogEvent)   {}
func (NopNotifier) SessionUpdate(SessionEvent) {}

// RecordingNotifier appends every event it receives, in order, for tests
// asserting on notification sequences (see spec §8 scenario 1).
type RecordingNotifier struct {
	DialogEvents  []DialogEvent
	SessionEvents []SessionEvent
}

func (r *RecordingNotifier) DialogUpdate(e DialogEvent)   { r.DialogEvents = append(r.DialogEvents, e) }
func (r *RecordingNotifier) SessionUpdate(e SessionEvent) { r.SessionEvents = append(r.SessionEvents, e) }
