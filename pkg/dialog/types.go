package dialog

import "fmt"

// Role identifies which side of the establishing INVITE transaction a
// dialog was created for.
type Role int

const (
	RoleUAC Role = iota
	RoleUAS
	RoleProxy
)

func (r Role) String() string {
	switch r {
	case RoleUAC:
		return "uac"
	case RoleUAS:
		return "uas"
	case RoleProxy:
		return "proxy"
	default:
		return "unknown"
	}
}

// StatusKind enumerates the states a Dialog's status can be in. It
// mirrors spec §3's status set; StopReason only carries meaning when
// Kind is StatusStop.
type StatusKind int

const (
	StatusInit StatusKind = iota
	StatusProceedingUAC
	StatusProceedingUAS
	StatusAcceptedUAC
	StatusAcceptedUAS
	StatusConfirmed
	StatusBye
	StatusStop
)

func (k StatusKind) String() string {
	switch k {
	case StatusInit:
		return "init"
	case StatusProceedingUAC:
		return "proceeding_uac"
	case StatusProceedingUAS:
		return "proceeding_uas"
	case StatusAcceptedUAC:
		return "accepted_uac"
	case StatusAcceptedUAS:
		return "accepted_uas"
	case StatusConfirmed:
		return "confirmed"
	case StatusBye:
		return "bye"
	case StatusStop:
		return "stop"
	default:
		return "unknown"
	}
}

// StopReason identifies why a dialog stopped. The four RFC status-code
// derived reasons are named constants, as are the internally raised
// ReasonTimeout and ReasonAckTimeout; an unmapped SIP code is carried as
// its decimal string, produced by normalizeReason (see reason.go).
type StopReason string

const (
	ReasonBusy                StopReason = "busy"
	ReasonCancelled           StopReason = "cancelled"
	ReasonServiceUnavailable  StopReason = "service_unavailable"
	ReasonDeclined            StopReason = "declined"
	ReasonTimeout             StopReason = "timeout"
	ReasonAckTimeout          StopReason = "ack_timeout"
)

// Status is the tagged status value of §3/§9: Kind carries the variant,
// Reason only applies when Kind == StatusStop. Two Status values compare
// equal with ==; the state machine compares Kind alone to detect "no
// change".
type Status struct {
	Kind   StatusKind
	Reason StopReason
}

func (s Status) String() string {
	if s.Kind == StatusStop {
		return fmt.Sprintf("stop(%s)", s.Reason)
	}
	return s.Kind.String()
}

// Stop builds a StatusStop value carrying reason.
func Stop(reason StopReason) Status { return Status{Kind: StatusStop, Reason: reason} }

// simple non-stop status constructors, for readability at call sites.
var (
	Init           = Status{Kind: StatusInit}
	ProceedingUAC  = Status{Kind: StatusProceedingUAC}
	ProceedingUAS  = Status{Kind: StatusProceedingUAS}
	AcceptedUAC    = Status{Kind: StatusAcceptedUAC}
	AcceptedUAS    = Status{Kind: StatusAcceptedUAS}
	Confirmed      = Status{Kind: StatusConfirmed}
	Bye            = Status{Kind: StatusBye}
)

// Party names which side of the dialog an SDP offer or answer originated
// from.
type Party int

const (
	PartyLocal Party = iota
	PartyRemote
)

func (p Party) String() string {
	if p == PartyLocal {
		return "local"
	}
	return "remote"
}

// Source names which SIP message carried an SDP offer or answer.
type Source int

const (
	SourceRequest Source = iota
	SourceResponse
	SourceAck
)

func (s Source) String() string {
	switch s {
	case SourceRequest:
		return "request"
	case SourceResponse:
		return "response"
	case SourceAck:
		return "ack"
	default:
		return "unknown"
	}
}

// HibernateHint is the compaction hint §4.7 returns from Store, letting
// the outer scheduler decide when it's cheap to compact Call state.
type HibernateHint int

const (
	HibernateNone HibernateHint = iota
	HibernateDialogStop
	HibernateDialogConfirmed
)
