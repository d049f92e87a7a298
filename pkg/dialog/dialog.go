package dialog

import (
	"time"

	"github.com/emiago/sipgo/sip"
)

// DialogID identifies a Dialog per RFC 3261 §12: the triple of Call-ID
// plus the local and remote tags. It is a pure function of role and the
// dialog-establishing response (see create.go), so re-deriving it from
// the same response always yields the same value (invariant 1).
type DialogID struct {
	CallID    string
	LocalTag  string
	RemoteTag string
}

func (id DialogID) String() string {
	return id.CallID + ";local=" + id.LocalTag + ";remote=" + id.RemoteTag
}

// invalidTarget is the sentinel remote_target a freshly created dialog
// starts with, per §4.4 step 6 ("the previous value was not the
// sentinel <invalid.invalid>").
var invalidTarget = sip.Uri{Host: "invalid.invalid"}

// IsInvalidTarget reports whether u is the sentinel target a Dialog is
// born with, before any Contact has ever been learned.
func IsInvalidTarget(u sip.Uri) bool {
	return u.Host == invalidTarget.Host && u.User == "" && u.Scheme == ""
}

// OfferAnswer is one leg of an SDP offer/answer exchange: which party
// produced it, which message carried it, and the SDP itself.
type OfferAnswer struct {
	Party  Party
	Source Source
	SDP    SDP
}

// Dialog is the C3 record of spec §3. Its fields are exported. The
// package-level operations (StatusUpdate, Dispatch, ...) update the
// *Dialog they are handed in place and return that same pointer, so a
// caller holding it sees the change — see DESIGN NOTES §9 "mutation
// style".
type Dialog struct {
	ID DialogID

	AppID  string
	CallID string

	Created  time.Time
	Updated  time.Time
	Answered time.Time // zero value means "undefined"

	Status Status

	Role        Role // role the dialog was created under
	InviteClass Role // role owning the INVITE exchange currently in flight

	LocalSeq  uint32
	RemoteSeq uint32

	LocalURI  sip.Uri
	RemoteURI sip.Uri

	LocalTarget  sip.Uri
	RemoteTarget sip.Uri
	RouteSet     []sip.Uri

	Secure bool
	Early  bool

	CallerTag string

	LocalSDP     *SDP
	RemoteSDP    *SDP
	MediaStarted bool

	SDPOffer  *OfferAnswer
	SDPAnswer *OfferAnswer

	InviteReq  *sip.Request
	InviteResp *sip.Response
	AckReq     *sip.Request

	RetransTimer *Handle
	TimeoutTimer *Handle
	NextRetrans  time.Duration

	StopReason StopReason

	Subs []*Subscription
}

// SubscriptionStatusKind enumerates a Subscription's status, per §3.
type SubscriptionStatusKind int

const (
	SubActive SubscriptionStatusKind = iota
	SubPending
	SubTerminated
)

// SubscriptionStatus mirrors Status's shape for subscriptions: Reason
// only applies when Kind is SubTerminated.
type SubscriptionStatus struct {
	Kind   SubscriptionStatusKind
	Reason string
}

// Subscription is a C7 sub-record attached to a Dialog, identified by
// its event id within that dialog.
type Subscription struct {
	EventID string
	Status  SubscriptionStatus
	Created time.Time
	Updated time.Time
}

// Call is an ordered collection of the dialogs belonging to one logical
// call, plus the hibernation hint the store last produced (§3, §4.7).
type Call struct {
	ID        string
	Dialogs   []*Dialog
	Hibernate HibernateHint
}

// NewCall returns an empty Call ready to accept dialogs.
func NewCall(id string) *Call {
	return &Call{ID: id}
}
