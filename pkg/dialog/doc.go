// Package dialog implements the dialog layer of a SIP (RFC 3261) stack:
// the subsystem that tracks the lifecycle of a logical peer relationship
// between two user agents established by an INVITE transaction.
//
// The package is a pure transformation over Dialog and Call values. It
// never touches a socket, never parses a SIP message off the wire, and
// never matches a transaction — those are the job of collaborators
// reached through the Transport and Notifier interfaces (see
// transport.go and notifier.go). What lives here is:
//
//   - Dialog creation and identity (RFC 3261 §12) — see dialog.go, create.go.
//   - The status state machine driving proceeding/accepted/confirmed/bye/
//     stop transitions and their timers — see statemachine.go.
//   - Route-set, target (Contact), and SDP offer/answer session updates
//     that ride along with an INVITE exchange — see route.go, target.go,
//     session.go.
//   - Retransmission of the 2xx response to an INVITE while waiting for
//     the ACK, and dialog inactivity timeouts — see timer.go.
//   - An ordered, per-Call dialog store and per-dialog subscription
//     sub-store, both with a fast path for the common case that the
//     dialog just being touched is the one at the head of the list —
//     see store.go, subscription_store.go.
//
// All mutation of a Call and its dialogs is assumed to happen from a
// single serialized context (one goroutine per Call); the Dialog and Call
// operations take no lock (only Timer guards its own set of pending
// timers with a mutex). Callers running many Calls concurrently should
// give each Call its own goroutine or its own dedicated queue.
package dialog
