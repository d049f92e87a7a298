package dialog

import (
	"strings"
	"time"

	"github.com/emiago/sipgo/sip"
)

// dialogCounter is the process-wide monotone counter of §5 "Shared
// resources": incremented on Create, decremented when a dialog reaches
// {stop, _}. It only ever moves by one at a time from whichever Call's
// serialized context is running, so a plain atomic suffices — no lock
// is held across the increment/decrement pair.
var dialogCounter counter

// ActiveDialogs returns the number of dialogs currently live across every
// Call in the process.
func ActiveDialogs() int64 { return dialogCounter.get() }

// Create is C3's creation operation (§4.1): given the role a dialog is
// being created under, the establishing request, and the establishing
// response, it returns a fresh Dialog in status Init.
func Create(appID string, role Role, req *sip.Request, resp *sip.Response) *Dialog {
	now := time.Now()

	dlg := &Dialog{
		ID:           NewDialogID(role, resp),
		AppID:        appID,
		Status:       Init,
		Role:         role,
		InviteClass:  role,
		Created:      now,
		Updated:      now,
		Early:        true,
		MediaStarted: false,
		Secure:       isSecure(req),
		RemoteTarget: invalidTarget,
		InviteReq:    req,
		InviteResp:   resp,
	}

	if cid := resp.CallID(); cid != nil {
		dlg.CallID = cid.Value()
	}

	switch role {
	case RoleUAC:
		dlg.LocalSeq = cseqOf(req)
		dlg.RemoteSeq = 0
		dlg.LocalURI = addressOf(req.From())
		dlg.RemoteURI = addressOfTo(req.To())
		dlg.CallerTag = tagOf(req.From())
	default: // RoleUAS, RoleProxy
		dlg.LocalSeq = 0
		dlg.RemoteSeq = cseqOf(req)
		dlg.LocalURI = addressOfTo(req.To())
		dlg.RemoteURI = addressOf(req.From())
		dlg.CallerTag = tagOf(req.From())
	}

	dialogCounter.inc()

	return dlg
}

func cseqOf(req *sip.Request) uint32 {
	if c := req.CSeq(); c != nil {
		return c.SeqNo
	}
	return 0
}

func addressOf(h *sip.FromHeader) sip.Uri {
	if h == nil {
		return sip.Uri{}
	}
	return h.Address
}

func addressOfTo(h *sip.ToHeader) sip.Uri {
	if h == nil {
		return sip.Uri{}
	}
	return h.Address
}

// isSecure reports whether the establishing request's Request-URI uses
// the sips scheme AND the request arrived over TLS, per §3 ("secure is
// true iff establishing Request-URI scheme is sips and transport is
// TLS") and invariant 5 ("secure is write-once at creation").
func isSecure(req *sip.Request) bool {
	return req.Recipient.Scheme == "sips" && strings.EqualFold(req.Transport(), "tls")
}
