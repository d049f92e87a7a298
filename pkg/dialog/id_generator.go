package dialog

import "github.com/emiago/sipgo/sip"

// tagOf returns the "tag" parameter of a From header, or "" if absent
// or h is nil. tagOfTo does the same for a To header.
func tagOf(h *sip.FromHeader) string {
	if h == nil {
		return ""
	}
	tag, _ := h.Params.Get("tag")
	return tag
}

func tagOfTo(h *sip.ToHeader) string {
	if h == nil {
		return ""
	}
	tag, _ := h.Params.Get("tag")
	return tag
}

// NewDialogID derives the DialogID of the dialog role would establish
// from resp, per §3 invariant 1: a pure function of role and the
// establishing response's Call-ID/From-tag/To-tag. Calling it twice on
// the same (role, resp) pair yields the same DialogID.
func NewDialogID(role Role, resp *sip.Response) DialogID {
	callID := ""
	if cid := resp.CallID(); cid != nil {
		callID = cid.Value()
	}

	fromTag := tagOf(resp.From())
	toTag := tagOfTo(resp.To())

	switch role {
	case RoleUAC:
		// We are the From party; our tag is local, the remote's is To.
		return DialogID{CallID: callID, LocalTag: fromTag, RemoteTag: toTag}
	default: // RoleUAS, RoleProxy
		return DialogID{CallID: callID, LocalTag: toTag, RemoteTag: fromTag}
	}
}
