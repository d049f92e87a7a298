package dialog

import (
	"github.com/emiago/sipgo/sip"
)

// recordRouteURIs extracts, in header order, the Address of every
// Record-Route header on msg.
func recordRouteURIs(hdrs []sip.Header) []sip.Uri {
	uris := make([]sip.Uri, 0, len(hdrs))
	for _, h := range hdrs {
		if rr, ok := h.(*sip.RecordRouteHeader); ok {
			uris = append(uris, rr.Address)
		}
	}
	return uris
}

func reverseURIs(uris []sip.Uri) []sip.Uri {
	out := make([]sip.Uri, len(uris))
	for i, u := range uris {
		out[len(uris)-1-i] = u
	}
	return out
}

// routeUpdate is C4a (§4.3). It is only meaningful the first time a
// dialog is answered — the state machine only calls it while
// dlg.Answered.IsZero() holds, per §4.3's "After answered is set, route
// update is a no-op."
//
// UAC reads Record-Route off the response and reverses it, UAS reads it
// off the request and keeps it in order (RFC 3261 §12.1.1/§12.1.2); in
// both cases a leading hop that names one of the transport's own
// listening addresses is stripped, since that hop is this node itself
// and doesn't belong in an outbound route set.
func routeUpdate(t Transport, appID string, role Role, req *sip.Request, resp *sip.Response, dlg *Dialog) *Dialog {
	if !dlg.Answered.IsZero() {
		return dlg
	}

	var uris []sip.Uri
	if role == RoleUAC {
		uris = reverseURIs(recordRouteURIs(resp.GetHeaders("Record-Route")))
	} else {
		uris = recordRouteURIs(req.GetHeaders("Record-Route"))
	}

	if len(uris) > 0 && t != nil && t.IsLocal(appID, uris[0]) {
		uris = uris[1:]
	}

	dlg.RouteSet = uris
	return dlg
}
