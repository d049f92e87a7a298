package dialog

import (
	"fmt"
	"time"

	"github.com/emiago/sipgo/sip"
)

func contactURIs(hdrs []sip.Header) []sip.Uri {
	uris := make([]sip.Uri, 0, len(hdrs))
	for _, h := range hdrs {
		if c, ok := h.(*sip.ContactHeader); ok {
			uris = append(uris, c.Address)
		}
	}
	return uris
}

// uriEqual compares the addressable part of two URIs. sip.Uri carries a
// HeaderParams map, which is not comparable with ==, so change detection
// is scoped to the fields that actually identify "the same target".
func uriEqual(a, b sip.Uri) bool {
	return a.Scheme == b.Scheme && a.User == b.User && a.Host == b.Host && a.Port == b.Port
}

func setContact(hdrs []sip.Header, uri sip.Uri) {
	for _, h := range hdrs {
		if c, ok := h.(*sip.ContactHeader); ok {
			c.Address = uri
			return
		}
	}
}

// targetUpdate is C4b (§4.4): compute the new local/remote target
// (Contact) from the stored INVITE request/response pair, latch `early`,
// set `answered` on the first ≥200 response, and, if the INVITE exchange
// is still in flight, patch the Contact in the stored request so a later
// final response carries the up-to-date value.
func targetUpdate(n Notifier, now time.Time, role Role, req *sip.Request, resp *sip.Response, logger Logger, dlg *Dialog) *Dialog {
	var remoteContacts, localContacts []sip.Uri
	if role == RoleUAC {
		remoteContacts = contactURIs(resp.GetHeaders("Contact"))
		localContacts = contactURIs(req.GetHeaders("Contact"))
	} else {
		remoteContacts = contactURIs(req.GetHeaders("Contact"))
		localContacts = contactURIs(resp.GetHeaders("Contact"))
	}

	prevRemote := dlg.RemoteTarget
	remoteChanged := false

	switch len(remoteContacts) {
	case 1:
		newTarget := remoteContacts[0]
		if dlg.Secure {
			newTarget.Scheme = "sips"
		}
		if !uriEqual(newTarget, prevRemote) {
			dlg.RemoteTarget = newTarget
			remoteChanged = true
		}
	default:
		err := newError(KindProtocolAnomaly, "target_update.remote_contact",
			fmt.Errorf("expected exactly one Contact, got %d", len(remoteContacts)))
		logger.Warn("protocol anomaly", F("dialog_id", dlg.ID.String()), ErrField(err))
	}

	switch len(localContacts) {
	case 1:
		dlg.LocalTarget = localContacts[0]
	default:
		err := newError(KindProtocolAnomaly, "target_update.local_contact",
			fmt.Errorf("expected exactly one Contact, got %d", len(localContacts)))
		logger.Warn("protocol anomaly", F("dialog_id", dlg.ID.String()), ErrField(err))
	}

	code := resp.StatusCode
	dlg.Early = dlg.Early && code >= 100 && code < 200

	if dlg.Answered.IsZero() && code >= 200 {
		dlg.Answered = now
	}

	if remoteChanged && !IsInvalidTarget(prevRemote) {
		n.DialogUpdate(DialogEvent{Kind: DialogEventTargetUpdate, DialogID: dlg.ID})
	}

	if code < 200 {
		// The INVITE exchange is still in flight: patch the stored
		// request's Contact so a later final response reflects the
		// target we just learned, per §4.4 step 7.
		if dlg.InviteClass == RoleUAS {
			setContact(req.GetHeaders("Contact"), dlg.RemoteTarget)
		} else {
			setContact(req.GetHeaders("Contact"), dlg.LocalTarget)
		}
	}

	return dlg
}
