package dialog

import (
	psdp "github.com/pion/sdp/v3"
)

// SDP wraps a session description: the raw bytes as carried on the wire,
// and the parsed form when parsing succeeds. Equality (sdpEqual) prefers
// the parsed origin line, per §4.5's "SDP equality that considers
// version/content", and falls back to a byte comparison when either side
// failed to parse.
type SDP struct {
	Raw     []byte
	Session *psdp.SessionDescription
}

// ParseSDP parses raw as an SDP session description. A parse failure is
// not fatal to the caller: the returned SDP still carries Raw, just with
// a nil Session, so byte-equality remains available.
func ParseSDP(raw []byte) SDP {
	sd := &psdp.SessionDescription{}
	if err := sd.Unmarshal(raw); err != nil {
		return SDP{Raw: raw}
	}
	return SDP{Raw: raw, Session: sd}
}

// sdpEqual implements the "SDP equality that considers version/content"
// rule of §4.5: two parsed SDPs are equal iff their origin session id and
// version line up, since RFC 4566 §5.2 requires a version bump on any
// content change. Falls back to a raw byte comparison when either side
// didn't parse.
func sdpEqual(a, b *SDP) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Session != nil && b.Session != nil {
		return a.Session.Origin.SessionID == b.Session.Origin.SessionID &&
			a.Session.Origin.SessionVersion == b.Session.Origin.SessionVersion
	}
	return string(a.Raw) == string(b.Raw)
}

// sessionUpdate is C4c (§4.5): given a dialog whose SDPOffer and
// SDPAnswer are both populated, compute the resulting local/remote SDP
// pair, decide whether a session_update notification is due, and clear
// the pending offer/answer. If the precondition isn't met, dlg is
// returned unchanged and no notification fires.
func sessionUpdate(n Notifier, m *Metrics, dlg *Dialog) *Dialog {
	if dlg.SDPOffer == nil || dlg.SDPAnswer == nil {
		return dlg
	}

	offer, answer := dlg.SDPOffer, dlg.SDPAnswer

	var localSDP, remoteSDP SDP
	switch {
	case offer.Party == PartyLocal && answer.Party == PartyRemote:
		localSDP, remoteSDP = offer.SDP, answer.SDP
	case offer.Party == PartyRemote && answer.Party == PartyLocal:
		localSDP, remoteSDP = answer.SDP, offer.SDP
	default:
		// Two offers or two answers from the same party is a protocol
		// anomaly upstream of this layer; nothing to commit.
		dlg.SDPOffer, dlg.SDPAnswer = nil, nil
		return dlg
	}

	if !dlg.MediaStarted {
		n.SessionUpdate(SessionEvent{
			Kind:      SessionEventStart,
			DialogID:  dlg.ID,
			LocalSDP:  &localSDP,
			RemoteSDP: &remoteSDP,
		})
		m.observeSessionEvent(SessionEventStart)
	} else if !sdpEqual(dlg.LocalSDP, &localSDP) || !sdpEqual(dlg.RemoteSDP, &remoteSDP) {
		n.SessionUpdate(SessionEvent{
			Kind:      SessionEventUpdate,
			DialogID:  dlg.ID,
			LocalSDP:  &localSDP,
			RemoteSDP: &remoteSDP,
		})
		m.observeSessionEvent(SessionEventUpdate)
	}

	dlg.LocalSDP = &localSDP
	dlg.RemoteSDP = &remoteSDP
	dlg.MediaStarted = true
	dlg.SDPOffer, dlg.SDPAnswer = nil, nil

	return dlg
}
