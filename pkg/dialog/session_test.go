package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSDPv1 = "v=0\r\no=alice 2890844526 2890844526 IN IP4 10.0.0.1\r\ns=-\r\nc=IN IP4 10.0.0.1\r\nt=0 0\r\nm=audio 49170 RTP/AVP 0\r\n"
const testSDPv2 = "v=0\r\no=alice 2890844526 2890844527 IN IP4 10.0.0.1\r\ns=-\r\nc=IN IP4 10.0.0.1\r\nt=0 0\r\nm=audio 49172 RTP/AVP 0\r\n"

func offerAnswer(party Party, sdp string) (OfferAnswer, SDP) {
	parsed := ParseSDP([]byte(sdp))
	return OfferAnswer{Party: party, Source: SourceRequest, SDP: parsed}, parsed
}

// TestSessionUpdateEmitsStartOnce covers P6's first half.
func TestSessionUpdateEmitsStartOnce(t *testing.T) {
	rec := &RecordingNotifier{}
	dlg := &Dialog{ID: DialogID{CallID: "c1"}}

	offer, _ := offerAnswer(PartyLocal, testSDPv1)
	answer, _ := offerAnswer(PartyRemote, testSDPv1)
	dlg.SDPOffer, dlg.SDPAnswer = &offer, &answer

	dlg = sessionUpdate(rec, nil, dlg)

	require.True(t, dlg.MediaStarted)
	require.Len(t, rec.SessionEvents, 1)
	assert.Equal(t, SessionEventStart, rec.SessionEvents[0].Kind)
	assert.Nil(t, dlg.SDPOffer)
	assert.Nil(t, dlg.SDPAnswer)

	// A second identical exchange must not re-emit start or update.
	offer2, _ := offerAnswer(PartyLocal, testSDPv1)
	answer2, _ := offerAnswer(PartyRemote, testSDPv1)
	dlg.SDPOffer, dlg.SDPAnswer = &offer2, &answer2
	dlg = sessionUpdate(rec, nil, dlg)
	assert.Len(t, rec.SessionEvents, 1, "an unchanged SDP re-negotiation emits nothing")
}

func TestSessionUpdateEmitsUpdateOnVersionBump(t *testing.T) {
	rec := &RecordingNotifier{}
	dlg := &Dialog{ID: DialogID{CallID: "c1"}, MediaStarted: true}

	local, _ := offerAnswer(PartyLocal, testSDPv1)
	remote, _ := offerAnswer(PartyRemote, testSDPv1)
	dlg.LocalSDP, dlg.RemoteSDP = &local.SDP, &remote.SDP

	offer, _ := offerAnswer(PartyLocal, testSDPv2)
	answer, _ := offerAnswer(PartyRemote, testSDPv1)
	dlg.SDPOffer, dlg.SDPAnswer = &offer, &answer

	dlg = sessionUpdate(rec, nil, dlg)

	require.Len(t, rec.SessionEvents, 1)
	assert.Equal(t, SessionEventUpdate, rec.SessionEvents[0].Kind)
}

func TestSessionUpdateNoOpWithoutBothSides(t *testing.T) {
	rec := &RecordingNotifier{}
	dlg := &Dialog{ID: DialogID{CallID: "c1"}}
	offer, _ := offerAnswer(PartyLocal, testSDPv1)
	dlg.SDPOffer = &offer

	dlg = sessionUpdate(rec, nil, dlg)

	assert.Empty(t, rec.SessionEvents)
	assert.False(t, dlg.MediaStarted)
}

func TestSessionUpdateAnomalyClearsPending(t *testing.T) {
	rec := &RecordingNotifier{}
	dlg := &Dialog{ID: DialogID{CallID: "c1"}}
	offer, _ := offerAnswer(PartyLocal, testSDPv1)
	badAnswer, _ := offerAnswer(PartyLocal, testSDPv2)
	dlg.SDPOffer, dlg.SDPAnswer = &offer, &badAnswer

	dlg = sessionUpdate(rec, nil, dlg)

	assert.Empty(t, rec.SessionEvents)
	assert.False(t, dlg.MediaStarted)
	assert.Nil(t, dlg.SDPOffer)
	assert.Nil(t, dlg.SDPAnswer)
}
