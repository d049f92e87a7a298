package dialog

import (
	"testing"
	"time"

	"github.com/emiago/sipgo/sip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRouteUpdateUACReversesAndStripsLocalHop covers spec scenario 5.
func TestRouteUpdateUACReversesAndStripsLocalHop(t *testing.T) {
	transport := &stubTransport{localHost: "local-hop.example.com"}

	req := newTestInvite("a", "", 1, "")
	resp := newTestResponse(req, 200, "b", "", "local-hop.example.com", "proxya.example.com", "proxyb.example.com")

	dlg := &Dialog{}
	dlg = routeUpdate(transport, "app1", RoleUAC, req, resp, dlg)

	require.Len(t, dlg.RouteSet, 3)
	assert.Equal(t, "proxyb.example.com", dlg.RouteSet[0].Host)
	assert.Equal(t, "proxya.example.com", dlg.RouteSet[1].Host)
	assert.Equal(t, "local-hop.example.com", dlg.RouteSet[2].Host)
}

func TestRouteUpdateUACStripsLocalHeadAfterReversal(t *testing.T) {
	transport := &stubTransport{localHost: "local-hop.example.com"}

	req := newTestInvite("a", "", 1, "")
	resp := newTestResponse(req, 200, "b", "", "proxya.example.com", "local-hop.example.com")

	dlg := &Dialog{}
	dlg = routeUpdate(transport, "app1", RoleUAC, req, resp, dlg)

	require.Len(t, dlg.RouteSet, 1)
	assert.Equal(t, "proxya.example.com", dlg.RouteSet[0].Host)
}

func TestRouteUpdateUASKeepsOrder(t *testing.T) {
	transport := &stubTransport{localHost: "local-hop.example.com"}

	req := newTestInvite("a", "", 1, "")
	req.AppendHeader(&sip.RecordRouteHeader{Address: parseTestURI("local-hop.example.com")})
	req.AppendHeader(&sip.RecordRouteHeader{Address: parseTestURI("proxya.example.com")})
	resp := newTestResponse(req, 200, "b", "")

	dlg := &Dialog{}
	dlg = routeUpdate(transport, "app1", RoleUAS, req, resp, dlg)

	require.Len(t, dlg.RouteSet, 1)
	assert.Equal(t, "proxya.example.com", dlg.RouteSet[0].Host)
}

// TestRouteUpdateNoOpOnceAnswered covers §4.3 "after answered is set, route
// update is a no-op".
func TestRouteUpdateNoOpOnceAnswered(t *testing.T) {
	transport := &stubTransport{}
	req := newTestInvite("a", "", 1, "")
	resp := newTestResponse(req, 200, "b", "", "proxya.example.com")

	dlg := &Dialog{Answered: time.Now()}
	dlg = routeUpdate(transport, "app1", RoleUAC, req, resp, dlg)

	assert.Nil(t, dlg.RouteSet)
}
