package dialog

import (
	"context"

	"github.com/emiago/sipgo/sip"
)

// ResendOpts carries whatever the transport collaborator needs to
// address a retransmission beyond the response itself (e.g. the
// destination derived from the original request's top Via).
type ResendOpts struct {
	GlobalID string
}

// Transport is the narrow interface into the transport-level
// collaborator (§6). This package never opens a socket; it only asks
// whether a URI is one of the local listening addresses (for route-set
// shaping, §4.3) and asks the transport to resend a stored response
// (for retransmission, §4.6).
type Transport interface {
	// IsLocal reports whether uri names one of appID's own listening
	// addresses.
	IsLocal(appID string, uri sip.Uri) bool

	// ResendResponse resends resp verbatim. A blocking network write may
	// happen here; callers pass a context so it can be bounded.
	ResendResponse(ctx context.Context, resp *sip.Response, opts ResendOpts) error
}
