package dialog

import (
	"github.com/emiago/sipgo/sip"
)

// newTestInvite builds a minimal INVITE with From/To/CSeq/Contact headers,
// enough for Create/statemachine tests to exercise identity and target
// derivation without a real transport.
func newTestInvite(fromTag, toTag string, cseq uint32, contact string) *sip.Request {
	req := sip.NewRequest(sip.INVITE, sip.Uri{Scheme: "sip", User: "bob", Host: "bob.example.com"})

	req.AppendHeader(&sip.FromHeader{
		Address: sip.Uri{Scheme: "sip", User: "alice", Host: "alice.example.com"},
		Params:  sip.HeaderParams{"tag": fromTag},
	})
	toParams := sip.HeaderParams{}
	if toTag != "" {
		toParams["tag"] = toTag
	}
	req.AppendHeader(&sip.ToHeader{
		Address: sip.Uri{Scheme: "sip", User: "bob", Host: "bob.example.com"},
		Params:  toParams,
	})
	req.AppendHeader(&sip.CSeqHeader{SeqNo: cseq, MethodName: sip.INVITE})
	callID := sip.CallIDHeader("call-1@example.com")
	req.AppendHeader(&callID)
	if contact != "" {
		req.AppendHeader(&sip.ContactHeader{Address: parseTestURI(contact)})
	}
	return req
}

// newTestResponse builds a response to req carrying its own To-tag,
// optional Contact, and optional Record-Route set.
func newTestResponse(req *sip.Request, code int, toTag string, contact string, recordRoute ...string) *sip.Response {
	resp := sip.NewResponseFromRequest(req, code, "test-reason", nil)
	if toTag != "" {
		if to := resp.To(); to != nil {
			if to.Params == nil {
				to.Params = sip.HeaderParams{}
			}
			to.Params["tag"] = toTag
		}
	}
	if contact != "" {
		resp.AppendHeader(&sip.ContactHeader{Address: parseTestURI(contact)})
	}
	for _, rr := range recordRoute {
		resp.AppendHeader(&sip.RecordRouteHeader{Address: parseTestURI(rr)})
	}
	return resp
}

// recordingLogger captures every Warn call's fields, letting tests
// recover the *Error a call site logged via errors.As instead of
// matching on message text.
type recordingLogger struct {
	noopLogger
	warnings [][]Field
}

func (r *recordingLogger) Warn(msg string, fields ...Field) {
	r.warnings = append(r.warnings, fields)
}

// lastWarnErr returns the *Error carried by the last Warn call's "error"
// field, if any.
func (r *recordingLogger) lastWarnErr() error {
	if len(r.warnings) == 0 {
		return nil
	}
	for _, f := range r.warnings[len(r.warnings)-1] {
		if f.Key == "error" {
			if err, ok := f.Value.(error); ok {
				return err
			}
		}
	}
	return nil
}

// parseTestURI builds a bare sip.Uri from a "user@host" or "host" string;
// good enough for the identity comparisons these tests make.
func parseTestURI(s string) sip.Uri {
	user, host := "", s
	for i := 0; i < len(s); i++ {
		if s[i] == '@' {
			user, host = s[:i], s[i+1:]
			break
		}
	}
	return sip.Uri{Scheme: "sip", User: user, Host: host}
}
