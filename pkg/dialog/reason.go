package dialog

import "strconv"

// normalizeReason maps a SIP final-response status code to the stop
// reason the application layer sees, per §4.2 and property P5. Codes
// outside the mapped set pass through as their decimal string.
func normalizeReason(code int) StopReason {
	switch code {
	case 486:
		return ReasonBusy
	case 487:
		return ReasonCancelled
	case 503:
		return ReasonServiceUnavailable
	case 603:
		return ReasonDeclined
	default:
		return StopReason(strconv.Itoa(code))
	}
}
