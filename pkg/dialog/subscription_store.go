package dialog

// FindSub mirrors Find at sub-list granularity (§4.8): a linear scan of
// dlg's subscriptions by event id.
func FindSub(eventID string, dlg *Dialog) (*Subscription, bool) {
	for _, s := range dlg.Subs {
		if s.EventID == eventID {
			return s, true
		}
	}
	return nil, false
}

func subIndexOf(eventID string, dlg *Dialog) int {
	for i, s := range dlg.Subs {
		if s.EventID == eventID {
			return i
		}
	}
	return -1
}

// StoreSub mirrors Store at sub-list granularity (§4.8), with the same
// head-fast-path: a subscription in status {terminated, _} is removed on
// write rather than replaced.
func StoreSub(sub *Subscription, dlg *Dialog) *Dialog {
	if len(dlg.Subs) > 0 && dlg.Subs[0].EventID == sub.EventID {
		if sub.Status.Kind == SubTerminated {
			dlg.Subs = dlg.Subs[1:]
		} else {
			dlg.Subs[0] = sub
		}
		return dlg
	}

	idx := subIndexOf(sub.EventID, dlg)

	if sub.Status.Kind == SubTerminated {
		if idx >= 0 {
			dlg.Subs = append(dlg.Subs[:idx], dlg.Subs[idx+1:]...)
		}
		return dlg
	}

	if idx >= 0 {
		dlg.Subs[idx] = sub
	} else {
		dlg.Subs = append(dlg.Subs, sub)
	}
	return dlg
}
