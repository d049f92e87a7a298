package dialog

// Find is a linear scan over call's dialogs by DialogID (§4.7). Returns
// (dialog, true) or (nil, false).
func Find(id DialogID, call *Call) (*Dialog, bool) {
	for _, d := range call.Dialogs {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

func indexOf(id DialogID, call *Call) int {
	for i, d := range call.Dialogs {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Store is C6 (§4.7): insert or update dlg in call's dialog list,
// removing it on a terminal status. The head of the list is checked
// first — per DESIGN NOTES, this isn't just an optimization to skip: the
// caller uses the hibernate hint the head path returns to decide when to
// compact outer state, so the fast path must stay even though the
// general path below is functionally equivalent.
func Store(dlg *Dialog, call *Call) (*Call, HibernateHint) {
	if len(call.Dialogs) > 0 && call.Dialogs[0].ID == dlg.ID {
		if dlg.Status.Kind == StatusStop {
			call.Dialogs = call.Dialogs[1:]
			call.Hibernate = HibernateDialogStop
			return call, call.Hibernate
		}
		if dlg.Status.Kind == StatusConfirmed {
			call.Dialogs[0] = dlg
			call.Hibernate = HibernateDialogConfirmed
			return call, call.Hibernate
		}
		call.Dialogs[0] = dlg
		call.Hibernate = HibernateNone
		return call, call.Hibernate
	}

	idx := indexOf(dlg.ID, call)

	if dlg.Status.Kind == StatusStop {
		if idx >= 0 {
			call.Dialogs = append(call.Dialogs[:idx], call.Dialogs[idx+1:]...)
		}
		call.Hibernate = HibernateNone
		return call, call.Hibernate
	}

	hint := HibernateNone
	if dlg.Status.Kind == StatusConfirmed {
		hint = HibernateDialogConfirmed
	}

	if idx >= 0 {
		call.Dialogs[idx] = dlg
	} else {
		call.Dialogs = append(call.Dialogs, dlg)
	}
	call.Hibernate = hint
	return call, hint
}
