package booking

// Diff splits two session lists by slot key. Added and Retained follow the
// order of next, Removed the order of prev.
type Diff struct {
	Added    []Session
	Removed  []Session
	Retained []Session
}

func (d Diff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

func DiffSessions(prev, next []Session) Diff {
	prevKeys := make(map[SlotKey]struct{}, len(prev))
	for _, s := range prev {
		prevKeys[s.Key()] = struct{}{}
	}
	nextKeys := make(map[SlotKey]struct{}, len(next))
	for _, s := range next {
		nextKeys[s.Key()] = struct{}{}
	}

	var d Diff
	for _, s := range next {
		if _, ok := prevKeys[s.Key()]; ok {
			d.Retained = append(d.Retained, s)
		} else {
			d.Added = append(d.Added, s)
		}
	}
	for _, s := range prev {
		if _, ok := nextKeys[s.Key()]; !ok {
			d.Removed = append(d.Removed, s)
		}
	}
	return d
}

// PlanSessions is DiffSessions aware of slot ownership: a booking that moves
// into or out of a status that does not claim its slots gains or gives up all
// of them.
func PlanSessions(prev []Session, prevStatus Status, next []Session, nextStatus Status) Diff {
	switch {
	case prevStatus.Claims() && nextStatus.Claims():
		return DiffSessions(prev, next)
	case nextStatus.Claims():
		return Diff{Added: next}
	case prevStatus.Claims():
		return Diff{Removed: prev}
	default:
		return Diff{Retained: next}
	}
}
