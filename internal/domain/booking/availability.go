package booking

import (
	"fmt"
	"strings"

	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// DaySummary lists the slots already claimed on one day, per provider
// reference code.
type DaySummary struct {
	BookedSlots map[string][]string
}

// Snapshot merges day summaries from several availability reads.
type Snapshot struct {
	days map[string]map[string]map[string]struct{}
}

func NewSnapshot() *Snapshot {
	return &Snapshot{days: make(map[string]map[string]map[string]struct{})}
}

func (s *Snapshot) Merge(days map[string]DaySummary) {
	for date, summary := range days {
		byProvider, ok := s.days[date]
		if !ok {
			byProvider = make(map[string]map[string]struct{})
			s.days[date] = byProvider
		}
		for ref, slots := range summary.BookedSlots {
			set, ok := byProvider[ref]
			if !ok {
				set = make(map[string]struct{}, len(slots))
				byProvider[ref] = set
			}
			for _, slot := range slots {
				set[slot] = struct{}{}
			}
		}
	}
}

func (s *Snapshot) IsBooked(date, providerRef, slotID string) bool {
	_, ok := s.days[date][providerRef][slotID]
	return ok
}

type Conflict struct {
	Date       string    `json:"date"`
	SlotID     string    `json:"slotId"`
	ProviderID uuid.UUID `json:"providerId"`
}

// ConflictError carries every requested slot that is already held.
type ConflictError struct {
	Conflicts []Conflict
}

func NewConflictError(conflicts []Conflict) *ConflictError {
	return &ConflictError{Conflicts: conflicts}
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s %s (%s)", c.Date, c.SlotID, c.ProviderID))
	}
	return "slot conflict: " + strings.Join(parts, ", ")
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrConflict || target == ErrSlotConflict
}

// DetectConflicts checks requested sessions against snap. A key requested twice
// in the same list is a conflict as well. Sessions must carry ProviderRef.
func DetectConflicts(requested []Session, snap *Snapshot) []Conflict {
	var conflicts []Conflict
	seen := make(map[SlotKey]struct{}, len(requested))
	for _, s := range requested {
		key := s.Key()
		_, dup := seen[key]
		seen[key] = struct{}{}
		if dup || snap.IsBooked(s.Date, s.ProviderRef, s.SlotID) {
			conflicts = append(conflicts, Conflict{Date: s.Date, SlotID: s.SlotID, ProviderID: s.ProviderID})
		}
	}
	return conflicts
}

// DuplicateSessions reports every session whose slot key already appeared
// earlier in the same list.
func DuplicateSessions(sessions []Session) []Conflict {
	var conflicts []Conflict
	seen := make(map[SlotKey]struct{}, len(sessions))
	for _, s := range sessions {
		key := s.Key()
		if _, dup := seen[key]; dup {
			conflicts = append(conflicts, Conflict{Date: s.Date, SlotID: s.SlotID, ProviderID: s.ProviderID})
			continue
		}
		seen[key] = struct{}{}
	}
	return conflicts
}

// DateRange is the inclusive span of dates one provider's sessions cover.
type DateRange struct {
	From string
	To   string
}

// RangesByProvider groups sessions by provider, keeping first-seen order.
func RangesByProvider(sessions []Session) ([]uuid.UUID, map[uuid.UUID]DateRange) {
	var order []uuid.UUID
	ranges := make(map[uuid.UUID]DateRange)
	for _, s := range sessions {
		r, ok := ranges[s.ProviderID]
		if !ok {
			order = append(order, s.ProviderID)
			ranges[s.ProviderID] = DateRange{From: s.Date, To: s.Date}
			continue
		}
		if s.Date < r.From {
			r.From = s.Date
		}
		if s.Date > r.To {
			r.To = s.Date
		}
		ranges[s.ProviderID] = r
	}
	return order, ranges
}
