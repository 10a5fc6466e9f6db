package booking

import (
	"fmt"
	"time"

	"appointment-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

// SlotKey identifies a provider's slot on a calendar day. Across all bookings
// a key is held by at most one session.
type SlotKey struct {
	Date       string
	SlotID     string
	ProviderID uuid.UUID
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Date, k.SlotID, k.ProviderID)
}

type Session struct {
	ID            uuid.UUID
	Date          string
	TimeLabel     string
	SlotID        string
	ProviderID    uuid.UUID
	ProviderRef   string
	TherapyTypeID uuid.UUID
	CheckedIn     bool
	CheckedInAt   *time.Time
}

func (s Session) Key() SlotKey {
	return SlotKey{Date: s.Date, SlotID: s.SlotID, ProviderID: s.ProviderID}
}

// HasValidSlot reports whether the session carries a slot id and a well-formed date.
func (s Session) HasValidSlot() bool {
	return s.SlotID != "" && clock.IsDate(s.Date)
}

func ValidSessions(sessions []Session) []Session {
	valid := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.HasValidSlot() {
			valid = append(valid, s)
		}
	}
	return valid
}
