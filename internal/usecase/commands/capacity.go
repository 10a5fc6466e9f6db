package commands

import (
	"context"
	"log/slog"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/usecase/shared"
)

// adjustCapacity moves the booked-slot ledger by delta for every session that
// names a slot on a well-formed date. Sessions without one are skipped.
func adjustCapacity(ctx context.Context, tx shared.Tx, sessions []booking.Session, delta int) error {
	valid := booking.ValidSessions(sessions)
	if len(valid) == 0 {
		slog.Warn("no valid sessions for capacity adjustment", "sessions", len(sessions), "delta", delta)
		return nil
	}

	deltas := make([]shared.CapacityDelta, len(valid))
	for i, s := range valid {
		deltas[i] = shared.CapacityDelta{Date: s.Date, SlotID: s.SlotID, Delta: delta}
	}
	return tx.Capacity().Adjust(ctx, tx.DB(), deltas)
}

// applyDiff releases removed sessions and claims added ones in one call.
func applyDiff(ctx context.Context, tx shared.Tx, diff booking.Diff) error {
	removed := booking.ValidSessions(diff.Removed)
	added := booking.ValidSessions(diff.Added)
	if len(removed) == 0 && len(added) == 0 {
		return nil
	}

	deltas := make([]shared.CapacityDelta, 0, len(removed)+len(added))
	for _, s := range removed {
		deltas = append(deltas, shared.CapacityDelta{Date: s.Date, SlotID: s.SlotID, Delta: -1})
	}
	for _, s := range added {
		deltas = append(deltas, shared.CapacityDelta{Date: s.Date, SlotID: s.SlotID, Delta: 1})
	}
	return tx.Capacity().Adjust(ctx, tx.DB(), deltas)
}
