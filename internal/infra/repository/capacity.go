package repository

import (
	"context"

	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/shared"
)

type CapacityWriteQueries interface {
	AdjustSlotCapacity(ctx context.Context, db sqlc.DBTX, args []sqlc.AdjustSlotCapacityParams) error
}

// CapacityRepository maintains the display-only booked counters.
type CapacityRepository struct {
	queries CapacityWriteQueries
	db      sqlc.DBTX
}

func NewCapacityRepository(queries CapacityWriteQueries, db sqlc.DBTX) *CapacityRepository {
	return &CapacityRepository{
		queries: queries,
		db:      db,
	}
}

// Adjust folds deltas per (date, slot) and skips entries whose date does not
// parse.
func (r *CapacityRepository) Adjust(ctx context.Context, tx sqlc.DBTX, deltas []shared.CapacityDelta) error {
	type slotKey struct{ date, slot string }
	folded := make(map[slotKey]int, len(deltas))
	var order []slotKey
	for _, d := range deltas {
		k := slotKey{d.Date, d.SlotID}
		if _, ok := folded[k]; !ok {
			order = append(order, k)
		}
		folded[k] += d.Delta
	}

	params := make([]sqlc.AdjustSlotCapacityParams, 0, len(order))
	for _, k := range order {
		if folded[k] == 0 {
			continue
		}
		date, err := pgconv.DateFromISO(k.date)
		if err != nil {
			continue
		}
		params = append(params, sqlc.AdjustSlotCapacityParams{
			SlotDate: date,
			SlotID:   k.slot,
			Delta:    int32(folded[k]),
		})
	}

	if len(params) == 0 {
		return nil
	}
	if err := r.queries.AdjustSlotCapacity(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to adjust slot capacity", err)
	}
	return nil
}
