package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const adjustSlotCapacity = `
INSERT INTO slot_capacity (slot_date, slot_id, booked, updated_at)
VALUES ($1, $2, GREATEST($3::int, 0), now())
ON CONFLICT (slot_date, slot_id)
DO UPDATE SET booked = GREATEST(slot_capacity.booked + $3::int, 0), updated_at = now()
`

type AdjustSlotCapacityParams struct {
	SlotDate pgtype.Date
	SlotID   string
	Delta    int32
}

// AdjustSlotCapacity applies every delta in one batch. Each statement only
// touches its own (slot_date, slot_id) row and never drops below zero.
func (q *Queries) AdjustSlotCapacity(ctx context.Context, db DBTX, args []AdjustSlotCapacityParams) error {
	if len(args) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range args {
		batch.Queue(adjustSlotCapacity, a.SlotDate, a.SlotID, a.Delta)
	}
	br := db.SendBatch(ctx, batch)
	for range args {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return err
		}
	}
	return br.Close()
}

const listSlotCapacity = `
SELECT slot_date, slot_id, booked, updated_at
FROM slot_capacity
WHERE slot_date BETWEEN $1 AND $2
ORDER BY slot_date, slot_id
`

func (q *Queries) ListSlotCapacity(ctx context.Context, db DBTX, fromDate, toDate pgtype.Date) ([]SlotCapacity, error) {
	rows, err := db.Query(ctx, listSlotCapacity, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SlotCapacity
	for rows.Next() {
		var i SlotCapacity
		if err := rows.Scan(&i.SlotDate, &i.SlotID, &i.Booked, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
