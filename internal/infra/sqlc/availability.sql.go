package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listBookedSlotsByProvider = `
SELECT s.session_date, p.ref_code, s.slot_id
FROM booking_sessions s
JOIN providers p ON p.id = s.provider_id
JOIN bookings b ON b.id = s.booking_id
WHERE s.provider_id = $1
  AND s.session_date BETWEEN $2 AND $3
  AND NOT s.released
  AND b.status <> 'cancelled'
ORDER BY s.session_date, s.slot_id
`

type ListBookedSlotsByProviderParams struct {
	ProviderID uuid.UUID
	FromDate   pgtype.Date
	ToDate     pgtype.Date
}

type ListBookedSlotsByProviderRow struct {
	SessionDate pgtype.Date
	RefCode     string
	SlotID      string
}

func (q *Queries) ListBookedSlotsByProvider(ctx context.Context, db DBTX, arg ListBookedSlotsByProviderParams) ([]ListBookedSlotsByProviderRow, error) {
	rows, err := db.Query(ctx, listBookedSlotsByProvider, arg.ProviderID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBookedSlotsByProviderRow
	for rows.Next() {
		var i ListBookedSlotsByProviderRow
		if err := rows.Scan(&i.SessionDate, &i.RefCode, &i.SlotID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
