package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertBookingSession = `
INSERT INTO booking_sessions (
  id, booking_id, position, session_date, time_label, slot_id, provider_id, therapy_type_id, checked_in, checked_in_at, released
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

type InsertBookingSessionParams struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	Position      int32
	SessionDate   pgtype.Date
	TimeLabel     pgtype.Text
	SlotID        string
	ProviderID    uuid.UUID
	TherapyTypeID uuid.UUID
	CheckedIn     bool
	CheckedInAt   pgtype.Timestamptz
	Released      bool
}

// BatchItemError reports which queued statement of a batch failed.
type BatchItemError struct {
	Index int
	Err   error
}

func (e *BatchItemError) Error() string { return e.Err.Error() }

func (e *BatchItemError) Unwrap() error { return e.Err }

// InsertBookingSessions queues one insert per session in a single batch. The
// first failing insert aborts the batch; its error comes back as a
// *BatchItemError carrying the position of the failing session.
func (q *Queries) InsertBookingSessions(ctx context.Context, db DBTX, args []InsertBookingSessionParams) error {
	if len(args) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range args {
		batch.Queue(insertBookingSession,
			a.ID,
			a.BookingID,
			a.Position,
			a.SessionDate,
			a.TimeLabel,
			a.SlotID,
			a.ProviderID,
			a.TherapyTypeID,
			a.CheckedIn,
			a.CheckedInAt,
			a.Released,
		)
	}
	br := db.SendBatch(ctx, batch)
	for i := range args {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return &BatchItemError{Index: i, Err: err}
		}
	}
	return br.Close()
}

const listSessionsByBooking = `
SELECT id, booking_id, position, session_date, time_label, slot_id, provider_id, therapy_type_id, checked_in, checked_in_at
FROM booking_sessions
WHERE booking_id = $1
ORDER BY position
`

func (q *Queries) ListSessionsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]BookingSession, error) {
	rows, err := db.Query(ctx, listSessionsByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingSession
	for rows.Next() {
		var i BookingSession
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.Position,
			&i.SessionDate,
			&i.TimeLabel,
			&i.SlotID,
			&i.ProviderID,
			&i.TherapyTypeID,
			&i.CheckedIn,
			&i.CheckedInAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteSessionsByBooking = `DELETE FROM booking_sessions WHERE booking_id = $1`

func (q *Queries) DeleteSessionsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteSessionsByBooking, bookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const markSessionCheckedIn = `
UPDATE booking_sessions SET checked_in = TRUE, checked_in_at = $3
WHERE id = $1 AND booking_id = $2 AND NOT checked_in
`

type MarkSessionCheckedInParams struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	CheckedInAt pgtype.Timestamptz
}

func (q *Queries) MarkSessionCheckedIn(ctx context.Context, db DBTX, arg MarkSessionCheckedInParams) (int64, error) {
	result, err := db.Exec(ctx, markSessionCheckedIn, arg.ID, arg.BookingID, arg.CheckedInAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
