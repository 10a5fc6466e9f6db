package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const sessionEditRequestColumns = `id, request_code, booking_id, patient_id, sessions, status, created_at, updated_at`

func scanSessionEditRequest(row interface{ Scan(...any) error }) (SessionEditRequest, error) {
	var i SessionEditRequest
	err := row.Scan(
		&i.ID,
		&i.RequestCode,
		&i.BookingID,
		&i.PatientID,
		&i.Sessions,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createSessionEditRequest = `
INSERT INTO session_edit_requests (id, request_code, booking_id, patient_id, sessions, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
`

type CreateSessionEditRequestParams struct {
	ID          uuid.UUID
	RequestCode string
	BookingID   uuid.UUID
	PatientID   uuid.UUID
	Sessions    []byte
	Status      string
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateSessionEditRequest(ctx context.Context, db DBTX, arg CreateSessionEditRequestParams) error {
	_, err := db.Exec(ctx, createSessionEditRequest,
		arg.ID,
		arg.RequestCode,
		arg.BookingID,
		arg.PatientID,
		arg.Sessions,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const hasPendingSessionEditRequest = `
SELECT EXISTS (
  SELECT 1 FROM session_edit_requests WHERE booking_id = $1 AND status = 'pending'
)
`

func (q *Queries) HasPendingSessionEditRequest(ctx context.Context, db DBTX, bookingID uuid.UUID) (bool, error) {
	row := db.QueryRow(ctx, hasPendingSessionEditRequest, bookingID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

var getSessionEditRequestByIDForUpdate = `SELECT ` + sessionEditRequestColumns + ` FROM session_edit_requests WHERE id = $1 FOR UPDATE`

func (q *Queries) GetSessionEditRequestByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (SessionEditRequest, error) {
	return scanSessionEditRequest(db.QueryRow(ctx, getSessionEditRequestByIDForUpdate, id))
}

var listSessionEditRequests = `SELECT ` + sessionEditRequestColumns + ` FROM session_edit_requests
WHERE ($1::uuid IS NULL OR booking_id = $1)
  AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC, id DESC
`

type ListSessionEditRequestsParams struct {
	BookingID pgtype.UUID
	Status    pgtype.Text
}

func (q *Queries) ListSessionEditRequests(ctx context.Context, db DBTX, arg ListSessionEditRequestsParams) ([]SessionEditRequest, error) {
	rows, err := db.Query(ctx, listSessionEditRequests, arg.BookingID, arg.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SessionEditRequest
	for rows.Next() {
		i, err := scanSessionEditRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateSessionEditRequest = `
UPDATE session_edit_requests SET sessions = $2, status = $3, updated_at = $4
WHERE id = $1
`

type UpdateSessionEditRequestParams struct {
	ID        uuid.UUID
	Sessions  []byte
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateSessionEditRequest(ctx context.Context, db DBTX, arg UpdateSessionEditRequestParams) (int64, error) {
	result, err := db.Exec(ctx, updateSessionEditRequest, arg.ID, arg.Sessions, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteSessionEditRequest = `DELETE FROM session_edit_requests WHERE id = $1`

func (q *Queries) DeleteSessionEditRequest(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteSessionEditRequest, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
