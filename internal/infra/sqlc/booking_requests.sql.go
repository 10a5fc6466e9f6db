package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingRequestColumns = `id, request_code, package_id, patient_id, therapy_type_id, sessions, remark, status, booking_id, created_at, updated_at`

func scanBookingRequest(row interface{ Scan(...any) error }) (BookingRequest, error) {
	var i BookingRequest
	err := row.Scan(
		&i.ID,
		&i.RequestCode,
		&i.PackageID,
		&i.PatientID,
		&i.TherapyTypeID,
		&i.Sessions,
		&i.Remark,
		&i.Status,
		&i.BookingID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBookingRequest = `
INSERT INTO booking_requests (id, request_code, package_id, patient_id, therapy_type_id, sessions, remark, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
`

type CreateBookingRequestParams struct {
	ID            uuid.UUID
	RequestCode   string
	PackageID     uuid.UUID
	PatientID     uuid.UUID
	TherapyTypeID uuid.UUID
	Sessions      []byte
	Remark        pgtype.Text
	Status        string
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateBookingRequest(ctx context.Context, db DBTX, arg CreateBookingRequestParams) error {
	_, err := db.Exec(ctx, createBookingRequest,
		arg.ID,
		arg.RequestCode,
		arg.PackageID,
		arg.PatientID,
		arg.TherapyTypeID,
		arg.Sessions,
		arg.Remark,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

var getBookingRequestByID = `SELECT ` + bookingRequestColumns + ` FROM booking_requests WHERE id = $1`

func (q *Queries) GetBookingRequestByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingRequest, error) {
	return scanBookingRequest(db.QueryRow(ctx, getBookingRequestByID, id))
}

var getBookingRequestByIDForUpdate = `SELECT ` + bookingRequestColumns + ` FROM booking_requests WHERE id = $1 FOR UPDATE`

func (q *Queries) GetBookingRequestByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (BookingRequest, error) {
	return scanBookingRequest(db.QueryRow(ctx, getBookingRequestByIDForUpdate, id))
}

var listBookingRequests = `SELECT ` + bookingRequestColumns + ` FROM booking_requests
WHERE ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListBookingRequests(ctx context.Context, db DBTX, status pgtype.Text) ([]BookingRequest, error) {
	rows, err := db.Query(ctx, listBookingRequests, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingRequest
	for rows.Next() {
		i, err := scanBookingRequest(rows)
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

const updateBookingRequestStatus = `
UPDATE booking_requests SET status = $2, booking_id = $3, updated_at = now()
WHERE id = $1
`

type UpdateBookingRequestStatusParams struct {
	ID        uuid.UUID
	Status    string
	BookingID pgtype.UUID
}

func (q *Queries) UpdateBookingRequestStatus(ctx context.Context, db DBTX, arg UpdateBookingRequestStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingRequestStatus, arg.ID, arg.Status, arg.BookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateBookingRequest = `
UPDATE booking_requests
SET package_id = $2, patient_id = $3, therapy_type_id = $4, sessions = $5, remark = $6, updated_at = now()
WHERE id = $1
`

type UpdateBookingRequestParams struct {
	ID            uuid.UUID
	PackageID     uuid.UUID
	PatientID     uuid.UUID
	TherapyTypeID uuid.UUID
	Sessions      []byte
	Remark        pgtype.Text
}

func (q *Queries) UpdateBookingRequest(ctx context.Context, db DBTX, arg UpdateBookingRequestParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingRequest,
		arg.ID,
		arg.PackageID,
		arg.PatientID,
		arg.TherapyTypeID,
		arg.Sessions,
		arg.Remark,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteBookingRequest = `DELETE FROM booking_requests WHERE id = $1`

func (q *Queries) DeleteBookingRequest(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBookingRequest, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
