package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPayment = `
INSERT INTO payments (id, payment_code, total_cents, amount_cents, status, method)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreatePaymentParams struct {
	ID          uuid.UUID
	PaymentCode string
	TotalCents  int64
	AmountCents int64
	Status      string
	Method      string
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) error {
	_, err := db.Exec(ctx, createPayment,
		arg.ID,
		arg.PaymentCode,
		arg.TotalCents,
		arg.AmountCents,
		arg.Status,
		arg.Method,
	)
	return err
}

const getPaymentByIDForUpdate = `
SELECT id, payment_code, total_cents, amount_cents, status, method, paid_at, created_at, updated_at
FROM payments
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetPaymentByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Payment, error) {
	row := db.QueryRow(ctx, getPaymentByIDForUpdate, id)
	var i Payment
	err := row.Scan(
		&i.ID,
		&i.PaymentCode,
		&i.TotalCents,
		&i.AmountCents,
		&i.Status,
		&i.Method,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updatePaymentAmounts = `
UPDATE payments SET total_cents = $2, amount_cents = $3, updated_at = now()
WHERE id = $1 AND status = 'pending'
`

type UpdatePaymentAmountsParams struct {
	ID          uuid.UUID
	TotalCents  int64
	AmountCents int64
}

// UpdatePaymentAmounts reprices a payment that has not been collected yet.
func (q *Queries) UpdatePaymentAmounts(ctx context.Context, db DBTX, arg UpdatePaymentAmountsParams) (int64, error) {
	result, err := db.Exec(ctx, updatePaymentAmounts, arg.ID, arg.TotalCents, arg.AmountCents)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const markPaymentPaid = `
UPDATE payments SET status = 'paid', paid_at = COALESCE(paid_at, $2), updated_at = now()
WHERE id = $1
`

type MarkPaymentPaidParams struct {
	ID     uuid.UUID
	PaidAt pgtype.Timestamptz
}

func (q *Queries) MarkPaymentPaid(ctx context.Context, db DBTX, arg MarkPaymentPaidParams) (int64, error) {
	result, err := db.Exec(ctx, markPaymentPaid, arg.ID, arg.PaidAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const insertFinanceRecord = `
INSERT INTO finance_records (payment_id, description, entry_type, amount_cents, status, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (payment_id) DO NOTHING
`

type InsertFinanceRecordParams struct {
	PaymentID   uuid.UUID
	Description string
	EntryType   string
	AmountCents int64
	Status      string
	RecordedAt  pgtype.Timestamptz
}

// InsertFinanceRecord returns 0 when the payment already has its record.
func (q *Queries) InsertFinanceRecord(ctx context.Context, db DBTX, arg InsertFinanceRecordParams) (int64, error) {
	result, err := db.Exec(ctx, insertFinanceRecord,
		arg.PaymentID,
		arg.Description,
		arg.EntryType,
		arg.AmountCents,
		arg.Status,
		arg.RecordedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countFinanceRecordsByPayment = `SELECT count(*) FROM finance_records WHERE payment_id = $1`

func (q *Queries) CountFinanceRecordsByPayment(ctx context.Context, db DBTX, paymentID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countFinanceRecordsByPayment, paymentID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
