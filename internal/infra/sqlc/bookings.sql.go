package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, appointment_code, package_id, patient_id, therapy_type_id, provider_id, status,
  notes, remark, channel, attended_by, attended_by_type, referral, extra,
  payment_due_date, invoice_number, followup_required, followup_date,
  deal_id, coupon_code, coupon_applied_at, discount_cents,
  payment_id, payment_status, booking_request_id, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (Booking, error) {
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.AppointmentCode,
		&i.PackageID,
		&i.PatientID,
		&i.TherapyTypeID,
		&i.ProviderID,
		&i.Status,
		&i.Notes,
		&i.Remark,
		&i.Channel,
		&i.AttendedBy,
		&i.AttendedByType,
		&i.Referral,
		&i.Extra,
		&i.PaymentDueDate,
		&i.InvoiceNumber,
		&i.FollowupRequired,
		&i.FollowupDate,
		&i.DealID,
		&i.CouponCode,
		&i.CouponAppliedAt,
		&i.DiscountCents,
		&i.PaymentID,
		&i.PaymentStatus,
		&i.BookingRequestID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBooking = `
INSERT INTO bookings (
  id, appointment_code, package_id, patient_id, therapy_type_id, provider_id, status,
  notes, remark, channel, attended_by, attended_by_type, referral, extra,
  payment_due_date, invoice_number, followup_required, followup_date,
  deal_id, coupon_code, coupon_applied_at, discount_cents,
  payment_id, payment_status, booking_request_id, created_at, updated_at
) VALUES (
  $1, $2, $3, $4, $5, $6, $7,
  $8, $9, $10, $11, $12, $13, $14,
  $15, $16, $17, $18,
  $19, $20, $21, $22,
  $23, $24, $25, $26, $26
)
`

type CreateBookingParams struct {
	ID               uuid.UUID
	AppointmentCode  string
	PackageID        uuid.UUID
	PatientID        uuid.UUID
	TherapyTypeID    uuid.UUID
	ProviderID       uuid.UUID
	Status           string
	Notes            pgtype.Text
	Remark           pgtype.Text
	Channel          pgtype.Text
	AttendedBy       pgtype.Text
	AttendedByType   pgtype.Text
	Referral         pgtype.Text
	Extra            pgtype.Text
	PaymentDueDate   pgtype.Date
	InvoiceNumber    pgtype.Text
	FollowupRequired bool
	FollowupDate     pgtype.Date
	DealID           pgtype.UUID
	CouponCode       pgtype.Text
	CouponAppliedAt  pgtype.Timestamptz
	DiscountCents    int64
	PaymentID        pgtype.UUID
	PaymentStatus    string
	BookingRequestID pgtype.UUID
	CreatedAt        pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.AppointmentCode,
		arg.PackageID,
		arg.PatientID,
		arg.TherapyTypeID,
		arg.ProviderID,
		arg.Status,
		arg.Notes,
		arg.Remark,
		arg.Channel,
		arg.AttendedBy,
		arg.AttendedByType,
		arg.Referral,
		arg.Extra,
		arg.PaymentDueDate,
		arg.InvoiceNumber,
		arg.FollowupRequired,
		arg.FollowupDate,
		arg.DealID,
		arg.CouponCode,
		arg.CouponAppliedAt,
		arg.DiscountCents,
		arg.PaymentID,
		arg.PaymentStatus,
		arg.BookingRequestID,
		arg.CreatedAt,
	)
	return err
}

var getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

var getBookingByIDForUpdate = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

func (q *Queries) GetBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByIDForUpdate, id))
}

const updateBooking = `
UPDATE bookings SET
  package_id = $2,
  patient_id = $3,
  therapy_type_id = $4,
  provider_id = $5,
  status = $6,
  notes = $7,
  remark = $8,
  channel = $9,
  attended_by = $10,
  attended_by_type = $11,
  referral = $12,
  extra = $13,
  payment_due_date = $14,
  invoice_number = $15,
  followup_required = $16,
  followup_date = $17,
  deal_id = $18,
  coupon_code = $19,
  coupon_applied_at = $20,
  discount_cents = $21,
  updated_at = $22
WHERE id = $1
`

type UpdateBookingParams struct {
	ID               uuid.UUID
	PackageID        uuid.UUID
	PatientID        uuid.UUID
	TherapyTypeID    uuid.UUID
	ProviderID       uuid.UUID
	Status           string
	Notes            pgtype.Text
	Remark           pgtype.Text
	Channel          pgtype.Text
	AttendedBy       pgtype.Text
	AttendedByType   pgtype.Text
	Referral         pgtype.Text
	Extra            pgtype.Text
	PaymentDueDate   pgtype.Date
	InvoiceNumber    pgtype.Text
	FollowupRequired bool
	FollowupDate     pgtype.Date
	DealID           pgtype.UUID
	CouponCode       pgtype.Text
	CouponAppliedAt  pgtype.Timestamptz
	DiscountCents    int64
	UpdatedAt        pgtype.Timestamptz
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	result, err := db.Exec(ctx, updateBooking,
		arg.ID,
		arg.PackageID,
		arg.PatientID,
		arg.TherapyTypeID,
		arg.ProviderID,
		arg.Status,
		arg.Notes,
		arg.Remark,
		arg.Channel,
		arg.AttendedBy,
		arg.AttendedByType,
		arg.Referral,
		arg.Extra,
		arg.PaymentDueDate,
		arg.InvoiceNumber,
		arg.FollowupRequired,
		arg.FollowupDate,
		arg.DealID,
		arg.CouponCode,
		arg.CouponAppliedAt,
		arg.DiscountCents,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateBookingPaymentStatus = `
UPDATE bookings SET payment_status = $2, updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdateBookingPaymentStatus(ctx context.Context, db DBTX, id uuid.UUID, status string) (int64, error) {
	result, err := db.Exec(ctx, updateBookingPaymentStatus, id, status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteBooking = `DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
