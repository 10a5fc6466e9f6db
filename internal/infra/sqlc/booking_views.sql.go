package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewSelect = `
SELECT
  b.id, b.appointment_code, b.status, b.notes, b.remark,
  b.channel, b.attended_by, b.attended_by_type, b.referral, b.extra,
  b.payment_due_date, b.invoice_number, b.followup_required, b.followup_date,
  b.coupon_code, b.coupon_applied_at, b.discount_cents, b.payment_status, b.booking_request_id,
  b.package_id, pk.name, pk.session_count, pk.total_cost_cents,
  b.patient_id, pt.patient_code, pt.name, pt.phone,
  b.therapy_type_id, tt.name,
  b.provider_id, pr.ref_code, pr.name,
  b.payment_id, pay.payment_code, pay.total_cents, pay.amount_cents, pay.status, pay.method, pay.paid_at,
  b.created_at, b.updated_at
FROM bookings b
JOIN packages pk ON pk.id = b.package_id
JOIN patients pt ON pt.id = b.patient_id
JOIN therapy_types tt ON tt.id = b.therapy_type_id
JOIN providers pr ON pr.id = b.provider_id
LEFT JOIN payments pay ON pay.id = b.payment_id
`

type BookingViewRow struct {
	ID                 uuid.UUID
	AppointmentCode    string
	Status             string
	Notes              pgtype.Text
	Remark             pgtype.Text
	Channel            pgtype.Text
	AttendedBy         pgtype.Text
	AttendedByType     pgtype.Text
	Referral           pgtype.Text
	Extra              pgtype.Text
	PaymentDueDate     pgtype.Date
	InvoiceNumber      pgtype.Text
	FollowupRequired   bool
	FollowupDate       pgtype.Date
	CouponCode         pgtype.Text
	CouponAppliedAt    pgtype.Timestamptz
	DiscountCents      int64
	PaymentStatus      string
	BookingRequestID   pgtype.UUID
	PackageID          uuid.UUID
	PackageName        string
	PackageSessions    int32
	PackageTotalCents  int64
	PatientID          uuid.UUID
	PatientCode        string
	PatientName        string
	PatientPhone       pgtype.Text
	TherapyTypeID      uuid.UUID
	TherapyName        string
	ProviderID         uuid.UUID
	ProviderRef        string
	ProviderName       string
	PaymentID          pgtype.UUID
	PaymentCode        pgtype.Text
	PaymentTotalCents  pgtype.Int8
	PaymentAmountCents pgtype.Int8
	PaymentRowStatus   pgtype.Text
	PaymentMethod      pgtype.Text
	PaidAt             pgtype.Timestamptz
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

func scanBookingView(row interface{ Scan(...any) error }) (BookingViewRow, error) {
	var i BookingViewRow
	err := row.Scan(
		&i.ID,
		&i.AppointmentCode,
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
		&i.CouponCode,
		&i.CouponAppliedAt,
		&i.DiscountCents,
		&i.PaymentStatus,
		&i.BookingRequestID,
		&i.PackageID,
		&i.PackageName,
		&i.PackageSessions,
		&i.PackageTotalCents,
		&i.PatientID,
		&i.PatientCode,
		&i.PatientName,
		&i.PatientPhone,
		&i.TherapyTypeID,
		&i.TherapyName,
		&i.ProviderID,
		&i.ProviderRef,
		&i.ProviderName,
		&i.PaymentID,
		&i.PaymentCode,
		&i.PaymentTotalCents,
		&i.PaymentAmountCents,
		&i.PaymentRowStatus,
		&i.PaymentMethod,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectBookingViews(rows pgx.Rows) ([]BookingViewRow, error) {
	defer rows.Close()
	var items []BookingViewRow
	for rows.Next() {
		i, err := scanBookingView(rows)
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

var getBookingViewByID = bookingViewSelect + `WHERE b.id = $1`

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingViewByID, id))
}

var listBookingViews = bookingViewSelect + `
WHERE ($1::uuid IS NULL OR b.patient_id = $1)
  AND ($2::uuid IS NULL OR b.provider_id = $2 OR EXISTS (
        SELECT 1 FROM booking_sessions s WHERE s.booking_id = b.id AND s.provider_id = $2))
  AND ($3::date IS NULL OR EXISTS (
        SELECT 1 FROM booking_sessions s WHERE s.booking_id = b.id AND s.session_date >= $3))
  AND ($4::date IS NULL OR EXISTS (
        SELECT 1 FROM booking_sessions s WHERE s.booking_id = b.id AND s.session_date <= $4))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $5 OFFSET $6
`

type ListBookingViewsParams struct {
	PatientID  pgtype.UUID
	ProviderID pgtype.UUID
	FromDate   pgtype.Date
	ToDate     pgtype.Date
	Limit      int32
	Offset     int32
}

func (q *Queries) ListBookingViews(ctx context.Context, db DBTX, arg ListBookingViewsParams) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookingViews,
		arg.PatientID,
		arg.ProviderID,
		arg.FromDate,
		arg.ToDate,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	return collectBookingViews(rows)
}

var listReceptionDeskBookings = bookingViewSelect + `
WHERE EXISTS (SELECT 1 FROM booking_sessions s WHERE s.booking_id = b.id AND s.session_date = $1)
   OR b.payment_id IS NULL
   OR pay.status IS DISTINCT FROM 'paid'
ORDER BY b.created_at DESC, b.id DESC
`

// ListReceptionDeskBookings returns bookings with a session on the given day
// together with every booking whose payment is missing or still open.
func (q *Queries) ListReceptionDeskBookings(ctx context.Context, db DBTX, day pgtype.Date) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listReceptionDeskBookings, day)
	if err != nil {
		return nil, err
	}
	return collectBookingViews(rows)
}

const listSessionViewsByBookingIDs = `
SELECT s.id, s.booking_id, s.position, s.session_date, s.time_label, s.slot_id,
       s.provider_id, pr.ref_code, pr.name,
       s.therapy_type_id, tt.name,
       s.checked_in, s.checked_in_at
FROM booking_sessions s
JOIN providers pr ON pr.id = s.provider_id
JOIN therapy_types tt ON tt.id = s.therapy_type_id
WHERE s.booking_id = ANY($1::uuid[])
ORDER BY s.booking_id, s.position
`

type SessionViewRow struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	Position      int32
	SessionDate   pgtype.Date
	TimeLabel     pgtype.Text
	SlotID        string
	ProviderID    uuid.UUID
	ProviderRef   string
	ProviderName  string
	TherapyTypeID uuid.UUID
	TherapyName   string
	CheckedIn     bool
	CheckedInAt   pgtype.Timestamptz
}

func (q *Queries) ListSessionViewsByBookingIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]SessionViewRow, error) {
	rows, err := db.Query(ctx, listSessionViewsByBookingIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SessionViewRow
	for rows.Next() {
		var i SessionViewRow
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.Position,
			&i.SessionDate,
			&i.TimeLabel,
			&i.SlotID,
			&i.ProviderID,
			&i.ProviderRef,
			&i.ProviderName,
			&i.TherapyTypeID,
			&i.TherapyName,
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

const listCalendarSessions = `
SELECT s.id, s.booking_id, b.appointment_code, s.session_date, s.time_label, s.slot_id, s.checked_in,
       b.patient_id, pt.name,
       s.provider_id, pr.ref_code, pr.name
FROM booking_sessions s
JOIN bookings b ON b.id = s.booking_id
JOIN patients pt ON pt.id = b.patient_id
JOIN providers pr ON pr.id = s.provider_id
WHERE s.session_date BETWEEN $1 AND $2
  AND ($3::uuid IS NULL OR s.provider_id = $3)
ORDER BY s.session_date, s.slot_id, pr.ref_code
`

type ListCalendarSessionsParams struct {
	FromDate   pgtype.Date
	ToDate     pgtype.Date
	ProviderID pgtype.UUID
}

type ListCalendarSessionsRow struct {
	SessionID       uuid.UUID
	BookingID       uuid.UUID
	AppointmentCode string
	SessionDate     pgtype.Date
	TimeLabel       pgtype.Text
	SlotID          string
	CheckedIn       bool
	PatientID       uuid.UUID
	PatientName     string
	ProviderID      uuid.UUID
	ProviderRef     string
	ProviderName    string
}

func (q *Queries) ListCalendarSessions(ctx context.Context, db DBTX, arg ListCalendarSessionsParams) ([]ListCalendarSessionsRow, error) {
	rows, err := db.Query(ctx, listCalendarSessions, arg.FromDate, arg.ToDate, arg.ProviderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCalendarSessionsRow
	for rows.Next() {
		var i ListCalendarSessionsRow
		if err := rows.Scan(
			&i.SessionID,
			&i.BookingID,
			&i.AppointmentCode,
			&i.SessionDate,
			&i.TimeLabel,
			&i.SlotID,
			&i.CheckedIn,
			&i.PatientID,
			&i.PatientName,
			&i.ProviderID,
			&i.ProviderRef,
			&i.ProviderName,
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
