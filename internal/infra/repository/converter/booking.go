package converter

import (
	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/payment"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type bookingColumns struct {
	notes, remark, channel, attendedBy, attendedByType, referral, extra, invoice pgtype.Text
	paymentDueDate, followupDate                                                pgtype.Date
	dealID                                                                      pgtype.UUID
	couponCode                                                                  pgtype.Text
	couponAppliedAt                                                             pgtype.Timestamptz
	discountCents                                                               int64
}

func columnsOf(b *booking.Booking) (bookingColumns, error) {
	d := b.Details()
	dueDate, err := pgconv.DatePtrFromISO(d.Followup.PaymentDueDate)
	if err != nil {
		return bookingColumns{}, err
	}
	followupDate, err := pgconv.DatePtrFromISO(d.Followup.Date)
	if err != nil {
		return bookingColumns{}, err
	}

	c := bookingColumns{
		notes:          pgconv.StringToPgtype(d.Notes),
		remark:         pgconv.StringToPgtype(d.Remark),
		channel:        pgconv.StringToPgtype(d.Attribution.Channel),
		attendedBy:     pgconv.StringToPgtype(d.Attribution.AttendedBy),
		attendedByType: pgconv.StringToPgtype(d.Attribution.AttendedByType),
		referral:       pgconv.StringToPgtype(d.Attribution.Referral),
		extra:          pgconv.StringToPgtype(d.Attribution.Extra),
		invoice:        pgconv.StringToPgtype(d.Followup.InvoiceNumber),
		paymentDueDate: dueDate,
		followupDate:   followupDate,
	}
	if ref := b.Coupon(); ref != nil {
		c.dealID = pgconv.UUIDPtrToPgtype(&ref.DealID)
		c.couponCode = pgconv.StringToPgtype(ref.Code)
		c.couponAppliedAt = pgconv.TimeToPgtype(ref.AppliedAt)
		c.discountCents = ref.DiscountCents
	}
	return c, nil
}

func BookingToCreateParams(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	c, err := columnsOf(b)
	if err != nil {
		return sqlc.CreateBookingParams{}, err
	}
	d := b.Details()
	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		AppointmentCode:  b.AppointmentID(),
		PackageID:        d.PackageID,
		PatientID:        d.PatientID,
		TherapyTypeID:    d.TherapyTypeID,
		ProviderID:       d.ProviderID,
		Status:           d.Status.String(),
		Notes:            c.notes,
		Remark:           c.remark,
		Channel:          c.channel,
		AttendedBy:       c.attendedBy,
		AttendedByType:   c.attendedByType,
		Referral:         c.referral,
		Extra:            c.extra,
		PaymentDueDate:   c.paymentDueDate,
		InvoiceNumber:    c.invoice,
		FollowupRequired: d.Followup.Required,
		FollowupDate:     c.followupDate,
		DealID:           c.dealID,
		CouponCode:       c.couponCode,
		CouponAppliedAt:  c.couponAppliedAt,
		DiscountCents:    c.discountCents,
		PaymentID:        pgconv.UUIDPtrToPgtype(b.PaymentID()),
		PaymentStatus:    b.PaymentStatus().String(),
		BookingRequestID: pgconv.UUIDPtrToPgtype(b.BookingRequestID()),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
	}, nil
}

func BookingToUpdateParams(b *booking.Booking) (sqlc.UpdateBookingParams, error) {
	c, err := columnsOf(b)
	if err != nil {
		return sqlc.UpdateBookingParams{}, err
	}
	d := b.Details()
	return sqlc.UpdateBookingParams{
		ID:               b.ID(),
		PackageID:        d.PackageID,
		PatientID:        d.PatientID,
		TherapyTypeID:    d.TherapyTypeID,
		ProviderID:       d.ProviderID,
		Status:           d.Status.String(),
		Notes:            c.notes,
		Remark:           c.remark,
		Channel:          c.channel,
		AttendedBy:       c.attendedBy,
		AttendedByType:   c.attendedByType,
		Referral:         c.referral,
		Extra:            c.extra,
		PaymentDueDate:   c.paymentDueDate,
		InvoiceNumber:    c.invoice,
		FollowupRequired: d.Followup.Required,
		FollowupDate:     c.followupDate,
		DealID:           c.dealID,
		CouponCode:       c.couponCode,
		CouponAppliedAt:  c.couponAppliedAt,
		DiscountCents:    c.discountCents,
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

// SessionsToInsertParams marks every row released when the booking's status
// does not claim its slots.
func SessionsToInsertParams(b *booking.Booking) ([]sqlc.InsertBookingSessionParams, error) {
	sessions := b.Sessions()
	released := !b.Details().Status.Claims()
	params := make([]sqlc.InsertBookingSessionParams, 0, len(sessions))
	for i, s := range sessions {
		date, err := pgconv.DateFromISO(s.Date)
		if err != nil {
			return nil, err
		}
		params = append(params, sqlc.InsertBookingSessionParams{
			ID:            s.ID,
			BookingID:     b.ID(),
			Position:      int32(i),
			SessionDate:   date,
			TimeLabel:     pgconv.StringToPgtype(s.TimeLabel),
			SlotID:        s.SlotID,
			ProviderID:    s.ProviderID,
			TherapyTypeID: s.TherapyTypeID,
			CheckedIn:     s.CheckedIn,
			CheckedInAt:   pgconv.TimePtrToPgtype(s.CheckedInAt),
			Released:      released,
		})
	}
	return params, nil
}

// BookingFromRows rebuilds the aggregate. providerRefs maps provider ids to
// reference codes and may be nil.
func BookingFromRows(row sqlc.Booking, sessions []sqlc.BookingSession, providerRefs map[uuid.UUID]string) *booking.Booking {
	out := make([]booking.Session, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, booking.Session{
			ID:            s.ID,
			Date:          pgconv.DateToISO(s.SessionDate),
			TimeLabel:     pgconv.StringFromPgtype(s.TimeLabel),
			SlotID:        s.SlotID,
			ProviderID:    s.ProviderID,
			ProviderRef:   providerRefs[s.ProviderID],
			TherapyTypeID: s.TherapyTypeID,
			CheckedIn:     s.CheckedIn,
			CheckedInAt:   pgconv.TimePtrFromPgtype(s.CheckedInAt),
		})
	}

	var coupon *booking.CouponRef
	if dealID := pgconv.UUIDPtrFromPgtype(row.DealID); dealID != nil {
		coupon = &booking.CouponRef{
			DealID:        *dealID,
			Code:          pgconv.StringFromPgtype(row.CouponCode),
			AppliedAt:     pgconv.TimeFromPgtype(row.CouponAppliedAt),
			DiscountCents: row.DiscountCents,
		}
	}

	return booking.Reconstruct(booking.State{
		ID:            row.ID,
		AppointmentID: row.AppointmentCode,
		Details: booking.Details{
			PackageID:     row.PackageID,
			PatientID:     row.PatientID,
			TherapyTypeID: row.TherapyTypeID,
			ProviderID:    row.ProviderID,
			Status:        booking.Status(row.Status),
			Notes:         pgconv.StringFromPgtype(row.Notes),
			Remark:        pgconv.StringFromPgtype(row.Remark),
			Attribution: booking.Attribution{
				Channel:        pgconv.StringFromPgtype(row.Channel),
				AttendedBy:     pgconv.StringFromPgtype(row.AttendedBy),
				AttendedByType: pgconv.StringFromPgtype(row.AttendedByType),
				Referral:       pgconv.StringFromPgtype(row.Referral),
				Extra:          pgconv.StringFromPgtype(row.Extra),
			},
			Followup: booking.Followup{
				PaymentDueDate: pgconv.DatePtrToISO(row.PaymentDueDate),
				InvoiceNumber:  pgconv.StringFromPgtype(row.InvoiceNumber),
				Required:       row.FollowupRequired,
				Date:           pgconv.DatePtrToISO(row.FollowupDate),
			},
		},
		Coupon:           coupon,
		PaymentID:        pgconv.UUIDPtrFromPgtype(row.PaymentID),
		PaymentStatus:    payment.Status(row.PaymentStatus),
		BookingRequestID: pgconv.UUIDPtrFromPgtype(row.BookingRequestID),
		Sessions:         out,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func PaymentFromRow(row sqlc.Payment) *payment.Payment {
	return payment.Reconstruct(
		row.ID,
		row.PaymentCode,
		row.TotalCents,
		row.AmountCents,
		payment.Status(row.Status),
		row.Method,
		pgconv.TimePtrFromPgtype(row.PaidAt),
	)
}
