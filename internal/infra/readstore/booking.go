package readstore

import (
	"context"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingViewRow, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsParams) ([]sqlc.BookingViewRow, error)
	ListReceptionDeskBookings(ctx context.Context, db sqlc.DBTX, day pgtype.Date) ([]sqlc.BookingViewRow, error)
	ListSessionViewsByBookingIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.SessionViewRow, error)
	ListCalendarSessions(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCalendarSessionsParams) ([]sqlc.ListCalendarSessionsRow, error)
}

// SnapshotRunner runs fn inside a read-only transaction.
type SnapshotRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

// BookingReadStore reads a booking page and its sessions from one snapshot,
// so a concurrent update never pairs a booking with another version's sessions.
type BookingReadStore struct {
	queries   BookingViewQueries
	db        sqlc.DBTX
	snapshots SnapshotRunner
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX, snapshots SnapshotRunner) *BookingReadStore {
	return &BookingReadStore{
		queries:   queries,
		db:        db,
		snapshots: snapshots,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := r.snapshots.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		row, err := r.queries.GetBookingViewByID(ctx, db, id)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return booking.ErrBookingNotFound
			}
			return infra.WrapRepoErr("failed to find booking by ID", err)
		}
		views, err := r.withSessions(ctx, db, []sqlc.BookingViewRow{row})
		if err != nil {
			return err
		}
		view = views[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *BookingReadStore) FindAll(ctx context.Context, filter queries.BookingFilter, limit, offset int32) ([]*queries.BookingView, error) {
	from, err := optionalDate(filter.From)
	if err != nil {
		return nil, err
	}
	to, err := optionalDate(filter.To)
	if err != nil {
		return nil, err
	}

	var views []*queries.BookingView
	err = r.snapshots.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		rows, err := r.queries.ListBookingViews(ctx, db, sqlc.ListBookingViewsParams{
			PatientID:  pgconv.UUIDPtrToPgtype(filter.PatientID),
			ProviderID: pgconv.UUIDPtrToPgtype(filter.ProviderID),
			FromDate:   from,
			ToDate:     to,
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to list bookings", err)
		}
		views, err = r.withSessions(ctx, db, rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingReadStore) FindForReceptionDesk(ctx context.Context, day string) ([]*queries.BookingView, error) {
	d, err := pgconv.DateFromISO(day)
	if err != nil {
		return nil, err
	}
	var views []*queries.BookingView
	err = r.snapshots.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		rows, err := r.queries.ListReceptionDeskBookings(ctx, db, d)
		if err != nil {
			return infra.WrapRepoErr("failed to list reception desk bookings", err)
		}
		views, err = r.withSessions(ctx, db, rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingReadStore) FindCalendarEntries(ctx context.Context, from, to string, providerID *uuid.UUID) ([]*queries.CalendarEntry, error) {
	fromDate, err := pgconv.DateFromISO(from)
	if err != nil {
		return nil, err
	}
	toDate, err := pgconv.DateFromISO(to)
	if err != nil {
		return nil, err
	}

	rows, err := r.queries.ListCalendarSessions(ctx, r.db, sqlc.ListCalendarSessionsParams{
		FromDate:   fromDate,
		ToDate:     toDate,
		ProviderID: pgconv.UUIDPtrToPgtype(providerID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar sessions", err)
	}

	result := make([]*queries.CalendarEntry, len(rows))
	for i, row := range rows {
		result[i] = &queries.CalendarEntry{
			SessionID:     row.SessionID,
			BookingID:     row.BookingID,
			AppointmentID: row.AppointmentCode,
			Date:          pgconv.DateToISO(row.SessionDate),
			TimeLabel:     pgconv.StringFromPgtype(row.TimeLabel),
			SlotID:        row.SlotID,
			CheckedIn:     row.CheckedIn,
			Patient:       queries.NamedRef{ID: row.PatientID, Name: row.PatientName},
			Provider: queries.ProviderRef{
				ID:      row.ProviderID,
				RefCode: row.ProviderRef,
				Name:    row.ProviderName,
			},
		}
	}
	return result, nil
}

// withSessions loads the sessions of every row in one query and attaches
// them in position order.
func (r *BookingReadStore) withSessions(ctx context.Context, db sqlc.DBTX, rows []sqlc.BookingViewRow) ([]*queries.BookingView, error) {
	result := make([]*queries.BookingView, len(rows))
	if len(rows) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(rows))
	byID := make(map[uuid.UUID]*queries.BookingView, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		result[i] = rowToBookingView(row)
		byID[row.ID] = result[i]
	}

	sessions, err := r.queries.ListSessionViewsByBookingIDs(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking sessions", err)
	}
	for _, s := range sessions {
		view, ok := byID[s.BookingID]
		if !ok {
			continue
		}
		view.Sessions = append(view.Sessions, rowToSessionView(s))
	}
	return result, nil
}

func rowToBookingView(row sqlc.BookingViewRow) *queries.BookingView {
	view := &queries.BookingView{
		ID:            row.ID,
		AppointmentID: row.AppointmentCode,
		Status:        row.Status,
		Package: queries.PackageRef{
			ID:           row.PackageID,
			Name:         row.PackageName,
			SessionCount: row.PackageSessions,
			TotalCents:   row.PackageTotalCents,
		},
		Patient: queries.PatientRef{
			ID:    row.PatientID,
			Code:  row.PatientCode,
			Name:  row.PatientName,
			Phone: pgconv.StringFromPgtype(row.PatientPhone),
		},
		TherapyType: queries.NamedRef{ID: row.TherapyTypeID, Name: row.TherapyName},
		Provider: queries.ProviderRef{
			ID:      row.ProviderID,
			RefCode: row.ProviderRef,
			Name:    row.ProviderName,
		},
		Sessions:         []queries.SessionView{},
		Notes:            pgconv.StringFromPgtype(row.Notes),
		Remark:           pgconv.StringFromPgtype(row.Remark),
		Channel:          pgconv.StringFromPgtype(row.Channel),
		AttendedBy:       pgconv.StringFromPgtype(row.AttendedBy),
		AttendedByType:   pgconv.StringFromPgtype(row.AttendedByType),
		Referral:         pgconv.StringFromPgtype(row.Referral),
		Extra:            pgconv.StringFromPgtype(row.Extra),
		PaymentDueDate:   pgconv.DatePtrToISO(row.PaymentDueDate),
		InvoiceNumber:    pgconv.StringFromPgtype(row.InvoiceNumber),
		FollowupRequired: row.FollowupRequired,
		FollowupDate:     pgconv.DatePtrToISO(row.FollowupDate),
		PaymentStatus:    row.PaymentStatus,
		BookingRequestID: pgconv.UUIDPtrFromPgtype(row.BookingRequestID),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	if row.CouponCode.Valid {
		view.Coupon = &queries.CouponView{
			Code:          row.CouponCode.String,
			AppliedAt:     pgconv.TimeFromPgtype(row.CouponAppliedAt),
			DiscountCents: row.DiscountCents,
		}
	}

	if paymentID := pgconv.UUIDPtrFromPgtype(row.PaymentID); paymentID != nil && row.PaymentCode.Valid {
		view.Payment = &queries.PaymentView{
			ID:          *paymentID,
			Code:        row.PaymentCode.String,
			TotalCents:  row.PaymentTotalCents.Int64,
			AmountCents: row.PaymentAmountCents.Int64,
			Status:      pgconv.StringFromPgtype(row.PaymentRowStatus),
			Method:      pgconv.StringFromPgtype(row.PaymentMethod),
			PaidAt:      pgconv.TimePtrFromPgtype(row.PaidAt),
		}
	}

	return view
}

func rowToSessionView(row sqlc.SessionViewRow) queries.SessionView {
	return queries.SessionView{
		ID:        row.ID,
		Date:      pgconv.DateToISO(row.SessionDate),
		TimeLabel: pgconv.StringFromPgtype(row.TimeLabel),
		SlotID:    row.SlotID,
		Provider: queries.ProviderRef{
			ID:      row.ProviderID,
			RefCode: row.ProviderRef,
			Name:    row.ProviderName,
		},
		TherapyType: queries.NamedRef{ID: row.TherapyTypeID, Name: row.TherapyName},
		CheckedIn:   row.CheckedIn,
		CheckedInAt: pgconv.TimePtrFromPgtype(row.CheckedInAt),
	}
}

func optionalDate(s string) (pgtype.Date, error) {
	if s == "" {
		return pgtype.Date{}, nil
	}
	return pgconv.DateFromISO(s)
}
