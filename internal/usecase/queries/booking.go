package queries

import (
	"context"
	"time"

	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDateRange = errs.Sentinel("invalid date range", errs.ErrValidation)

type BookingFilter struct {
	PatientID  *uuid.UUID
	ProviderID *uuid.UUID
	From       string
	To         string
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, after *Cursor, limit int) ([]*BookingView, *Cursor, error)
	// ReceptionDesk lists bookings with a session on day plus every booking
	// whose payment is still open. An empty day means today.
	ReceptionDesk(ctx context.Context, day string) ([]*BookingView, error)
	Calendar(ctx context.Context, from, to string, providerID *uuid.UUID) ([]*CalendarEntry, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAll(ctx context.Context, filter BookingFilter, limit, offset int32) ([]*BookingView, error)
	FindForReceptionDesk(ctx context.Context, day string) ([]*BookingView, error)
	FindCalendarEntries(ctx context.Context, from, to string, providerID *uuid.UUID) ([]*CalendarEntry, error)
}

type bookingQueriesImpl struct {
	repo  BookingViewRepo
	clock clock.Clock
	loc   *time.Location
}

func NewBookingQueries(repo BookingViewRepo, clk clock.Clock, loc *time.Location) BookingQueries {
	return &bookingQueriesImpl{repo: repo, clock: clk, loc: loc}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, after *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if err := validateRange(filter.From, filter.To, false); err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	offset := 0
	if after != nil {
		var err error
		if offset, err = DecodeOffsetCursor(after.After); err != nil {
			return nil, nil, err
		}
	}

	// one extra row tells whether another page exists
	rows, err := q.repo.FindAll(ctx, filter, int32(limit+1), int32(offset))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		next = &Cursor{After: EncodeOffsetCursor(offset + limit)}
	}
	return rows, next, nil
}

func (q *bookingQueriesImpl) ReceptionDesk(ctx context.Context, day string) ([]*BookingView, error) {
	if day == "" {
		day = clock.Today(q.clock, q.loc)
	}
	if !clock.IsDate(day) {
		return nil, errs.NewValidation("invalid date", "date")
	}
	return q.repo.FindForReceptionDesk(ctx, day)
}

func (q *bookingQueriesImpl) Calendar(ctx context.Context, from, to string, providerID *uuid.UUID) ([]*CalendarEntry, error) {
	if err := validateRange(from, to, true); err != nil {
		return nil, err
	}
	return q.repo.FindCalendarEntries(ctx, from, to, providerID)
}

// validateRange checks both ends parse and are ordered. Empty ends are only
// accepted when required is false.
func validateRange(from, to string, required bool) error {
	var missing []string
	if required && from == "" {
		missing = append(missing, "from")
	}
	if required && to == "" {
		missing = append(missing, "to")
	}
	if len(missing) > 0 {
		return errs.NewValidation("missing date range", missing...)
	}
	if from != "" && !clock.IsDate(from) {
		return errs.NewValidation("invalid date", "from")
	}
	if to != "" && !clock.IsDate(to) {
		return errs.NewValidation("invalid date", "to")
	}
	if from != "" && to != "" && from > to {
		return ErrInvalidDateRange
	}
	return nil
}
