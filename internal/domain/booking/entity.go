package booking

import (
	"time"

	"appointment-engine/internal/domain/payment"

	"github.com/google/uuid"
)

type Booking struct {
	id               uuid.UUID
	appointmentID    string
	details          Details
	coupon           *CouponRef
	paymentID        *uuid.UUID
	paymentStatus    payment.Status
	bookingRequestID *uuid.UUID
	sessions         []Session
	createdAt        time.Time
	updatedAt        time.Time
}

// NewBooking builds a booking whose sessions have already been normalized:
// provider and therapy type resolved for each one.
func NewBooking(appointmentID string, d Details, sessions []Session, now time.Time) (*Booking, error) {
	if len(sessions) == 0 {
		return nil, ErrNoSessions
	}
	if d.Status == "" {
		d.Status = StatusScheduled
	}
	if dups := DuplicateSessions(sessions); len(dups) > 0 {
		return nil, NewConflictError(dups)
	}

	normalized := make([]Session, len(sessions))
	for i, s := range sessions {
		s.ID = uuid.New()
		s.CheckedIn = false
		s.CheckedInAt = nil
		normalized[i] = s
	}

	return &Booking{
		id:            uuid.New(),
		appointmentID: appointmentID,
		details:       d,
		paymentStatus: payment.StatusPending,
		sessions:      normalized,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// State is the persisted form of a booking.
type State struct {
	ID               uuid.UUID
	AppointmentID    string
	Details          Details
	Coupon           *CouponRef
	PaymentID        *uuid.UUID
	PaymentStatus    payment.Status
	BookingRequestID *uuid.UUID
	Sessions         []Session
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func Reconstruct(s State) *Booking {
	return &Booking{
		id:               s.ID,
		appointmentID:    s.AppointmentID,
		details:          s.Details,
		coupon:           s.Coupon,
		paymentID:        s.PaymentID,
		paymentStatus:    s.PaymentStatus,
		bookingRequestID: s.BookingRequestID,
		sessions:         s.Sessions,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
}

// Replace swaps in new details and a full replacement session list. Sessions
// whose slot key the booking already held keep their id and check-in state.
// The returned diff moves every slot when the status starts or stops claiming.
func (b *Booking) Replace(d Details, sessions []Session, now time.Time) (Diff, error) {
	if len(sessions) == 0 {
		return Diff{}, ErrNoSessions
	}
	if d.Status == "" {
		d.Status = b.details.Status
	}
	if dups := DuplicateSessions(sessions); len(dups) > 0 {
		return Diff{}, NewConflictError(dups)
	}

	held := make(map[SlotKey]Session, len(b.sessions))
	for _, s := range b.sessions {
		held[s.Key()] = s
	}

	next := make([]Session, len(sessions))
	for i, s := range sessions {
		if prev, ok := held[s.Key()]; ok {
			s.ID = prev.ID
			s.CheckedIn = prev.CheckedIn
			s.CheckedInAt = prev.CheckedInAt
		} else {
			s.ID = uuid.New()
			s.CheckedIn = false
			s.CheckedInAt = nil
		}
		next[i] = s
	}

	diff := PlanSessions(b.sessions, b.details.Status, next, d.Status)
	b.details = d
	b.sessions = next
	b.updatedAt = now
	return diff, nil
}

// ApplyCoupon records the deal used for pricing. nil clears it.
func (b *Booking) ApplyCoupon(ref *CouponRef) {
	b.coupon = ref
}

func (b *Booking) AttachPayment(id uuid.UUID) {
	b.paymentID = &id
	b.paymentStatus = payment.StatusPending
}

func (b *Booking) MarkPaid(now time.Time) {
	b.paymentStatus = payment.StatusPaid
	b.updatedAt = now
}

func (b *Booking) LinkRequest(id uuid.UUID) {
	b.bookingRequestID = &id
}

// CheckIn marks a session attended. It reports true without changing anything
// when the session was already checked in.
func (b *Booking) CheckIn(sessionID uuid.UUID, now time.Time) (bool, error) {
	for i := range b.sessions {
		if b.sessions[i].ID != sessionID {
			continue
		}
		if b.sessions[i].CheckedIn {
			return true, nil
		}
		b.sessions[i].CheckedIn = true
		b.sessions[i].CheckedInAt = &now
		b.updatedAt = now
		return false, nil
	}
	return false, ErrSessionNotFound
}

func (b *Booking) Session(id uuid.UUID) (Session, bool) {
	for _, s := range b.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) AppointmentID() string         { return b.appointmentID }
func (b *Booking) Details() Details              { return b.details }
func (b *Booking) Coupon() *CouponRef            { return b.coupon }
func (b *Booking) PaymentID() *uuid.UUID         { return b.paymentID }
func (b *Booking) PaymentStatus() payment.Status { return b.paymentStatus }
func (b *Booking) BookingRequestID() *uuid.UUID  { return b.bookingRequestID }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }

func (b *Booking) Sessions() []Session {
	out := make([]Session, len(b.sessions))
	copy(out, b.sessions)
	return out
}
