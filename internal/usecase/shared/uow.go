package shared

import (
	"context"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/domain/jobcard"
	"appointment-engine/internal/domain/payment"
	"appointment-engine/internal/domain/sequence"
	"appointment-engine/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Finance() FinanceRepository
	Sequences() SequenceRepository
	Capacity() CapacityRepository
	EditRequests() EditRequestRepository
	BookingRequests() BookingRequestRepository
	JobCards() JobCardRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads aggregates for the write side. Inside a transaction the
// booking, payment and request loads lock their rows.
type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	PackageByID(ctx context.Context, id uuid.UUID) (*PackageSnapshot, error)
	TherapyTypeByID(ctx context.Context, id uuid.UUID) (*TherapyTypeSnapshot, error)
	// ActiveDeal returns nil without error when no usable deal matches.
	ActiveDeal(ctx context.Context, code string, businessID *uuid.UUID, onDate string) (*discount.Deal, error)
	EditRequestByID(ctx context.Context, id uuid.UUID) (*editrequest.Request, error)
	HasPendingEditRequest(ctx context.Context, bookingID uuid.UUID) (bool, error)
	BookingRequestByID(ctx context.Context, id uuid.UUID) (*bookingrequest.Request, error)
}

type SequenceRepository interface {
	Next(ctx context.Context, tx sqlc.DBTX, counter sequence.Counter) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkSessionCheckedIn(ctx context.Context, tx sqlc.DBTX, bookingID, sessionID uuid.UUID, at time.Time) error
	UpdatePaymentStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status payment.Status) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	Reprice(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, totalCents, amountCents int64) error
	MarkPaid(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
}

type FinanceRepository interface {
	// RecordIncome reports false when the payment already has its record.
	RecordIncome(ctx context.Context, tx sqlc.DBTX, rec payment.FinanceRecord) (bool, error)
}

type CapacityRepository interface {
	Adjust(ctx context.Context, tx sqlc.DBTX, deltas []CapacityDelta) error
}

type EditRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *editrequest.Request) error
	Update(ctx context.Context, tx sqlc.DBTX, r *editrequest.Request) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BookingRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *bookingrequest.Request) error
	Update(ctx context.Context, tx sqlc.DBTX, r *bookingrequest.Request) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, r *bookingrequest.Request) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type JobCardRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, jc *jobcard.JobCard) error
}
