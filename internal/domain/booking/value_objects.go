package booking

import (
	"time"

	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotConflict       = errs.Sentinel("slot already booked", errs.ErrConflict)
	ErrBookingNotFound    = errs.Sentinel("booking not found", errs.ErrNotFound)
	ErrSessionNotFound    = errs.Sentinel("session not found", errs.ErrNotFound)
	ErrPackageNotFound    = errs.Sentinel("package not found", errs.ErrValidation)
	ErrNoPaymentReference = errs.Sentinel("booking has no payment reference", errs.ErrValidation)
	ErrInvalidStatus      = errs.Sentinel("invalid booking status", errs.ErrValidation)
	ErrNoSessions         = errs.Sentinel("booking requires at least one session", errs.ErrValidation)
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

// Claims reports whether a booking in this status holds its session slots.
func (s Status) Claims() bool { return s != StatusCancelled }

// ParseStatus maps an empty string to StatusScheduled.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "":
		return StatusScheduled, nil
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Attribution records how the booking reached the clinic.
type Attribution struct {
	Channel        string
	AttendedBy     string
	AttendedByType string
	Referral       string
	Extra          string
}

type Followup struct {
	PaymentDueDate *string
	InvoiceNumber  string
	Required       bool
	Date           *string
}

// CouponRef is the deal applied to the booking's price.
type CouponRef struct {
	DealID        uuid.UUID
	Code          string
	AppliedAt     time.Time
	DiscountCents int64
}

// Details are the booking fields a create or a full update supplies.
type Details struct {
	PackageID     uuid.UUID
	PatientID     uuid.UUID
	TherapyTypeID uuid.UUID
	ProviderID    uuid.UUID
	Status        Status
	Notes         string
	Remark        string
	Attribution   Attribution
	Followup      Followup
}
