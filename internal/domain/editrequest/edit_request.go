package editrequest

import (
	"strconv"
	"time"

	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotFound             = errs.Sentinel("session edit request not found", errs.ErrNotFound)
	ErrPendingRequestExists = errs.Sentinel("a pending edit request already exists for this booking", errs.ErrState)
	ErrInvalidTransition    = errs.Sentinel("invalid status transition", errs.ErrState)
	ErrInvalidStatus        = errs.Sentinel("invalid edit request status", errs.ErrValidation)
	ErrNothingToUpdate      = errs.Sentinel("nothing to update", errs.ErrValidation)
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo allows pending to approved or rejected. Staying in the
// current status is a no-op and always allowed.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	return s == StatusPending && next.IsTerminal()
}

// Change proposes moving one session of the booking to another day and slot.
type Change struct {
	SessionID uuid.UUID `json:"sessionId"`
	NewDate   string    `json:"newDate"`
	NewSlotID string    `json:"newSlotId"`
}

type Request struct {
	id        uuid.UUID
	code      string
	bookingID uuid.UUID
	patientID uuid.UUID
	changes   []Change
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func New(code string, bookingID, patientID uuid.UUID, changes []Change, now time.Time) (*Request, error) {
	if err := ValidateChanges(bookingID, patientID, changes); err != nil {
		return nil, err
	}
	return &Request{
		id:        uuid.New(),
		code:      code,
		bookingID: bookingID,
		patientID: patientID,
		changes:   changes,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ValidateChanges names every missing field in the creation payload.
func ValidateChanges(bookingID, patientID uuid.UUID, changes []Change) error {
	var missing []string
	if bookingID == uuid.Nil {
		missing = append(missing, "appointmentId")
	}
	if patientID == uuid.Nil {
		missing = append(missing, "patientId")
	}
	if len(changes) == 0 {
		missing = append(missing, "sessions")
	}
	missing = append(missing, missingChangeFields(changes)...)
	if len(missing) > 0 {
		return errs.NewValidation("missing required fields", missing...)
	}
	return nil
}

func missingChangeFields(changes []Change) []string {
	var missing []string
	for i, c := range changes {
		if c.SessionID == uuid.Nil {
			missing = append(missing, fieldName(i, "sessionId"))
		}
		if c.NewDate == "" {
			missing = append(missing, fieldName(i, "newDate"))
		}
		if c.NewSlotID == "" {
			missing = append(missing, fieldName(i, "newSlotId"))
		}
	}
	return missing
}

func fieldName(i int, name string) string {
	return "sessions[" + strconv.Itoa(i) + "]." + name
}

func Reconstruct(id uuid.UUID, code string, bookingID, patientID uuid.UUID, changes []Change, status Status, createdAt, updatedAt time.Time) *Request {
	return &Request{
		id:        id,
		code:      code,
		bookingID: bookingID,
		patientID: patientID,
		changes:   changes,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces the proposed changes and/or moves the status. At least one
// must be supplied.
func (r *Request) Update(changes []Change, status *Status, now time.Time) error {
	if changes == nil && status == nil {
		return ErrNothingToUpdate
	}
	if changes != nil {
		if len(changes) == 0 {
			return errs.NewValidation("missing required fields", "sessions")
		}
		if missing := missingChangeFields(changes); len(missing) > 0 {
			return errs.NewValidation("missing required fields", missing...)
		}
	}
	if status != nil && !r.status.CanTransitionTo(*status) {
		return ErrInvalidTransition
	}

	if changes != nil {
		r.changes = changes
	}
	if status != nil {
		r.status = *status
	}
	r.updatedAt = now
	return nil
}

func (r *Request) ID() uuid.UUID        { return r.id }
func (r *Request) Code() string         { return r.code }
func (r *Request) BookingID() uuid.UUID { return r.bookingID }
func (r *Request) PatientID() uuid.UUID { return r.patientID }
func (r *Request) Changes() []Change    { return r.changes }
func (r *Request) Status() Status       { return r.status }
func (r *Request) CreatedAt() time.Time { return r.createdAt }
func (r *Request) UpdatedAt() time.Time { return r.updatedAt }
