package bookingrequest

import (
	"time"

	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errs.Sentinel("booking request not found", errs.ErrNotFound)
	ErrAlreadyRejected = errs.Sentinel("booking request already rejected", errs.ErrState)
	ErrAlreadyApproved = errs.Sentinel("booking request already approved", errs.ErrState)
	ErrInvalidStatus   = errs.Sentinel("invalid booking request status", errs.ErrValidation)
	ErrPackageNotFound = errs.Sentinel("package not found", errs.ErrValidation)
	ErrNothingToUpdate = errs.Sentinel("nothing to update", errs.ErrValidation)
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

// PreferredSession is a day and slot the patient asked for.
type PreferredSession struct {
	Date      string `json:"date"`
	SlotID    string `json:"slotId"`
	TimeLabel string `json:"time,omitempty"`
}

type Request struct {
	id            uuid.UUID
	code          string
	packageID     uuid.UUID
	patientID     uuid.UUID
	therapyTypeID uuid.UUID
	sessions      []PreferredSession
	remark        string
	status        Status
	bookingID     *uuid.UUID
	createdAt     time.Time
}

func New(code string, packageID, patientID, therapyTypeID uuid.UUID, sessions []PreferredSession, remark string, now time.Time) (*Request, error) {
	var missing []string
	if packageID == uuid.Nil {
		missing = append(missing, "package")
	}
	if patientID == uuid.Nil {
		missing = append(missing, "patient")
	}
	if therapyTypeID == uuid.Nil {
		missing = append(missing, "therapy")
	}
	if len(missing) > 0 {
		return nil, errs.NewValidation("missing required fields", missing...)
	}
	if sessions == nil {
		sessions = []PreferredSession{}
	}

	return &Request{
		id:            uuid.New(),
		code:          code,
		packageID:     packageID,
		patientID:     patientID,
		therapyTypeID: therapyTypeID,
		sessions:      sessions,
		remark:        remark,
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

func Reconstruct(id uuid.UUID, code string, packageID, patientID, therapyTypeID uuid.UUID, sessions []PreferredSession, remark string, status Status, bookingID *uuid.UUID, createdAt time.Time) *Request {
	return &Request{
		id:            id,
		code:          code,
		packageID:     packageID,
		patientID:     patientID,
		therapyTypeID: therapyTypeID,
		sessions:      sessions,
		remark:        remark,
		status:        status,
		bookingID:     bookingID,
		createdAt:     createdAt,
	}
}

func (r *Request) Reject() error {
	switch r.status {
	case StatusRejected:
		return ErrAlreadyRejected
	case StatusApproved:
		return ErrAlreadyApproved
	}
	r.status = StatusRejected
	return nil
}

// Approve links the booking that fulfilled the request.
func (r *Request) Approve(bookingID uuid.UUID) error {
	switch r.status {
	case StatusRejected:
		return ErrAlreadyRejected
	case StatusApproved:
		return ErrAlreadyApproved
	}
	r.status = StatusApproved
	r.bookingID = &bookingID
	return nil
}

// Changes are the fields an update may replace. A nil field is left as is.
type Changes struct {
	PackageID     *uuid.UUID
	PatientID     *uuid.UUID
	TherapyTypeID *uuid.UUID
	Sessions      []PreferredSession
	Remark        *string
}

func (c Changes) IsEmpty() bool {
	return c.PackageID == nil && c.PatientID == nil && c.TherapyTypeID == nil && c.Sessions == nil && c.Remark == nil
}

// Update applies c to a pending request. Approved and rejected requests are
// frozen.
func (r *Request) Update(c Changes) error {
	if c.IsEmpty() {
		return ErrNothingToUpdate
	}
	switch r.status {
	case StatusRejected:
		return ErrAlreadyRejected
	case StatusApproved:
		return ErrAlreadyApproved
	}

	var missing []string
	if c.PackageID != nil && *c.PackageID == uuid.Nil {
		missing = append(missing, "package")
	}
	if c.PatientID != nil && *c.PatientID == uuid.Nil {
		missing = append(missing, "patient")
	}
	if c.TherapyTypeID != nil && *c.TherapyTypeID == uuid.Nil {
		missing = append(missing, "therapy")
	}
	if len(missing) > 0 {
		return errs.NewValidation("missing required fields", missing...)
	}

	if c.PackageID != nil {
		r.packageID = *c.PackageID
	}
	if c.PatientID != nil {
		r.patientID = *c.PatientID
	}
	if c.TherapyTypeID != nil {
		r.therapyTypeID = *c.TherapyTypeID
	}
	if c.Sessions != nil {
		r.sessions = c.Sessions
	}
	if c.Remark != nil {
		r.remark = *c.Remark
	}
	return nil
}

func (r *Request) ID() uuid.UUID                { return r.id }
func (r *Request) Code() string                 { return r.code }
func (r *Request) PackageID() uuid.UUID         { return r.packageID }
func (r *Request) PatientID() uuid.UUID         { return r.patientID }
func (r *Request) TherapyTypeID() uuid.UUID     { return r.therapyTypeID }
func (r *Request) Sessions() []PreferredSession { return r.sessions }
func (r *Request) Remark() string               { return r.remark }
func (r *Request) Status() Status               { return r.status }
func (r *Request) BookingID() *uuid.UUID        { return r.bookingID }
func (r *Request) CreatedAt() time.Time         { return r.createdAt }
