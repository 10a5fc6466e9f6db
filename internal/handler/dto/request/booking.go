package request

import (
	"strconv"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type SessionRequest struct {
	Date          string `json:"date"`
	SlotID        string `json:"slotId"`
	Time          string `json:"time"`
	ProviderID    string `json:"providerId,omitempty"`
	TherapyTypeID string `json:"therapyId,omitempty"`
}

// BookingRequest is the body of both create and full update. Required fields
// are checked by the use case so every missing one is reported at once. An
// empty id reaches it as uuid.Nil.
type BookingRequest struct {
	PackageID        string           `json:"packageId"`
	PatientID        string           `json:"patientId"`
	TherapyTypeID    string           `json:"therapyId"`
	ProviderID       string           `json:"providerId"`
	Sessions         []SessionRequest `json:"sessions"`
	Status           string           `json:"status"`
	CouponCode       string           `json:"couponCode"`
	Notes            string           `json:"notes"`
	Remark           string           `json:"remark"`
	Channel          string           `json:"channel"`
	AttendedBy       string           `json:"attendedBy"`
	AttendedByType   string           `json:"attendedByType"`
	Referral         string           `json:"referral"`
	Extra            string           `json:"extra"`
	PaymentDueDate   *string          `json:"paymentDueDate,omitempty"`
	InvoiceNumber    string           `json:"invoiceNumber"`
	FollowupRequired bool             `json:"followupRequired"`
	FollowupDate     *string          `json:"followupDate,omitempty"`
	IsBookingRequest bool             `json:"isBookingRequest"`
	BookingRequestID string           `json:"bookingRequestId,omitempty"`
}

// idParser collects every malformed id before failing.
type idParser struct {
	invalid []string
}

func (p *idParser) id(field, value string) uuid.UUID {
	if value == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		p.invalid = append(p.invalid, field)
		return uuid.Nil
	}
	return id
}

func (p *idParser) optional(field, value string) *uuid.UUID {
	if value == "" {
		return nil
	}
	id := p.id(field, value)
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func (p *idParser) err() error {
	if len(p.invalid) == 0 {
		return nil
	}
	return errs.NewValidation("invalid identifier", p.invalid...)
}

func (r *BookingRequest) ToInput() (commands.BookingInput, error) {
	var p idParser
	sessions := make([]commands.SessionInput, len(r.Sessions))
	for i, s := range r.Sessions {
		prefix := "sessions[" + strconv.Itoa(i) + "]."
		sessions[i] = commands.SessionInput{
			Date:          s.Date,
			SlotID:        s.SlotID,
			TimeLabel:     s.Time,
			ProviderID:    p.optional(prefix+"providerId", s.ProviderID),
			TherapyTypeID: p.optional(prefix+"therapyId", s.TherapyTypeID),
		}
	}
	in := commands.BookingInput{
		PackageID:     p.id("packageId", r.PackageID),
		PatientID:     p.id("patientId", r.PatientID),
		TherapyTypeID: p.id("therapyId", r.TherapyTypeID),
		ProviderID:    p.id("providerId", r.ProviderID),
		Sessions:      sessions,
		Status:        r.Status,
		CouponCode:    r.CouponCode,
		Notes:         r.Notes,
		Remark:        r.Remark,
		Attribution: booking.Attribution{
			Channel:        r.Channel,
			AttendedBy:     r.AttendedBy,
			AttendedByType: r.AttendedByType,
			Referral:       r.Referral,
			Extra:          r.Extra,
		},
		Followup: booking.Followup{
			PaymentDueDate: r.PaymentDueDate,
			InvoiceNumber:  r.InvoiceNumber,
			Required:       r.FollowupRequired,
			Date:           r.FollowupDate,
		},
		IsBookingRequest: r.IsBookingRequest,
		BookingRequestID: p.optional("bookingRequestId", r.BookingRequestID),
	}
	if err := p.err(); err != nil {
		return commands.BookingInput{}, err
	}
	return in, nil
}

type CheckInRequest struct {
	BookingID uuid.UUID `json:"bookingId"`
	SessionID uuid.UUID `json:"sessionId"`
}
