//go:build unit || e2e

package builder

import (
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/domain/payment"
	reqdto "appointment-engine/internal/handler/dto/request"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionSpec struct {
	Date      string
	SlotID    string
	TimeLabel string
}

type BookingBuilder struct {
	AppointmentID string
	PackageID     uuid.UUID
	PackageName   string
	PackageCents  int64
	PatientID     uuid.UUID
	TherapyTypeID uuid.UUID
	TherapyName   string
	ProviderID    uuid.UUID
	ProviderRef   string
	Sessions      []SessionSpec
	Status        string
	CouponCode    string
	PaymentID     *uuid.UUID
	PaymentStatus payment.Status
	Coupon        *booking.CouponRef
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	paymentID := uuid.New()
	return &BookingBuilder{
		AppointmentID: "APT000001",
		PackageID:     uuid.New(),
		PackageName:   "Physio 5-pack",
		PackageCents:  50000,
		PatientID:     uuid.New(),
		TherapyTypeID: uuid.New(),
		TherapyName:   "Physiotherapy",
		ProviderID:    uuid.New(),
		ProviderRef:   "PRV001",
		Sessions: []SessionSpec{
			{Date: "2025-03-10", SlotID: "s09", TimeLabel: "09:00"},
			{Date: "2025-03-12", SlotID: "s10", TimeLabel: "10:00"},
		},
		Status:        "scheduled",
		PaymentID:     &paymentID,
		PaymentStatus: payment.StatusPending,
		CreatedAt:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) details() booking.Details {
	status, _ := booking.ParseStatus(b.Status)
	return booking.Details{
		PackageID:     b.PackageID,
		PatientID:     b.PatientID,
		TherapyTypeID: b.TherapyTypeID,
		ProviderID:    b.ProviderID,
		Status:        status,
	}
}

// BuildDomainSessions returns the sessions as the use case normalizes them.
func (b *BookingBuilder) BuildDomainSessions() []booking.Session {
	out := make([]booking.Session, len(b.Sessions))
	for i, s := range b.Sessions {
		out[i] = booking.Session{
			ID:            uuid.New(),
			Date:          s.Date,
			TimeLabel:     s.TimeLabel,
			SlotID:        s.SlotID,
			ProviderID:    b.ProviderID,
			ProviderRef:   b.ProviderRef,
			TherapyTypeID: b.TherapyTypeID,
		}
	}
	return out
}

// BuildDomain returns a persisted booking.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(booking.State{
		ID:            uuid.New(),
		AppointmentID: b.AppointmentID,
		Details:       b.details(),
		Coupon:        b.Coupon,
		PaymentID:     b.PaymentID,
		PaymentStatus: b.PaymentStatus,
		Sessions:      b.BuildDomainSessions(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	})
}

func (b *BookingBuilder) BuildNew() (*booking.Booking, error) {
	return booking.NewBooking(b.AppointmentID, b.details(), b.BuildDomainSessions(), b.CreatedAt)
}

func (b *BookingBuilder) BuildInput() commands.BookingInput {
	sessions := make([]commands.SessionInput, len(b.Sessions))
	for i, s := range b.Sessions {
		sessions[i] = commands.SessionInput{Date: s.Date, SlotID: s.SlotID, TimeLabel: s.TimeLabel}
	}
	return commands.BookingInput{
		PackageID:     b.PackageID,
		PatientID:     b.PatientID,
		TherapyTypeID: b.TherapyTypeID,
		ProviderID:    b.ProviderID,
		Sessions:      sessions,
		Status:        b.Status,
		CouponCode:    b.CouponCode,
	}
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	sessions := make([]reqdto.SessionRequest, len(b.Sessions))
	for i, s := range b.Sessions {
		sessions[i] = reqdto.SessionRequest{Date: s.Date, SlotID: s.SlotID, Time: s.TimeLabel}
	}
	return reqdto.BookingRequest{
		PackageID:     b.PackageID.String(),
		PatientID:     b.PatientID.String(),
		TherapyTypeID: b.TherapyTypeID.String(),
		ProviderID:    b.ProviderID.String(),
		Sessions:      sessions,
		Status:        b.Status,
		CouponCode:    b.CouponCode,
	}
}

func (b *BookingBuilder) BuildPackage() *shared.PackageSnapshot {
	return &shared.PackageSnapshot{
		ID:             b.PackageID,
		Name:           b.PackageName,
		SessionCount:   len(b.Sessions),
		TotalCostCents: b.PackageCents,
	}
}

func (b *BookingBuilder) BuildTherapyType() *shared.TherapyTypeSnapshot {
	return &shared.TherapyTypeSnapshot{ID: b.TherapyTypeID, Name: b.TherapyName}
}

func (b *BookingBuilder) BuildPayment() *payment.Payment {
	id := uuid.New()
	if b.PaymentID != nil {
		id = *b.PaymentID
	}
	var paidAt *time.Time
	if b.PaymentStatus == payment.StatusPaid {
		at := b.CreatedAt
		paidAt = &at
	}
	return payment.Reconstruct(id, "INV-2025-00001", b.PackageCents, b.PackageCents, b.PaymentStatus, "cash", paidAt)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	sessions := make([]queries.SessionView, len(b.Sessions))
	for i, s := range b.Sessions {
		sessions[i] = queries.SessionView{
			ID:          uuid.New(),
			Date:        s.Date,
			TimeLabel:   s.TimeLabel,
			SlotID:      s.SlotID,
			Provider:    queries.ProviderRef{ID: b.ProviderID, RefCode: b.ProviderRef, Name: "Dr. Rao"},
			TherapyType: queries.NamedRef{ID: b.TherapyTypeID, Name: b.TherapyName},
		}
	}
	return &queries.BookingView{
		ID:            uuid.New(),
		AppointmentID: b.AppointmentID,
		Status:        b.Status,
		Package:       queries.PackageRef{ID: b.PackageID, Name: b.PackageName, SessionCount: int32(len(b.Sessions)), TotalCents: b.PackageCents},
		Patient:       queries.PatientRef{ID: b.PatientID, Code: "PAT000001", Name: "Asha Menon", Phone: "+91-9000000000"},
		TherapyType:   queries.NamedRef{ID: b.TherapyTypeID, Name: b.TherapyName},
		Provider:      queries.ProviderRef{ID: b.ProviderID, RefCode: b.ProviderRef, Name: "Dr. Rao"},
		Sessions:      sessions,
		PaymentStatus: b.PaymentStatus.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

// DealBuilder builds active platform-wide percentage deals.
type DealBuilder struct {
	Spec discount.DealSpec
}

func NewDealBuilder() *DealBuilder {
	return &DealBuilder{Spec: discount.DealSpec{
		ID:         uuid.New(),
		Name:       "Spring offer",
		Code:       "SPRING10",
		Scope:      string(discount.ScopeAll),
		Percentage: 10,
		Enabled:    true,
		StartsAt:   "2025-01-01",
		EndsAt:     "2025-12-31",
	}}
}

func (d *DealBuilder) With(mutate func(*discount.DealSpec)) *DealBuilder {
	mutate(&d.Spec)
	return d
}

func (d *DealBuilder) Build() *discount.Deal {
	deal, err := discount.NewDeal(d.Spec)
	if err != nil {
		panic(err)
	}
	return deal
}
