package queries

import (
	"time"

	"github.com/google/uuid"
)

type BookingView struct {
	ID               uuid.UUID
	AppointmentID    string
	Status           string
	Package          PackageRef
	Patient          PatientRef
	TherapyType      NamedRef
	Provider         ProviderRef
	Sessions         []SessionView
	Notes            string
	Remark           string
	Channel          string
	AttendedBy       string
	AttendedByType   string
	Referral         string
	Extra            string
	PaymentDueDate   *string
	InvoiceNumber    string
	FollowupRequired bool
	FollowupDate     *string
	Coupon           *CouponView
	Payment          *PaymentView
	PaymentStatus    string
	BookingRequestID *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PackageRef struct {
	ID           uuid.UUID
	Name         string
	SessionCount int32
	TotalCents   int64
}

type PatientRef struct {
	ID    uuid.UUID
	Code  string
	Name  string
	Phone string
}

type ProviderRef struct {
	ID      uuid.UUID
	RefCode string
	Name    string
}

type NamedRef struct {
	ID   uuid.UUID
	Name string
}

type SessionView struct {
	ID          uuid.UUID
	Date        string
	TimeLabel   string
	SlotID      string
	Provider    ProviderRef
	TherapyType NamedRef
	CheckedIn   bool
	CheckedInAt *time.Time
}

type CouponView struct {
	Code          string
	AppliedAt     time.Time
	DiscountCents int64
}

type PaymentView struct {
	ID          uuid.UUID
	Code        string
	TotalCents  int64
	AmountCents int64
	Status      string
	Method      string
	PaidAt      *time.Time
}

// CalendarEntry is one session placed on the calendar.
type CalendarEntry struct {
	SessionID     uuid.UUID
	BookingID     uuid.UUID
	AppointmentID string
	Date          string
	TimeLabel     string
	SlotID        string
	CheckedIn     bool
	Patient       NamedRef
	Provider      ProviderRef
}

type DayAvailability struct {
	// BookedSlots maps provider reference codes to the slot ids taken that day.
	BookedSlots map[string][]string
	// SlotCounts is the capacity ledger for the day across all providers.
	SlotCounts map[string]int
}

type AvailabilityView struct {
	ProviderID uuid.UUID
	From       string
	To         string
	Days       map[string]DayAvailability
}

type SessionChangeView struct {
	SessionID uuid.UUID
	NewDate   string
	NewSlotID string
}

type EditRequestView struct {
	ID        uuid.UUID
	RequestID string
	BookingID uuid.UUID
	PatientID uuid.UUID
	Sessions  []SessionChangeView
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PreferredSessionView struct {
	Date      string
	SlotID    string
	TimeLabel string
}

type BookingRequestView struct {
	ID            uuid.UUID
	RequestID     string
	PackageID     uuid.UUID
	PatientID     uuid.UUID
	TherapyTypeID uuid.UUID
	Sessions      []PreferredSessionView
	Remark        string
	Status        string
	BookingID     *uuid.UUID
	CreatedAt     time.Time
}
