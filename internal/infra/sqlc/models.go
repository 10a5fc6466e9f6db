package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Counter struct {
	Name string
	Seq  int64
}

type Provider struct {
	ID        uuid.UUID
	RefCode   string
	Name      string
	IsActive  bool
	CreatedAt pgtype.Timestamptz
}

type Patient struct {
	ID          uuid.UUID
	PatientCode string
	Name        string
	Phone       pgtype.Text
	CreatedAt   pgtype.Timestamptz
}

type TherapyType struct {
	ID        uuid.UUID
	Name      string
	CreatedAt pgtype.Timestamptz
}

type Package struct {
	ID             uuid.UUID
	Name           string
	SessionCount   int32
	TotalCostCents int64
	CreatedAt      pgtype.Timestamptz
}

type Deal struct {
	ID         uuid.UUID
	BusinessID pgtype.UUID
	Name       string
	Code       string
	Scope      string
	TargetID   pgtype.UUID
	Percentage pgtype.Numeric
	Enabled    bool
	StartsAt   pgtype.Date
	EndsAt     pgtype.Date
	CreatedAt  pgtype.Timestamptz
}

type Payment struct {
	ID          uuid.UUID
	PaymentCode string
	TotalCents  int64
	AmountCents int64
	Status      string
	Method      string
	PaidAt      pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type BookingRequest struct {
	ID            uuid.UUID
	RequestCode   string
	PackageID     uuid.UUID
	PatientID     uuid.UUID
	TherapyTypeID uuid.UUID
	Sessions      []byte
	Remark        pgtype.Text
	Status        string
	BookingID     pgtype.UUID
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Booking struct {
	ID               uuid.UUID
	AppointmentCode  string
	PackageID        uuid.UUID
	PatientID        uuid.UUID
	TherapyTypeID    uuid.UUID
	ProviderID       uuid.UUID
	Status           string
	Notes            pgtype.Text
	Remark           pgtype.Text
	Channel          pgtype.Text
	AttendedBy       pgtype.Text
	AttendedByType   pgtype.Text
	Referral         pgtype.Text
	Extra            pgtype.Text
	PaymentDueDate   pgtype.Date
	InvoiceNumber    pgtype.Text
	FollowupRequired bool
	FollowupDate     pgtype.Date
	DealID           pgtype.UUID
	CouponCode       pgtype.Text
	CouponAppliedAt  pgtype.Timestamptz
	DiscountCents    int64
	PaymentID        pgtype.UUID
	PaymentStatus    string
	BookingRequestID pgtype.UUID
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type BookingSession struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	Position      int32
	SessionDate   pgtype.Date
	TimeLabel     pgtype.Text
	SlotID        string
	ProviderID    uuid.UUID
	TherapyTypeID uuid.UUID
	CheckedIn     bool
	CheckedInAt   pgtype.Timestamptz
}

type SlotCapacity struct {
	SlotDate  pgtype.Date
	SlotID    string
	Booked    int32
	UpdatedAt pgtype.Timestamptz
}

type FinanceRecord struct {
	ID          uuid.UUID
	PaymentID   uuid.UUID
	Description string
	EntryType   string
	AmountCents int64
	Status      string
	RecordedAt  pgtype.Timestamptz
}

type SessionEditRequest struct {
	ID          uuid.UUID
	RequestCode string
	BookingID   uuid.UUID
	PatientID   uuid.UUID
	Sessions    []byte
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type JobCard struct {
	ID                uuid.UUID
	BusinessID        uuid.UUID
	CustomerID        uuid.UUID
	VehicleID         uuid.UUID
	OdometerReading   pgtype.Int4
	IssueDescription  pgtype.Text
	ServiceType       string
	Priority          string
	Services          []byte
	DealID            pgtype.UUID
	DealCode          pgtype.Text
	DealApplied       bool
	SubtotalCents     int64
	DiscountCents     int64
	TotalPayableCents int64
	PaymentStatus     string
	Notes             pgtype.Text
	TechnicalRemarks  pgtype.Text
	CreatedAt         pgtype.Timestamptz
}
