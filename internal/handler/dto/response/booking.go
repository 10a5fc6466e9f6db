package response

import (
	"time"

	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Response types mirror the query views field for field; copier fills them
// by name.
var copyOpts = copier.Option{DeepCopy: true}

type PackageResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SessionCount int32     `json:"sessionCount"`
	TotalCents   int64     `json:"totalCost"`
}

type PatientResponse struct {
	ID    uuid.UUID `json:"id"`
	Code  string    `json:"patientId"`
	Name  string    `json:"name"`
	Phone string    `json:"phone,omitempty"`
}

type ProviderResponse struct {
	ID      uuid.UUID `json:"id"`
	RefCode string    `json:"refCode"`
	Name    string    `json:"name"`
}

type NamedResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SessionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Date        string           `json:"date"`
	TimeLabel   string           `json:"time"`
	SlotID      string           `json:"slotId"`
	Provider    ProviderResponse `json:"provider"`
	TherapyType NamedResponse    `json:"therapy"`
	CheckedIn   bool             `json:"isCheckedIn"`
	CheckedInAt *time.Time       `json:"checkedInAt,omitempty"`
}

type CouponResponse struct {
	Code          string    `json:"code"`
	AppliedAt     time.Time `json:"appliedAt"`
	DiscountCents int64     `json:"discountAmount"`
}

type PaymentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"paymentId"`
	TotalCents  int64      `json:"totalAmount"`
	AmountCents int64      `json:"amount"`
	Status      string     `json:"status"`
	Method      string     `json:"paymentMethod"`
	PaidAt      *time.Time `json:"paymentTime,omitempty"`
}

type BookingResponse struct {
	ID               uuid.UUID         `json:"id"`
	AppointmentID    string            `json:"appointmentId"`
	Status           string            `json:"status"`
	Package          PackageResponse   `json:"package"`
	Patient          PatientResponse   `json:"patient"`
	TherapyType      NamedResponse     `json:"therapy"`
	Provider         ProviderResponse  `json:"provider"`
	Sessions         []SessionResponse `json:"sessions"`
	Notes            string            `json:"notes,omitempty"`
	Remark           string            `json:"remark,omitempty"`
	Channel          string            `json:"channel,omitempty"`
	AttendedBy       string            `json:"attendedBy,omitempty"`
	AttendedByType   string            `json:"attendedByType,omitempty"`
	Referral         string            `json:"referral,omitempty"`
	Extra            string            `json:"extra,omitempty"`
	PaymentDueDate   *string           `json:"paymentDueDate,omitempty"`
	InvoiceNumber    string            `json:"invoiceNumber,omitempty"`
	FollowupRequired bool              `json:"followupRequired"`
	FollowupDate     *string           `json:"followupDate,omitempty"`
	Coupon           *CouponResponse   `json:"coupon,omitempty"`
	Payment          *PaymentResponse  `json:"payment,omitempty"`
	PaymentStatus    string            `json:"paymentStatus"`
	BookingRequestID *uuid.UUID        `json:"bookingRequestId,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var r BookingResponse
	if err := copier.CopyWithOption(&r, v, copyOpts); err != nil {
		return nil, err
	}
	if r.Sessions == nil {
		r.Sessions = []SessionResponse{}
	}
	return &r, nil
}

func FromBookingList(items []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		r, err := FromBookingView(it)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

type CalendarEntryResponse struct {
	SessionID     uuid.UUID        `json:"sessionId"`
	BookingID     uuid.UUID        `json:"bookingId"`
	AppointmentID string           `json:"appointmentId"`
	Date          string           `json:"date"`
	TimeLabel     string           `json:"time"`
	SlotID        string           `json:"slotId"`
	CheckedIn     bool             `json:"isCheckedIn"`
	Patient       NamedResponse    `json:"patient"`
	Provider      ProviderResponse `json:"provider"`
}

func FromCalendar(entries []*queries.CalendarEntry) ([]CalendarEntryResponse, error) {
	res := make([]CalendarEntryResponse, 0, len(entries))
	if err := copier.CopyWithOption(&res, &entries, copyOpts); err != nil {
		return nil, err
	}
	return res, nil
}

type DayAvailabilityResponse struct {
	BookedSlots map[string][]string `json:"bookedSlots"`
	SlotCounts  map[string]int      `json:"slotCounts"`
}

type AvailabilityResponse struct {
	ProviderID uuid.UUID                          `json:"providerId"`
	From       string                             `json:"from"`
	To         string                             `json:"to"`
	Days       map[string]DayAvailabilityResponse `json:"days"`
}

func FromAvailability(v *queries.AvailabilityView) *AvailabilityResponse {
	days := make(map[string]DayAvailabilityResponse, len(v.Days))
	for date, d := range v.Days {
		days[date] = DayAvailabilityResponse{BookedSlots: d.BookedSlots, SlotCounts: d.SlotCounts}
	}
	return &AvailabilityResponse{
		ProviderID: v.ProviderID,
		From:       v.From,
		To:         v.To,
		Days:       days,
	}
}

type CheckInResponse struct {
	BookingID        uuid.UUID `json:"bookingId"`
	SessionID        uuid.UUID `json:"sessionId"`
	AlreadyCheckedIn bool      `json:"alreadyCheckedIn"`
}

type CollectPaymentResponse struct {
	PaymentID   uuid.UUID `json:"id"`
	PaymentCode string    `json:"paymentId"`
	AmountCents int64     `json:"amount"`
	AlreadyPaid bool      `json:"alreadyPaid"`
}
