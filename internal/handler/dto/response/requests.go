package response

import (
	"time"

	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/domain/jobcard"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SessionChangeResponse struct {
	SessionID uuid.UUID `json:"sessionId"`
	NewDate   string    `json:"newDate"`
	NewSlotID string    `json:"newSlotId"`
}

type EditRequestResponse struct {
	ID        uuid.UUID               `json:"id"`
	RequestID string                  `json:"requestId"`
	BookingID uuid.UUID               `json:"appointmentId"`
	PatientID uuid.UUID               `json:"patientId"`
	Sessions  []SessionChangeResponse `json:"sessions"`
	Status    string                  `json:"status"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

func FromEditRequestViews(items []*queries.EditRequestView) ([]EditRequestResponse, error) {
	res := make([]EditRequestResponse, 0, len(items))
	if err := copier.CopyWithOption(&res, &items, copyOpts); err != nil {
		return nil, err
	}
	return res, nil
}

func FromEditRequest(r *editrequest.Request) *EditRequestResponse {
	sessions := make([]SessionChangeResponse, len(r.Changes()))
	for i, c := range r.Changes() {
		sessions[i] = SessionChangeResponse{SessionID: c.SessionID, NewDate: c.NewDate, NewSlotID: c.NewSlotID}
	}
	return &EditRequestResponse{
		ID:        r.ID(),
		RequestID: r.Code(),
		BookingID: r.BookingID(),
		PatientID: r.PatientID(),
		Sessions:  sessions,
		Status:    string(r.Status()),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

type PreferredSessionResponse struct {
	Date      string `json:"date"`
	SlotID    string `json:"slotId"`
	TimeLabel string `json:"time,omitempty"`
}

type BookingRequestResponse struct {
	ID            uuid.UUID                  `json:"id"`
	RequestID     string                     `json:"requestId"`
	PackageID     uuid.UUID                  `json:"package"`
	PatientID     uuid.UUID                  `json:"patient"`
	TherapyTypeID uuid.UUID                  `json:"therapy"`
	Sessions      []PreferredSessionResponse `json:"sessions"`
	Remark        string                     `json:"remark,omitempty"`
	Status        string                     `json:"status"`
	BookingID     *uuid.UUID                 `json:"bookingId,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
}

func FromBookingRequestView(v *queries.BookingRequestView) (*BookingRequestResponse, error) {
	var r BookingRequestResponse
	if err := copier.CopyWithOption(&r, v, copyOpts); err != nil {
		return nil, err
	}
	return &r, nil
}

func FromBookingRequestViews(items []*queries.BookingRequestView) ([]BookingRequestResponse, error) {
	res := make([]BookingRequestResponse, 0, len(items))
	if err := copier.CopyWithOption(&res, &items, copyOpts); err != nil {
		return nil, err
	}
	return res, nil
}

func FromBookingRequest(r *bookingrequest.Request) *BookingRequestResponse {
	sessions := make([]PreferredSessionResponse, len(r.Sessions()))
	for i, s := range r.Sessions() {
		sessions[i] = PreferredSessionResponse{Date: s.Date, SlotID: s.SlotID, TimeLabel: s.TimeLabel}
	}
	return &BookingRequestResponse{
		ID:            r.ID(),
		RequestID:     r.Code(),
		PackageID:     r.PackageID(),
		PatientID:     r.PatientID(),
		TherapyTypeID: r.TherapyTypeID(),
		Sessions:      sessions,
		Remark:        r.Remark(),
		Status:        string(r.Status()),
		BookingID:     r.BookingID(),
		CreatedAt:     r.CreatedAt(),
	}
}

type LineBreakdownResponse struct {
	SubServiceID         uuid.UUID `json:"subServiceId"`
	Name                 string    `json:"name"`
	PriceCents           int64     `json:"price"`
	DiscountCents        int64     `json:"discountAmount"`
	DiscountedPriceCents int64     `json:"discountedPrice"`
}

type ServiceBreakdownResponse struct {
	ServiceID            uuid.UUID               `json:"serviceId"`
	Name                 string                  `json:"name"`
	SubServices          []LineBreakdownResponse `json:"subServices"`
	PriceCents           int64                   `json:"price"`
	DiscountCents        int64                   `json:"discountAmount"`
	DiscountedPriceCents int64                   `json:"discountedPrice"`
}

type JobCardResponse struct {
	ID                uuid.UUID                  `json:"id"`
	BusinessID        uuid.UUID                  `json:"business"`
	CustomerID        uuid.UUID                  `json:"customerId"`
	VehicleID         uuid.UUID                  `json:"vehicleId"`
	ServiceType       string                     `json:"serviceType"`
	Priority          string                     `json:"priorityLevel"`
	Services          []ServiceBreakdownResponse `json:"services"`
	SubtotalCents     int64                      `json:"subtotal"`
	DiscountCents     int64                      `json:"discountAmount"`
	TotalPayableCents int64                      `json:"totalPayableAmount"`
	DealApplied       bool                       `json:"dealApplied"`
	DealCode          string                     `json:"dealCode,omitempty"`
	PaymentStatus     string                     `json:"paymentStatus"`
	CreatedAt         time.Time                  `json:"createdAt"`
}

func FromJobCard(jc *jobcard.JobCard) (*JobCardResponse, error) {
	r := JobCardResponse{
		ID:                jc.ID,
		BusinessID:        jc.BusinessID,
		CustomerID:        jc.CustomerID,
		VehicleID:         jc.VehicleID,
		ServiceType:       string(jc.ServiceType),
		Priority:          string(jc.Priority),
		SubtotalCents:     jc.Quote.SubtotalCents,
		DiscountCents:     jc.Quote.DiscountCents,
		TotalPayableCents: jc.Quote.TotalPayableCents,
		DealApplied:       jc.Quote.DealApplied,
		DealCode:          jc.Quote.DealCode,
		PaymentStatus:     jc.PaymentStatus,
		CreatedAt:         jc.CreatedAt,
	}
	if err := copier.CopyWithOption(&r.Services, &jc.Quote.Services, copyOpts); err != nil {
		return nil, err
	}
	return &r, nil
}
