//go:build unit || e2e

package builder

import (
	"time"

	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/domain/editrequest"
	reqdto "appointment-engine/internal/handler/dto/request"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type EditRequestBuilder struct {
	Code      string
	BookingID uuid.UUID
	PatientID uuid.UUID
	Changes   []editrequest.Change
	Status    editrequest.Status
	CreatedAt time.Time
}

func NewEditRequestBuilder() *EditRequestBuilder {
	return &EditRequestBuilder{
		Code:      "SER00001",
		BookingID: uuid.New(),
		PatientID: uuid.New(),
		Changes: []editrequest.Change{
			{SessionID: uuid.New(), NewDate: "2025-03-15", NewSlotID: "s11"},
		},
		Status:    editrequest.StatusPending,
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (e *EditRequestBuilder) With(mutate func(*EditRequestBuilder)) *EditRequestBuilder {
	mutate(e)
	return e
}

func (e *EditRequestBuilder) BuildDomain() *editrequest.Request {
	return editrequest.Reconstruct(uuid.New(), e.Code, e.BookingID, e.PatientID, e.Changes, e.Status, e.CreatedAt, e.CreatedAt)
}

func (e *EditRequestBuilder) BuildCreateRequestDTO() reqdto.CreateEditRequestRequest {
	sessions := make([]reqdto.SessionChangeRequest, len(e.Changes))
	for i, c := range e.Changes {
		sessions[i] = reqdto.SessionChangeRequest{SessionID: c.SessionID, NewDate: c.NewDate, NewSlotID: c.NewSlotID}
	}
	return reqdto.CreateEditRequestRequest{
		AppointmentID: e.BookingID,
		PatientID:     e.PatientID,
		Sessions:      sessions,
	}
}

func (e *EditRequestBuilder) BuildView() *queries.EditRequestView {
	sessions := make([]queries.SessionChangeView, len(e.Changes))
	for i, c := range e.Changes {
		sessions[i] = queries.SessionChangeView{SessionID: c.SessionID, NewDate: c.NewDate, NewSlotID: c.NewSlotID}
	}
	return &queries.EditRequestView{
		ID:        uuid.New(),
		RequestID: e.Code,
		BookingID: e.BookingID,
		PatientID: e.PatientID,
		Sessions:  sessions,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.CreatedAt,
	}
}

type BookingRequestBuilder struct {
	Code          string
	PackageID     uuid.UUID
	PatientID     uuid.UUID
	TherapyTypeID uuid.UUID
	Sessions      []bookingrequest.PreferredSession
	Remark        string
	Status        bookingrequest.Status
	BookingID     *uuid.UUID
	CreatedAt     time.Time
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		Code:          "REQ-00001",
		PackageID:     uuid.New(),
		PatientID:     uuid.New(),
		TherapyTypeID: uuid.New(),
		Sessions: []bookingrequest.PreferredSession{
			{Date: "2025-03-10", SlotID: "s09", TimeLabel: "09:00"},
		},
		Remark:    "mornings only",
		Status:    bookingrequest.StatusPending,
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *BookingRequestBuilder) With(mutate func(*BookingRequestBuilder)) *BookingRequestBuilder {
	mutate(r)
	return r
}

func (r *BookingRequestBuilder) BuildDomain() *bookingrequest.Request {
	return bookingrequest.Reconstruct(uuid.New(), r.Code, r.PackageID, r.PatientID, r.TherapyTypeID, r.Sessions, r.Remark, r.Status, r.BookingID, r.CreatedAt)
}

func (r *BookingRequestBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequestRequest {
	sessions := make([]reqdto.PreferredSessionRequest, len(r.Sessions))
	for i, s := range r.Sessions {
		sessions[i] = reqdto.PreferredSessionRequest{Date: s.Date, SlotID: s.SlotID, Time: s.TimeLabel}
	}
	return reqdto.CreateBookingRequestRequest{
		PackageID:     r.PackageID,
		PatientID:     r.PatientID,
		TherapyTypeID: r.TherapyTypeID,
		Sessions:      sessions,
		Remark:        r.Remark,
	}
}

func (r *BookingRequestBuilder) BuildView() *queries.BookingRequestView {
	sessions := make([]queries.PreferredSessionView, len(r.Sessions))
	for i, s := range r.Sessions {
		sessions[i] = queries.PreferredSessionView{Date: s.Date, SlotID: s.SlotID, TimeLabel: s.TimeLabel}
	}
	return &queries.BookingRequestView{
		ID:            uuid.New(),
		RequestID:     r.Code,
		PackageID:     r.PackageID,
		PatientID:     r.PatientID,
		TherapyTypeID: r.TherapyTypeID,
		Sessions:      sessions,
		Remark:        r.Remark,
		Status:        string(r.Status),
		BookingID:     r.BookingID,
		CreatedAt:     r.CreatedAt,
	}
}

type JobCardBuilder struct {
	BusinessID  uuid.UUID
	CustomerID  uuid.UUID
	VehicleID   uuid.UUID
	ServiceType string
	Priority    string
	Services    []discount.ServiceLine
	DealCode    string
}

func NewJobCardBuilder() *JobCardBuilder {
	return &JobCardBuilder{
		BusinessID:  uuid.New(),
		CustomerID:  uuid.New(),
		VehicleID:   uuid.New(),
		ServiceType: "Repair",
		Priority:    "Normal",
		Services: []discount.ServiceLine{{
			ServiceID: uuid.New(),
			Name:      "Brakes",
			SubServices: []discount.SubServiceLine{
				{SubServiceID: uuid.New(), Name: "Pads", PriceCents: 4000},
				{SubServiceID: uuid.New(), Name: "Fluid", PriceCents: 1000},
			},
		}},
	}
}

func (j *JobCardBuilder) With(mutate func(*JobCardBuilder)) *JobCardBuilder {
	mutate(j)
	return j
}

func (j *JobCardBuilder) BuildCreateRequestDTO() reqdto.CreateJobCardRequest {
	services := make([]reqdto.ServiceRequest, len(j.Services))
	for i, svc := range j.Services {
		subs := make([]reqdto.SubServiceRequest, len(svc.SubServices))
		for k, sub := range svc.SubServices {
			subs[k] = reqdto.SubServiceRequest{SubServiceID: sub.SubServiceID, Name: sub.Name, PriceCents: sub.PriceCents}
		}
		services[i] = reqdto.ServiceRequest{ServiceID: svc.ServiceID, Name: svc.Name, SubServices: subs}
	}
	return reqdto.CreateJobCardRequest{
		BusinessID:       j.BusinessID,
		CustomerID:       j.CustomerID,
		VehicleID:        j.VehicleID,
		IssueDescription: "squeaking brakes",
		ServiceType:      j.ServiceType,
		Priority:         j.Priority,
		Services:         services,
		DealCode:         j.DealCode,
	}
}
