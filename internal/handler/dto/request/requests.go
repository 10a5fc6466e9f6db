package request

import (
	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/domain/jobcard"
	"appointment-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type SessionChangeRequest struct {
	SessionID uuid.UUID `json:"sessionId"`
	NewDate   string    `json:"newDate"`
	NewSlotID string    `json:"newSlotId"`
}

type CreateEditRequestRequest struct {
	AppointmentID uuid.UUID              `json:"appointmentId"`
	PatientID     uuid.UUID              `json:"patientId"`
	Sessions      []SessionChangeRequest `json:"sessions"`
}

func (r *CreateEditRequestRequest) ToInput() commands.CreateEditRequestInput {
	return commands.CreateEditRequestInput{
		BookingID: r.AppointmentID,
		PatientID: r.PatientID,
		Changes:   toChanges(r.Sessions),
	}
}

type UpdateEditRequestRequest struct {
	Sessions []SessionChangeRequest `json:"sessions,omitempty"`
	Status   *string                `json:"status,omitempty"`
}

func (r *UpdateEditRequestRequest) ToInput() commands.UpdateEditRequestInput {
	return commands.UpdateEditRequestInput{
		Changes: toChanges(r.Sessions),
		Status:  r.Status,
	}
}

// toChanges keeps nil distinct from empty so an omitted list means "unchanged".
func toChanges(in []SessionChangeRequest) []editrequest.Change {
	if in == nil {
		return nil
	}
	out := make([]editrequest.Change, len(in))
	for i, s := range in {
		out[i] = editrequest.Change{SessionID: s.SessionID, NewDate: s.NewDate, NewSlotID: s.NewSlotID}
	}
	return out
}

type PreferredSessionRequest struct {
	Date   string `json:"date"`
	SlotID string `json:"slotId"`
	Time   string `json:"time"`
}

type CreateBookingRequestRequest struct {
	PackageID     uuid.UUID                 `json:"package"`
	PatientID     uuid.UUID                 `json:"patient"`
	TherapyTypeID uuid.UUID                 `json:"therapy"`
	Sessions      []PreferredSessionRequest `json:"sessions"`
	Remark        string                    `json:"remark"`
}

func (r *CreateBookingRequestRequest) ToInput() commands.CreateBookingRequestInput {
	sessions := make([]bookingrequest.PreferredSession, len(r.Sessions))
	for i, s := range r.Sessions {
		sessions[i] = bookingrequest.PreferredSession{Date: s.Date, SlotID: s.SlotID, TimeLabel: s.Time}
	}
	return commands.CreateBookingRequestInput{
		PackageID:     r.PackageID,
		PatientID:     r.PatientID,
		TherapyTypeID: r.TherapyTypeID,
		Sessions:      sessions,
		Remark:        r.Remark,
	}
}

// UpdateBookingRequestRequest changes only the fields it carries.
type UpdateBookingRequestRequest struct {
	PackageID     *uuid.UUID                `json:"package,omitempty"`
	PatientID     *uuid.UUID                `json:"patient,omitempty"`
	TherapyTypeID *uuid.UUID                `json:"therapy,omitempty"`
	Sessions      []PreferredSessionRequest `json:"sessions,omitempty"`
	Remark        *string                   `json:"remark,omitempty"`
}

func (r *UpdateBookingRequestRequest) ToInput() commands.UpdateBookingRequestInput {
	var sessions []bookingrequest.PreferredSession
	if r.Sessions != nil {
		sessions = make([]bookingrequest.PreferredSession, len(r.Sessions))
		for i, s := range r.Sessions {
			sessions[i] = bookingrequest.PreferredSession{Date: s.Date, SlotID: s.SlotID, TimeLabel: s.Time}
		}
	}
	return commands.UpdateBookingRequestInput{
		PackageID:     r.PackageID,
		PatientID:     r.PatientID,
		TherapyTypeID: r.TherapyTypeID,
		Sessions:      sessions,
		Remark:        r.Remark,
	}
}

type SubServiceRequest struct {
	SubServiceID uuid.UUID `json:"subServiceId"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"price"`
}

type ServiceRequest struct {
	ServiceID   uuid.UUID           `json:"serviceId"`
	Name        string              `json:"name"`
	SubServices []SubServiceRequest `json:"subServices"`
}

type CreateJobCardRequest struct {
	BusinessID       uuid.UUID        `json:"business"`
	CustomerID       uuid.UUID        `json:"customerId"`
	VehicleID        uuid.UUID        `json:"vehicleId"`
	OdometerReading  *int32           `json:"odometerReading,omitempty"`
	IssueDescription string           `json:"issueDescription"`
	ServiceType      string           `json:"serviceType"`
	Priority         string           `json:"priorityLevel"`
	Services         []ServiceRequest `json:"services"`
	DealCode         string           `json:"dealCode"`
	Notes            string           `json:"notes"`
	TechnicalRemarks string           `json:"technicalRemarks"`
}

func (r *CreateJobCardRequest) ToInput() commands.CreateJobCardInput {
	lines := make([]discount.ServiceLine, len(r.Services))
	for i, svc := range r.Services {
		subs := make([]discount.SubServiceLine, len(svc.SubServices))
		for j, sub := range svc.SubServices {
			subs[j] = discount.SubServiceLine{SubServiceID: sub.SubServiceID, Name: sub.Name, PriceCents: sub.PriceCents}
		}
		lines[i] = discount.ServiceLine{ServiceID: svc.ServiceID, Name: svc.Name, SubServices: subs}
	}
	return commands.CreateJobCardInput{
		Spec: jobcard.Spec{
			BusinessID:       r.BusinessID,
			CustomerID:       r.CustomerID,
			VehicleID:        r.VehicleID,
			OdometerReading:  r.OdometerReading,
			IssueDescription: r.IssueDescription,
			ServiceType:      r.ServiceType,
			Priority:         r.Priority,
			Services:         lines,
			Notes:            r.Notes,
			TechnicalRemarks: r.TechnicalRemarks,
		},
		DealCode: r.DealCode,
	}
}
