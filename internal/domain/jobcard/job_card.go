package jobcard

import (
	"time"

	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceType = errs.Sentinel("invalid service type", errs.ErrValidation)
	ErrInvalidPriority    = errs.Sentinel("invalid priority level", errs.ErrValidation)
)

type ServiceType string

const (
	ServiceRepair      ServiceType = "Repair"
	ServiceMaintenance ServiceType = "Maintenance"
	ServiceInspection  ServiceType = "Inspection"
)

func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case ServiceRepair, ServiceMaintenance, ServiceInspection:
		return ServiceType(s), nil
	default:
		return "", ErrInvalidServiceType
	}
}

type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityUrgent Priority = "Urgent"
)

// ParsePriority maps an empty string to PriorityNormal.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case "":
		return PriorityNormal, nil
	case PriorityNormal, PriorityUrgent:
		return Priority(s), nil
	default:
		return "", ErrInvalidPriority
	}
}

const PaymentPending = "Pending"

type Spec struct {
	BusinessID       uuid.UUID
	CustomerID       uuid.UUID
	VehicleID        uuid.UUID
	OdometerReading  *int32
	IssueDescription string
	ServiceType      string
	Priority         string
	Services         []discount.ServiceLine
	Notes            string
	TechnicalRemarks string
}

type JobCard struct {
	ID               uuid.UUID
	BusinessID       uuid.UUID
	CustomerID       uuid.UUID
	VehicleID        uuid.UUID
	OdometerReading  *int32
	IssueDescription string
	ServiceType      ServiceType
	Priority         Priority
	Quote            discount.Quote
	Deal             *discount.Deal
	PaymentStatus    string
	Notes            string
	TechnicalRemarks string
	CreatedAt        time.Time
}

// New prices the job card. deal may be nil, in which case every line keeps
// its original price.
func New(spec Spec, deal *discount.Deal, now time.Time) (*JobCard, error) {
	var missing []string
	if spec.BusinessID == uuid.Nil {
		missing = append(missing, "business")
	}
	if spec.CustomerID == uuid.Nil {
		missing = append(missing, "customerId")
	}
	if spec.VehicleID == uuid.Nil {
		missing = append(missing, "vehicleId")
	}
	if len(spec.Services) == 0 {
		missing = append(missing, "services")
	}
	if len(missing) > 0 {
		return nil, errs.NewValidation("missing required fields", missing...)
	}

	serviceType, err := ParseServiceType(spec.ServiceType)
	if err != nil {
		return nil, err
	}
	priority, err := ParsePriority(spec.Priority)
	if err != nil {
		return nil, err
	}

	return &JobCard{
		ID:               uuid.New(),
		BusinessID:       spec.BusinessID,
		CustomerID:       spec.CustomerID,
		VehicleID:        spec.VehicleID,
		OdometerReading:  spec.OdometerReading,
		IssueDescription: spec.IssueDescription,
		ServiceType:      serviceType,
		Priority:         priority,
		Quote:            discount.NewQuote(spec.Services, deal),
		Deal:             deal,
		PaymentStatus:    PaymentPending,
		Notes:            spec.Notes,
		TechnicalRemarks: spec.TechnicalRemarks,
		CreatedAt:        now,
	}, nil
}
