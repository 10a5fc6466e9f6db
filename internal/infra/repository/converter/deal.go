package converter

import (
	"encoding/json"

	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/domain/jobcard"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func DealFromRow(row sqlc.Deal) (*discount.Deal, error) {
	pct, err := pgconv.Float64FromNumeric(row.Percentage)
	if err != nil {
		return nil, err
	}
	return discount.NewDeal(discount.DealSpec{
		ID:         row.ID,
		BusinessID: pgconv.UUIDPtrFromPgtype(row.BusinessID),
		Name:       row.Name,
		Code:       row.Code,
		Scope:      row.Scope,
		TargetID:   pgconv.UUIDPtrFromPgtype(row.TargetID),
		Percentage: pct,
		Enabled:    row.Enabled,
		StartsAt:   pgconv.DateToISO(row.StartsAt),
		EndsAt:     pgconv.DateToISO(row.EndsAt),
	})
}

type jobSubService struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name,omitempty"`
	Price           int64     `json:"price"`
	DiscountAmount  int64     `json:"discountAmount"`
	DiscountedPrice int64     `json:"discountedPrice"`
}

type jobService struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name,omitempty"`
	SubServices []jobSubService `json:"subServices"`
}

func JobCardToCreateParams(jc *jobcard.JobCard) (sqlc.CreateJobCardParams, error) {
	services := make([]jobService, 0, len(jc.Quote.Services))
	for _, svc := range jc.Quote.Services {
		js := jobService{ID: svc.ServiceID, Name: svc.Name}
		for _, sub := range svc.SubServices {
			js.SubServices = append(js.SubServices, jobSubService{
				ID:              sub.SubServiceID,
				Name:            sub.Name,
				Price:           sub.PriceCents,
				DiscountAmount:  sub.DiscountCents,
				DiscountedPrice: sub.DiscountedPriceCents,
			})
		}
		services = append(services, js)
	}
	payload, err := json.Marshal(services)
	if err != nil {
		return sqlc.CreateJobCardParams{}, errs.Wrap(err, "marshal job card services")
	}

	return sqlc.CreateJobCardParams{
		ID:                jc.ID,
		BusinessID:        jc.BusinessID,
		CustomerID:        jc.CustomerID,
		VehicleID:         jc.VehicleID,
		OdometerReading:   pgconv.Int4PtrToPgtype(jc.OdometerReading),
		IssueDescription:  pgconv.StringToPgtype(jc.IssueDescription),
		ServiceType:       string(jc.ServiceType),
		Priority:          string(jc.Priority),
		Services:          payload,
		DealID:            pgconv.UUIDPtrToPgtype(jc.Quote.DealID),
		DealCode:          pgconv.StringToPgtype(jc.Quote.DealCode),
		DealApplied:       jc.Quote.DealApplied,
		SubtotalCents:     jc.Quote.SubtotalCents,
		DiscountCents:     jc.Quote.DiscountCents,
		TotalPayableCents: jc.Quote.TotalPayableCents,
		PaymentStatus:     jc.PaymentStatus,
		Notes:             pgconv.StringToPgtype(jc.Notes),
		TechnicalRemarks:  pgconv.StringToPgtype(jc.TechnicalRemarks),
		CreatedAt:         pgconv.TimeToPgtype(jc.CreatedAt),
	}, nil
}
