package discount

import "github.com/google/uuid"

type SubServiceLine struct {
	SubServiceID uuid.UUID
	Name         string
	PriceCents   int64
}

type ServiceLine struct {
	ServiceID   uuid.UUID
	Name        string
	SubServices []SubServiceLine
}

type LineBreakdown struct {
	SubServiceID         uuid.UUID
	Name                 string
	PriceCents           int64
	DiscountCents        int64
	DiscountedPriceCents int64
}

type ServiceBreakdown struct {
	ServiceID            uuid.UUID
	Name                 string
	SubServices          []LineBreakdown
	PriceCents           int64
	DiscountCents        int64
	DiscountedPriceCents int64
}

type Quote struct {
	Services          []ServiceBreakdown
	SubtotalCents     int64
	DiscountCents     int64
	TotalPayableCents int64
	DealApplied       bool
	DealID            *uuid.UUID
	DealCode          string
}

// NewQuote prices every sub-service line and applies deal to the lines its
// scope covers. A nil deal yields a breakdown with zero discount everywhere.
func NewQuote(lines []ServiceLine, deal *Deal) Quote {
	q := Quote{Services: make([]ServiceBreakdown, 0, len(lines))}

	for _, svc := range lines {
		sb := ServiceBreakdown{
			ServiceID:   svc.ServiceID,
			Name:        svc.Name,
			SubServices: make([]LineBreakdown, 0, len(svc.SubServices)),
		}
		for _, sub := range svc.SubServices {
			var off int64
			if deal != nil && deal.covers(svc.ServiceID, sub.SubServiceID) {
				off = deal.discountFor(sub.PriceCents)
			}
			sb.SubServices = append(sb.SubServices, LineBreakdown{
				SubServiceID:         sub.SubServiceID,
				Name:                 sub.Name,
				PriceCents:           sub.PriceCents,
				DiscountCents:        off,
				DiscountedPriceCents: sub.PriceCents - off,
			})
			sb.PriceCents += sub.PriceCents
			sb.DiscountCents += off
		}
		sb.DiscountedPriceCents = sb.PriceCents - sb.DiscountCents

		q.Services = append(q.Services, sb)
		q.SubtotalCents += sb.PriceCents
		q.DiscountCents += sb.DiscountCents
	}

	q.TotalPayableCents = q.SubtotalCents - q.DiscountCents
	if deal != nil {
		id := deal.ID()
		q.DealApplied = true
		q.DealID = &id
		q.DealCode = deal.Code()
	}
	return q
}

// SingleLine models a booking as one service (the therapy) with one
// sub-service (the package) priced at the package total.
func SingleLine(serviceID uuid.UUID, serviceName string, subServiceID uuid.UUID, subServiceName string, priceCents int64) []ServiceLine {
	return []ServiceLine{{
		ServiceID: serviceID,
		Name:      serviceName,
		SubServices: []SubServiceLine{{
			SubServiceID: subServiceID,
			Name:         subServiceName,
			PriceCents:   priceCents,
		}},
	}}
}
