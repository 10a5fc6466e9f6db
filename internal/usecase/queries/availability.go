package queries

import (
	"context"

	"appointment-engine/internal/domain/booking"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	ForProvider(ctx context.Context, providerID uuid.UUID, from, to string) (*AvailabilityView, error)
}

type AvailabilityViewRepo interface {
	Query(ctx context.Context, providerID uuid.UUID, from, to string) (map[string]booking.DaySummary, error)
	// SlotCounts returns the capacity ledger keyed by date then slot id.
	SlotCounts(ctx context.Context, from, to string) (map[string]map[string]int, error)
}

type availabilityQueriesImpl struct {
	repo AvailabilityViewRepo
}

func NewAvailabilityQueries(repo AvailabilityViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) ForProvider(ctx context.Context, providerID uuid.UUID, from, to string) (*AvailabilityView, error) {
	if err := validateRange(from, to, true); err != nil {
		return nil, err
	}

	summaries, err := q.repo.Query(ctx, providerID, from, to)
	if err != nil {
		return nil, err
	}
	counts, err := q.repo.SlotCounts(ctx, from, to)
	if err != nil {
		return nil, err
	}

	days := make(map[string]DayAvailability, len(summaries))
	for date, summary := range summaries {
		days[date] = DayAvailability{BookedSlots: summary.BookedSlots, SlotCounts: counts[date]}
	}
	for date, slots := range counts {
		if _, ok := days[date]; !ok {
			days[date] = DayAvailability{BookedSlots: map[string][]string{}, SlotCounts: slots}
		}
	}

	return &AvailabilityView{
		ProviderID: providerID,
		From:       from,
		To:         to,
		Days:       days,
	}, nil
}
