//go:build unit

package queries_test

import (
	"context"
	"testing"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/usecase/queries"
	queriesmock "appointment-engine/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_ForProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := queriesmock.NewMockAvailabilityViewRepo(ctrl)
	q := queries.NewAvailabilityQueries(repo)
	providerID := uuid.New()

	repo.EXPECT().Query(gomock.Any(), providerID, "2025-03-10", "2025-03-12").Return(map[string]booking.DaySummary{
		"2025-03-10": {BookedSlots: map[string][]string{"PRV001": {"s09"}}},
	}, nil)
	repo.EXPECT().SlotCounts(gomock.Any(), "2025-03-10", "2025-03-12").Return(map[string]map[string]int{
		"2025-03-10": {"s09": 2},
		"2025-03-11": {"s10": 1},
	}, nil)

	got, err := q.ForProvider(context.Background(), providerID, "2025-03-10", "2025-03-12")
	require.NoError(t, err)

	want := map[string]queries.DayAvailability{
		"2025-03-10": {BookedSlots: map[string][]string{"PRV001": {"s09"}}, SlotCounts: map[string]int{"s09": 2}},
		"2025-03-11": {BookedSlots: map[string][]string{}, SlotCounts: map[string]int{"s10": 1}},
	}
	if diff := cmp.Diff(want, got.Days); diff != "" {
		t.Errorf("days mismatch (-want +got):\n%s", diff)
	}
}

func TestAvailabilityQueries_RejectsReversedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := queries.NewAvailabilityQueries(queriesmock.NewMockAvailabilityViewRepo(ctrl))

	_, err := q.ForProvider(context.Background(), uuid.New(), "2025-03-12", "2025-03-10")

	require.ErrorIs(t, err, queries.ErrInvalidDateRange)
}
