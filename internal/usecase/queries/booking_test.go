//go:build unit

package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/queries"
	queriesmock "appointment-engine/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func views(n int) []*queries.BookingView {
	out := make([]*queries.BookingView, n)
	for i := range out {
		out[i] = &queries.BookingView{AppointmentID: fmt.Sprintf("APT%06d", i+1)}
	}
	return out
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("first page returns a cursor when more rows exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		q := queries.NewBookingQueries(repo, clock.NewSystem(), time.UTC)

		repo.EXPECT().FindAll(gomock.Any(), queries.BookingFilter{}, int32(3), int32(0)).Return(views(3), nil)

		rows, next, err := q.List(ctx, queries.BookingFilter{}, nil, 2)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
		require.NotNil(t, next)
		offset, err := queries.DecodeOffsetCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, 2, offset)
	})

	t.Run("cursor resumes at its offset and the last page has none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		q := queries.NewBookingQueries(repo, clock.NewSystem(), time.UTC)

		repo.EXPECT().FindAll(gomock.Any(), gomock.Any(), int32(3), int32(4)).Return(views(1), nil)

		rows, next, err := q.List(ctx, queries.BookingFilter{}, &queries.Cursor{After: queries.EncodeOffsetCursor(4)}, 2)

		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Nil(t, next)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		q := queries.NewBookingQueries(repo, clock.NewSystem(), time.UTC)

		repo.EXPECT().FindAll(gomock.Any(), gomock.Any(), int32(queries.MaxListLimit+1), int32(0)).Return(nil, nil)

		_, _, err := q.List(ctx, queries.BookingFilter{}, nil, 10_000)
		require.NoError(t, err)
	})

	testCases := []struct {
		name    string
		filter  queries.BookingFilter
		cursor  *queries.Cursor
		wantErr error
	}{
		{name: "garbage cursor", cursor: &queries.Cursor{After: "not-a-cursor"}, wantErr: queries.ErrInvalidCursor},
		{name: "reversed range", filter: queries.BookingFilter{From: "2025-03-10", To: "2025-03-01"}, wantErr: queries.ErrInvalidDateRange},
		{name: "malformed date", filter: queries.BookingFilter{From: "10/03/2025"}, wantErr: errs.ErrValidation},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			q := queries.NewBookingQueries(queriesmock.NewMockBookingViewRepo(ctrl), clock.NewSystem(), time.UTC)

			_, _, err := q.List(ctx, tc.filter, tc.cursor, 20)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.wantErr))
		})
	}
}

func TestBookingQueries_ReceptionDesk(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("IST", 5*60*60+30*60)

	t.Run("empty day means today in the clinic's zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		// 20:00 UTC is already the next day in IST
		q := queries.NewBookingQueries(repo, clock.NewFixed(time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)), loc)

		repo.EXPECT().FindForReceptionDesk(gomock.Any(), "2025-03-10").Return(views(2), nil)

		rows, err := q.ReceptionDesk(ctx, "")
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("malformed day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		q := queries.NewBookingQueries(queriesmock.NewMockBookingViewRepo(ctrl), clock.NewSystem(), loc)

		_, err := q.ReceptionDesk(ctx, "yesterday")

		assert.Equal(t, []string{"date"}, errs.ValidationFields(err))
	})
}

func TestBookingQueries_CalendarRequiresRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := queries.NewBookingQueries(queriesmock.NewMockBookingViewRepo(ctrl), clock.NewSystem(), time.UTC)

	_, err := q.Calendar(context.Background(), "", "", nil)

	require.Error(t, err)
	assert.Equal(t, []string{"from", "to"}, errs.ValidationFields(err))
}
