//go:build unit

package booking_test

import (
	"testing"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	p1 = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	p2 = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func sess(date, slot string, provider uuid.UUID, ref string) booking.Session {
	return booking.Session{Date: date, SlotID: slot, ProviderID: provider, ProviderRef: ref}
}

func keys(sessions []booking.Session) []booking.SlotKey {
	out := make([]booking.SlotKey, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.Key())
	}
	return out
}

func TestDiffSessions(t *testing.T) {
	prev := []booking.Session{
		sess("2024-06-10", "S1", p1, "T1"),
		sess("2024-06-11", "S1", p1, "T1"),
		sess("2024-06-12", "S2", p1, "T1"),
	}
	next := []booking.Session{
		sess("2024-06-11", "S1", p1, "T1"),
		sess("2024-06-13", "S1", p2, "T2"),
		sess("2024-06-10", "S1", p1, "T1"),
	}

	d := booking.DiffSessions(prev, next)

	if diff := cmp.Diff([]booking.SlotKey{next[1].Key()}, keys(d.Added)); diff != "" {
		t.Errorf("added mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]booking.SlotKey{prev[2].Key()}, keys(d.Removed)); diff != "" {
		t.Errorf("removed mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]booking.SlotKey{next[0].Key(), next[2].Key()}, keys(d.Retained)); diff != "" {
		t.Errorf("retained mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, d.IsEmpty())
}

func TestDiffSessions_SameProviderDifferentSlotIsNotRetained(t *testing.T) {
	prev := []booking.Session{sess("2024-06-10", "S1", p1, "T1")}
	next := []booking.Session{sess("2024-06-10", "S1", p2, "T2")}

	d := booking.DiffSessions(prev, next)

	assert.Len(t, d.Added, 1)
	assert.Len(t, d.Removed, 1)
	assert.Empty(t, d.Retained)
}

func TestDetectConflicts(t *testing.T) {
	snap := booking.NewSnapshot()
	snap.Merge(map[string]booking.DaySummary{
		"2024-06-10": {BookedSlots: map[string][]string{"T1": {"S1"}}},
	})
	snap.Merge(map[string]booking.DaySummary{
		"2024-06-10": {BookedSlots: map[string][]string{"T2": {"S3"}}},
	})

	requested := []booking.Session{
		sess("2024-06-10", "S1", p1, "T1"),
		sess("2024-06-10", "S2", p1, "T1"),
		sess("2024-06-10", "S1", p2, "T2"),
		sess("2024-06-10", "S3", p2, "T2"),
		sess("2024-06-10", "S2", p1, "T1"),
	}

	got := booking.DetectConflicts(requested, snap)

	want := []booking.Conflict{
		{Date: "2024-06-10", SlotID: "S1", ProviderID: p1},
		{Date: "2024-06-10", SlotID: "S3", ProviderID: p2},
		{Date: "2024-06-10", SlotID: "S2", ProviderID: p1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("conflicts mismatch (-want +got):\n%s", diff)
	}
}

func TestConflictError_IsConflictKind(t *testing.T) {
	err := errs.Wrap(booking.NewConflictError([]booking.Conflict{{Date: "2024-06-10", SlotID: "S1", ProviderID: p1}}), "create booking")

	assert.True(t, errs.Is(err, errs.ErrConflict))
	assert.True(t, errs.Is(err, booking.ErrSlotConflict))
	assert.Equal(t, "ConflictError", errs.Kind(err))
}

func TestRangesByProvider(t *testing.T) {
	order, ranges := booking.RangesByProvider([]booking.Session{
		sess("2024-06-12", "S1", p1, ""),
		sess("2024-06-10", "S1", p2, ""),
		sess("2024-06-09", "S1", p1, ""),
		sess("2024-06-15", "S2", p1, ""),
	})

	assert.Equal(t, []uuid.UUID{p1, p2}, order)
	assert.Equal(t, booking.DateRange{From: "2024-06-09", To: "2024-06-15"}, ranges[p1])
	assert.Equal(t, booking.DateRange{From: "2024-06-10", To: "2024-06-10"}, ranges[p2])
}

func TestValidSessions(t *testing.T) {
	got := booking.ValidSessions([]booking.Session{
		sess("2024-06-10", "S1", p1, ""),
		sess("", "S1", p1, ""),
		sess("2024-06-10", "", p1, ""),
		sess("10/06/2024", "S1", p1, ""),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "2024-06-10", got[0].Date)
}

func newBooking(t *testing.T, sessions ...booking.Session) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking("APT000001", booking.Details{
		PackageID:     uuid.New(),
		PatientID:     uuid.New(),
		TherapyTypeID: uuid.New(),
		ProviderID:    p1,
	}, sessions, time.Now())
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("requires sessions", func(t *testing.T) {
		_, err := booking.NewBooking("APT000001", booking.Details{}, nil, time.Now())
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("assigns ids and clears check-in", func(t *testing.T) {
		in := sess("2024-06-10", "S1", p1, "T1")
		in.CheckedIn = true

		b := newBooking(t, in)

		got := b.Sessions()
		require.Len(t, got, 1)
		assert.NotEqual(t, uuid.Nil, got[0].ID)
		assert.False(t, got[0].CheckedIn)
		assert.Equal(t, booking.StatusScheduled, b.Details().Status)
	})
}

func TestBooking_CheckInIsIdempotent(t *testing.T) {
	b := newBooking(t, sess("2024-06-10", "S1", p1, "T1"))
	id := b.Sessions()[0].ID
	at := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	already, err := b.CheckIn(id, at)
	require.NoError(t, err)
	assert.False(t, already)

	already, err = b.CheckIn(id, at.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, already)

	s, ok := b.Session(id)
	require.True(t, ok)
	assert.True(t, s.CheckedIn)
	require.NotNil(t, s.CheckedInAt)
	assert.Equal(t, at, *s.CheckedInAt)
}

func TestBooking_CheckInUnknownSession(t *testing.T) {
	b := newBooking(t, sess("2024-06-10", "S1", p1, "T1"))

	_, err := b.CheckIn(uuid.New(), time.Now())

	assert.True(t, errs.Is(err, booking.ErrSessionNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestBooking_ReplaceCarriesCheckInForward(t *testing.T) {
	b := newBooking(t,
		sess("2024-06-10", "S1", p1, "T1"),
		sess("2024-06-11", "S1", p1, "T1"),
	)
	kept := b.Sessions()[0]
	_, err := b.CheckIn(kept.ID, time.Now())
	require.NoError(t, err)

	diff, err := b.Replace(b.Details(), []booking.Session{
		sess("2024-06-10", "S1", p1, "T1"),
		sess("2024-06-12", "S2", p1, "T1"),
	}, time.Now())
	require.NoError(t, err)

	got := b.Sessions()
	require.Len(t, got, 2)
	assert.Equal(t, kept.ID, got[0].ID)
	assert.True(t, got[0].CheckedIn)
	assert.False(t, got[1].CheckedIn)
	assert.NotEqual(t, uuid.Nil, got[1].ID)

	require.Len(t, diff.Added, 1)
	assert.Equal(t, "2024-06-12", diff.Added[0].Date)
	require.Len(t, diff.Removed, 1)
	assert.Equal(t, "2024-06-11", diff.Removed[0].Date)
}

func TestBooking_ReplaceRejectsRepeatedSlot(t *testing.T) {
	b := newBooking(t,
		sess("2024-06-10", "S1", p1, "T1"),
		sess("2024-06-11", "S1", p1, "T1"),
	)
	before := b.Sessions()
	held := sess("2024-06-10", "S1", p1, "T1")

	_, err := b.Replace(b.Details(), []booking.Session{held, held}, time.Now())

	require.Error(t, err)
	assert.True(t, errs.Is(err, booking.ErrSlotConflict))
	var conflict *booking.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []booking.Conflict{{Date: "2024-06-10", SlotID: "S1", ProviderID: p1}}, conflict.Conflicts)
	if diff := cmp.Diff(before, b.Sessions()); diff != "" {
		t.Errorf("sessions changed on rejected replace (-want +got):\n%s", diff)
	}
}

func TestNewBooking_RejectsRepeatedSlot(t *testing.T) {
	s := sess("2024-06-10", "S1", p1, "T1")

	_, err := booking.NewBooking("APT000001", booking.Details{}, []booking.Session{s, s}, time.Now())

	assert.True(t, errs.Is(err, errs.ErrConflict))
}

func TestDuplicateSessions(t *testing.T) {
	got := booking.DuplicateSessions([]booking.Session{
		sess("2024-06-10", "S1", p1, "T1"),
		sess("2024-06-10", "S1", p2, "T2"),
		sess("2024-06-10", "S1", p1, "T1"),
		sess("2024-06-10", "S1", p1, "T1"),
	})

	want := []booking.Conflict{
		{Date: "2024-06-10", SlotID: "S1", ProviderID: p1},
		{Date: "2024-06-10", SlotID: "S1", ProviderID: p1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("duplicates mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanSessions(t *testing.T) {
	prev := []booking.Session{
		sess("2024-06-10", "S1", p1, "T1"),
		sess("2024-06-11", "S1", p1, "T1"),
	}
	next := []booking.Session{
		sess("2024-06-10", "S1", p1, "T1"),
		sess("2024-06-12", "S2", p1, "T1"),
	}

	testCases := []struct {
		name         string
		from, to     booking.Status
		wantAdded    []booking.SlotKey
		wantRemoved  []booking.SlotKey
		wantRetained []booking.SlotKey
	}{
		{
			name:         "both claim",
			from:         booking.StatusScheduled,
			to:           booking.StatusCompleted,
			wantAdded:    keys(next[1:]),
			wantRemoved:  keys(prev[1:]),
			wantRetained: keys(next[:1]),
		},
		{
			name:        "cancelling gives up every slot",
			from:        booking.StatusScheduled,
			to:          booking.StatusCancelled,
			wantRemoved: keys(prev),
		},
		{
			name:      "reinstating claims every slot again",
			from:      booking.StatusCancelled,
			to:        booking.StatusScheduled,
			wantAdded: keys(next),
		},
		{
			name:         "staying cancelled claims nothing",
			from:         booking.StatusCancelled,
			to:           booking.StatusCancelled,
			wantRetained: keys(next),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := booking.PlanSessions(prev, tc.from, next, tc.to)

			assert.Equal(t, tc.wantAdded, emptyAsNil(keys(d.Added)))
			assert.Equal(t, tc.wantRemoved, emptyAsNil(keys(d.Removed)))
			assert.Equal(t, tc.wantRetained, emptyAsNil(keys(d.Retained)))
		})
	}
}

func emptyAsNil(k []booking.SlotKey) []booking.SlotKey {
	if len(k) == 0 {
		return nil
	}
	return k
}

func TestBooking_ReplaceToCancelledReleasesAllSlots(t *testing.T) {
	b := newBooking(t,
		sess("2024-06-10", "S1", p1, "T1"),
		sess("2024-06-11", "S1", p1, "T1"),
	)
	d := b.Details()
	d.Status = booking.StatusCancelled

	diff, err := b.Replace(d, b.Sessions(), time.Now())

	require.NoError(t, err)
	assert.Empty(t, diff.Added)
	assert.Len(t, diff.Removed, 2)
	assert.Equal(t, booking.StatusCancelled, b.Details().Status)
}

func TestParseStatus(t *testing.T) {
	s, err := booking.ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusScheduled, s)

	_, err = booking.ParseStatus("archived")
	assert.True(t, errs.Is(err, booking.ErrInvalidStatus))

	assert.True(t, booking.StatusCompleted.Claims())
	assert.False(t, booking.StatusCancelled.Claims())
}
