//go:build unit

package discount_test

import (
	"testing"

	"appointment-engine/internal/domain/discount"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeal(t *testing.T, scope string, target *uuid.UUID, pct float64) *discount.Deal {
	t.Helper()
	d, err := discount.NewDeal(discount.DealSpec{
		ID:         uuid.New(),
		Name:       "Spring",
		Code:       "spring10",
		Scope:      scope,
		TargetID:   target,
		Percentage: pct,
		Enabled:    true,
		StartsAt:   "2024-01-01",
		EndsAt:     "2024-12-31",
	})
	require.NoError(t, err)
	return d
}

func TestNewQuote_ServiceScopedDealTouchesOnlyMatchingService(t *testing.T) {
	oilChange := uuid.New()
	brakes := uuid.New()
	lines := []discount.ServiceLine{
		{
			ServiceID: oilChange,
			Name:      "Oil change",
			SubServices: []discount.SubServiceLine{
				{SubServiceID: uuid.New(), Name: "Oil", PriceCents: 5000},
				{SubServiceID: uuid.New(), Name: "Filter", PriceCents: 1500},
			},
		},
		{
			ServiceID: brakes,
			Name:      "Brakes",
			SubServices: []discount.SubServiceLine{
				{SubServiceID: uuid.New(), Name: "Pads", PriceCents: 8000},
			},
		},
	}

	q := discount.NewQuote(lines, newDeal(t, "services", &oilChange, 10))

	require.Len(t, q.Services, 2)
	matched, other := q.Services[0], q.Services[1]

	assert.Equal(t, int64(500), matched.SubServices[0].DiscountCents)
	assert.Equal(t, int64(150), matched.SubServices[1].DiscountCents)
	assert.Equal(t, int64(650), matched.DiscountCents)

	assert.Zero(t, other.DiscountCents)
	assert.Equal(t, other.PriceCents, other.DiscountedPriceCents)
	assert.Equal(t, other.SubServices[0].PriceCents, other.SubServices[0].DiscountedPriceCents)

	assert.Equal(t, int64(14500), q.SubtotalCents)
	assert.Equal(t, int64(650), q.DiscountCents)
	assert.Equal(t, int64(13850), q.TotalPayableCents)
	assert.True(t, q.DealApplied)
	assert.Equal(t, "SPRING10", q.DealCode)
}

func TestNewQuote_Scopes(t *testing.T) {
	svc := uuid.New()
	subA := uuid.New()
	subB := uuid.New()
	lines := []discount.ServiceLine{{
		ServiceID: svc,
		SubServices: []discount.SubServiceLine{
			{SubServiceID: subA, PriceCents: 1000},
			{SubServiceID: subB, PriceCents: 3000},
		},
	}}

	tests := []struct {
		name          string
		deal          func(t *testing.T) *discount.Deal
		wantDiscounts []int64
	}{
		{
			name:          "all discounts every line",
			deal:          func(t *testing.T) *discount.Deal { return newDeal(t, "all", nil, 20) },
			wantDiscounts: []int64{200, 600},
		},
		{
			name:          "subservices discounts only the target",
			deal:          func(t *testing.T) *discount.Deal { return newDeal(t, "subservices", &subB, 20) },
			wantDiscounts: []int64{0, 600},
		},
		{
			name:          "no deal means zero discount",
			deal:          func(t *testing.T) *discount.Deal { return nil },
			wantDiscounts: []int64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := discount.NewQuote(lines, tt.deal(t))

			var got []int64
			for _, l := range q.Services[0].SubServices {
				got = append(got, l.DiscountCents)
			}
			if diff := cmp.Diff(tt.wantDiscounts, got); diff != "" {
				t.Errorf("discounts mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, q.SubtotalCents-q.DiscountCents, q.TotalPayableCents)
		})
	}
}

func TestNewQuote_RoundsHalfUp(t *testing.T) {
	lines := discount.SingleLine(uuid.New(), "Speech", uuid.New(), "10 sessions", 1005)

	q := discount.NewQuote(lines, newDeal(t, "all", nil, 10))

	// 100.5 cents rounds to 101
	assert.Equal(t, int64(101), q.DiscountCents)
	assert.Equal(t, int64(904), q.TotalPayableCents)
}

func TestNewDeal_Validation(t *testing.T) {
	target := uuid.New()
	tests := []struct {
		name    string
		spec    discount.DealSpec
		wantErr error
	}{
		{"unknown scope", discount.DealSpec{Code: "X", Scope: "bundle", StartsAt: "2024-01-01", EndsAt: "2024-01-02"}, discount.ErrInvalidScope},
		{"missing target", discount.DealSpec{Code: "X", Scope: "services", StartsAt: "2024-01-01", EndsAt: "2024-01-02"}, discount.ErrMissingTarget},
		{"percentage above 100", discount.DealSpec{Code: "X", Scope: "services", TargetID: &target, Percentage: 120, StartsAt: "2024-01-01", EndsAt: "2024-01-02"}, discount.ErrInvalidPercentage},
		{"period reversed", discount.DealSpec{Code: "X", Scope: "all", StartsAt: "2024-02-01", EndsAt: "2024-01-01"}, discount.ErrInvalidPeriod},
		{"empty code", discount.DealSpec{Code: "  ", Scope: "all"}, discount.ErrEmptyCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := discount.NewDeal(tt.spec)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeal_ApplicableTo(t *testing.T) {
	business := uuid.New()
	otherBusiness := uuid.New()

	scoped, err := discount.NewDeal(discount.DealSpec{
		BusinessID: &business,
		Code:       "LOCAL",
		Scope:      "all",
		Percentage: 5,
		Enabled:    true,
		StartsAt:   "2024-06-01",
		EndsAt:     "2024-06-30",
	})
	require.NoError(t, err)

	assert.True(t, scoped.ApplicableTo(&business, "2024-06-01"))
	assert.True(t, scoped.ApplicableTo(&business, "2024-06-30"))
	assert.False(t, scoped.ApplicableTo(&business, "2024-07-01"))
	assert.False(t, scoped.ApplicableTo(&otherBusiness, "2024-06-15"))
	assert.False(t, scoped.ApplicableTo(nil, "2024-06-15"))

	platform := newDeal(t, "all", nil, 5)
	assert.True(t, platform.ApplicableTo(nil, "2024-06-15"))
	assert.True(t, platform.ApplicableTo(&otherBusiness, "2024-06-15"))
}
