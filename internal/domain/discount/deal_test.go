//go:build unit

package discount_test

import (
	"math"
	"testing"

	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDealSpec() discount.DealSpec {
	target := uuid.New()
	return discount.DealSpec{
		ID:         uuid.New(),
		Name:       "Spring",
		Code:       " spring10 ",
		Scope:      string(discount.ScopeServices),
		TargetID:   &target,
		Percentage: 12.5,
		Enabled:    true,
		StartsAt:   "2026-03-01",
		EndsAt:     "2026-03-31",
	}
}

func TestNewDeal_RejectsInvalidSpecAsValidation(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(*discount.DealSpec)
		expectErr error
	}{
		{
			name:      "blank code",
			mutate:    func(s *discount.DealSpec) { s.Code = "   " },
			expectErr: discount.ErrEmptyCode,
		},
		{
			name:      "unknown scope",
			mutate:    func(s *discount.DealSpec) { s.Scope = "everything" },
			expectErr: discount.ErrInvalidScope,
		},
		{
			name:      "scoped deal without target",
			mutate:    func(s *discount.DealSpec) { s.TargetID = nil },
			expectErr: discount.ErrMissingTarget,
		},
		{
			name:      "percentage above 100",
			mutate:    func(s *discount.DealSpec) { s.Percentage = 100.5 },
			expectErr: discount.ErrInvalidPercentage,
		},
		{
			name:      "percentage is NaN",
			mutate:    func(s *discount.DealSpec) { s.Percentage = math.NaN() },
			expectErr: discount.ErrInvalidPercentage,
		},
		{
			name:      "ends before it starts",
			mutate:    func(s *discount.DealSpec) { s.EndsAt = "2026-02-28" },
			expectErr: discount.ErrInvalidPeriod,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec := validDealSpec()
			tc.mutate(&spec)

			deal, err := discount.NewDeal(spec)

			assert.Nil(t, deal)
			require.ErrorIs(t, err, tc.expectErr)
			assert.Equal(t, "ValidationError", errs.Kind(err))
		})
	}
}

func TestNewDeal_NormalizesCode(t *testing.T) {
	deal, err := discount.NewDeal(validDealSpec())

	require.NoError(t, err)
	assert.Equal(t, "SPRING10", deal.Code())
	assert.Equal(t, 12.5, deal.Percentage())
}
