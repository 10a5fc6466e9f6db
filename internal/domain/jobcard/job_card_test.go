//go:build unit

package jobcard_test

import (
	"testing"
	"time"

	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/domain/jobcard"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	lines := []discount.ServiceLine{{
		ServiceID:   uuid.New(),
		SubServices: []discount.SubServiceLine{{SubServiceID: uuid.New(), PriceCents: 2000}},
	}}

	t.Run("defaults priority and payment status", func(t *testing.T) {
		jc, err := jobcard.New(jobcard.Spec{
			BusinessID:  uuid.New(),
			CustomerID:  uuid.New(),
			VehicleID:   uuid.New(),
			ServiceType: "Repair",
			Services:    lines,
		}, nil, time.Now())
		require.NoError(t, err)

		assert.Equal(t, jobcard.PriorityNormal, jc.Priority)
		assert.Equal(t, jobcard.PaymentPending, jc.PaymentStatus)
		assert.False(t, jc.Quote.DealApplied)
		assert.Equal(t, int64(2000), jc.Quote.TotalPayableCents)
	})

	t.Run("rejects unknown service type", func(t *testing.T) {
		_, err := jobcard.New(jobcard.Spec{
			BusinessID:  uuid.New(),
			CustomerID:  uuid.New(),
			VehicleID:   uuid.New(),
			ServiceType: "Wash",
			Services:    lines,
		}, nil, time.Now())
		assert.True(t, errs.Is(err, jobcard.ErrInvalidServiceType))
	})

	t.Run("names missing fields", func(t *testing.T) {
		_, err := jobcard.New(jobcard.Spec{ServiceType: "Repair"}, nil, time.Now())
		assert.Equal(t, []string{"business", "customerId", "vehicleId", "services"}, errs.ValidationFields(err))
	})
}
