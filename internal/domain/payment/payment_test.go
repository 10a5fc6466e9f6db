//go:build unit

package payment_test

import (
	"testing"
	"time"

	"appointment-engine/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPending(t *testing.T) {
	t.Run("defaults to cash and pending", func(t *testing.T) {
		p, err := payment.NewPending("INV-2024-00001", 10000, 9000, "")
		require.NoError(t, err)
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, payment.MethodCash, p.Method())
		assert.Nil(t, p.PaidAt())
	})

	t.Run("rejects amount above total", func(t *testing.T) {
		_, err := payment.NewPending("INV-2024-00001", 100, 200, "cash")
		assert.ErrorIs(t, err, payment.ErrInvalidAmount)
	})
}

func TestMarkPaid_KeepsFirstStamp(t *testing.T) {
	p, err := payment.NewPending("INV-2024-00001", 10000, 10000, "cash")
	require.NoError(t, err)

	first := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	p.MarkPaid(first)
	p.MarkPaid(first.Add(time.Hour))

	assert.True(t, p.IsPaid())
	require.NotNil(t, p.PaidAt())
	assert.Equal(t, first, *p.PaidAt())
}

func TestNewIncome(t *testing.T) {
	p, err := payment.NewPending("INV-2024-00001", 10000, 9000, "cash")
	require.NoError(t, err)
	at := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	rec := payment.NewIncome(p, "APT000042", at)

	assert.Equal(t, p.ID(), rec.PaymentID)
	assert.Equal(t, "Payment for Booking #APT000042", rec.Description)
	assert.Equal(t, payment.EntryIncome, rec.Type)
	assert.Equal(t, int64(9000), rec.AmountCents)
	assert.Equal(t, payment.StatusCredited, rec.Status)
}
