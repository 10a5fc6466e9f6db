package commands

import (
	"context"
	"time"

	"appointment-engine/internal/domain/booking"

	"github.com/google/uuid"
)

// AvailabilityOracle reports the slots already held for one provider across
// an inclusive date range. It is read outside the write transaction.
type AvailabilityOracle interface {
	Query(ctx context.Context, providerID uuid.UUID, from, to string) (map[string]booking.DaySummary, error)
}

type ProviderDirectory interface {
	// ProviderRefs omits ids it cannot resolve.
	ProviderRefs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// SlotLocker claims slot keys for the span of a check-and-commit. When any
// key is already claimed, those keys are returned and nothing is held.
type SlotLocker interface {
	Acquire(ctx context.Context, keys []booking.SlotKey) (release func(), held []booking.SlotKey, err error)
}

type EventPublisher interface {
	Publish(ctx context.Context, name string, payload any) error
}

// BookingSettings are the deployment-wide defaults bookings are created with.
type BookingSettings struct {
	Location      *time.Location
	PaymentMethod string
}
