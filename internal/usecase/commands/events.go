package commands

import (
	"context"
	"log/slog"
	"time"

	"appointment-engine/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingDeleted   = "booking.deleted"
	EventPaymentCollected = "payment.collected"
)

type SessionSlot struct {
	Date       string    `json:"date"`
	SlotID     string    `json:"slotId"`
	ProviderID uuid.UUID `json:"providerId"`
}

type BookingEvent struct {
	BookingID     uuid.UUID     `json:"bookingId"`
	AppointmentID string        `json:"appointmentId"`
	PatientID     uuid.UUID     `json:"patientId"`
	Added         []SessionSlot `json:"added,omitempty"`
	Removed       []SessionSlot `json:"removed,omitempty"`
	OccurredAt    time.Time     `json:"occurredAt"`
}

type PaymentEvent struct {
	BookingID     uuid.UUID `json:"bookingId"`
	AppointmentID string    `json:"appointmentId"`
	PaymentID     uuid.UUID `json:"paymentId"`
	PaymentCode   string    `json:"paymentCode"`
	AmountCents   int64     `json:"amountCents"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func slotsOf(sessions []booking.Session) []SessionSlot {
	out := make([]SessionSlot, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, SessionSlot{Date: s.Date, SlotID: s.SlotID, ProviderID: s.ProviderID})
	}
	return out
}

// publish runs after commit. A broker failure is logged and never undoes the
// committed write.
func publish(ctx context.Context, p EventPublisher, name string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, name, payload); err != nil {
		slog.Warn("failed to publish event", "event", name, "error", err.Error())
	}
}
