package sequence

import (
	"fmt"
	"time"
)

// Counter names one row of the counters table.
type Counter string

const (
	CounterAppointment        Counter = "appointment"
	CounterPayment            Counter = "payment"
	CounterRequest            Counter = "request"
	CounterPatient            Counter = "patient"
	CounterSessionEditRequest Counter = "session-edit-request"
)

func (c Counter) String() string {
	return string(c)
}

func AppointmentID(seq int64) string {
	return fmt.Sprintf("APT%06d", seq)
}

// PaymentID embeds the year the payment was raised in.
func PaymentID(seq int64, at time.Time) string {
	return fmt.Sprintf("INV-%d-%05d", at.Year(), seq)
}

func BookingRequestID(seq int64) string {
	return fmt.Sprintf("REQ-%05d", seq)
}

func SessionEditRequestID(seq int64) string {
	return fmt.Sprintf("SER%05d", seq)
}

func PatientID(seq int64) string {
	return fmt.Sprintf("PAT%05d", seq)
}
