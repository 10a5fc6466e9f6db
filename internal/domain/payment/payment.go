package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid payment status")
	ErrInvalidAmount = errors.New("payment amount must not exceed total")
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPaid:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

const MethodCash = "cash"

type Payment struct {
	id          uuid.UUID
	code        string
	totalCents  int64
	amountCents int64
	status      Status
	method      string
	paidAt      *time.Time
}

// NewPending creates the payment stub raised alongside a booking. total is the
// undiscounted price and amount what is actually owed.
func NewPending(code string, totalCents, amountCents int64, method string) (*Payment, error) {
	if totalCents < 0 || amountCents < 0 || amountCents > totalCents {
		return nil, ErrInvalidAmount
	}
	if method == "" {
		method = MethodCash
	}
	return &Payment{
		id:          uuid.New(),
		code:        code,
		totalCents:  totalCents,
		amountCents: amountCents,
		status:      StatusPending,
		method:      method,
	}, nil
}

func Reconstruct(id uuid.UUID, code string, totalCents, amountCents int64, status Status, method string, paidAt *time.Time) *Payment {
	return &Payment{
		id:          id,
		code:        code,
		totalCents:  totalCents,
		amountCents: amountCents,
		status:      status,
		method:      method,
		paidAt:      paidAt,
	}
}

// MarkPaid stamps the payment time once. Repeated calls keep the first stamp.
func (p *Payment) MarkPaid(at time.Time) {
	if p.status == StatusPaid {
		return
	}
	p.status = StatusPaid
	p.paidAt = &at
}

func (p *Payment) IsPaid() bool { return p.status == StatusPaid }

func (p *Payment) ID() uuid.UUID      { return p.id }
func (p *Payment) Code() string       { return p.code }
func (p *Payment) TotalCents() int64  { return p.totalCents }
func (p *Payment) AmountCents() int64 { return p.amountCents }
func (p *Payment) Status() Status     { return p.status }
func (p *Payment) Method() string     { return p.method }
func (p *Payment) PaidAt() *time.Time { return p.paidAt }

type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

const StatusCredited = "credited"

// FinanceRecord is the income entry written when a payment is collected.
// PaymentID is the idempotency key: one record per payment.
type FinanceRecord struct {
	PaymentID   uuid.UUID
	Description string
	Type        EntryType
	AmountCents int64
	Status      string
	RecordedAt  time.Time
}

func NewIncome(p *Payment, appointmentID string, at time.Time) FinanceRecord {
	return FinanceRecord{
		PaymentID:   p.ID(),
		Description: fmt.Sprintf("Payment for Booking #%s", appointmentID),
		Type:        EntryIncome,
		AmountCents: p.AmountCents(),
		Status:      StatusCredited,
		RecordedAt:  at,
	}
}
