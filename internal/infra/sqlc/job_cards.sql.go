package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createJobCard = `
INSERT INTO job_cards (
  id, business_id, customer_id, vehicle_id, odometer_reading, issue_description,
  service_type, priority, services, deal_id, deal_code, deal_applied,
  subtotal_cents, discount_cents, total_payable_cents, payment_status,
  notes, technical_remarks, created_at
) VALUES (
  $1, $2, $3, $4, $5, $6,
  $7, $8, $9, $10, $11, $12,
  $13, $14, $15, $16,
  $17, $18, $19
)
`

type CreateJobCardParams struct {
	ID                uuid.UUID
	BusinessID        uuid.UUID
	CustomerID        uuid.UUID
	VehicleID         uuid.UUID
	OdometerReading   pgtype.Int4
	IssueDescription  pgtype.Text
	ServiceType       string
	Priority          string
	Services          []byte
	DealID            pgtype.UUID
	DealCode          pgtype.Text
	DealApplied       bool
	SubtotalCents     int64
	DiscountCents     int64
	TotalPayableCents int64
	PaymentStatus     string
	Notes             pgtype.Text
	TechnicalRemarks  pgtype.Text
	CreatedAt         pgtype.Timestamptz
}

func (q *Queries) CreateJobCard(ctx context.Context, db DBTX, arg CreateJobCardParams) error {
	_, err := db.Exec(ctx, createJobCard,
		arg.ID,
		arg.BusinessID,
		arg.CustomerID,
		arg.VehicleID,
		arg.OdometerReading,
		arg.IssueDescription,
		arg.ServiceType,
		arg.Priority,
		arg.Services,
		arg.DealID,
		arg.DealCode,
		arg.DealApplied,
		arg.SubtotalCents,
		arg.DiscountCents,
		arg.TotalPayableCents,
		arg.PaymentStatus,
		arg.Notes,
		arg.TechnicalRemarks,
		arg.CreatedAt,
	)
	return err
}
