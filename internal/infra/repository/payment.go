package repository

import (
	"context"

	"appointment-engine/internal/domain/payment"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	UpdatePaymentAmounts(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentAmountsParams) (int64, error)
	MarkPaymentPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPaymentPaidParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	err := r.queries.CreatePayment(ctx, tx, sqlc.CreatePaymentParams{
		ID:          p.ID(),
		PaymentCode: p.Code(),
		TotalCents:  p.TotalCents(),
		AmountCents: p.AmountCents(),
		Status:      p.Status().String(),
		Method:      p.Method(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

// Reprice only touches payments still pending. A collected payment keeps the
// amount it was collected at.
func (r *PaymentRepository) Reprice(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, totalCents, amountCents int64) error {
	_, err := r.queries.UpdatePaymentAmounts(ctx, tx, sqlc.UpdatePaymentAmountsParams{
		ID:          id,
		TotalCents:  totalCents,
		AmountCents: amountCents,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reprice payment", err)
	}
	return nil
}

func (r *PaymentRepository) MarkPaid(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	affected, err := r.queries.MarkPaymentPaid(ctx, tx, sqlc.MarkPaymentPaidParams{
		ID:     p.ID(),
		PaidAt: pgconv.TimePtrToPgtype(p.PaidAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark payment paid", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

type FinanceWriteQueries interface {
	InsertFinanceRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertFinanceRecordParams) (int64, error)
}

type FinanceRepository struct {
	queries FinanceWriteQueries
	db      sqlc.DBTX
}

func NewFinanceRepository(queries FinanceWriteQueries, db sqlc.DBTX) *FinanceRepository {
	return &FinanceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FinanceRepository) RecordIncome(ctx context.Context, tx sqlc.DBTX, rec payment.FinanceRecord) (bool, error) {
	affected, err := r.queries.InsertFinanceRecord(ctx, tx, sqlc.InsertFinanceRecordParams{
		PaymentID:   rec.PaymentID,
		Description: rec.Description,
		EntryType:   string(rec.Type),
		AmountCents: rec.AmountCents,
		Status:      rec.Status,
		RecordedAt:  pgconv.TimeToPgtype(rec.RecordedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record income", err)
	}
	return affected > 0, nil
}
