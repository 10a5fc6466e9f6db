package readstore

import (
	"context"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/discount"
	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/domain/payment"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPaymentNotFound = errs.Sentinel("payment not found", errs.ErrNotFound)

type CommandQueries interface {
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	ListSessionsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingSession, error)
	GetProvidersByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Provider, error)
	GetPaymentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payment, error)
	GetPackageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Package, error)
	GetTherapyTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.TherapyType, error)
	GetActiveDealByCode(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveDealByCodeParams) (sqlc.Deal, error)
	GetSessionEditRequestByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SessionEditRequest, error)
	HasPendingSessionEditRequest(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (bool, error)
	GetBookingRequestByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingRequest, error)
}

// CommandStore loads aggregates for the write side. Row locks are taken when
// db is a transaction and released on its commit or rollback.
type CommandStore struct {
	queries CommandQueries
	db      sqlc.DBTX
}

var _ shared.CommandReads = (*CommandStore)(nil)

func NewCommandStore(queries CommandQueries, db sqlc.DBTX) *CommandStore {
	return &CommandStore{
		queries: queries,
		db:      db,
	}
}

func (s *CommandStore) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := s.queries.GetBookingByIDForUpdate(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}

	sessions, err := s.queries.ListSessionsByBooking(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking sessions", err)
	}

	providerIDs := make([]uuid.UUID, 0, len(sessions))
	seen := make(map[uuid.UUID]struct{}, len(sessions))
	for _, sess := range sessions {
		if _, ok := seen[sess.ProviderID]; ok {
			continue
		}
		seen[sess.ProviderID] = struct{}{}
		providerIDs = append(providerIDs, sess.ProviderID)
	}

	refs := make(map[uuid.UUID]string, len(providerIDs))
	if len(providerIDs) > 0 {
		providers, err := s.queries.GetProvidersByIDs(ctx, s.db, providerIDs)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to resolve session providers", err)
		}
		for _, p := range providers {
			refs[p.ID] = p.RefCode
		}
	}

	return converter.BookingFromRows(row, sessions, refs), nil
}

func (s *CommandStore) PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := s.queries.GetPaymentByIDForUpdate(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, ErrPaymentNotFound
		}
		return nil, infra.WrapRepoErr("failed to load payment", err)
	}
	return converter.PaymentFromRow(row), nil
}

func (s *CommandStore) PackageByID(ctx context.Context, id uuid.UUID) (*shared.PackageSnapshot, error) {
	row, err := s.queries.GetPackageByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, booking.ErrPackageNotFound
		}
		return nil, infra.WrapRepoErr("failed to load package", err)
	}
	return &shared.PackageSnapshot{
		ID:             row.ID,
		Name:           row.Name,
		SessionCount:   int(row.SessionCount),
		TotalCostCents: row.TotalCostCents,
	}, nil
}

func (s *CommandStore) TherapyTypeByID(ctx context.Context, id uuid.UUID) (*shared.TherapyTypeSnapshot, error) {
	row, err := s.queries.GetTherapyTypeByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.NewValidation("therapy type not found", "therapyId")
		}
		return nil, infra.WrapRepoErr("failed to load therapy type", err)
	}
	return &shared.TherapyTypeSnapshot{ID: row.ID, Name: row.Name}, nil
}

func (s *CommandStore) ActiveDeal(ctx context.Context, code string, businessID *uuid.UUID, onDate string) (*discount.Deal, error) {
	code = discount.NormalizeCode(code)
	if code == "" {
		return nil, nil
	}
	day, err := pgconv.DateFromISO(onDate)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.GetActiveDealByCode(ctx, s.db, sqlc.GetActiveDealByCodeParams{
		Code:       code,
		BusinessID: pgconv.UUIDPtrToPgtype(businessID),
		OnDate:     day,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to look up deal", err)
	}
	return converter.DealFromRow(row)
}

func (s *CommandStore) EditRequestByID(ctx context.Context, id uuid.UUID) (*editrequest.Request, error) {
	row, err := s.queries.GetSessionEditRequestByIDForUpdate(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, editrequest.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to load session edit request", err)
	}
	return converter.EditRequestFromRow(row)
}

func (s *CommandStore) HasPendingEditRequest(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	exists, err := s.queries.HasPendingSessionEditRequest(ctx, s.db, bookingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending edit requests", err)
	}
	return exists, nil
}

func (s *CommandStore) BookingRequestByID(ctx context.Context, id uuid.UUID) (*bookingrequest.Request, error) {
	row, err := s.queries.GetBookingRequestByIDForUpdate(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, bookingrequest.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to load booking request", err)
	}
	return converter.BookingRequestFromRow(row)
}
