package readstore

import (
	"context"

	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/editrequest"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EditRequestViewQueries interface {
	ListSessionEditRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSessionEditRequestsParams) ([]sqlc.SessionEditRequest, error)
}

type EditRequestReadStore struct {
	queries EditRequestViewQueries
	db      sqlc.DBTX
}

func NewEditRequestReadStore(queries EditRequestViewQueries, db sqlc.DBTX) *EditRequestReadStore {
	return &EditRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EditRequestReadStore) FindAll(ctx context.Context, bookingID *uuid.UUID, status string) ([]*queries.EditRequestView, error) {
	rows, err := r.queries.ListSessionEditRequests(ctx, r.db, sqlc.ListSessionEditRequestsParams{
		BookingID: pgconv.UUIDPtrToPgtype(bookingID),
		Status:    pgconv.StringToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session edit requests", err)
	}

	result := make([]*queries.EditRequestView, 0, len(rows))
	for _, row := range rows {
		req, err := converter.EditRequestFromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, toEditRequestView(req))
	}
	return result, nil
}

func toEditRequestView(req *editrequest.Request) *queries.EditRequestView {
	changes := make([]queries.SessionChangeView, len(req.Changes()))
	for i, c := range req.Changes() {
		changes[i] = queries.SessionChangeView{
			SessionID: c.SessionID,
			NewDate:   c.NewDate,
			NewSlotID: c.NewSlotID,
		}
	}
	return &queries.EditRequestView{
		ID:        req.ID(),
		RequestID: req.Code(),
		BookingID: req.BookingID(),
		PatientID: req.PatientID(),
		Sessions:  changes,
		Status:    string(req.Status()),
		CreatedAt: req.CreatedAt(),
		UpdatedAt: req.UpdatedAt(),
	}
}

type BookingRequestViewQueries interface {
	GetBookingRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingRequest, error)
	ListBookingRequests(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.BookingRequest, error)
}

type BookingRequestReadStore struct {
	queries BookingRequestViewQueries
	db      sqlc.DBTX
}

func NewBookingRequestReadStore(queries BookingRequestViewQueries, db sqlc.DBTX) *BookingRequestReadStore {
	return &BookingRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingRequestView, error) {
	row, err := r.queries.GetBookingRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, bookingrequest.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to find booking request by ID", err)
	}
	req, err := converter.BookingRequestFromRow(row)
	if err != nil {
		return nil, err
	}
	return toBookingRequestView(req), nil
}

func (r *BookingRequestReadStore) FindAll(ctx context.Context, status string) ([]*queries.BookingRequestView, error) {
	rows, err := r.queries.ListBookingRequests(ctx, r.db, pgconv.StringToPgtype(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests", err)
	}

	result := make([]*queries.BookingRequestView, 0, len(rows))
	for _, row := range rows {
		req, err := converter.BookingRequestFromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, toBookingRequestView(req))
	}
	return result, nil
}

func toBookingRequestView(req *bookingrequest.Request) *queries.BookingRequestView {
	sessions := make([]queries.PreferredSessionView, len(req.Sessions()))
	for i, s := range req.Sessions() {
		sessions[i] = queries.PreferredSessionView{
			Date:      s.Date,
			SlotID:    s.SlotID,
			TimeLabel: s.TimeLabel,
		}
	}
	return &queries.BookingRequestView{
		ID:            req.ID(),
		RequestID:     req.Code(),
		PackageID:     req.PackageID(),
		PatientID:     req.PatientID(),
		TherapyTypeID: req.TherapyTypeID(),
		Sessions:      sessions,
		Remark:        req.Remark(),
		Status:        string(req.Status()),
		BookingID:     req.BookingID(),
		CreatedAt:     req.CreatedAt(),
	}
}
