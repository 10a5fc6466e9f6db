package queries

import (
	"context"

	"appointment-engine/internal/domain/bookingrequest"
	"appointment-engine/internal/domain/editrequest"

	"github.com/google/uuid"
)

type EditRequestQueries interface {
	List(ctx context.Context, bookingID *uuid.UUID, status string) ([]*EditRequestView, error)
}

type EditRequestViewRepo interface {
	FindAll(ctx context.Context, bookingID *uuid.UUID, status string) ([]*EditRequestView, error)
}

type editRequestQueriesImpl struct {
	repo EditRequestViewRepo
}

func NewEditRequestQueries(repo EditRequestViewRepo) EditRequestQueries {
	return &editRequestQueriesImpl{repo: repo}
}

func (q *editRequestQueriesImpl) List(ctx context.Context, bookingID *uuid.UUID, status string) ([]*EditRequestView, error) {
	if status != "" {
		if _, err := editrequest.ParseStatus(status); err != nil {
			return nil, err
		}
	}
	return q.repo.FindAll(ctx, bookingID, status)
}

type BookingRequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingRequestView, error)
	List(ctx context.Context, status string) ([]*BookingRequestView, error)
}

type BookingRequestViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingRequestView, error)
	FindAll(ctx context.Context, status string) ([]*BookingRequestView, error)
}

type bookingRequestQueriesImpl struct {
	repo BookingRequestViewRepo
}

func NewBookingRequestQueries(repo BookingRequestViewRepo) BookingRequestQueries {
	return &bookingRequestQueriesImpl{repo: repo}
}

func (q *bookingRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingRequestView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingRequestQueriesImpl) List(ctx context.Context, status string) ([]*BookingRequestView, error) {
	if status != "" {
		if _, err := bookingrequest.ParseStatus(status); err != nil {
			return nil, err
		}
	}
	return q.repo.FindAll(ctx, status)
}
