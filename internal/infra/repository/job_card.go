package repository

import (
	"context"

	"appointment-engine/internal/domain/jobcard"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/errs"
)

type JobCardWriteQueries interface {
	CreateJobCard(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateJobCardParams) error
}

type JobCardRepository struct {
	queries JobCardWriteQueries
	db      sqlc.DBTX
}

func NewJobCardRepository(queries JobCardWriteQueries, db sqlc.DBTX) *JobCardRepository {
	return &JobCardRepository{
		queries: queries,
		db:      db,
	}
}

func (r *JobCardRepository) Create(ctx context.Context, tx sqlc.DBTX, jc *jobcard.JobCard) error {
	params, err := converter.JobCardToCreateParams(jc)
	if err != nil {
		return errs.Wrap(err, "failed to encode job card services")
	}
	if err := r.queries.CreateJobCard(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create job card", err)
	}
	return nil
}
