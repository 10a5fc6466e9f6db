package repository

import (
	"context"

	"appointment-engine/internal/domain/sequence"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/sqlc"
)

type SequenceWriteQueries interface {
	NextCounterValue(ctx context.Context, db sqlc.DBTX, name string) (int64, error)
}

// SequenceRepository hands out counter values. The increment joins the
// caller's transaction and rolls back with it.
type SequenceRepository struct {
	queries SequenceWriteQueries
	db      sqlc.DBTX
}

func NewSequenceRepository(queries SequenceWriteQueries, db sqlc.DBTX) *SequenceRepository {
	return &SequenceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SequenceRepository) Next(ctx context.Context, tx sqlc.DBTX, counter sequence.Counter) (int64, error) {
	seq, err := r.queries.NextCounterValue(ctx, tx, counter.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to advance counter "+counter.String(), err)
	}
	return seq, nil
}
