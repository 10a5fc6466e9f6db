// Package sqlc holds the typed query layer. It follows sqlc's
// emit_methods_with_db_argument layout: Queries is stateless and every method
// receives the DBTX to run on, so the same value serves the pool and a tx.
package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

func New() *Queries {
	return &Queries{}
}

type Queries struct{}
