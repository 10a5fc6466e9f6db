package db

import (
	"context"
	"log/slog"

	"appointment-engine/internal/pkg/errs"
	"appointment-engine/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded migrations through goose. tableName overrides
// goose's version table when non-empty.
func Migrate(ctx context.Context, pool *pgxpool.Pool, tableName string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errs.Wrap(err, "set goose dialect")
	}
	if tableName != "" {
		goose.SetTableName(tableName)
	}

	// goose works on *sql.DB; closing it leaves the pool untouched
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("failed to close migration connection", "error", err.Error())
		}
	}()

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errs.Wrap(err, "apply migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return errs.Wrap(err, "read migration version")
	}
	slog.Info("database migrations applied", "version", version)
	return nil
}
