package components

import (
	"appointment-engine/internal/infra/readstore"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/infra/uow"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"
	"appointment-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		// Availability
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AvailabilityQueries)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityViewRepo)),
			fx.As(new(commands.AvailabilityOracle)),
			fx.As(new(commands.ProviderDirectory)),
		),
		// Edit requests
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EditRequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewEditRequestReadStore,
			fx.As(new(queries.EditRequestViewRepo)),
		),
		// Booking requests
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingRequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingRequestReadStore,
			fx.As(new(queries.BookingRequestViewRepo)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		NewSnapshotRunner,
	),
)

func NewSnapshotRunner(u shared.UnitOfWork) readstore.SnapshotRunner {
	return u
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
