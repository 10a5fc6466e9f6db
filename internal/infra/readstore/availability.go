package readstore

import (
	"context"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/sqlc"
	"appointment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityQueries interface {
	ListBookedSlotsByProvider(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedSlotsByProviderParams) ([]sqlc.ListBookedSlotsByProviderRow, error)
	ListSlotCapacity(ctx context.Context, db sqlc.DBTX, fromDate, toDate pgtype.Date) ([]sqlc.SlotCapacity, error)
	GetProvidersByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Provider, error)
}

// AvailabilityReadStore answers which slots are already taken. It always
// reads through the pool, never through a caller's transaction.
type AvailabilityReadStore struct {
	queries AvailabilityQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) Query(ctx context.Context, providerID uuid.UUID, from, to string) (map[string]booking.DaySummary, error) {
	fromDate, err := pgconv.DateFromISO(from)
	if err != nil {
		return nil, err
	}
	toDate, err := pgconv.DateFromISO(to)
	if err != nil {
		return nil, err
	}

	rows, err := r.queries.ListBookedSlotsByProvider(ctx, r.db, sqlc.ListBookedSlotsByProviderParams{
		ProviderID: providerID,
		FromDate:   fromDate,
		ToDate:     toDate,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability", err)
	}

	days := make(map[string]booking.DaySummary)
	for _, row := range rows {
		date := pgconv.DateToISO(row.SessionDate)
		day, ok := days[date]
		if !ok {
			day = booking.DaySummary{BookedSlots: make(map[string][]string)}
			days[date] = day
		}
		day.BookedSlots[row.RefCode] = append(day.BookedSlots[row.RefCode], row.SlotID)
	}
	return days, nil
}

func (r *AvailabilityReadStore) SlotCounts(ctx context.Context, from, to string) (map[string]map[string]int, error) {
	fromDate, err := pgconv.DateFromISO(from)
	if err != nil {
		return nil, err
	}
	toDate, err := pgconv.DateFromISO(to)
	if err != nil {
		return nil, err
	}

	rows, err := r.queries.ListSlotCapacity(ctx, r.db, fromDate, toDate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slot capacity", err)
	}

	counts := make(map[string]map[string]int)
	for _, row := range rows {
		date := pgconv.DateToISO(row.SlotDate)
		if counts[date] == nil {
			counts[date] = make(map[string]int)
		}
		counts[date][row.SlotID] = int(row.Booked)
	}
	return counts, nil
}

// ProviderRefs resolves provider ids to their reference codes. Unknown or
// inactive providers are absent from the result.
func (r *AvailabilityReadStore) ProviderRefs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	refs := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}
	rows, err := r.queries.GetProvidersByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to resolve providers", err)
	}
	for _, p := range rows {
		if !p.IsActive {
			continue
		}
		refs[p.ID] = p.RefCode
	}
	return refs, nil
}
