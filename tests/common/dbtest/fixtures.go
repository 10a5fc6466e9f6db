//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reference rows every e2e test can rely on after ResetDB.
var (
	ProviderID    = uuid.MustParse("7b0e5a1c-1111-4a4a-9a9a-000000000001")
	OtherProvider = uuid.MustParse("7b0e5a1c-1111-4a4a-9a9a-000000000002")
	PatientID     = uuid.MustParse("7b0e5a1c-2222-4a4a-9a9a-000000000001")
	TherapyTypeID = uuid.MustParse("7b0e5a1c-3333-4a4a-9a9a-000000000001")
	PackageID     = uuid.MustParse("7b0e5a1c-4444-4a4a-9a9a-000000000001")
)

const (
	ProviderRef      = "PRV001"
	OtherProviderRef = "PRV002"
	PackageCents     = int64(50000)
	PlatformDealCode = "SPRING10"
)

func CreateProvider(t *testing.T, db DBLike, refCode, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO providers (id, ref_code, name) VALUES ($1, $2, $3)", id, refCode, name)
	require.NoError(t, err)
	return id
}

// CreateDeal inserts an enabled all-scope deal valid through the current year.
func CreateDeal(t *testing.T, db DBLike, businessID *uuid.UUID, code string, percentage float64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	year := time.Now().Year()
	_, err := db.Exec(context.Background(), `
		INSERT INTO deals (id, business_id, name, code, scope, percentage, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, 'all', $5, $6, $7)`,
		id, businessID, code+" offer", code, percentage,
		fmt.Sprintf("%d-01-01", year-1), fmt.Sprintf("%d-12-31", year+1))
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO providers (id, ref_code, name) VALUES
		    ($1, $2, 'Dr. Asha Rao'),
		    ($3, $4, 'Dr. Vikram Shah')
		ON CONFLICT (id) DO NOTHING;
	`, ProviderID, ProviderRef, OtherProvider, OtherProviderRef)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO patients (id, patient_code, name, phone) VALUES ($1, 'PAT000001', 'Meera Iyer', '+910000000001')
		ON CONFLICT (id) DO NOTHING;
	`, PatientID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO therapy_types (id, name) VALUES ($1, 'Physiotherapy')
		ON CONFLICT (id) DO NOTHING;
	`, TherapyTypeID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO packages (id, name, session_count, total_cost_cents) VALUES ($1, 'Physio 5-pack', 5, $2)
		ON CONFLICT (id) DO NOTHING;
	`, PackageID, PackageCents)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

// CountRows is a small helper for asserting write side effects.
func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}
