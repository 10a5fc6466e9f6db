package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const getProvidersByIDs = `
SELECT id, ref_code, name, is_active, created_at
FROM providers
WHERE id = ANY($1::uuid[])
`

func (q *Queries) GetProvidersByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Provider, error) {
	rows, err := db.Query(ctx, getProvidersByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Provider
	for rows.Next() {
		var i Provider
		if err := rows.Scan(&i.ID, &i.RefCode, &i.Name, &i.IsActive, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getPackageByID = `
SELECT id, name, session_count, total_cost_cents, created_at
FROM packages
WHERE id = $1
`

func (q *Queries) GetPackageByID(ctx context.Context, db DBTX, id uuid.UUID) (Package, error) {
	row := db.QueryRow(ctx, getPackageByID, id)
	var i Package
	err := row.Scan(&i.ID, &i.Name, &i.SessionCount, &i.TotalCostCents, &i.CreatedAt)
	return i, err
}

const getTherapyTypeByID = `
SELECT id, name, created_at
FROM therapy_types
WHERE id = $1
`

func (q *Queries) GetTherapyTypeByID(ctx context.Context, db DBTX, id uuid.UUID) (TherapyType, error) {
	row := db.QueryRow(ctx, getTherapyTypeByID, id)
	var i TherapyType
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, err
}
