package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getActiveDealByCode = `
SELECT id, business_id, name, code, scope, target_id, percentage, enabled, starts_at, ends_at, created_at
FROM deals
WHERE upper(code) = upper($1)
  AND enabled
  AND $3::date BETWEEN starts_at AND ends_at
  AND (business_id IS NULL OR business_id = $2)
ORDER BY business_id NULLS LAST
LIMIT 1
`

type GetActiveDealByCodeParams struct {
	Code       string
	BusinessID pgtype.UUID
	OnDate     pgtype.Date
}

// Business-specific deals win over a platform-wide deal with the same code.
func (q *Queries) GetActiveDealByCode(ctx context.Context, db DBTX, arg GetActiveDealByCodeParams) (Deal, error) {
	row := db.QueryRow(ctx, getActiveDealByCode, arg.Code, arg.BusinessID, arg.OnDate)
	var i Deal
	err := row.Scan(
		&i.ID,
		&i.BusinessID,
		&i.Name,
		&i.Code,
		&i.Scope,
		&i.TargetID,
		&i.Percentage,
		&i.Enabled,
		&i.StartsAt,
		&i.EndsAt,
		&i.CreatedAt,
	)
	return i, err
}
