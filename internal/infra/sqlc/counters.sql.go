package sqlc

import "context"

const nextCounterValue = `
INSERT INTO counters (name, seq)
VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
RETURNING seq
`

func (q *Queries) NextCounterValue(ctx context.Context, db DBTX, name string) (int64, error) {
	row := db.QueryRow(ctx, nextCounterValue, name)
	var seq int64
	err := row.Scan(&seq)
	return seq, err
}
