package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// DefaultBatchSize keeps multi-row inserts well under the Postgres limit of
// 65535 bind parameters for the widest table.
const DefaultBatchSize = 500

// namedExecer is satisfied by *sqlx.DB and *sqlx.Tx.
type namedExecer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func normaliseBatchSize(size int) int {
	if size <= 0 {
		return DefaultBatchSize
	}
	return size
}

// bulkInsert writes rows in chunks using sqlx multi-row named binding and
// returns how many rows were written before any failure.
func bulkInsert[T any](ctx context.Context, exec namedExecer, table, query string, rows []T, batchSize int) (int, error) {
	inserted := 0
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		res, err := exec.NamedExecContext(ctx, query, rows[start:end])
		if err != nil {
			return inserted, fmt.Errorf("bulk insert %s: %w", table, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			affected = int64(end - start)
		}
		inserted += int(affected)
	}
	return inserted, nil
}

func clearTable(ctx context.Context, exec namedExecer, table string) error {
	if _, err := exec.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	return nil
}
