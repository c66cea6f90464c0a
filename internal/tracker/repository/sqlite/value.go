package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"time"

	repo "pacekeeper/internal/tracker/repository"
)

// GetValue reads one document. A missing key is not an error.
func (r *implRepository) GetValue(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM kv_values WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetValue"), err)
		return "", repo.ErrFailedToGet
	}
	return value, nil
}

// SetValues upserts every pair inside one transaction.
func (r *implRepository) SetValues(ctx context.Context, opt repo.SetValuesOptions) error {
	const query = `
		INSERT INTO kv_values (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if len(opt.Values) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("SetValues"), err)
		return repo.ErrFailedToSet
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("SetValues"), err)
		return repo.ErrFailedToSet
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	keys := make([]string, 0, len(opt.Values))
	for k := range opt.Values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if _, err := stmt.ExecContext(ctx, k, opt.Values[k], now); err != nil {
			r.l.Errorf(ctx, "%s %s: %v", r.dsn("SetValues"), k, err)
			return repo.ErrFailedToSet
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("SetValues"), err)
		return repo.ErrFailedToSet
	}
	return nil
}

// ListKeys returns stored keys in lexical order.
func (r *implRepository) ListKeys(ctx context.Context, opt repo.ListKeysOptions) ([]string, error) {
	query, args := r.buildListKeysQuery(opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListKeys"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, repo.ErrFailedToList
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListKeys"), err)
		return nil, repo.ErrFailedToList
	}
	return keys, nil
}
