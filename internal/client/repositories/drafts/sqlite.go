package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/forestadmin/internal/common"
	"github.com/dmitrijs2005/forestadmin/internal/dbx"
	"github.com/google/uuid"
)

// SQLiteRepository implements Repository on the drafts table.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Save(ctx context.Context, d *Draft) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		var id string
		var rev int
		err := tx.QueryRowContext(ctx, `SELECT id, revision FROM drafts WHERE name = ?`, d.Name).Scan(&id, &rev)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			id, rev = uuid.NewString(), 0
		case err != nil:
			return fmt.Errorf("failed to read draft %q: %w", d.Name, err)
		}

		updated := r.now().UTC()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO drafts (name, id, forest_seq_no, revision, payload, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				forest_seq_no = excluded.forest_seq_no,
				revision = excluded.revision,
				payload = excluded.payload,
				updated_at = excluded.updated_at`,
			d.Name, id, d.ForestSeqNo, rev+1, d.Payload, updated.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to upsert draft %q: %w", d.Name, err)
		}

		d.ID, d.Revision, d.UpdatedAt = id, rev+1, updated
		return nil
	})
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) (*Draft, error) {
	var d Draft
	var updated string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, forest_seq_no, revision, payload, updated_at FROM drafts WHERE name = ?`, name).
		Scan(&d.ID, &d.Name, &d.ForestSeqNo, &d.Revision, &d.Payload, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft %q: %w", name, err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("draft %q: bad timestamp: %w", name, err)
	}
	return &d, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]Draft, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, forest_seq_no, revision, updated_at FROM drafts ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var out []Draft
	for rows.Next() {
		var d Draft
		var updated string
		if err := rows.Scan(&d.ID, &d.Name, &d.ForestSeqNo, &d.Revision, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		if d.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
			return nil, fmt.Errorf("draft %q: bad timestamp: %w", d.Name, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete draft %q: %w", name, err)
	}
	return nil
}
