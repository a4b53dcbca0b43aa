package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kpdinfo/kpdinfo/pkg/pagination"
	"github.com/kpdinfo/kpdinfo/pkg/repository"
)

type repo struct {
	db     *sql.DB
	retain int
}

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry
	err := s.Scan(
		&e.ID,
		&e.Query,
		&e.NKD4,
		&e.NKDNaziv,
		&e.KPD6,
		&e.Naziv,
		&e.Razlog,
		&e.CreatedAt,
	)
	return e, err
}

const entryColumns = `id, query, nkd_4, nkd_naziv, kpd_6, naziv_proizvoda, razlog_odabira, created_at`

// insert stores a new entry, removing any prior entry with the same query
// and codes, then prunes entries beyond the retention cap. All three steps
// run inside one transaction.
func (r *repo) insert(ctx context.Context, e Entry) (*Entry, error) {
	stored, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Entry, error) {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM query_history
			 WHERE query = $1 AND nkd_4 IS NOT DISTINCT FROM $2 AND kpd_6 IS NOT DISTINCT FROM $3`,
			e.Query, e.NKD4, e.KPD6,
		)
		if err != nil {
			return Entry{}, fmt.Errorf("dedupe history: %w", err)
		}

		e.ID = uuid.New()
		e.CreatedAt = time.Now().UTC()

		_, err = tx.ExecContext(ctx,
			`INSERT INTO query_history (`+entryColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			e.ID, e.Query, e.NKD4, e.NKDNaziv, e.KPD6, e.Naziv, e.Razlog, e.CreatedAt,
		)
		if err != nil {
			return Entry{}, fmt.Errorf("insert history: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`DELETE FROM query_history
			 WHERE id NOT IN (
				SELECT id FROM query_history ORDER BY created_at DESC LIMIT $1
			 )`,
			r.retain,
		)
		if err != nil {
			return Entry{}, fmt.Errorf("prune history: %w", err)
		}

		return e, nil
	})
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *repo) list(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Entry], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM query_history`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count history: %w", err)
	}

	entries, err := repository.QueryMany(ctx, r.db,
		`SELECT `+entryColumns+`
		 FROM query_history
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		[]any{page.PageSize, page.Offset()},
		scanEntry,
	)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	result := pagination.NewPageResult(entries, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) find(ctx context.Context, id uuid.UUID) (*Entry, error) {
	entry, err := repository.QueryOne(ctx, r.db,
		`SELECT `+entryColumns+` FROM query_history WHERE id = $1`,
		[]any{id},
		scanEntry,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find history: %w", err)
	}

	return &entry, nil
}

func (r *repo) delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db,
		`DELETE FROM query_history WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete history: %w", err)
	}

	return nil
}
