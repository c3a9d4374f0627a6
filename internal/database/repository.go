package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wellbeing-tracker/internal/utils"
	"wellbeing-tracker/internal/wellbeing"
)

// Repository is the sqlite-backed wellbeing.EntryStore.
type Repository struct {
	Db  *Database
	loc *time.Location
}

func NewRepository(db *Database, loc *time.Location) *Repository {
	return &Repository{Db: db, loc: loc}
}

func (r *Repository) Append(ctx context.Context, entry wellbeing.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	_, err := r.Db.db.ExecContext(ctx, `
		INSERT INTO entries (timestamp, stress, energy, productivity)
		VALUES (?, ?, ?, ?)
	`, utils.FormatTimestamp(entry.Timestamp.In(r.loc)), entry.Stress, entry.Energy, entry.Productivity)
	if err != nil {
		return fmt.Errorf("%w: insert entry: %w", wellbeing.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *Repository) ReadAll(ctx context.Context) ([]wellbeing.Entry, error) {
	rows, err := r.Db.db.QueryContext(ctx, `
		SELECT id, timestamp, stress, energy, productivity
		FROM entries
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: query entries: %w", wellbeing.ErrStorageUnavailable, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	entries := []wellbeing.Entry{}
	for rows.Next() {
		var row EntryRow
		err := rows.Scan(
			&row.ID,
			&row.Timestamp,
			&row.Stress,
			&row.Energy,
			&row.Productivity,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan entry: %w", wellbeing.ErrStorageUnavailable, err)
		}

		entry, err := r.toEntry(row)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", row.ID, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read entries: %w", wellbeing.ErrStorageUnavailable, err)
	}

	return entries, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.Db.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

func (r *Repository) toEntry(row EntryRow) (wellbeing.Entry, error) {
	ts, err := utils.ParseTimestamp(row.Timestamp, r.loc)
	if err != nil {
		return wellbeing.Entry{}, err
	}
	entry := wellbeing.Entry{
		Timestamp:    ts,
		Stress:       wellbeing.Rating(row.Stress),
		Energy:       wellbeing.Rating(row.Energy),
		Productivity: wellbeing.Rating(row.Productivity),
	}
	return entry, entry.Validate()
}
