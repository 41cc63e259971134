package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wilt/wilt/internal/model"
)

// ErrEntryNotFound is returned when an entry does not exist or belongs to a
// different owner. The two cases are deliberately indistinguishable.
var ErrEntryNotFound = errors.New("entry not found")

// CreateEntry inserts a new entry into the database.
func (r *Repository) CreateEntry(ctx context.Context, entry *model.Entry) error {
	query := `
		INSERT INTO entries (id, owner_id, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.OwnerID,
		entry.Title,
		entry.Content,
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}

	return nil
}

// GetEntry retrieves an entry by id, filtered by owner.
// Entries belonging to other users surface as ErrEntryNotFound.
func (r *Repository) GetEntry(ctx context.Context, id, ownerID string) (*model.Entry, error) {
	query := `
		SELECT id, owner_id, title, content, created_at
		FROM entries
		WHERE id = $1 AND owner_id = $2
	`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return entry, nil
}

// ListEntries retrieves all entries owned by ownerID, newest first.
// ULIDs sort by creation time, so id is a stable tiebreak for equal timestamps.
func (r *Repository) ListEntries(ctx context.Context, ownerID string) ([]*model.Entry, error) {
	query := `
		SELECT id, owner_id, title, content, created_at
		FROM entries
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*model.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// UpdateEntry replaces an entry's title and content, filtered by owner.
// created_at is never touched.
func (r *Repository) UpdateEntry(ctx context.Context, entry *model.Entry) error {
	query := `
		UPDATE entries
		SET title = $3, content = $4
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.OwnerID,
		entry.Title,
		entry.Content,
	)

	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// DeleteEntry permanently removes an entry, filtered by owner.
func (r *Repository) DeleteEntry(ctx context.Context, id, ownerID string) error {
	query := `
		DELETE FROM entries
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// scanEntry scans a single row into an Entry model.
func scanEntry(row pgx.Row) (*model.Entry, error) {
	var entry model.Entry
	err := row.Scan(
		&entry.ID,
		&entry.OwnerID,
		&entry.Title,
		&entry.Content,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
