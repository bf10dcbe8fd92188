package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rosanadeaibes/my-notes/internal/note/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the slice of pgxpool.Pool the repository needs. pgxmock's pool
// mock satisfies it too.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DBTX
}

func NewPostgresNoteRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const noteColumns = "id, title, content, owner_id, created_at, updated_at"

func scanNotes(rows pgx.Rows) ([]domain.Note, error) {
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, note *domain.Note) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO notes (id, title, content, owner_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, note.ID, note.Title, note.Content, note.OwnerID, note.CreatedAt, note.UpdatedAt)

	return err
}

// ListByOwner returns the owner's notes, most recently created first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE owner_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return scanNotes(rows)
}

// SearchByOwner filters the owner's notes to those whose title or content
// contains the query, case-insensitively.
func (r *PostgresRepository) SearchByOwner(ctx context.Context, ownerID, query string) ([]domain.Note, error) {
	sql := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE owner_id = $1
		  AND (title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, sql, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}

	return scanNotes(rows)
}

// GetByID returns (nil, nil) when no note with that id exists. The lookup is
// by id alone, with no owner filter.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var n domain.Note
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get note by id: %w", err)
	}

	return &n, nil
}

func (r *PostgresRepository) Update(ctx context.Context, note *domain.Note) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notes
		SET title = $2, content = $3, updated_at = $4
		WHERE id = $1
	`, note.ID, note.Title, note.Content, note.UpdatedAt)

	return err
}

// Delete reports whether a row was actually removed.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
