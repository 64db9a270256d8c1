package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikawo846/qrnotes/internal/models"
	"github.com/mikawo846/qrnotes/internal/server/storage"
)

// CreateNote commits a note. Returns storage.ErrNoteExists on id collision.
func (s *Storage) CreateNote(ctx context.Context, note *models.Note) error {
	// Фото сериализуем в JSON-массив, как и исходная схема.
	// NULL означает заметку без фото.
	var photosJSON sql.NullString
	if len(note.Photos) > 0 {
		data, err := json.Marshal(note.Photos)
		if err != nil {
			return fmt.Errorf("failed to marshal photos: %w", err)
		}
		photosJSON = sql.NullString{String: string(data), Valid: true}
	}

	query := `
		INSERT INTO notes (id, title, text, photos_json, created_at, owner_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		note.ID,
		note.Title,
		note.Text,
		photosJSON,
		note.Created.Unix(),
		note.OwnerID,
	)

	if err != nil {
		// Повтор id - нарушение инварианта, никогда не перезаписываем
		if strings.Contains(err.Error(), "UNIQUE constraint failed: notes.id") {
			return storage.ErrNoteExists
		}
		return fmt.Errorf("failed to insert note: %w", err)
	}

	return nil
}

// GetNoteByID retrieves note by id
func (s *Storage) GetNoteByID(ctx context.Context, id string) (*models.Note, error) {
	query := `
		SELECT id, title, text, photos_json, created_at, owner_id
		FROM notes
		WHERE id = ?
	`

	note, err := scanNote(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// ListNotesByOwner retrieves up to limit notes of the owner, newest first
func (s *Storage) ListNotesByOwner(ctx context.Context, ownerID int64, limit int) ([]*models.Note, error) {
	query := `
		SELECT id, title, text, photos_json, created_at, owner_id
		FROM notes
		WHERE owner_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []*models.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// CountNotes returns the total number of stored notes
func (s *Storage) CountNotes(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return count, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	note := &models.Note{}
	var text sql.NullString
	var photosJSON sql.NullString
	var createdAt int64

	err := row.Scan(
		&note.ID,
		&note.Title,
		&text,
		&photosJSON,
		&createdAt,
		&note.OwnerID,
	)
	if err != nil {
		return nil, err
	}

	if text.Valid {
		note.Text = text.String
	}

	note.Photos = []string{}
	if photosJSON.Valid {
		if err := json.Unmarshal([]byte(photosJSON.String), &note.Photos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal photos: %w", err)
		}
	}

	note.Created = time.Unix(createdAt, 0).UTC()

	return note, nil
}
