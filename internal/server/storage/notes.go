package storage

import (
	"context"

	"github.com/mikawo846/qrnotes/internal/models"
)

//go:generate moq -out notes_mock.go . NoteStorage

// NoteStorage defines interface for note persistence
type NoteStorage interface {
	// CreateNote commits a fully-formed note
	// Returns ErrNoteExists if a note with this id already exists
	CreateNote(ctx context.Context, note *models.Note) error

	// GetNoteByID retrieves note by id
	// Returns ErrNoteNotFound if note doesn't exist
	GetNoteByID(ctx context.Context, id string) (*models.Note, error)

	// ListNotesByOwner retrieves up to limit notes of the owner,
	// newest first
	ListNotesByOwner(ctx context.Context, ownerID int64, limit int) ([]*models.Note, error)

	// CountNotes returns the total number of stored notes
	CountNotes(ctx context.Context) (int64, error)
}
