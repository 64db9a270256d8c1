package storage

import "errors"

// Common storage errors
var (
	// ErrNoteNotFound indicates that note was not found in storage
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteExists indicates that a note with this id already exists.
	// Ids are generated, so hitting this is an invariant violation,
	// never a reason to overwrite.
	ErrNoteExists = errors.New("note already exists")
)
