package store

import (
	"context"

	"github.com/maxim-ist/mcp-bear/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository reads notes and tags from the Bear store. It never writes.
type NoteRepository interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	ListArchivedNotes(ctx context.Context) ([]models.Note, error)
	FindNotesContaining(ctx context.Context, text string) ([]models.Note, error)
	// GetNote returns nil without error when no note has the given id.
	GetNote(ctx context.Context, id string) (*models.Note, error)
	ListTags(ctx context.Context) ([]string, error)
	FindNotesByTag(ctx context.Context, tag string) ([]models.Note, error)
}

// PathResolver locates the Bear database for a single call.
type PathResolver interface {
	Resolve() (string, error)
}
