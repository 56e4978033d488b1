package service

import (
	"context"
	"fmt"

	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/internal/store"
	"github.com/maxim-ist/mcp-bear/models"
)

type noteService struct {
	repository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(repository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		repository: repository,
		logger:     logger,
	}
}

func (s *noteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.repository.ListNotes(ctx)
}

func (s *noteService) ListArchivedNotes(ctx context.Context) ([]models.Note, error) {
	return s.repository.ListArchivedNotes(ctx)
}

func (s *noteService) SearchNotes(ctx context.Context, text string) ([]models.Note, error) {
	return s.repository.FindNotesContaining(ctx, text)
}

func (s *noteService) GetNote(ctx context.Context, id string) (*models.Note, error) {
	return s.repository.GetNote(ctx, id)
}

func (s *noteService) ListTags(ctx context.Context) ([]string, error) {
	return s.repository.ListTags(ctx)
}

// NotesByTag accepts the tag with or without its leading "#".
func (s *noteService) NotesByTag(ctx context.Context, tag string) ([]models.Note, error) {
	normalized := models.NormalizeTag(tag)
	if normalized == "" {
		logger.FromContext(ctx).Warn().
			Str("func", "noteService.NotesByTag").
			Str("tag", tag).
			Msg("empty tag after normalization")
		return nil, fmt.Errorf("%w: %q", ErrEmptyTag, tag)
	}

	return s.repository.FindNotesByTag(ctx, normalized)
}
