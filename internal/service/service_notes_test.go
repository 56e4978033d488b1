package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/internal/mock"
	"github.com/maxim-ist/mcp-bear/models"
)

func newTestNoteService(t *testing.T) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	repo := mock.NewMockNoteRepository(gomock.NewController(t))
	return NewNoteService(repo, logger.Nop()), repo
}

func TestNoteService_Delegates(t *testing.T) {
	svc, repo := newTestNoteService(t)
	ctx := context.Background()
	notes := []models.Note{{ID: "N1"}}

	repo.EXPECT().ListNotes(ctx).Return(notes, nil)
	repo.EXPECT().ListArchivedNotes(ctx).Return(nil, nil)
	repo.EXPECT().FindNotesContaining(ctx, "milk").Return(notes, nil)
	repo.EXPECT().ListTags(ctx).Return([]string{"a"}, nil)
	repo.EXPECT().GetNote(ctx, "N1").Return(&notes[0], nil)

	got, err := svc.ListNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, notes, got)

	got, err = svc.ListArchivedNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.SearchNotes(ctx, "milk")
	require.NoError(t, err)
	assert.Equal(t, notes, got)

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tags)

	note, err := svc.GetNote(ctx, "N1")
	require.NoError(t, err)
	assert.Equal(t, "N1", note.ID)
}

func TestNoteService_NotesByTag_StripsSigil(t *testing.T) {
	svc, repo := newTestNoteService(t)
	ctx := context.Background()

	repo.EXPECT().FindNotesByTag(ctx, "work").Return([]models.Note{{ID: "N2"}}, nil).Times(2)

	_, err := svc.NotesByTag(ctx, "#work")
	require.NoError(t, err)
	_, err = svc.NotesByTag(ctx, "work")
	require.NoError(t, err)
}

func TestNoteService_NotesByTag_EmptyTag(t *testing.T) {
	svc, repo := newTestNoteService(t)
	repo.EXPECT().FindNotesByTag(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.NotesByTag(context.Background(), "#")
	assert.ErrorIs(t, err, ErrEmptyTag)
}

func TestNoteService_PropagatesStoreErrors(t *testing.T) {
	svc, repo := newTestNoteService(t)
	storeErr := errors.New("error opening note store: unable to open database file")
	repo.EXPECT().ListNotes(gomock.Any()).Return(nil, storeErr)

	_, err := svc.ListNotes(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
