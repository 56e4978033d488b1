package service

import (
	"context"

	"github.com/maxim-ist/mcp-bear/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService answers read operations from the Bear store.
// Absence is never an error: empty lists and a nil note are valid results.
type NoteService interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	ListArchivedNotes(ctx context.Context) ([]models.Note, error)
	SearchNotes(ctx context.Context, text string) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (*models.Note, error)
	ListTags(ctx context.Context) ([]string, error)
	NotesByTag(ctx context.Context, tag string) ([]models.Note, error)
}

// CommandService turns write operations into Bear command URIs and hands
// them to the launcher. A successful result only means the launcher
// accepted the URI.
type CommandService interface {
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.DispatchResult, error)
	AddText(ctx context.Context, req models.AddTextRequest) (models.DispatchResult, error)
	AddTags(ctx context.Context, req models.AddTagsRequest) (models.DispatchResult, error)
	TrashNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error)
	OpenNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error)
	ArchiveNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error)
	UnarchiveNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error)
	Search(ctx context.Context, req models.SearchRequest) (models.DispatchResult, error)
	OpenTag(ctx context.Context, req models.TagRequest) (models.DispatchResult, error)
	RenameTag(ctx context.Context, req models.RenameTagRequest) (models.DispatchResult, error)
}

// AppInfoService reports the identity the server advertises to clients.
type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
