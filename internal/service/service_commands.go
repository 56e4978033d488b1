package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxim-ist/mcp-bear/internal/adapter"
	"github.com/maxim-ist/mcp-bear/internal/config"
	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/models"
)

// DispatchedMessage acknowledges a command accepted by the launcher.
const DispatchedMessage = "Command sent to Bear successfully"

// commandService builds Bear command URIs and hands them to the launcher.
// It does not validate requests; see CommandValidationService.
type commandService struct {
	// scheme is the URL scheme registered by Bear.
	scheme string

	launcher adapter.Launcher

	logger *logger.Logger
}

func NewCommandService(launcher adapter.Launcher, cfg config.Launcher, logger *logger.Logger) CommandService {
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = config.DefaultScheme
	}

	return &commandService{
		scheme:   scheme,
		launcher: launcher,
		logger:   logger,
	}
}

func (s *commandService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.DispatchResult, error) {
	params := newCommandParams().
		optional(paramTitle, req.Title).
		optional(paramText, req.Text).
		list(paramTags, models.NormalizeTags(req.Tags)).
		flag(paramPin, req.Pin).
		flag(paramOpenNote, req.OpenNote)

	return s.dispatch(ctx, actionCreate, params)
}

func (s *commandService) AddText(ctx context.Context, req models.AddTextRequest) (models.DispatchResult, error) {
	params := newCommandParams().
		set(paramID, req.NoteID).
		set(paramText, req.Text).
		set(paramMode, req.Mode).
		flag(paramOpenNote, req.OpenNote)

	return s.dispatch(ctx, actionAddText, params)
}

func (s *commandService) AddTags(ctx context.Context, req models.AddTagsRequest) (models.DispatchResult, error) {
	params := newCommandParams().
		set(paramID, req.NoteID).
		set(paramTags, strings.Join(models.NormalizeTags(req.Tags), listSeparator))

	return s.dispatch(ctx, actionAddTags, params)
}

func (s *commandService) TrashNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error) {
	return s.dispatch(ctx, actionTrash, newCommandParams().set(paramID, req.NoteID))
}

func (s *commandService) OpenNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error) {
	return s.dispatch(ctx, actionOpenNote, newCommandParams().set(paramID, req.NoteID))
}

func (s *commandService) ArchiveNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error) {
	return s.dispatch(ctx, actionArchive, newCommandParams().set(paramID, req.NoteID))
}

func (s *commandService) UnarchiveNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error) {
	return s.dispatch(ctx, actionUnarchive, newCommandParams().set(paramID, req.NoteID))
}

func (s *commandService) Search(ctx context.Context, req models.SearchRequest) (models.DispatchResult, error) {
	return s.dispatch(ctx, actionSearch, newCommandParams().set(paramTerm, req.Term))
}

func (s *commandService) OpenTag(ctx context.Context, req models.TagRequest) (models.DispatchResult, error) {
	return s.dispatch(ctx, actionOpenTag, newCommandParams().set(paramName, models.NormalizeTag(req.Tag)))
}

func (s *commandService) RenameTag(ctx context.Context, req models.RenameTagRequest) (models.DispatchResult, error) {
	params := newCommandParams().
		set(paramName, models.NormalizeTag(req.OldTag)).
		set(paramNewName, models.NormalizeTag(req.NewTag))

	return s.dispatch(ctx, actionRenameTag, params)
}

// dispatch launches the URI once. Launch failures are not retried.
func (s *commandService) dispatch(ctx context.Context, action string, params commandParams) (models.DispatchResult, error) {
	log := logger.FromContext(ctx)
	uri := buildCommandURI(s.scheme, action, params)

	if err := s.launcher.Open(ctx, uri); err != nil {
		log.Err(err).
			Str("func", "commandService.dispatch").
			Str("action", action).
			Msg("failed to send command to Bear")
		return models.DispatchResult{}, fmt.Errorf("failed to send %s command to Bear: %w", action, err)
	}

	log.Info().
		Str("func", "commandService.dispatch").
		Str("action", action).
		Msg("command sent to Bear")

	return models.DispatchResult{Message: DispatchedMessage, URL: uri}, nil
}
