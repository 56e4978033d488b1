package service

import (
	"context"
	"fmt"

	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/internal/validators"
	"github.com/maxim-ist/mcp-bear/models"
)

// CommandValidationService rejects malformed command requests before any URI
// is built or any process is started.
type CommandValidationService struct {
	inner     CommandService
	validator validators.Validator
}

func NewCommandValidationService() CommandServiceWrapper {
	return &CommandValidationService{
		validator: validators.NewCommandValidator(),
	}
}

func (v *CommandValidationService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.DispatchResult, error) {
	if err := v.validate(ctx, "CreateNote", req); err != nil {
		return models.DispatchResult{}, err
	}
	return v.inner.CreateNote(ctx, req)
}

func (v *CommandValidationService) AddText(ctx context.Context, req models.AddTextRequest) (models.DispatchResult, error) {
	if err := v.validate(ctx, "AddText", req); err != nil {
		return models.DispatchResult{}, err
	}
	return v.inner.AddText(ctx, req)
}

func (v *CommandValidationService) AddTags(ctx context.Context, req models.AddTagsRequest) (models.DispatchResult, error) {
	req.Tags = models.NormalizeTags(req.Tags)
	if err := v.validate(ctx, "AddTags", req); err != nil {
		return models.DispatchResult{}, err
	}
	return v.inner.AddTags(ctx, req)
}

func (v *CommandValidationService) TrashNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error) {
	if err := v.validate(ctx, "TrashNote", req); err != nil {
		return models.DispatchResult{}, err
	}
	return v.inner.TrashNote(ctx, req)
}

func (v *CommandValidationService) OpenNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error) {
	if err := v.validate(ctx, "OpenNote", req); err != nil {
		return models.DispatchResult{}, err
	}
	return v.inner.OpenNote(ctx, req)
}

func (v *CommandValidationService) ArchiveNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error) {
	if err := v.validate(ctx, "ArchiveNote", req); err != nil {
		return models.DispatchResult{}, err
	}
	return v.inner.ArchiveNote(ctx, req)
}

func (v *CommandValidationService) UnarchiveNote(ctx context.Context, req models.NoteRequest) (models.DispatchResult, error) {
	if err := v.validate(ctx, "UnarchiveNote", req); err != nil {
		return models.DispatchResult{}, err
	}
	return v.inner.UnarchiveNote(ctx, req)
}

func (v *CommandValidationService) Search(ctx context.Context, req models.SearchRequest) (models.DispatchResult, error) {
	if err := v.validate(ctx, "Search", req); err != nil {
		return models.DispatchResult{}, err
	}
	return v.inner.Search(ctx, req)
}

func (v *CommandValidationService) OpenTag(ctx context.Context, req models.TagRequest) (models.DispatchResult, error) {
	req.Tag = models.NormalizeTag(req.Tag)
	if err := v.validate(ctx, "OpenTag", req); err != nil {
		return models.DispatchResult{}, err
	}
	return v.inner.OpenTag(ctx, req)
}

func (v *CommandValidationService) RenameTag(ctx context.Context, req models.RenameTagRequest) (models.DispatchResult, error) {
	req.OldTag = models.NormalizeTag(req.OldTag)
	req.NewTag = models.NormalizeTag(req.NewTag)
	if err := v.validate(ctx, "RenameTag", req); err != nil {
		return models.DispatchResult{}, err
	}
	return v.inner.RenameTag(ctx, req)
}

func (v *CommandValidationService) Wrap(wrapped CommandService) CommandService {
	v.inner = wrapped
	return v
}

func (v *CommandValidationService) validate(ctx context.Context, method string, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", fmt.Sprintf("CommandValidationService.%s", method)).
			Msg("command request rejected")
		return err
	}
	return nil
}
