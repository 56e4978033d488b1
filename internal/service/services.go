package service

import (
	"github.com/maxim-ist/mcp-bear/internal/adapter"
	"github.com/maxim-ist/mcp-bear/internal/config"
	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	NoteService    NoteService
	CommandService CommandService
}

func NewServices(storages *store.Storages, launcher adapter.Launcher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfo,
		NoteService:    NewNoteService(storages.NoteRepository, logger),
		CommandService: NewCommandValidationService().Wrap(
			NewCommandService(launcher, cfg.Launcher, logger),
		),
	}, nil
}
