package store

import (
	"github.com/maxim-ist/mcp-bear/internal/config"
	"github.com/maxim-ist/mcp-bear/internal/logger"
)

// Storages groups the read-only repositories of the server.
type Storages struct {
	NoteRepository NoteRepository
}

func NewStorages(cfg config.Storage, log *logger.Logger) *Storages {
	return &Storages{
		NoteRepository: NewNoteRepository(NewStorePathResolver(cfg.DB.Path), NewConnectSQLite, log),
	}
}
