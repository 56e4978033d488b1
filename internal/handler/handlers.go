package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/maxim-ist/mcp-bear/internal/config"
	"github.com/maxim-ist/mcp-bear/internal/handler/http"
	"github.com/maxim-ist/mcp-bear/internal/handler/tools"
	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/internal/service"
	"github.com/maxim-ist/mcp-bear/internal/utils"
)

// Handlers holds the protocol front-ends built on top of one dispatcher.
// HTTP is nil unless an HTTP address is configured.
type Handlers struct {
	Dispatcher *Dispatcher
	MCP        *server.MCPServer
	HTTP       *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.NoteService == nil || services.CommandService == nil || services.AppInfoService == nil {
		return nil, errServicesAreNotSet
	}

	ids := utils.NewUUIDGenerator()
	dispatcher := NewDispatcher(
		NewRegistry(services.NoteService, services.CommandService),
		ids,
		logger,
	)

	ctx := context.Background()
	mcpServer := tools.NewMCPServer(
		dispatcher,
		services.AppInfoService.GetAppName(ctx),
		services.AppInfoService.GetAppVersion(ctx),
	)

	handlers := &Handlers{
		Dispatcher: dispatcher,
		MCP:        mcpServer,
	}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(
			services.AppInfoService,
			server.NewStreamableHTTPServer(mcpServer, server.WithEndpointPath(http.MCPPath)),
			ids,
			logger,
		)
	}

	return handlers, nil
}
