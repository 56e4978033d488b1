package http

import (
	"net/http"

	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/internal/service"
)

// IDGenerator produces trace ids for requests that arrive without one.
type IDGenerator interface {
	Generate() string
}

type Handler struct {
	appInfo service.AppInfoService
	mcp     http.Handler
	ids     IDGenerator

	logger *logger.Logger
}

// NewHandler returns the HTTP handler. mcp serves the MCP endpoint.
func NewHandler(appInfo service.AppInfoService, mcp http.Handler, ids IDGenerator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		appInfo: appInfo,
		mcp:     mcp,
		ids:     ids,
		logger:  logger,
	}
}
