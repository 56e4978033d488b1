package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MCPPath is where the streamable HTTP MCP endpoint is mounted.
const MCPPath = "/mcp"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/health", h.getHealth)

	// GET opens the event stream, POST carries requests, DELETE ends a session
	router.Handle(MCPPath, h.mcp)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
