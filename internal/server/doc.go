// Package server runs the MCP front-end over the configured transport.
//
// Without an HTTP address the server speaks MCP over stdin and stdout and
// exits when the client closes stdin. With an address it serves the
// streamable HTTP transport until a stop signal arrives. Either way SIGINT,
// SIGTERM and SIGQUIT trigger a graceful shutdown.
package server
