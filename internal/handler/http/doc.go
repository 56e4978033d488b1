// Package http implements the optional HTTP transport of the server.
//
// It mounts the MCP streamable HTTP endpoint next to two plain endpoints
// (version and health) and wraps every request with tracing and access
// logging middleware.
package http
