package tools

import (
	"github.com/mark3labs/mcp-go/server"
)

const instructions = `Read and write notes in the Bear app on macOS. ` +
	`The get_* tools query Bear's local database and return notes or tags. ` +
	`The other tools send commands to Bear through its URL scheme; a successful ` +
	`result only confirms the command was handed to Bear, so read the note ` +
	`again to observe the change.`

// NewMCPServer builds an MCP server advertising every operation of d as a
// tool.
func NewMCPServer(d Dispatcher, name, version string) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	Register(s, d)

	return s
}
