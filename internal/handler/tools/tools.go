package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/maxim-ist/mcp-bear/models"
)

// Dispatcher runs named operations and reports the catalog.
type Dispatcher interface {
	Operations() []models.OperationDescriptor
	Dispatch(ctx context.Context, name string, raw map[string]any) models.Response
}

// NewTool derives the MCP tool definition from an operation descriptor.
func NewTool(desc models.OperationDescriptor) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(desc.Description),
		mcp.WithReadOnlyHintAnnotation(desc.ReadOnly),
		mcp.WithDestructiveHintAnnotation(desc.Destructive),
		mcp.WithIdempotentHintAnnotation(desc.Executor == models.ExecutorReader),
		// commands reach the Bear app outside this process
		mcp.WithOpenWorldHintAnnotation(desc.Executor == models.ExecutorBuilder),
	}

	for _, arg := range desc.Args {
		opts = append(opts, argumentOption(arg))
	}

	return mcp.NewTool(desc.Name, opts...)
}

func argumentOption(arg models.ArgSpec) mcp.ToolOption {
	props := []mcp.PropertyOption{mcp.Description(arg.Description)}
	if arg.Required {
		props = append(props, mcp.Required())
	}

	switch arg.Kind {
	case models.ArgBool:
		if def, ok := arg.Default.(bool); ok {
			props = append(props, mcp.DefaultBool(def))
		}
		return mcp.WithBoolean(arg.Name, props...)

	case models.ArgStringList:
		props = append(props, mcp.Items(map[string]any{"type": "string"}))
		return mcp.WithArray(arg.Name, props...)

	case models.ArgEnum:
		props = append(props, mcp.Enum(arg.Enum...))
		fallthrough

	default:
		if def, ok := arg.Default.(string); ok {
			props = append(props, mcp.DefaultString(def))
		}
		return mcp.WithString(arg.Name, props...)
	}
}

// NewToolHandler forwards calls of the named tool to the dispatcher.
func NewToolHandler(d Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp := d.Dispatch(ctx, name, req.GetArguments())

		payload, err := json.Marshal(resp)
		if err != nil {
			return nil, err
		}

		if !resp.Success {
			return mcp.NewToolResultError(string(payload)), nil
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}

// Register adds one tool per operation in the dispatcher catalog.
func Register(s *server.MCPServer, d Dispatcher) {
	for _, desc := range d.Operations() {
		s.AddTool(NewTool(desc), NewToolHandler(d, desc.Name))
	}
}
