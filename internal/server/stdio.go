package server

import (
	"context"
	"errors"
	"io"
	stdlog "log"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/maxim-ist/mcp-bear/internal/logger"
)

type stdioServer struct {
	server *mcpserver.StdioServer
	in     io.Reader
	out    io.Writer

	logger *logger.Logger
}

func newStdioServer(mcp *mcpserver.MCPServer, in io.Reader, out io.Writer, logger *logger.Logger) *stdioServer {
	s := mcpserver.NewStdioServer(mcp)
	// stdout carries the protocol, so transport errors go through the logger
	s.SetErrorLogger(stdlog.New(logger, "", 0))

	return &stdioServer{
		server: s,
		in:     in,
		out:    out,
		logger: logger,
	}
}

func (s *stdioServer) run(ctx context.Context) error {
	err := s.server.Listen(ctx, s.in, s.out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		s.logger.Info().Msg("stdio transport closed")
		return nil
	}
	return err
}

// shutdown is a no-op: cancelling the run context stops Listen.
func (s *stdioServer) shutdown(context.Context) error {
	return nil
}

func (s *stdioServer) name() string {
	return "stdio"
}
