package server

import (
	"context"
	"errors"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
)

// stdioServer adapts the MCP stdio transport to the [Server] lifecycle.
// Listen blocks until the context is cancelled or the client closes stdin.
type stdioServer struct {
	server *mcpserver.StdioServer
	ctx    context.Context
	cancel context.CancelFunc
	logger *logger.Logger
}

func newStdioServer(mcpSrv *mcpserver.MCPServer, logger *logger.Logger) *stdioServer {
	logger.Info().Msg("mcp stdio server created")

	ctx, cancel := context.WithCancel(context.Background())
	return &stdioServer{
		server: mcpserver.NewStdioServer(mcpSrv),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

func (s *stdioServer) RunServer() {
	if err := s.server.Listen(s.ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error().Err(err).Msg("MCP stdio server stopped")
	}
}

func (s *stdioServer) Shutdown() {
	s.cancel()
}
