package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/handler"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	mcpServer  *stdioServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg *config.StructuredConfig, appName, appVersion string, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	servers := &server{
		logger: logger,
	}

	if handlers.MCP == nil {
		return nil, errNoMCPHandler
	}
	servers.mcpServer = newStdioServer(handlers.MCP.Init(appName, appVersion), logger)

	if cfg.Server.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger)
	}

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish MCP stdio server
	if s.mcpServer != nil {
		s.mcpServer.Shutdown()
	}
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// the MCP client closing stdin also means we are done
	mcpDone := make(chan struct{})

	// listen for stop signals
	go func() {
		select {
		case <-ctx.Done():
		case <-mcpDone:
		}

		// finish started servers
		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}

	s.logger.Info().Msg("Launching MCP stdio server")
	go func() {
		s.mcpServer.RunServer()
		close(mcpDone)
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
