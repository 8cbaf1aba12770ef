package handler

import (
	"github.com/MKhiriev/go-budget-keeper/internal/adapter"
	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/handler/http"
	"github.com/MKhiriev/go-budget-keeper/internal/handler/mcp"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	MCP  *mcp.Handler
}

// NewHandlers creates the transport handlers. The MCP handler is always
// created; the ops HTTP handler only when an address is configured.
func NewHandlers(repo *service.Repository, api adapter.BudgetAPI, cfg *config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		MCP: mcp.NewHandler(repo, api, cfg.Budget.DefaultBudget, logger),
	}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(repo, cfg.App.Version, logger)
	}

	return handlers
}
