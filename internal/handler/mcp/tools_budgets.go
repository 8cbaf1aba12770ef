package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (h *Handler) registerBudgetTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("list_budgets",
		mcp.WithDescription("List all budgets with metadata and currency formatting information."),
	), h.listBudgets)
}

func (h *Handler) listBudgets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	budgets, err := h.repo.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResult(budgets)
}
