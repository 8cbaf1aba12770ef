package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type accountsResponse struct {
	Accounts   []accountView  `json:"accounts"`
	Pagination paginationInfo `json:"pagination"`
}

func (h *Handler) registerAccountTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("list_accounts",
		mcp.WithDescription("List open accounts for a budget with pagination. Closed accounts are excluded automatically. Omit budget_id to use the default budget."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of accounts to return (default 100)")),
		mcp.WithNumber("offset", mcp.Description("Number of accounts to skip (default 0)")),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.listAccounts)
}

func (h *Handler) listAccounts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 100)
	offset := request.GetInt("offset", 0)
	budgetID := request.GetString("budget_id", "")

	accounts, err := h.accounts(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	open := make([]accountView, 0, len(accounts))
	for _, account := range accounts {
		if account.Closed || account.Deleted {
			continue
		}
		open = append(open, newAccountView(account))
	}

	page, pagination := paginate(open, limit, offset)

	return jsonResult(accountsResponse{Accounts: page, Pagination: pagination})
}
