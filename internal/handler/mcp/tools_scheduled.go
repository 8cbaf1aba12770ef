package mcp

import (
	"context"
	"sort"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type scheduledTransactionsResponse struct {
	ScheduledTransactions []scheduledTransactionView `json:"scheduled_transactions"`
	Pagination            paginationInfo             `json:"pagination"`
}

func (h *Handler) registerScheduledTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("list_scheduled_transactions",
		mcp.WithDescription("List upcoming scheduled transactions with filtering by account, category, frequency, amount range and days until due. Sorted by next occurrence. Omit budget_id to use the default budget."),
		mcp.WithString("account_id", mcp.Description("Filter by specific account (optional)")),
		mcp.WithString("category_id", mcp.Description("Filter by specific category (optional)")),
		mcp.WithString("frequency", mcp.Description("Filter by frequency, e.g. monthly, weekly (optional)")),
		mcp.WithNumber("upcoming_days", mcp.Description("Only show transactions due within this many days (optional)")),
		mcp.WithNumber("min_amount", mcp.Description("Only show transactions with amount >= this value, negative for outflows (optional)")),
		mcp.WithNumber("max_amount", mcp.Description("Only show transactions with amount <= this value, negative for outflows (optional)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of scheduled transactions to return (default 25)")),
		mcp.WithNumber("offset", mcp.Description("Number of scheduled transactions to skip (default 0)")),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.listScheduledTransactions)
}

func (h *Handler) listScheduledTransactions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 25)
	offset := request.GetInt("offset", 0)
	budgetID := request.GetString("budget_id", "")

	accountID := request.GetString("account_id", "")
	categoryID := request.GetString("category_id", "")
	frequency := request.GetString("frequency", "")

	var upcomingDays *int
	if _, ok := request.GetArguments()["upcoming_days"]; ok {
		days := request.GetInt("upcoming_days", 0)
		upcomingDays = &days
	}

	minAmount, err := amountArg(request, "min_amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	maxAmount, err := amountArg(request, "max_amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	scheduled, err := h.scheduledTransactions(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	today := h.now().UTC().Truncate(24 * time.Hour)

	var views []scheduledTransactionView
	for _, st := range scheduled {
		if st.Deleted {
			continue
		}
		if accountID != "" && st.AccountID != accountID {
			continue
		}
		if categoryID != "" && (st.CategoryID == nil || *st.CategoryID != categoryID) {
			continue
		}
		if frequency != "" && st.Frequency != frequency {
			continue
		}
		if upcomingDays != nil {
			daysUntil := int(st.DateNext.Sub(today).Hours() / 24)
			if daysUntil < 0 || daysUntil > *upcomingDays {
				continue
			}
		}
		if minAmount != nil && st.Amount < *minAmount {
			continue
		}
		if maxAmount != nil && st.Amount > *maxAmount {
			continue
		}
		views = append(views, newScheduledTransactionView(st))
	}

	// soonest first
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DateNext.Before(views[j].DateNext.Time)
	})

	page, pagination := paginate(views, limit, offset)
	if page == nil {
		page = []scheduledTransactionView{}
	}

	return jsonResult(scheduledTransactionsResponse{ScheduledTransactions: page, Pagination: pagination})
}
