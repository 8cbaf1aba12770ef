package mcp

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/go-budget-keeper/internal/adapter"
	"github.com/MKhiriev/go-budget-keeper/models"
)

type transactionsResponse struct {
	Transactions []transactionView `json:"transactions"`
	Pagination   paginationInfo    `json:"pagination"`
}

func (h *Handler) registerTransactionTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("list_transactions",
		mcp.WithDescription("List transactions with filtering by account, category, payee, date and amount range. Deleted transactions are excluded; results are sorted most recent first. Omit budget_id to use the default budget."),
		mcp.WithString("account_id", mcp.Description("Filter by specific account (optional)")),
		mcp.WithString("category_id", mcp.Description("Filter by specific category (optional)")),
		mcp.WithString("payee_id", mcp.Description("Filter by specific payee (optional)")),
		mcp.WithString("since_date", mcp.Description("Only show transactions on or after this ISO date (optional)")),
		mcp.WithNumber("min_amount", mcp.Description("Only show transactions with amount >= this value, negative for outflows (optional)")),
		mcp.WithNumber("max_amount", mcp.Description("Only show transactions with amount <= this value, negative for outflows (optional)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of transactions to return (default 25)")),
		mcp.WithNumber("offset", mcp.Description("Number of transactions to skip (default 0)")),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.listTransactions)
}

func (h *Handler) listTransactions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 25)
	offset := request.GetInt("offset", 0)
	budgetID := request.GetString("budget_id", "")

	accountID := request.GetString("account_id", "")
	categoryID := request.GetString("category_id", "")
	payeeID := request.GetString("payee_id", "")

	var sinceDate *models.Date
	if arg := request.GetString("since_date", ""); arg != "" {
		d, err := models.ParseDate(arg)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sinceDate = &d
	}

	minAmount, err := amountArg(request, "min_amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	maxAmount, err := amountArg(request, "max_amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	transactions, err := h.fetchTransactions(ctx, budgetID, accountID, categoryID, payeeID, sinceDate)
	if err != nil {
		return nil, err
	}

	var views []transactionView
	for _, txn := range transactions {
		if txn.Deleted {
			continue
		}
		if sinceDate != nil && txn.Date.Before(sinceDate.Time) {
			continue
		}
		if minAmount != nil && txn.Amount < *minAmount {
			continue
		}
		if maxAmount != nil && txn.Amount > *maxAmount {
			continue
		}
		views = append(views, newTransactionView(txn))
	}

	// most recent first
	sort.SliceStable(views, func(i, j int) bool {
		return views[j].Date.Before(views[i].Date.Time)
	})

	page, pagination := paginate(views, limit, offset)
	if page == nil {
		page = []transactionView{}
	}

	return jsonResult(transactionsResponse{Transactions: page, Pagination: pagination})
}

// fetchTransactions picks the cheapest source for the requested filters: the
// cached collection when only local filters apply, otherwise the server-side
// filter endpoints.
func (h *Handler) fetchTransactions(ctx context.Context, budgetID, accountID, categoryID, payeeID string, sinceDate *models.Date) ([]models.TransactionDetail, error) {
	serverSide := accountID != "" || categoryID != "" || payeeID != ""

	if h.isDefault(budgetID) {
		if !serverSide {
			return h.repo.GetTransactions(ctx)
		}
		return h.repo.GetTransactionsByFilters(ctx, adapter.TransactionFilters{
			AccountID:  accountID,
			CategoryID: categoryID,
			PayeeID:    payeeID,
			SinceDate:  sinceDate,
		})
	}

	if !serverSide && sinceDate == nil {
		transactions, _, err := h.api.ListTransactions(ctx, budgetID, nil)
		return transactions, err
	}
	return h.api.ListTransactionsFiltered(ctx, budgetID, adapter.TransactionFilters{
		AccountID:  accountID,
		CategoryID: categoryID,
		PayeeID:    payeeID,
		SinceDate:  sinceDate,
	})
}

// amountArg reads an optional currency amount argument. Strings are parsed
// exactly; JSON numbers are rounded to the nearest milliunit.
func amountArg(request mcp.CallToolRequest, key string) (*models.Milliunits, error) {
	raw, ok := request.GetArguments()[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch value := raw.(type) {
	case string:
		amount, err := models.ParseMilliunits(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		return &amount, nil
	case float64:
		amount := models.Milliunits(math.Round(value * 1000))
		return &amount, nil
	default:
		return nil, fmt.Errorf("invalid %s: expected a number or decimal string", key)
	}
}
