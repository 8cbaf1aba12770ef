package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/go-budget-keeper/models"
)

func (h *Handler) registerMonthTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("get_budget_month",
		mcp.WithDescription("Get budget data for a specific month including category budgets, activity and balances with pagination. Hidden and deleted categories are excluded automatically. Omit budget_id to use the default budget."),
		mcp.WithString("month", mcp.Description("Month specifier: an ISO date (first of month) or current|last|next (default current)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of categories to return (default 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of categories to skip (default 0)")),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.getBudgetMonth)

	s.AddTool(mcp.NewTool("get_month_category_by_id",
		mcp.WithDescription("Get a specific category's data for a specific month. Omit budget_id to use the default budget."),
		mcp.WithString("category_id", mcp.Required(), mcp.Description("Category ID")),
		mcp.WithString("month", mcp.Description("Month specifier: an ISO date (first of month) or current|last|next (default current)")),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.getMonthCategoryByID)
}

func (h *Handler) getBudgetMonth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 50)
	offset := request.GetInt("offset", 0)
	budgetID := request.GetString("budget_id", "")

	month, err := resolveMonth(request.GetString("month", "current"), h.now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	detail, err := h.budgetMonth(ctx, budgetID, month)
	if err != nil {
		return nil, err
	}

	var categories []categoryView
	for _, category := range detail.Categories {
		if category.Hidden || category.Deleted {
			continue
		}
		categories = append(categories, newMonthCategoryView(category, ""))
	}

	page, pagination := paginate(categories, limit, offset)
	if page == nil {
		page = []categoryView{}
	}

	return jsonResult(monthView{
		Month:                  detail.Month,
		Note:                   detail.Note,
		Income:                 detail.Income.Decimal(),
		Budgeted:               detail.Budgeted.Decimal(),
		Activity:               detail.Activity.Decimal(),
		ToBeBudgeted:           detail.ToBeBudgeted.Decimal(),
		AgeOfMoney:             detail.AgeOfMoney,
		Categories:             page,
		IncomeMilliunits:       detail.Income,
		BudgetedMilliunits:     detail.Budgeted,
		ActivityMilliunits:     detail.Activity,
		ToBeBudgetedMilliunits: detail.ToBeBudgeted,
		Pagination:             pagination,
	})
}

func (h *Handler) getMonthCategoryByID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categoryID, err := request.RequireString("category_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	budgetID := request.GetString("budget_id", "")

	month, err := resolveMonth(request.GetString("month", "current"), h.now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	category, err := h.monthCategory(ctx, budgetID, month, categoryID)
	if err != nil {
		return nil, err
	}

	return jsonResult(newMonthCategoryView(category, ""))
}

func (h *Handler) budgetMonth(ctx context.Context, budgetID string, month models.Date) (models.MonthDetail, error) {
	if h.isDefault(budgetID) {
		return h.repo.GetBudgetMonth(ctx, month)
	}
	return h.api.GetBudgetMonth(ctx, budgetID, month)
}

func (h *Handler) monthCategory(ctx context.Context, budgetID string, month models.Date, categoryID string) (models.Category, error) {
	if h.isDefault(budgetID) {
		return h.repo.GetMonthCategoryByID(ctx, month, categoryID)
	}
	return h.api.GetMonthCategory(ctx, budgetID, month, categoryID)
}
