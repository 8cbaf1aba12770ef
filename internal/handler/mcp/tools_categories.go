package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type categoriesResponse struct {
	Categories []categoryView `json:"categories"`
	Pagination paginationInfo `json:"pagination"`
}

func (h *Handler) registerCategoryTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List active categories for a budget with pagination. Hidden and deleted categories are excluded automatically. Omit budget_id to use the default budget."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of categories to return (default 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of categories to skip (default 0)")),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.listCategories)

	s.AddTool(mcp.NewTool("list_category_groups",
		mcp.WithDescription("List category groups with per-group totals (lighter weight than full categories). Omit budget_id to use the default budget."),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.listCategoryGroups)
}

func (h *Handler) listCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 50)
	offset := request.GetInt("offset", 0)
	budgetID := request.GetString("budget_id", "")

	groups, err := h.categoryGroups(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	var categories []categoryView
	for _, group := range groups {
		if group.Deleted {
			continue
		}
		for _, category := range group.Categories {
			if category.Hidden || category.Deleted {
				continue
			}
			categories = append(categories, newCategoryView(category, group.Name))
		}
	}

	page, pagination := paginate(categories, limit, offset)
	if page == nil {
		page = []categoryView{}
	}

	return jsonResult(categoriesResponse{Categories: page, Pagination: pagination})
}

func (h *Handler) listCategoryGroups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	budgetID := request.GetString("budget_id", "")

	groups, err := h.categoryGroups(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	views := make([]categoryGroupView, 0, len(groups))
	for _, group := range groups {
		if group.Deleted {
			continue
		}
		views = append(views, newCategoryGroupView(group))
	}

	return jsonResult(views)
}
