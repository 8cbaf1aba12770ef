package mcp

import (
	"context"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/go-budget-keeper/models"
)

type payeesResponse struct {
	Payees     []models.Payee `json:"payees"`
	Pagination paginationInfo `json:"pagination"`
}

func (h *Handler) registerPayeeTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("list_payees",
		mcp.WithDescription("List active payees for a budget with pagination, sorted by name. Deleted payees are excluded automatically. Omit budget_id to use the default budget."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of payees to return (default 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of payees to skip (default 0)")),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.listPayees)

	s.AddTool(mcp.NewTool("find_payee",
		mcp.WithDescription("Find payees by case-insensitive name substring. More efficient than paginating through list_payees. Omit budget_id to use the default budget."),
		mcp.WithString("name_search", mcp.Required(), mcp.Description("Search term to match against payee names")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of matching payees to return (default 10)")),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.findPayee)
}

func (h *Handler) listPayees(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 50)
	offset := request.GetInt("offset", 0)
	budgetID := request.GetString("budget_id", "")

	payees, err := h.payees(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	active := activePayeesByName(payees, "")
	page, pagination := paginate(active, limit, offset)

	return jsonResult(payeesResponse{Payees: page, Pagination: pagination})
}

func (h *Handler) findPayee(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nameSearch, err := request.RequireString("name_search")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := request.GetInt("limit", 10)
	budgetID := request.GetString("budget_id", "")

	payees, err := h.payees(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	matching := activePayeesByName(payees, strings.TrimSpace(nameSearch))

	limited := matching
	if limit >= 0 && limit < len(matching) {
		limited = matching[:limit]
	}

	// search results are limited, not paginated; next_offset stays null
	pagination := paginationInfo{
		TotalCount:    len(matching),
		Limit:         limit,
		Offset:        0,
		HasMore:       len(matching) > limit,
		ReturnedCount: len(limited),
	}

	return jsonResult(payeesResponse{Payees: limited, Pagination: pagination})
}

// activePayeesByName drops deleted payees, keeps those whose name contains
// search (case-insensitive, empty matches all) and sorts by lowercased name.
func activePayeesByName(payees []models.Payee, search string) []models.Payee {
	search = strings.ToLower(search)

	result := make([]models.Payee, 0, len(payees))
	for _, payee := range payees {
		if payee.Deleted {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(payee.Name), search) {
			continue
		}
		result = append(result, payee)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})

	return result
}
