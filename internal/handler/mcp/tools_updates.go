// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/go-budget-keeper/models"
)

func (h *Handler) registerUpdateTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("update_category_budget",
		mcp.WithDescription("Set a category's budgeted amount for a month. Omit budget_id to use the default budget."),
		mcp.WithString("category_id", mcp.Required(), mcp.Description("Category ID")),
		mcp.WithString("budgeted", mcp.Required(), mcp.Description("New budgeted amount as a decimal string, e.g. \"200.00\"")),
		mcp.WithString("month", mcp.Description("Month specifier: an ISO date (first of month) or current|last|next (default current)")),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.updateCategoryBudget)

	s.AddTool(mcp.NewTool("update_transaction",
		mcp.WithDescription("Update fields of an existing transaction. Only the provided fields change; the rest keep their current values. Omit budget_id to use the default budget."),
		mcp.WithString("transaction_id", mcp.Required(), mcp.Description("Transaction ID")),
		mcp.WithString("account_id", mcp.Description("Move the transaction to this account (optional)")),
		mcp.WithString("date", mcp.Description("New ISO transaction date (optional)")),
		mcp.WithString("amount", mcp.Description("New amount as a decimal string, negative for outflows (optional)")),
		mcp.WithString("payee_id", mcp.Description("New payee ID (optional)")),
		mcp.WithString("payee_name", mcp.Description("New payee name (optional)")),
		mcp.WithString("category_id", mcp.Description("New category ID (optional)")),
		mcp.WithString("memo", mcp.Description("New memo (optional)")),
		mcp.WithString("cleared", mcp.Description("New cleared status: cleared, uncleared or reconciled (optional)")),
		mcp.WithBoolean("approved", mcp.Description("New approved flag (optional)")),
		mcp.WithString("flag_color", mcp.Description("New flag color (optional)")),
		mcp.WithString("budget_id", mcp.Description("Budget ID (optional - omit to use default budget)")),
	), h.updateTransaction)
}

func (h *Handler) updateCategoryBudget(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categoryID, err := request.RequireString("category_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	budgetedArg, err := request.RequireString("budgeted")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	budgetID := request.GetString("budget_id", "")

	budgeted, err := models.ParseMilliunits(budgetedArg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid budgeted amount: %v", err)), nil
	}

	month, err := resolveMonth(request.GetString("month", "current"), h.now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var category models.Category
	if h.isDefault(budgetID) {
		category, err = h.repo.UpdateMonthCategory(ctx, month, categoryID, budgeted)
	} else {
		category, err = h.api.UpdateMonthCategory(ctx, budgetID, month, categoryID, budgeted)
	}
	if err != nil {
		return nil, err
	}

	return jsonResult(newCategoryView(category, h.groupNameFor(ctx, budgetID, category.CategoryGroupID)))
}

// groupNameFor resolves a category group's display name. Failures degrade to
// an empty name rather than failing the update that already succeeded.
func (h *Handler) groupNameFor(ctx context.Context, budgetID, groupID string) string {
	groups, err := h.categoryGroups(ctx, budgetID)
	if err != nil {
		h.logger.Warn().Err(err).Str("group_id", groupID).Msg("could not resolve category group name")
		return ""
	}
	for _, group := range groups {
		if group.ID == groupID {
			return group.Name
		}
	}
	return ""
}

func (h *Handler) updateTransaction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	transactionID, err := request.RequireString("transaction_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	budgetID := request.GetString("budget_id", "")

	// The update endpoint replaces the transaction, so start from the
	// current server state and overlay only the provided fields.
	existing, err := h.transactionByID(ctx, budgetID, transactionID)
	if err != nil {
		return nil, err
	}

	changes := models.SaveTransaction{
		AccountID:  &existing.AccountID,
		Date:       &existing.Date,
		Amount:     &existing.Amount,
		PayeeID:    existing.PayeeID,
		CategoryID: existing.CategoryID,
		Memo:       existing.Memo,
		Cleared:    &existing.Cleared,
		Approved:   &existing.Approved,
		FlagColor:  existing.FlagColor,
	}

	if accountID := stringArg(request, "account_id"); accountID != nil {
		changes.AccountID = accountID
	}
	if dateArg := stringArg(request, "date"); dateArg != nil {
		d, err := models.ParseDate(*dateArg)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		changes.Date = &d
	}
	if amountStr := stringArg(request, "amount"); amountStr != nil {
		amount, err := models.ParseMilliunits(*amountStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid amount: %v", err)), nil
		}
		changes.Amount = &amount
	}
	if payeeID := stringArg(request, "payee_id"); payeeID != nil {
		changes.PayeeID = payeeID
	}
	if payeeName := stringArg(request, "payee_name"); payeeName != nil {
		changes.PayeeName = payeeName
	}
	if categoryID := stringArg(request, "category_id"); categoryID != nil {
		changes.CategoryID = categoryID
	}
	if memo := stringArg(request, "memo"); memo != nil {
		changes.Memo = memo
	}
	if cleared := stringArg(request, "cleared"); cleared != nil {
		changes.Cleared = cleared
	}
	if _, ok := request.GetArguments()["approved"]; ok {
		approved := request.GetBool("approved", false)
		changes.Approved = &approved
	}
	if flagColor := stringArg(request, "flag_color"); flagColor != nil {
		changes.FlagColor = flagColor
	}

	var updated models.TransactionDetail
	if h.isDefault(budgetID) {
		updated, err = h.repo.UpdateTransaction(ctx, transactionID, changes)
	} else {
		updated, err = h.api.UpdateTransaction(ctx, budgetID, transactionID, changes)
	}
	if err != nil {
		return nil, err
	}

	return jsonResult(newTransactionView(updated))
}

func (h *Handler) transactionByID(ctx context.Context, budgetID, transactionID string) (models.TransactionDetail, error) {
	if h.isDefault(budgetID) {
		return h.repo.GetTransactionByID(ctx, transactionID)
	}
	return h.api.GetTransaction(ctx, budgetID, transactionID)
}

// stringArg returns the string argument's value, or nil when absent.
func stringArg(request mcp.CallToolRequest, key string) *string {
	raw, ok := request.GetArguments()[key]
	if !ok {
		return nil
	}
	if value, ok := raw.(string); ok {
		return &value
	}
	return nil
}
