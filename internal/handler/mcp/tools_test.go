// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-keeper/internal/adapter"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/mock"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/models"
)

const defaultBudget = "budget-1"

var fixedNow = time.Date(2026, time.August, 23, 15, 0, 0, 0, time.UTC)

func newToolHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockBudgetAPI) {
	t.Helper()

	api := mock.NewMockBudgetAPI(ctrl)
	repo := service.NewRepository(api, service.RepositoryConfig{BudgetID: defaultBudget}, logger.Nop())
	repo.SetBackgroundSync(false)
	t.Cleanup(repo.Close)

	return &Handler{
		repo:          repo,
		api:           api,
		defaultBudget: defaultBudget,
		logger:        logger.Nop(),
		now:           func() time.Time { return fixedNow },
	}, api
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

// callTool invokes a tool handler and decodes its JSON text payload.
func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) map[string]any {
	t.Helper()

	result, err := handler(context.Background(), toolRequest(args))
	require.NoError(t, err)
	require.False(t, result.IsError, "tool returned an error result")

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

// callToolExpectError invokes a tool handler expecting an in-band error result.
func callToolExpectError(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) {
	t.Helper()

	result, err := handler(context.Background(), toolRequest(args))
	require.NoError(t, err)
	require.True(t, result.IsError, "expected an error result")
}

func strPtr(s string) *string { return &s }

func pagination(t *testing.T, payload map[string]any) map[string]any {
	t.Helper()
	info, ok := payload["pagination"].(map[string]any)
	require.True(t, ok, "payload has no pagination block")
	return info
}

func TestListAccounts_ExcludesClosedAndRendersDecimals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListAccounts(gomock.Any(), defaultBudget, nil).Return([]models.Account{
		{ID: "a1", Name: "Checking", Balance: 1234560},
		{ID: "a2", Name: "Old Card", Closed: true},
		{ID: "a3", Name: "Gone", Deleted: true},
	}, int64(1), nil)

	payload := callTool(t, h.listAccounts, nil)

	accounts := payload["accounts"].([]any)
	require.Len(t, accounts, 1)
	account := accounts[0].(map[string]any)
	assert.Equal(t, "a1", account["id"])
	assert.Equal(t, "1234.56", account["balance"])

	info := pagination(t, payload)
	assert.Equal(t, float64(1), info["total_count"])
	assert.Equal(t, false, info["has_more"])
	assert.Nil(t, info["next_offset"])
}

func TestListAccounts_BudgetOverrideBypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListAccounts(gomock.Any(), "other-budget", nil).
		Return([]models.Account{{ID: "x1", Name: "Other"}}, int64(0), nil)

	payload := callTool(t, h.listAccounts, map[string]any{"budget_id": "other-budget"})

	accounts := payload["accounts"].([]any)
	require.Len(t, accounts, 1)
	assert.Equal(t, "x1", accounts[0].(map[string]any)["id"])
}

func TestListPayees_SortedAndPaginated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListPayees(gomock.Any(), defaultBudget, nil).Return([]models.Payee{
		{ID: "p1", Name: "zeta"},
		{ID: "p2", Name: "Alpha"},
		{ID: "p3", Name: "ghost", Deleted: true},
		{ID: "p4", Name: "beta"},
	}, int64(1), nil)

	payload := callTool(t, h.listPayees, map[string]any{"limit": float64(2)})

	payees := payload["payees"].([]any)
	require.Len(t, payees, 2)
	assert.Equal(t, "Alpha", payees[0].(map[string]any)["name"])
	assert.Equal(t, "beta", payees[1].(map[string]any)["name"])

	info := pagination(t, payload)
	assert.Equal(t, float64(3), info["total_count"])
	assert.Equal(t, true, info["has_more"])
	assert.Equal(t, float64(2), info["next_offset"])
}

func TestFindPayee_SubstringMatchWithNullNextOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListPayees(gomock.Any(), defaultBudget, nil).Return([]models.Payee{
		{ID: "p1", Name: "Whole Foods Market"},
		{ID: "p2", Name: "Corner Market"},
		{ID: "p3", Name: "Gas Station"},
	}, int64(1), nil)

	payload := callTool(t, h.findPayee, map[string]any{"name_search": "market", "limit": float64(1)})

	payees := payload["payees"].([]any)
	require.Len(t, payees, 1)
	assert.Equal(t, "Corner Market", payees[0].(map[string]any)["name"])

	info := pagination(t, payload)
	assert.Equal(t, float64(2), info["total_count"])
	assert.Equal(t, true, info["has_more"])
	assert.Nil(t, info["next_offset"])
}

func TestFindPayee_RequiresSearchTerm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newToolHandler(t, ctrl)
	callToolExpectError(t, h.findPayee, nil)
}

func TestListCategories_FlattensGroupsAndSkipsHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListCategoryGroups(gomock.Any(), defaultBudget, nil).Return([]models.CategoryGroup{
		{ID: "g1", Name: "Everyday", Categories: []models.Category{
			{ID: "c1", CategoryGroupID: "g1", Name: "Groceries", Budgeted: 200000},
			{ID: "c2", CategoryGroupID: "g1", Name: "Secret", Hidden: true},
		}},
		{ID: "g2", Name: "Old", Deleted: true, Categories: []models.Category{
			{ID: "c3", CategoryGroupID: "g2", Name: "Legacy"},
		}},
	}, int64(1), nil)

	payload := callTool(t, h.listCategories, nil)

	categories := payload["categories"].([]any)
	require.Len(t, categories, 1)
	category := categories[0].(map[string]any)
	assert.Equal(t, "Groceries", category["name"])
	assert.Equal(t, "Everyday", category["category_group_name"])
	assert.Equal(t, "200", category["budgeted"])
}

func TestListCategoryGroups_Totals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListCategoryGroups(gomock.Any(), defaultBudget, nil).Return([]models.CategoryGroup{
		{ID: "g1", Name: "Everyday", Categories: []models.Category{
			{ID: "c1", Budgeted: 200000, Activity: -50000, Balance: 150000},
			{ID: "c2", Budgeted: 100000, Activity: -25000, Balance: 75000},
			{ID: "c3", Budgeted: 999000, Hidden: true},
		}},
	}, int64(1), nil)

	result, err := h.listCategoryGroups(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	text := result.Content[0].(mcp.TextContent)

	var groups []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &groups))
	require.Len(t, groups, 1)

	assert.Equal(t, float64(2), groups[0]["category_count"])
	assert.Equal(t, "300", groups[0]["total_budgeted"])
	assert.Equal(t, "-75", groups[0]["total_activity"])
	assert.Equal(t, "225", groups[0]["total_balance"])
}

func TestListTransactions_FiltersAndSortsMostRecentFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListTransactions(gomock.Any(), defaultBudget, nil).Return([]models.TransactionDetail{
		{ID: "t1", Date: models.NewDate(2026, 8, 1), Amount: -10000, AccountID: "a1"},
		{ID: "t2", Date: models.NewDate(2026, 8, 15), Amount: -20000, AccountID: "a1"},
		{ID: "t3", Date: models.NewDate(2026, 8, 10), Amount: -30000, AccountID: "a1", Deleted: true},
	}, int64(1), nil)

	payload := callTool(t, h.listTransactions, nil)

	transactions := payload["transactions"].([]any)
	require.Len(t, transactions, 2)
	assert.Equal(t, "t2", transactions[0].(map[string]any)["id"])
	assert.Equal(t, "t1", transactions[1].(map[string]any)["id"])
	assert.Equal(t, "-20", transactions[0].(map[string]any)["amount"])
}

func TestListTransactions_AmountRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListTransactions(gomock.Any(), defaultBudget, nil).Return([]models.TransactionDetail{
		{ID: "small", Date: models.NewDate(2026, 8, 1), Amount: -5000, AccountID: "a1"},
		{ID: "big", Date: models.NewDate(2026, 8, 2), Amount: -90000, AccountID: "a1"},
	}, int64(1), nil)

	// min_amount as a decimal string parses exactly
	payload := callTool(t, h.listTransactions, map[string]any{"min_amount": "-10.00"})

	transactions := payload["transactions"].([]any)
	require.Len(t, transactions, 1)
	assert.Equal(t, "small", transactions[0].(map[string]any)["id"])
}

func TestListTransactions_AccountFilterUsesServerSideEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListTransactionsFiltered(gomock.Any(), defaultBudget,
		gomock.Cond(func(f adapter.TransactionFilters) bool { return f.AccountID == "a1" })).
		Return([]models.TransactionDetail{
			{ID: "t1", Date: models.NewDate(2026, 8, 1), Amount: -10000, AccountID: "a1"},
		}, nil)

	payload := callTool(t, h.listTransactions, map[string]any{"account_id": "a1"})

	transactions := payload["transactions"].([]any)
	require.Len(t, transactions, 1)
}

func TestListTransactions_InvalidSinceDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newToolHandler(t, ctrl)
	callToolExpectError(t, h.listTransactions, map[string]any{"since_date": "15/08/2026"})
}

func TestListScheduledTransactions_UpcomingDaysWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListScheduledTransactions(gomock.Any(), defaultBudget, nil).Return([]models.ScheduledTransaction{
		{ID: "soon", DateNext: models.NewDate(2026, 8, 25), Frequency: "monthly", AccountID: "a1", Amount: -10000},
		{ID: "later", DateNext: models.NewDate(2026, 10, 1), Frequency: "monthly", AccountID: "a1", Amount: -10000},
		{ID: "past", DateNext: models.NewDate(2026, 8, 1), Frequency: "monthly", AccountID: "a1", Amount: -10000},
	}, int64(1), nil)

	payload := callTool(t, h.listScheduledTransactions, map[string]any{"upcoming_days": float64(7)})

	scheduled := payload["scheduled_transactions"].([]any)
	require.Len(t, scheduled, 1)
	assert.Equal(t, "soon", scheduled[0].(map[string]any)["id"])
}

func TestListScheduledTransactions_SortedByNextDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListScheduledTransactions(gomock.Any(), defaultBudget, nil).Return([]models.ScheduledTransaction{
		{ID: "second", DateNext: models.NewDate(2026, 9, 15), Frequency: "monthly", AccountID: "a1"},
		{ID: "first", DateNext: models.NewDate(2026, 9, 1), Frequency: "monthly", AccountID: "a1"},
	}, int64(1), nil)

	payload := callTool(t, h.listScheduledTransactions, nil)

	scheduled := payload["scheduled_transactions"].([]any)
	require.Len(t, scheduled, 2)
	assert.Equal(t, "first", scheduled[0].(map[string]any)["id"])
	assert.Equal(t, "second", scheduled[1].(map[string]any)["id"])
}

func TestGetBudgetMonth_CarriesDecimalAndMilliunits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	month := models.NewDate(2026, time.August, 1)
	api.EXPECT().GetBudgetMonth(gomock.Any(), defaultBudget, month).Return(models.MonthDetail{
		Month:        month,
		Income:       500000,
		Budgeted:     450000,
		Activity:     -125500,
		ToBeBudgeted: 50000,
		Categories: []models.Category{
			{ID: "c1", Name: "Groceries", Budgeted: 200000},
			{ID: "c2", Name: "Hidden", Hidden: true},
		},
	}, nil)

	payload := callTool(t, h.getBudgetMonth, map[string]any{"month": "current"})

	assert.Equal(t, "2026-08-01", payload["month"])
	assert.Equal(t, "500", payload["income"])
	assert.Equal(t, "-125.5", payload["activity"])
	assert.Equal(t, float64(500000), payload["income_milliunits"])

	categories := payload["categories"].([]any)
	require.Len(t, categories, 1)
	category := categories[0].(map[string]any)
	assert.Equal(t, "200", category["budgeted"])
	assert.Equal(t, float64(200000), category["budgeted_milliunits"])
}

func TestGetMonthCategoryByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	month := models.NewDate(2026, time.July, 1)
	api.EXPECT().GetMonthCategory(gomock.Any(), defaultBudget, month, "c1").
		Return(models.Category{ID: "c1", Name: "Groceries", Budgeted: 150000, Balance: 25000}, nil)

	payload := callTool(t, h.getMonthCategoryByID, map[string]any{
		"category_id": "c1",
		"month":       "last",
	})

	assert.Equal(t, "c1", payload["id"])
	assert.Equal(t, "150", payload["budgeted"])
	assert.Equal(t, "25", payload["balance"])
	assert.Equal(t, float64(150000), payload["budgeted_milliunits"])
}

func TestGetBudgetMonth_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newToolHandler(t, ctrl)
	callToolExpectError(t, h.getBudgetMonth, map[string]any{"month": "sometime"})
}

func TestUpdateCategoryBudget_ParsesDecimalAndResolvesGroupName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	month := models.NewDate(2026, time.August, 1)

	api.EXPECT().UpdateMonthCategory(gomock.Any(), defaultBudget, month, "c1", models.Milliunits(200000)).
		Return(models.Category{ID: "c1", CategoryGroupID: "g1", Name: "Groceries", Budgeted: 200000}, nil)

	// the update invalidates cached groups, so name resolution re-fetches
	api.EXPECT().ListCategoryGroups(gomock.Any(), defaultBudget, nil).
		Return([]models.CategoryGroup{{ID: "g1", Name: "Everyday"}}, int64(1), nil)

	payload := callTool(t, h.updateCategoryBudget, map[string]any{
		"category_id": "c1",
		"budgeted":    "200.00",
	})

	assert.Equal(t, "c1", payload["id"])
	assert.Equal(t, "200", payload["budgeted"])
	assert.Equal(t, "Everyday", payload["category_group_name"])
}

func TestUpdateCategoryBudget_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newToolHandler(t, ctrl)
	callToolExpectError(t, h.updateCategoryBudget, map[string]any{
		"category_id": "c1",
		"budgeted":    "two hundred",
	})
}

func TestUpdateTransaction_OverlaysProvidedFieldsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)

	existing := models.TransactionDetail{
		ID:        "t1",
		AccountID: "a1",
		Date:      models.NewDate(2026, 8, 10),
		Amount:    -45000,
		Cleared:   "uncleared",
		Approved:  false,
		Memo:      strPtr("old memo"),
	}

	gomock.InOrder(
		api.EXPECT().GetTransaction(gomock.Any(), defaultBudget, "t1").Return(existing, nil),
		api.EXPECT().UpdateTransaction(gomock.Any(), defaultBudget, "t1",
			gomock.Cond(func(changes models.SaveTransaction) bool {
				return changes.AccountID != nil && *changes.AccountID == "a1" &&
					changes.Amount != nil && *changes.Amount == -45000 &&
					changes.Date != nil && changes.Date.String() == "2026-08-10" &&
					changes.Memo != nil && *changes.Memo == "new memo" &&
					changes.Approved != nil && *changes.Approved
			})).
			Return(models.TransactionDetail{
				ID:        "t1",
				AccountID: "a1",
				Date:      models.NewDate(2026, 8, 10),
				Amount:    -45000,
				Cleared:   "uncleared",
				Approved:  true,
				Memo:      strPtr("new memo"),
			}, nil),
	)

	payload := callTool(t, h.updateTransaction, map[string]any{
		"transaction_id": "t1",
		"memo":           "new memo",
		"approved":       true,
	})

	assert.Equal(t, "t1", payload["id"])
	assert.Equal(t, "new memo", payload["memo"])
	assert.Equal(t, true, payload["approved"])
	assert.Equal(t, "-45", payload["amount"])
}

func TestUpdateTransaction_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().GetTransaction(gomock.Any(), defaultBudget, "t1").
		Return(models.TransactionDetail{ID: "t1", AccountID: "a1"}, nil)

	callToolExpectError(t, h.updateTransaction, map[string]any{
		"transaction_id": "t1",
		"amount":         "lots",
	})
}

func TestListBudgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, api := newToolHandler(t, ctrl)
	api.EXPECT().ListBudgets(gomock.Any()).Return([]models.Budget{
		{ID: "budget-1", Name: "Family Budget"},
	}, nil)

	result, err := h.listBudgets(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	text := result.Content[0].(mcp.TextContent)

	var budgets []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &budgets))
	require.Len(t, budgets, 1)
	assert.Equal(t, "Family Budget", budgets[0]["name"])
}
