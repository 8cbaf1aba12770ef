// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// YNAB v1 REST API.
//
// The primary abstraction is [BudgetAPI], which decouples the repository and
// tool layers from the wire protocol. The package ships an HTTP
// implementation ([NewHTTPBudgetAPI]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes in a
// single place (mapHTTPError) so that callers can branch with [errors.Is]
// instead of inspecting status codes: [ErrRateLimited] for 429,
// [ErrCursorConflict] for 409, [ErrUnauthorized] for 401, and [*APIError]
// for everything else non-2xx.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-budget-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/budget_api_mock.go -package=mock

// TransactionFilters selects one of the server-side transaction listing
// endpoints. At most one of AccountID, CategoryID, PayeeID is honoured, in
// that order; SinceDate applies to all of them.
type TransactionFilters struct {
	AccountID  string
	CategoryID string
	PayeeID    string
	SinceDate  *models.Date
}

// BudgetAPI defines transport-agnostic access to the YNAB API.
//
// Every List* method for a cached entity kind takes an optional
// server-knowledge cursor: nil requests a full refresh, non-nil a delta fetch
// of changes after that cursor. Both shapes return the entity batch together
// with the new cursor the batch corresponds to.
type BudgetAPI interface {
	// ListBudgets returns all budgets the token grants access to.
	ListBudgets(ctx context.Context) ([]models.Budget, error)

	// ListAccounts returns the budget's accounts and the new cursor.
	ListAccounts(ctx context.Context, budgetID string, since *int64) ([]models.Account, int64, error)

	// ListPayees returns the budget's payees and the new cursor.
	ListPayees(ctx context.Context, budgetID string, since *int64) ([]models.Payee, int64, error)

	// ListCategoryGroups returns the budget's category groups (with nested
	// categories) and the new cursor.
	ListCategoryGroups(ctx context.Context, budgetID string, since *int64) ([]models.CategoryGroup, int64, error)

	// ListTransactions returns the budget's transactions and the new cursor.
	ListTransactions(ctx context.Context, budgetID string, since *int64) ([]models.TransactionDetail, int64, error)

	// ListScheduledTransactions returns the budget's scheduled transactions
	// and the new cursor.
	ListScheduledTransactions(ctx context.Context, budgetID string, since *int64) ([]models.ScheduledTransaction, int64, error)

	// ListTransactionsFiltered queries one of the account/category/payee
	// transaction endpoints depending on which filter is set, or the general
	// endpoint when none is. Results are not cached.
	ListTransactionsFiltered(ctx context.Context, budgetID string, filters TransactionFilters) ([]models.TransactionDetail, error)

	// GetTransaction fetches a single transaction by ID.
	GetTransaction(ctx context.Context, budgetID, transactionID string) (models.TransactionDetail, error)

	// GetBudgetMonth fetches one budget month with its category breakdown.
	GetBudgetMonth(ctx context.Context, budgetID string, month models.Date) (models.MonthDetail, error)

	// GetMonthCategory fetches a single category as budgeted for a month.
	GetMonthCategory(ctx context.Context, budgetID string, month models.Date, categoryID string) (models.Category, error)

	// UpdateMonthCategory sets a category's budgeted amount for a month and
	// returns the updated category.
	UpdateMonthCategory(ctx context.Context, budgetID string, month models.Date, categoryID string, budgeted models.Milliunits) (models.Category, error)

	// UpdateTransaction applies the non-nil fields of changes to an existing
	// transaction and returns the updated record.
	UpdateTransaction(ctx context.Context, budgetID, transactionID string, changes models.SaveTransaction) (models.TransactionDetail, error)
}
