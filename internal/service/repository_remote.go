package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/adapter"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// The operations in this file go to the remote API directly. Month views and
// filtered transaction listings have no delta protocol, so caching them would
// mean inventing an invalidation story the server does not support; the
// write-through updates instead invalidate the cached kind they touch.

// ListBudgets returns every budget the configured token can see.
func (r *Repository) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	budgets, err := r.api.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

// GetTransactionsByFilters queries the server-side account/category/payee
// transaction endpoints. Results are not cached.
func (r *Repository) GetTransactionsByFilters(ctx context.Context, filters adapter.TransactionFilters) ([]models.TransactionDetail, error) {
	transactions, err := r.api.ListTransactionsFiltered(ctx, r.budgetID, filters)
	if err != nil {
		return nil, fmt.Errorf("get transactions by filters: %w", err)
	}
	return transactions, nil
}

// GetTransactionByID fetches a single transaction from the server.
func (r *Repository) GetTransactionByID(ctx context.Context, transactionID string) (models.TransactionDetail, error) {
	transaction, err := r.api.GetTransaction(ctx, r.budgetID, transactionID)
	if err != nil {
		return models.TransactionDetail{}, fmt.Errorf("get transaction %s: %w", transactionID, err)
	}
	return transaction, nil
}

// GetBudgetMonth fetches one budget month with its category breakdown.
func (r *Repository) GetBudgetMonth(ctx context.Context, month models.Date) (models.MonthDetail, error) {
	detail, err := r.api.GetBudgetMonth(ctx, r.budgetID, month)
	if err != nil {
		return models.MonthDetail{}, fmt.Errorf("get budget month %s: %w", month, err)
	}
	return detail, nil
}

// GetMonthCategoryByID fetches a single category as budgeted for a month.
func (r *Repository) GetMonthCategoryByID(ctx context.Context, month models.Date, categoryID string) (models.Category, error) {
	category, err := r.api.GetMonthCategory(ctx, r.budgetID, month, categoryID)
	if err != nil {
		return models.Category{}, fmt.Errorf("get month category %s: %w", categoryID, err)
	}
	return category, nil
}

// UpdateMonthCategory sets a category's budgeted amount for a month, then
// invalidates the cached category groups: their budgeted/activity/balance
// amounts are stale the moment the server accepts the change.
func (r *Repository) UpdateMonthCategory(ctx context.Context, month models.Date, categoryID string, budgeted models.Milliunits) (models.Category, error) {
	category, err := r.api.UpdateMonthCategory(ctx, r.budgetID, month, categoryID, budgeted)
	if err != nil {
		return models.Category{}, fmt.Errorf("update month category %s: %w", categoryID, err)
	}

	r.mu.Lock()
	r.store.CategoryGroups.Clear()
	r.mu.Unlock()

	return category, nil
}

// UpdateTransaction applies changes to one transaction, then invalidates the
// cached transactions so the next read full-refreshes.
func (r *Repository) UpdateTransaction(ctx context.Context, transactionID string, changes models.SaveTransaction) (models.TransactionDetail, error) {
	transaction, err := r.api.UpdateTransaction(ctx, r.budgetID, transactionID, changes)
	if err != nil {
		return models.TransactionDetail{}, fmt.Errorf("update transaction %s: %w", transactionID, err)
	}

	r.mu.Lock()
	r.store.Transactions.Clear()
	r.mu.Unlock()

	return transaction, nil
}
