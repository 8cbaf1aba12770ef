// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/go-budget-keeper/internal/adapter"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/models"
)

type Handler struct {
	repo          *service.Repository
	api           adapter.BudgetAPI
	defaultBudget string

	logger *logger.Logger
	now    func() time.Time
}

func NewHandler(repo *service.Repository, api adapter.BudgetAPI, defaultBudget string, logger *logger.Logger) *Handler {
	logger.Info().Msg("mcp handler created")
	return &Handler{
		repo:          repo,
		api:           api,
		defaultBudget: defaultBudget,
		logger:        logger,
		now:           time.Now,
	}
}

// Init builds the MCP server and registers every tool on it.
func (h *Handler) Init(name, version string) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	h.registerBudgetTools(s)
	h.registerAccountTools(s)
	h.registerCategoryTools(s)
	h.registerMonthTools(s)
	h.registerTransactionTools(s)
	h.registerPayeeTools(s)
	h.registerScheduledTools(s)
	h.registerUpdateTools(s)

	return s
}

// isDefault reports whether budgetID addresses the budget the repository
// caches. An empty budgetID means "the default budget".
func (h *Handler) isDefault(budgetID string) bool {
	return budgetID == "" || budgetID == h.defaultBudget
}

// jsonResult marshals v and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error marshaling tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// Cached collection access with a per-call budget override: the default
// budget reads through the repository cache, any other budget goes straight
// to the remote API.

func (h *Handler) accounts(ctx context.Context, budgetID string) ([]models.Account, error) {
	if h.isDefault(budgetID) {
		return h.repo.GetAccounts(ctx)
	}
	accounts, _, err := h.api.ListAccounts(ctx, budgetID, nil)
	return accounts, err
}

func (h *Handler) payees(ctx context.Context, budgetID string) ([]models.Payee, error) {
	if h.isDefault(budgetID) {
		return h.repo.GetPayees(ctx)
	}
	payees, _, err := h.api.ListPayees(ctx, budgetID, nil)
	return payees, err
}

func (h *Handler) categoryGroups(ctx context.Context, budgetID string) ([]models.CategoryGroup, error) {
	if h.isDefault(budgetID) {
		return h.repo.GetCategoryGroups(ctx)
	}
	groups, _, err := h.api.ListCategoryGroups(ctx, budgetID, nil)
	return groups, err
}

func (h *Handler) transactions(ctx context.Context, budgetID string) ([]models.TransactionDetail, error) {
	if h.isDefault(budgetID) {
		return h.repo.GetTransactions(ctx)
	}
	transactions, _, err := h.api.ListTransactions(ctx, budgetID, nil)
	return transactions, err
}

func (h *Handler) scheduledTransactions(ctx context.Context, budgetID string) ([]models.ScheduledTransaction, error) {
	if h.isDefault(budgetID) {
		return h.repo.GetScheduledTransactions(ctx)
	}
	scheduled, _, err := h.api.ListScheduledTransactions(ctx, budgetID, nil)
	return scheduled, err
}
