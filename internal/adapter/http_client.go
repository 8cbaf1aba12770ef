package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public endpoint of the YNAB v1 API.
const DefaultBaseURL = "https://api.ynab.com/v1"

// HTTPClientConfig configures the resty-backed [BudgetAPI] implementation.
type HTTPClientConfig struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

type httpBudgetAPI struct {
	client *resty.Client
}

// NewHTTPBudgetAPI builds a [BudgetAPI] speaking the YNAB v1 REST protocol
// over HTTP. The access token is attached to every request as a bearer token.
func NewHTTPBudgetAPI(cfg HTTPClientConfig) BudgetAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.AccessToken)

	return &httpBudgetAPI{client: cli}
}

func (h *httpBudgetAPI) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	var out struct {
		Budgets []models.Budget `json:"budgets"`
	}
	if err := h.getJSON(ctx, "/budgets", nil, &out); err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return out.Budgets, nil
}

func (h *httpBudgetAPI) ListAccounts(ctx context.Context, budgetID string, since *int64) ([]models.Account, int64, error) {
	var out struct {
		Accounts        []models.Account `json:"accounts"`
		ServerKnowledge int64            `json:"server_knowledge"`
	}
	if err := h.getJSON(ctx, "/budgets/"+budgetID+"/accounts", sinceParams(since), &out); err != nil {
		return nil, 0, fmt.Errorf("list accounts: %w", err)
	}
	return out.Accounts, out.ServerKnowledge, nil
}

func (h *httpBudgetAPI) ListPayees(ctx context.Context, budgetID string, since *int64) ([]models.Payee, int64, error) {
	var out struct {
		Payees          []models.Payee `json:"payees"`
		ServerKnowledge int64          `json:"server_knowledge"`
	}
	if err := h.getJSON(ctx, "/budgets/"+budgetID+"/payees", sinceParams(since), &out); err != nil {
		return nil, 0, fmt.Errorf("list payees: %w", err)
	}
	return out.Payees, out.ServerKnowledge, nil
}

func (h *httpBudgetAPI) ListCategoryGroups(ctx context.Context, budgetID string, since *int64) ([]models.CategoryGroup, int64, error) {
	var out struct {
		CategoryGroups  []models.CategoryGroup `json:"category_groups"`
		ServerKnowledge int64                  `json:"server_knowledge"`
	}
	if err := h.getJSON(ctx, "/budgets/"+budgetID+"/categories", sinceParams(since), &out); err != nil {
		return nil, 0, fmt.Errorf("list category groups: %w", err)
	}
	return out.CategoryGroups, out.ServerKnowledge, nil
}

func (h *httpBudgetAPI) ListTransactions(ctx context.Context, budgetID string, since *int64) ([]models.TransactionDetail, int64, error) {
	var out struct {
		Transactions    []models.TransactionDetail `json:"transactions"`
		ServerKnowledge int64                      `json:"server_knowledge"`
	}
	if err := h.getJSON(ctx, "/budgets/"+budgetID+"/transactions", sinceParams(since), &out); err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	return out.Transactions, out.ServerKnowledge, nil
}

func (h *httpBudgetAPI) ListScheduledTransactions(ctx context.Context, budgetID string, since *int64) ([]models.ScheduledTransaction, int64, error) {
	var out struct {
		ScheduledTransactions []models.ScheduledTransaction `json:"scheduled_transactions"`
		ServerKnowledge       int64                         `json:"server_knowledge"`
	}
	if err := h.getJSON(ctx, "/budgets/"+budgetID+"/scheduled_transactions", sinceParams(since), &out); err != nil {
		return nil, 0, fmt.Errorf("list scheduled transactions: %w", err)
	}
	return out.ScheduledTransactions, out.ServerKnowledge, nil
}

func (h *httpBudgetAPI) ListTransactionsFiltered(ctx context.Context, budgetID string, filters TransactionFilters) ([]models.TransactionDetail, error) {
	path := "/budgets/" + budgetID + "/transactions"
	switch {
	case filters.AccountID != "":
		path = "/budgets/" + budgetID + "/accounts/" + filters.AccountID + "/transactions"
	case filters.CategoryID != "":
		path = "/budgets/" + budgetID + "/categories/" + filters.CategoryID + "/transactions"
	case filters.PayeeID != "":
		path = "/budgets/" + budgetID + "/payees/" + filters.PayeeID + "/transactions"
	}

	params := map[string]string{}
	if filters.SinceDate != nil {
		params["since_date"] = filters.SinceDate.String()
	}

	var out struct {
		Transactions []models.TransactionDetail `json:"transactions"`
	}
	if err := h.getJSON(ctx, path, params, &out); err != nil {
		return nil, fmt.Errorf("list transactions filtered: %w", err)
	}
	return out.Transactions, nil
}

func (h *httpBudgetAPI) GetTransaction(ctx context.Context, budgetID, transactionID string) (models.TransactionDetail, error) {
	var out struct {
		Transaction models.TransactionDetail `json:"transaction"`
	}
	if err := h.getJSON(ctx, "/budgets/"+budgetID+"/transactions/"+transactionID, nil, &out); err != nil {
		return models.TransactionDetail{}, fmt.Errorf("get transaction: %w", err)
	}
	return out.Transaction, nil
}

func (h *httpBudgetAPI) GetBudgetMonth(ctx context.Context, budgetID string, month models.Date) (models.MonthDetail, error) {
	var out struct {
		Month models.MonthDetail `json:"month"`
	}
	if err := h.getJSON(ctx, "/budgets/"+budgetID+"/months/"+month.String(), nil, &out); err != nil {
		return models.MonthDetail{}, fmt.Errorf("get budget month: %w", err)
	}
	return out.Month, nil
}

func (h *httpBudgetAPI) GetMonthCategory(ctx context.Context, budgetID string, month models.Date, categoryID string) (models.Category, error) {
	var out struct {
		Category models.Category `json:"category"`
	}
	path := "/budgets/" + budgetID + "/months/" + month.String() + "/categories/" + categoryID
	if err := h.getJSON(ctx, path, nil, &out); err != nil {
		return models.Category{}, fmt.Errorf("get month category: %w", err)
	}
	return out.Category, nil
}

func (h *httpBudgetAPI) UpdateMonthCategory(ctx context.Context, budgetID string, month models.Date, categoryID string, budgeted models.Milliunits) (models.Category, error) {
	body := map[string]any{
		"category": map[string]any{"budgeted": budgeted},
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Patch("/budgets/" + budgetID + "/months/" + month.String() + "/categories/" + categoryID)
	if err != nil {
		return models.Category{}, fmt.Errorf("update month category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}

	var out struct {
		Category models.Category `json:"category"`
	}
	if err = decodeEnvelope(resp.Body(), &out); err != nil {
		return models.Category{}, fmt.Errorf("decode update month category response: %w", err)
	}
	return out.Category, nil
}

func (h *httpBudgetAPI) UpdateTransaction(ctx context.Context, budgetID, transactionID string, changes models.SaveTransaction) (models.TransactionDetail, error) {
	body := map[string]any{"transaction": changes}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put("/budgets/" + budgetID + "/transactions/" + transactionID)
	if err != nil {
		return models.TransactionDetail{}, fmt.Errorf("update transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TransactionDetail{}, err
	}

	var out struct {
		Transaction models.TransactionDetail `json:"transaction"`
	}
	if err = decodeEnvelope(resp.Body(), &out); err != nil {
		return models.TransactionDetail{}, fmt.Errorf("decode update transaction response: %w", err)
	}
	return out.Transaction, nil
}

// getJSON performs a GET request and decodes the "data" envelope every YNAB
// response is wrapped in.
func (h *httpBudgetAPI) getJSON(ctx context.Context, path string, params map[string]string, out any) error {
	req := h.client.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = decodeEnvelope(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeEnvelope(body []byte, out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}

// sinceParams builds the delta-fetch query. A nil cursor returns no
// parameters at all: a full refresh is a distinct call shape, not
// "since cursor 0".
func sinceParams(since *int64) map[string]string {
	if since == nil {
		return nil
	}
	return map[string]string{"last_knowledge_of_server": strconv.FormatInt(*since, 10)}
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrCursorConflict
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}

	detail := strings.TrimSpace(string(resp.Body()))
	if detail == "" {
		detail = http.StatusText(code)
	}
	return &APIError{Status: code, Detail: detail}
}
