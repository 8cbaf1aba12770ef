package mcp

import (
	"github.com/MKhiriev/go-budget-keeper/models"
)

// Views are the JSON shapes tools return. They mirror the domain models but
// render milliunit amounts as exact decimal strings; the month views
// additionally carry the raw milliunits so callers that budget in milliunits
// can round-trip without re-parsing.

type accountView struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	OnBudget         bool    `json:"on_budget"`
	Closed           bool    `json:"closed"`
	Note             *string `json:"note,omitempty"`
	Balance          string  `json:"balance"`
	ClearedBalance   string  `json:"cleared_balance"`
	UnclearedBalance string  `json:"uncleared_balance"`
	TransferPayeeID  *string `json:"transfer_payee_id,omitempty"`
}

func newAccountView(a models.Account) accountView {
	return accountView{
		ID:               a.ID,
		Name:             a.Name,
		Type:             a.Type,
		OnBudget:         a.OnBudget,
		Closed:           a.Closed,
		Note:             a.Note,
		Balance:          a.Balance.Decimal(),
		ClearedBalance:   a.ClearedBalance.Decimal(),
		UnclearedBalance: a.UnclearedBalance.Decimal(),
		TransferPayeeID:  a.TransferPayeeID,
	}
}

type categoryView struct {
	ID                     string             `json:"id"`
	Name                   string             `json:"name"`
	CategoryGroupID        string             `json:"category_group_id"`
	CategoryGroupName      string             `json:"category_group_name,omitempty"`
	Hidden                 bool               `json:"hidden"`
	Note                   *string            `json:"note,omitempty"`
	Budgeted               string             `json:"budgeted"`
	Activity               string             `json:"activity"`
	Balance                string             `json:"balance"`
	GoalType               *string            `json:"goal_type,omitempty"`
	GoalTarget             *string            `json:"goal_target,omitempty"`
	GoalPercentageComplete *int               `json:"goal_percentage_complete,omitempty"`
	GoalUnderFunded        *string            `json:"goal_under_funded,omitempty"`
	BudgetedMilliunits     *models.Milliunits `json:"budgeted_milliunits,omitempty"`
	ActivityMilliunits     *models.Milliunits `json:"activity_milliunits,omitempty"`
	BalanceMilliunits      *models.Milliunits `json:"balance_milliunits,omitempty"`
}

func newCategoryView(c models.Category, groupName string) categoryView {
	v := categoryView{
		ID:                     c.ID,
		Name:                   c.Name,
		CategoryGroupID:        c.CategoryGroupID,
		CategoryGroupName:      groupName,
		Hidden:                 c.Hidden,
		Note:                   c.Note,
		Budgeted:               c.Budgeted.Decimal(),
		Activity:               c.Activity.Decimal(),
		Balance:                c.Balance.Decimal(),
		GoalType:               c.GoalType,
		GoalPercentageComplete: c.GoalPercentageComplete,
	}
	if c.GoalTarget != nil {
		target := models.Milliunits(*c.GoalTarget).Decimal()
		v.GoalTarget = &target
	}
	if c.GoalUnderFunded != nil {
		underFunded := models.Milliunits(*c.GoalUnderFunded).Decimal()
		v.GoalUnderFunded = &underFunded
	}
	return v
}

// newMonthCategoryView is newCategoryView plus the raw milliunit amounts.
func newMonthCategoryView(c models.Category, groupName string) categoryView {
	v := newCategoryView(c, groupName)
	v.BudgetedMilliunits = &c.Budgeted
	v.ActivityMilliunits = &c.Activity
	v.BalanceMilliunits = &c.Balance
	return v
}

type categoryGroupView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Hidden        bool   `json:"hidden"`
	CategoryCount int    `json:"category_count"`
	TotalBudgeted string `json:"total_budgeted"`
	TotalActivity string `json:"total_activity"`
	TotalBalance  string `json:"total_balance"`
}

func newCategoryGroupView(g models.CategoryGroup) categoryGroupView {
	var count int
	var budgeted, activity, balance models.Milliunits
	for _, c := range g.Categories {
		if c.Deleted || c.Hidden {
			continue
		}
		count++
		budgeted += c.Budgeted
		activity += c.Activity
		balance += c.Balance
	}

	return categoryGroupView{
		ID:            g.ID,
		Name:          g.Name,
		Hidden:        g.Hidden,
		CategoryCount: count,
		TotalBudgeted: budgeted.Decimal(),
		TotalActivity: activity.Decimal(),
		TotalBalance:  balance.Decimal(),
	}
}

type subtransactionView struct {
	ID           string  `json:"id"`
	Amount       string  `json:"amount"`
	Memo         *string `json:"memo,omitempty"`
	PayeeID      *string `json:"payee_id,omitempty"`
	PayeeName    *string `json:"payee_name,omitempty"`
	CategoryID   *string `json:"category_id,omitempty"`
	CategoryName *string `json:"category_name,omitempty"`
}

type transactionView struct {
	ID                string               `json:"id"`
	Date              models.Date          `json:"date"`
	Amount            string               `json:"amount"`
	Memo              *string              `json:"memo,omitempty"`
	Cleared           string               `json:"cleared"`
	Approved          bool                 `json:"approved"`
	FlagColor         *string              `json:"flag_color,omitempty"`
	AccountID         string               `json:"account_id"`
	AccountName       *string              `json:"account_name,omitempty"`
	PayeeID           *string              `json:"payee_id,omitempty"`
	PayeeName         *string              `json:"payee_name,omitempty"`
	CategoryID        *string              `json:"category_id,omitempty"`
	CategoryName      *string              `json:"category_name,omitempty"`
	TransferAccountID *string              `json:"transfer_account_id,omitempty"`
	ImportID          *string              `json:"import_id,omitempty"`
	Subtransactions   []subtransactionView `json:"subtransactions,omitempty"`
}

func newTransactionView(t models.TransactionDetail) transactionView {
	v := transactionView{
		ID:                t.ID,
		Date:              t.Date,
		Amount:            t.Amount.Decimal(),
		Memo:              t.Memo,
		Cleared:           t.Cleared,
		Approved:          t.Approved,
		FlagColor:         t.FlagColor,
		AccountID:         t.AccountID,
		AccountName:       t.AccountName,
		PayeeID:           t.PayeeID,
		PayeeName:         t.PayeeName,
		CategoryID:        t.CategoryID,
		CategoryName:      t.CategoryName,
		TransferAccountID: t.TransferAccountID,
		ImportID:          t.ImportID,
	}
	for _, sub := range t.Subtransactions {
		if sub.Deleted {
			continue
		}
		v.Subtransactions = append(v.Subtransactions, subtransactionView{
			ID:           sub.ID,
			Amount:       sub.Amount.Decimal(),
			Memo:         sub.Memo,
			PayeeID:      sub.PayeeID,
			PayeeName:    sub.PayeeName,
			CategoryID:   sub.CategoryID,
			CategoryName: sub.CategoryName,
		})
	}
	return v
}

type scheduledTransactionView struct {
	ID                string      `json:"id"`
	DateFirst         models.Date `json:"date_first"`
	DateNext          models.Date `json:"date_next"`
	Frequency         string      `json:"frequency"`
	Amount            string      `json:"amount"`
	Memo              *string     `json:"memo,omitempty"`
	FlagColor         *string     `json:"flag_color,omitempty"`
	AccountID         string      `json:"account_id"`
	AccountName       *string     `json:"account_name,omitempty"`
	PayeeID           *string     `json:"payee_id,omitempty"`
	PayeeName         *string     `json:"payee_name,omitempty"`
	CategoryID        *string     `json:"category_id,omitempty"`
	CategoryName      *string     `json:"category_name,omitempty"`
	TransferAccountID *string     `json:"transfer_account_id,omitempty"`
}

func newScheduledTransactionView(s models.ScheduledTransaction) scheduledTransactionView {
	return scheduledTransactionView{
		ID:                s.ID,
		DateFirst:         s.DateFirst,
		DateNext:          s.DateNext,
		Frequency:         s.Frequency,
		Amount:            s.Amount.Decimal(),
		Memo:              s.Memo,
		FlagColor:         s.FlagColor,
		AccountID:         s.AccountID,
		AccountName:       s.AccountName,
		PayeeID:           s.PayeeID,
		PayeeName:         s.PayeeName,
		CategoryID:        s.CategoryID,
		CategoryName:      s.CategoryName,
		TransferAccountID: s.TransferAccountID,
	}
}

type monthView struct {
	Month                  models.Date       `json:"month"`
	Note                   *string           `json:"note,omitempty"`
	Income                 string            `json:"income"`
	Budgeted               string            `json:"budgeted"`
	Activity               string            `json:"activity"`
	ToBeBudgeted           string            `json:"to_be_budgeted"`
	AgeOfMoney             *int              `json:"age_of_money,omitempty"`
	Categories             []categoryView    `json:"categories"`
	IncomeMilliunits       models.Milliunits `json:"income_milliunits"`
	BudgetedMilliunits     models.Milliunits `json:"budgeted_milliunits"`
	ActivityMilliunits     models.Milliunits `json:"activity_milliunits"`
	ToBeBudgetedMilliunits models.Milliunits `json:"to_be_budgeted_milliunits"`
	Pagination             paginationInfo    `json:"pagination"`
}
