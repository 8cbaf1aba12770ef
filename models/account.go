package models

// Account is a YNAB account. Balances are in milliunits (1000 per currency
// unit); the tool layer converts them to decimal strings at the edge.
type Account struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Type             string     `json:"type"`
	OnBudget         bool       `json:"on_budget"`
	Closed           bool       `json:"closed"`
	Note             *string    `json:"note,omitempty"`
	Balance          Milliunits `json:"balance"`
	ClearedBalance   Milliunits `json:"cleared_balance"`
	UnclearedBalance Milliunits `json:"uncleared_balance"`
	TransferPayeeID  *string    `json:"transfer_payee_id,omitempty"`
	Deleted          bool       `json:"deleted"`
}

func (a Account) EntityID() string { return a.ID }
func (a Account) IsDeleted() bool  { return a.Deleted }
