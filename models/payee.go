package models

// Payee is an entity money is paid to or received from. A payee with a
// non-nil TransferAccountID represents the synthetic "Transfer : <account>"
// payee YNAB creates for inter-account transfers.
type Payee struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	TransferAccountID *string `json:"transfer_account_id,omitempty"`
	Deleted           bool    `json:"deleted"`
}

func (p Payee) EntityID() string { return p.ID }
func (p Payee) IsDeleted() bool  { return p.Deleted }
