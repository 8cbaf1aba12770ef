package models

// Subtransaction is one leg of a split transaction.
type Subtransaction struct {
	ID                    string     `json:"id"`
	TransactionID         string     `json:"transaction_id"`
	Amount                Milliunits `json:"amount"`
	Memo                  *string    `json:"memo,omitempty"`
	PayeeID               *string    `json:"payee_id,omitempty"`
	PayeeName             *string    `json:"payee_name,omitempty"`
	CategoryID            *string    `json:"category_id,omitempty"`
	CategoryName          *string    `json:"category_name,omitempty"`
	TransferAccountID     *string    `json:"transfer_account_id,omitempty"`
	TransferTransactionID *string    `json:"transfer_transaction_id,omitempty"`
	Deleted               bool       `json:"deleted"`
}

// TransactionDetail is a fully-populated transaction as returned by the
// budget-wide transactions endpoints. The account/category/payee filter
// endpoints return the same shape with some name fields absent, so one type
// covers both.
type TransactionDetail struct {
	ID                    string           `json:"id"`
	Date                  Date             `json:"date"`
	Amount                Milliunits       `json:"amount"`
	Memo                  *string          `json:"memo,omitempty"`
	Cleared               string           `json:"cleared"`
	Approved              bool             `json:"approved"`
	FlagColor             *string          `json:"flag_color,omitempty"`
	AccountID             string           `json:"account_id"`
	AccountName           *string          `json:"account_name,omitempty"`
	PayeeID               *string          `json:"payee_id,omitempty"`
	PayeeName             *string          `json:"payee_name,omitempty"`
	CategoryID            *string          `json:"category_id,omitempty"`
	CategoryName          *string          `json:"category_name,omitempty"`
	TransferAccountID     *string          `json:"transfer_account_id,omitempty"`
	TransferTransactionID *string          `json:"transfer_transaction_id,omitempty"`
	MatchedTransactionID  *string          `json:"matched_transaction_id,omitempty"`
	ImportID              *string          `json:"import_id,omitempty"`
	ImportPayeeName       *string          `json:"import_payee_name,omitempty"`
	Deleted               bool             `json:"deleted"`
	Subtransactions       []Subtransaction `json:"subtransactions,omitempty"`
}

func (t TransactionDetail) EntityID() string { return t.ID }
func (t TransactionDetail) IsDeleted() bool  { return t.Deleted }

// SaveTransaction carries the mutable fields of a transaction update.
// Nil pointers mean "leave unchanged" and are omitted from the request body.
type SaveTransaction struct {
	AccountID  *string     `json:"account_id,omitempty"`
	Date       *Date       `json:"date,omitempty"`
	Amount     *Milliunits `json:"amount,omitempty"`
	PayeeID    *string     `json:"payee_id,omitempty"`
	PayeeName  *string     `json:"payee_name,omitempty"`
	CategoryID *string     `json:"category_id,omitempty"`
	Memo       *string     `json:"memo,omitempty"`
	Cleared    *string     `json:"cleared,omitempty"`
	Approved   *bool       `json:"approved,omitempty"`
	FlagColor  *string     `json:"flag_color,omitempty"`
}
