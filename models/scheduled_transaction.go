package models

// ScheduledTransaction is an upcoming recurring transaction. DateFirst is the
// schedule anchor, DateNext the next occurrence the server will materialise.
type ScheduledTransaction struct {
	ID                string     `json:"id"`
	DateFirst         Date       `json:"date_first"`
	DateNext          Date       `json:"date_next"`
	Frequency         string     `json:"frequency"`
	Amount            Milliunits `json:"amount"`
	Memo              *string    `json:"memo,omitempty"`
	FlagColor         *string    `json:"flag_color,omitempty"`
	AccountID         string     `json:"account_id"`
	AccountName       *string    `json:"account_name,omitempty"`
	PayeeID           *string    `json:"payee_id,omitempty"`
	PayeeName         *string    `json:"payee_name,omitempty"`
	CategoryID        *string    `json:"category_id,omitempty"`
	CategoryName      *string    `json:"category_name,omitempty"`
	TransferAccountID *string    `json:"transfer_account_id,omitempty"`
	Deleted           bool       `json:"deleted"`
}

func (s ScheduledTransaction) EntityID() string { return s.ID }
func (s ScheduledTransaction) IsDeleted() bool  { return s.Deleted }
