package models

// MonthDetail is a single budget month with its aggregate amounts and the
// per-category breakdown for that month.
type MonthDetail struct {
	Month        Date       `json:"month"`
	Note         *string    `json:"note,omitempty"`
	Income       Milliunits `json:"income"`
	Budgeted     Milliunits `json:"budgeted"`
	Activity     Milliunits `json:"activity"`
	ToBeBudgeted Milliunits `json:"to_be_budgeted"`
	AgeOfMoney   *int       `json:"age_of_money,omitempty"`
	Deleted      bool       `json:"deleted"`
	Categories   []Category `json:"categories"`
}
