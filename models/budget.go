package models

import "time"

// CurrencyFormat describes how amounts of a budget's currency should be
// rendered for display.
type CurrencyFormat struct {
	ISOCode          string `json:"iso_code"`
	ExampleFormat    string `json:"example_format"`
	DecimalDigits    int    `json:"decimal_digits"`
	DecimalSeparator string `json:"decimal_separator"`
	SymbolFirst      bool   `json:"symbol_first"`
	GroupSeparator   string `json:"group_separator"`
	CurrencySymbol   string `json:"currency_symbol"`
	DisplaySymbol    bool   `json:"display_symbol"`
}

// Budget is a YNAB budget summary with its currency metadata.
type Budget struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn *time.Time      `json:"last_modified_on,omitempty"`
	FirstMonth     *Date           `json:"first_month,omitempty"`
	LastMonth      *Date           `json:"last_month,omitempty"`
	CurrencyFormat *CurrencyFormat `json:"currency_format,omitempty"`
}
