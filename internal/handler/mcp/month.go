package mcp

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-keeper/models"
)

// resolveMonth turns a month argument into the first day of the month it
// names. Accepted values are an ISO date ("2026-08-01"), the literals
// "current", "last" and "next", or the empty string (same as "current").
func resolveMonth(arg string, now time.Time) (models.Date, error) {
	year, month := now.Year(), now.Month()

	switch arg {
	case "", "current":
		return models.NewDate(year, month, 1), nil
	case "last":
		return models.NewDate(year, month-1, 1), nil
	case "next":
		return models.NewDate(year, month+1, 1), nil
	}

	d, err := models.ParseDate(arg)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid month %q: use an ISO date or current|last|next", arg)
	}
	return d, nil
}
