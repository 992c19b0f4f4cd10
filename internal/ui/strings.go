package ui

import (
	"strings"

	"github.com/shopspring/decimal"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// formatPrice renders a rupee amount with two decimal places.
func formatPrice(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}
