package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// formatMoney renders an amount with two decimals and the currency symbol.
func formatMoney(currency string, amount float64) string {
	return fmt.Sprintf("%s%.2f", currency, amount)
}

// formatOptionalMoney renders a nullable cost; nil is shown as "-".
func formatOptionalMoney(currency string, amount *float64) string {
	if amount == nil {
		return "-"
	}
	return formatMoney(currency, *amount)
}

// truncate shortens a string to max runes with ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// bar draws value as a horizontal bar scaled so that maxValue fills width.
// Any non-zero value gets at least one block.
func bar(value, maxValue, width int) string {
	if value <= 0 || maxValue <= 0 || width <= 0 {
		return ""
	}
	n := value * width / maxValue
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", min(n, width))
}

// floatBar is bar for amounts.
func floatBar(value, maxValue float64, width int) string {
	if value <= 0 || maxValue <= 0 {
		return ""
	}
	return bar(int(value*1000), int(maxValue*1000), width)
}

// joinOrDash joins values, or returns "-" when there are none.
func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

// formatDetails renders audit details as sorted key=value pairs.
func formatDetails(details map[string]any) string {
	if len(details) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(details))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, details[k])
	}
	return strings.Join(parts, " ")
}

// describeCost explains an idea's price, e.g. "₹1500.00 per person".
func describeCost(currency string, idea entities.Idea) string {
	if idea.Cost() == 0 {
		return "free"
	}
	if idea.CostType() == entities.CostTypePerPerson {
		return formatMoney(currency, idea.Cost()) + " per person"
	}
	return formatMoney(currency, idea.Cost()) + " total"
}

func contains(slice []string, item string) bool {
	return slices.Contains(slice, item)
}
