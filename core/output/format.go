// Package output provides statement formatting and rendering.
// This package owns the display contract: currency as whole-dollar
// amounts, percentages with a configurable decimal count. Formatting is
// driven entirely by an explicit FormatConfig, never by ambient locale.
package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatConfig controls number rendering.
type FormatConfig struct {
	// PercentDecimals is the number of decimal places for percentages
	PercentDecimals int `json:"percent_decimals"`

	// CurrencySymbol prefixes currency amounts
	CurrencySymbol string `json:"currency_symbol"`

	// ShowBreakdown includes the per-tier breakdown in terminal output
	ShowBreakdown bool `json:"show_breakdown"`
}

// DefaultFormatConfig returns the standard USD configuration.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		PercentDecimals: 1,
		CurrencySymbol:  "$",
		ShowBreakdown:   true,
	}
}

// Currency renders an amount as whole currency units with thousands
// grouping and no decimal places, e.g. 18750.4 -> "$18,750".
func (c FormatConfig) Currency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)

	digits := d.Abs().String()
	grouped := groupThousands(digits)

	symbol := c.CurrencySymbol
	if symbol == "" {
		symbol = "$"
	}
	if d.IsNegative() {
		return "-" + symbol + grouped
	}
	return symbol + grouped
}

// Percent renders a percentage value with the configured decimal count,
// e.g. 150.0 -> "150.0%".
func (c FormatConfig) Percent(percent float64) string {
	decimals := c.PercentDecimals
	if decimals < 0 {
		decimals = 0
	}
	return decimal.NewFromFloat(percent).StringFixed(int32(decimals)) + "%"
}

// Rate renders a fractional rate as a percentage, e.g. 0.15 -> "15.0%".
func (c FormatConfig) Rate(fraction float64) string {
	return c.Percent(fraction * 100)
}

// groupThousands inserts comma separators into a plain digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
