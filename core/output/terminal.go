// Package output - Terminal statement rendering
package output

import (
	"fmt"
	"io"
)

// TerminalFormatter renders a human-readable statement table.
type TerminalFormatter struct {
	Config FormatConfig
}

// Format returns the format type
func (f *TerminalFormatter) Format() Format {
	return FormatCLI
}

// Render writes the statement as a boxed terminal table.
func (f *TerminalFormatter) Render(w io.Writer, statement *Statement) error {
	cfg := f.Config

	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                          COMMISSION STATEMENT                           │")
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")

	f.row(w, "Plan", statement.Plan)
	f.row(w, "Quota", cfg.Currency(statement.Quota))
	f.row(w, "Bookings", cfg.Currency(statement.Bookings))
	f.row(w, "Attainment", cfg.Percent(statement.Calculation.AttainmentPercent))

	if cfg.ShowBreakdown && len(statement.Calculation.TierBreakdown) > 0 {
		fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
		for _, entry := range statement.Calculation.TierBreakdown {
			label := fmt.Sprintf("%s (%s of %s)",
				truncate(entry.TierName, 24),
				cfg.Rate(entry.RateApplied),
				cfg.Currency(entry.BookingsInTier))
			f.row(w, "  "+label, cfg.Currency(entry.CommissionAmount))
		}
	}

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	f.row(w, "GROSS COMMISSION", cfg.Currency(statement.Calculation.GrossCommission))
	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")

	if len(statement.Attribution) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Deal attribution (close-date order):")
		for _, record := range statement.Attribution {
			fmt.Fprintf(w, "  %-28s %12s  %-14s %8s  att %s\n",
				truncate(record.DealName, 28),
				cfg.Currency(record.DealAmount),
				truncate(record.TierApplied, 14),
				cfg.Rate(record.CommissionRate),
				cfg.Percent(record.AttainmentAtDeal))
		}
	}

	fmt.Fprintf(w, "\nGenerated %s in %s\n", statement.Metadata.GeneratedAt, statement.Metadata.Duration)
	return nil
}

func (f *TerminalFormatter) row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "│ %-50s %20s │\n", truncate(label, 50), value)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
