// Package output - Statement envelope and formatter interfaces
package output

import (
	"io"

	"commission-engine/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the statement to w
	Render(w io.Writer, statement *Statement) error
}

// Statement is the complete commission statement output.
type Statement struct {
	// Plan identifies the commission plan used
	Plan string `json:"plan"`

	// Currency is the plan currency code
	Currency string `json:"currency"`

	// Quota is the quota the statement was computed against
	Quota float64 `json:"quota"`

	// Bookings is the bookings total
	Bookings float64 `json:"bookings"`

	// Calculation is the aggregate commission result
	Calculation types.CommissionCalculation `json:"calculation"`

	// Attribution lists per-deal records in close-date order, when
	// deal-level attribution was requested
	Attribution []types.DealCommissionRecord `json:"attribution,omitempty"`

	// Metadata contains execution context
	Metadata StatementMetadata `json:"metadata"`
}

// StatementMetadata contains execution context
type StatementMetadata struct {
	// GeneratedAt is when the statement was produced
	GeneratedAt string `json:"generated_at"`

	// Duration is how long the computation took
	Duration string `json:"duration"`

	// Version is the tool version
	Version string `json:"version"`
}

// NewFormatter returns the formatter for a format type.
func NewFormatter(format Format, cfg FormatConfig) (Formatter, bool) {
	switch format {
	case FormatCLI:
		return &TerminalFormatter{Config: cfg}, true
	case FormatJSON:
		return &JSONFormatter{}, true
	default:
		return nil, false
	}
}
