// Package output - JSON statement rendering
package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders a machine-readable statement.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the statement as indented JSON.
func (f *JSONFormatter) Render(w io.Writer, statement *Statement) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(statement)
}
