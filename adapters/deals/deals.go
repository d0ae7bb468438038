// Package deals provides deal export parsing.
// Deal lists arrive as a JSON array exported from the CRM, already
// filtered to one owner and fiscal period. Input order is preserved:
// the attribution calculator's stable sort depends on it for deals
// sharing a close date.
package deals

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"commission-engine/core/types"
	"commission-engine/internal/errors"
)

// dealRecord is the export wire format
type dealRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	CloseDate string  `json:"close_date"`
}

// closeDateFormats are accepted close date layouts, tried in order
var closeDateFormats = []string{
	time.RFC3339,
	"2006-01-02",
}

// Load reads and parses a deal export file.
func Load(path string) ([]types.Deal, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to open deal export %s", path)
	}
	defer file.Close()
	return Parse(file)
}

// Parse parses a JSON deal export.
func Parse(r io.Reader) ([]types.Deal, error) {
	var records []dealRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Parsing("invalid deal export", err)
	}

	result := make([]types.Deal, 0, len(records))
	for i, record := range records {
		closeDate, err := parseCloseDate(record.CloseDate)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "deal %d (%s): bad close_date %q", i, record.ID, record.CloseDate)
		}
		result = append(result, types.Deal{
			ID:        record.ID,
			Name:      record.Name,
			Amount:    record.Amount,
			CloseDate: closeDate,
		})
	}
	return result, nil
}

// TotalBookings sums deal amounts, for the aggregate path when no
// separate bookings total is supplied.
func TotalBookings(deals []types.Deal) float64 {
	var total float64
	for _, deal := range deals {
		total += deal.Amount
	}
	return total
}

func parseCloseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range closeDateFormats {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
