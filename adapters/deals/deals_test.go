package deals

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `[
  {"id": "d2", "name": "Globex", "amount": 50000, "close_date": "2026-01-10"},
  {"id": "d1", "name": "Acme", "amount": 60000, "close_date": "2026-01-05T09:30:00Z"},
  {"id": "d3", "name": "Initech", "amount": 40000, "close_date": "2026-01-20"}
]`

func TestParsePreservesInputOrder(t *testing.T) {
	parsed, err := Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.Len(t, parsed, 3)

	// Input order is preserved; sorting is the calculator's job.
	assert.Equal(t, "d2", parsed[0].ID)
	assert.Equal(t, "d1", parsed[1].ID)
	assert.Equal(t, "d3", parsed[2].ID)
}

func TestParseCloseDateFormats(t *testing.T) {
	parsed, err := Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), parsed[0].CloseDate)
	assert.Equal(t, time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC), parsed[1].CloseDate)
}

func TestParseRejectsBadCloseDate(t *testing.T) {
	src := `[{"id": "d1", "name": "Acme", "amount": 100, "close_date": "Jan 5"}]`

	_, err := Parse(strings.NewReader(src))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "close_date")
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"not": "an array"`))
	assert.Error(t, err)
}

func TestParseEmptyExport(t *testing.T) {
	parsed, err := Parse(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

func TestTotalBookings(t *testing.T) {
	parsed, err := Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	assert.InDelta(t, 150000.0, TotalBookings(parsed), 1e-9)
	assert.Equal(t, 0.0, TotalBookings(nil))
}
