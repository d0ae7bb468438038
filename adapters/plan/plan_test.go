package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `
plan "fy26-enterprise" {
  quota    = 100000
  currency = "USD"

  tier "Base" {
    floor   = 0
    ceiling = 100
    rate    = 10
  }

  tier "Accelerator" {
    floor   = 100
    ceiling = 125
    rate    = 15
  }

  tier "Super Accelerator" {
    floor = 125
    rate  = 20
  }
}
`

func TestParseSamplePlan(t *testing.T) {
	plans, err := Parse([]byte(samplePlan), "plan.hcl")
	require.NoError(t, err)
	require.Len(t, plans, 1)

	p := plans[0]
	assert.Equal(t, "fy26-enterprise", p.Name)
	assert.Equal(t, 100000.0, p.Quota)
	assert.Equal(t, "USD", p.Currency)
	require.Len(t, p.Tiers, 3)

	assert.Equal(t, "Base", p.Tiers[0].Name)
	assert.Equal(t, 100.0, p.Tiers[0].Ceiling())
	assert.Equal(t, 10.0, p.Tiers[0].RatePercent)

	assert.True(t, p.Tiers[2].Uncapped(), "tier without ceiling is uncapped")
	assert.Equal(t, 125.0, p.Tiers[2].FloorPercent)
}

func TestParseDefaults(t *testing.T) {
	src := `
plan "minimal" {
  quota = 50000

  tier "Only" {}
}
`
	plans, err := Parse([]byte(src), "plan.hcl")
	require.NoError(t, err)
	require.Len(t, plans, 1)

	p := plans[0]
	assert.Equal(t, "", p.Currency, "currency stays empty for the caller's configured default")
	require.Len(t, p.Tiers, 1)
	assert.Equal(t, 0.0, p.Tiers[0].FloorPercent, "floor defaults to 0")
	assert.Equal(t, 0.0, p.Tiers[0].RatePercent, "rate defaults to 0")
	assert.True(t, p.Tiers[0].Uncapped(), "missing ceiling means uncapped")
}

func TestParseInvalidSource(t *testing.T) {
	_, err := Parse([]byte(`plan "broken" {`), "plan.hcl")
	assert.Error(t, err)
}

func TestSelectByName(t *testing.T) {
	src := `
plan "a" {
  quota = 1000
}
plan "b" {
  quota = 2000
}
`
	plans, err := Parse([]byte(src), "plan.hcl")
	require.NoError(t, err)
	require.Len(t, plans, 2)

	selected, err := Select(plans, "b")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, selected.Quota)

	_, err = Select(plans, "missing")
	assert.Error(t, err)

	_, err = Select(plans, "")
	assert.Error(t, err, "ambiguous when several plans exist and no name given")

	only, err := Select(plans[:1], "")
	require.NoError(t, err)
	assert.Equal(t, "a", only.Name)
}

func TestValidateCleanPlan(t *testing.T) {
	plans, err := Parse([]byte(samplePlan), "plan.hcl")
	require.NoError(t, err)

	issues := plans[0].Validate()
	assert.Empty(t, issues)
}

func TestValidateFindings(t *testing.T) {
	src := `
plan "bad" {
  quota = 0

  tier "Negative" {
    floor   = -10
    ceiling = 50
    rate    = -5
  }

  tier "Inverted" {
    floor   = 80
    ceiling = 60
    rate    = 10
  }
}
`
	plans, err := Parse([]byte(src), "plan.hcl")
	require.NoError(t, err)

	issues := plans[0].Validate()
	require.NotEmpty(t, issues)
	assert.True(t, HasErrors(issues))

	var messages []string
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}
	joined := ""
	for _, m := range messages {
		joined += m + "\n"
	}
	assert.Contains(t, joined, "negative floor")
	assert.Contains(t, joined, "negative rate")
	assert.Contains(t, joined, "does not exceed floor")
	assert.Contains(t, joined, "quota is 0")
}

func TestValidateOverlapAndGap(t *testing.T) {
	src := `
plan "ladder" {
  quota = 100000

  tier "A" {
    floor   = 0
    ceiling = 100
    rate    = 10
  }

  tier "B" {
    floor   = 90
    ceiling = 120
    rate    = 15
  }

  tier "C" {
    floor = 150
    rate  = 20
  }
}
`
	plans, err := Parse([]byte(src), "plan.hcl")
	require.NoError(t, err)

	issues := plans[0].Validate()

	var overlap, gap bool
	for _, issue := range issues {
		if issue.Severity == SeverityError && issue.Tier == "B" {
			overlap = true
		}
		if issue.Severity == SeverityWarning && issue.Tier == "C" {
			gap = true
		}
	}
	assert.True(t, overlap, "B overlaps A and must be an error")
	assert.True(t, gap, "gap between B and C must be a warning")
}

func TestValidateShadowedUncappedTier(t *testing.T) {
	src := `
plan "shadow" {
  quota = 100000

  tier "Open" {
    floor = 0
    rate  = 10
  }

  tier "Above" {
    floor = 100
    rate  = 15
  }
}
`
	plans, err := Parse([]byte(src), "plan.hcl")
	require.NoError(t, err)

	issues := plans[0].Validate()
	require.NotEmpty(t, issues)
	assert.True(t, HasErrors(issues))
	assert.Equal(t, "Open", issues[0].Tier)
}
