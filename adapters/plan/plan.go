// Package plan provides commission plan file parsing.
// Plans are authored in HCL: a quota plus an ordered set of tier
// blocks. Omitted tier attributes follow the engine's defaults — floor
// and rate default to 0, a missing ceiling means the tier is uncapped.
package plan

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"commission-engine/core/types"
	"commission-engine/internal/errors"
)

// Plan is a parsed commission plan.
type Plan struct {
	// Name is the plan label
	Name string `json:"name"`

	// Quota is the quota for the plan period
	Quota float64 `json:"quota"`

	// Currency is the plan currency code
	Currency string `json:"currency"`

	// Tiers is the tier schedule in authored order
	Tiers []types.Tier `json:"tiers"`
}

// planFile is the HCL file schema
type planFile struct {
	Plans []planBlock `hcl:"plan,block"`
}

type planBlock struct {
	Name     string      `hcl:"name,label"`
	Quota    float64     `hcl:"quota"`
	Currency *string     `hcl:"currency"`
	Tiers    []tierBlock `hcl:"tier,block"`
}

type tierBlock struct {
	Name    string   `hcl:"name,label"`
	Floor   float64  `hcl:"floor,optional"`
	Ceiling *float64 `hcl:"ceiling"`
	Rate    float64  `hcl:"rate,optional"`
}

// Load reads and parses a plan file.
func Load(path string) ([]Plan, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to read plan file %s", path)
	}
	return Parse(src, path)
}

// Parse parses HCL plan source. The filename is used in diagnostics.
func Parse(src []byte, filename string) ([]Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid plan file", diags)
	}

	var root planFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, errors.Parsing("invalid plan definition", diags)
	}

	plans := make([]Plan, 0, len(root.Plans))
	for _, block := range root.Plans {
		plans = append(plans, decodePlan(block))
	}
	return plans, nil
}

// Select returns the named plan, or the only plan when name is empty.
func Select(plans []Plan, name string) (*Plan, error) {
	if name == "" {
		if len(plans) == 1 {
			return &plans[0], nil
		}
		return nil, errors.Newf(errors.TypeInput, "plan file defines %d plans, specify one by name", len(plans))
	}
	for i := range plans {
		if plans[i].Name == name {
			return &plans[i], nil
		}
	}
	return nil, errors.NotFound("plan", name)
}

// Schedule returns the plan's normalized tier schedule.
func (p *Plan) Schedule() types.Schedule {
	return types.NormalizeSchedule(p.Tiers)
}

func decodePlan(block planBlock) Plan {
	plan := Plan{
		Name:  block.Name,
		Quota: block.Quota,
		Tiers: make([]types.Tier, 0, len(block.Tiers)),
	}
	// Currency stays empty when the plan does not set it; the caller
	// applies its configured default.
	if block.Currency != nil {
		plan.Currency = *block.Currency
	}

	for _, tier := range block.Tiers {
		if tier.Ceiling != nil {
			plan.Tiers = append(plan.Tiers, types.NewTier(tier.Name, tier.Floor, *tier.Ceiling, tier.Rate))
		} else {
			plan.Tiers = append(plan.Tiers, types.NewUncappedTier(tier.Name, tier.Floor, tier.Rate))
		}
	}
	return plan
}
