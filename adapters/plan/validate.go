// Package plan - Plan validation
// Well-formedness checks belong here, upstream of the engine. The
// calculators never reject a schedule; they produce a deterministic
// result from whatever they are handed.
package plan

import (
	"fmt"

	"commission-engine/core/types"
)

// Severity classifies a validation issue
type Severity string

const (
	// SeverityError marks a schedule the engine would misprice
	SeverityError Severity = "error"

	// SeverityWarning marks a schedule that computes but is suspect
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding
type Issue struct {
	// Severity is the issue severity
	Severity Severity `json:"severity"`

	// Tier names the offending tier, when tier-specific
	Tier string `json:"tier,omitempty"`

	// Message describes the issue
	Message string `json:"message"`
}

// Validate checks the plan for well-formedness. The aggregate
// calculator's range-subtraction scheme double-counts bookings across
// overlapping tiers, and the two calculators can disagree on which
// tier applies at an overlapped attainment, so overlap is reported as
// an error. Gaps compute cleanly (the attribution matcher falls back
// to the highest passed floor) and are reported as warnings.
func (p *Plan) Validate() []Issue {
	var issues []Issue

	if p.Quota <= 0 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("quota is %v; all calculations will return empty results", p.Quota),
		})
	}
	if len(p.Tiers) == 0 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  "plan has no tiers; every deal falls back to the zero-rate base sentinel",
		})
	}

	for _, tier := range p.Tiers {
		if tier.FloorPercent < 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Tier:     tier.Name,
				Message:  fmt.Sprintf("negative floor %v", tier.FloorPercent),
			})
		}
		if tier.RatePercent < 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Tier:     tier.Name,
				Message:  fmt.Sprintf("negative rate %v", tier.RatePercent),
			})
		}
		if !tier.Uncapped() && tier.Ceiling() <= tier.FloorPercent {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Tier:     tier.Name,
				Message:  fmt.Sprintf("ceiling %v does not exceed floor %v", tier.Ceiling(), tier.FloorPercent),
			})
		}
	}

	schedule := types.NormalizeSchedule(p.Tiers)
	for i := 1; i < len(schedule); i++ {
		prev, cur := schedule[i-1], schedule[i]
		switch {
		case prev.Uncapped():
			issues = append(issues, Issue{
				Severity: SeverityError,
				Tier:     prev.Name,
				Message:  fmt.Sprintf("uncapped tier %q is shadowed by tier %q above it", prev.Name, cur.Name),
			})
		case cur.FloorPercent < prev.Ceiling():
			issues = append(issues, Issue{
				Severity: SeverityError,
				Tier:     cur.Name,
				Message: fmt.Sprintf("tier %q (floor %v) overlaps tier %q (ceiling %v)",
					cur.Name, cur.FloorPercent, prev.Name, prev.Ceiling()),
			})
		case cur.FloorPercent > prev.Ceiling():
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Tier:     cur.Name,
				Message: fmt.Sprintf("gap between tier %q (ceiling %v) and tier %q (floor %v)",
					prev.Name, prev.Ceiling(), cur.Name, cur.FloorPercent),
			})
		}
	}

	return issues
}

// HasErrors reports whether any issue is error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
