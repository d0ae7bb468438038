// Package types - Commission domain types
package types

import (
	"math"
	"sort"
)

// BaseTierName is the sentinel tier name reported when no tier in a
// schedule covers a deal's attainment. It carries a zero rate.
const BaseTierName = "Base"

// Tier represents a single commission bracket in an accelerator schedule.
// Percent fields are whole-number percentages of quota (10 means 10%);
// they are converted to fractions only inside the calculators.
type Tier struct {
	// Name is the display name of the tier
	Name string `json:"name"`

	// FloorPercent is the attainment at which the tier starts
	FloorPercent float64 `json:"floor_percent"`

	// CeilingPercent is the attainment at which the tier ends.
	// nil means the tier is uncapped.
	CeilingPercent *float64 `json:"ceiling_percent,omitempty"`

	// RatePercent is the commission rate applied inside the tier
	RatePercent float64 `json:"rate_percent"`
}

// NewTier creates a capped tier covering the half-open attainment
// range [floor, ceiling).
func NewTier(name string, floor, ceiling, rate float64) Tier {
	return Tier{
		Name:           name,
		FloorPercent:   floor,
		CeilingPercent: &ceiling,
		RatePercent:    rate,
	}
}

// NewUncappedTier creates a tier with no upper bound. It applies to all
// attainment at or above its floor.
func NewUncappedTier(name string, floor, rate float64) Tier {
	return Tier{
		Name:         name,
		FloorPercent: floor,
		RatePercent:  rate,
	}
}

// Uncapped reports whether the tier has no ceiling.
func (t Tier) Uncapped() bool {
	return t.CeilingPercent == nil
}

// Ceiling returns the tier ceiling as an attainment percentage,
// +Inf for uncapped tiers.
func (t Tier) Ceiling() float64 {
	if t.CeilingPercent == nil {
		return math.Inf(1)
	}
	return *t.CeilingPercent
}

// Rate returns the commission rate as a fraction (0.10 for 10%).
func (t Tier) Rate() float64 {
	return t.RatePercent / 100
}

// Contains reports whether the attainment percentage falls inside the
// tier's half-open [floor, ceiling) range. Attainment exactly at the
// ceiling belongs to the next tier, not this one.
func (t Tier) Contains(attainmentPercent float64) bool {
	return t.FloorPercent <= attainmentPercent && attainmentPercent < t.Ceiling()
}

// Schedule is a tier schedule ordered ascending by floor.
type Schedule []Tier

// NormalizeSchedule returns the tiers stable-sorted ascending by floor.
// Ties preserve input order. The caller's slice is never modified; the
// calculators operate only on the returned copy.
func NormalizeSchedule(tiers []Tier) Schedule {
	schedule := make(Schedule, len(tiers))
	copy(schedule, tiers)
	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].FloorPercent < schedule[j].FloorPercent
	})
	return schedule
}
