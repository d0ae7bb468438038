// Package engine - Tier matching
package engine

import "commission-engine/core/types"

// MatchTier selects the tier applicable at the given attainment
// percentage. The schedule must already be in ascending floor order.
//
// A tier containing the attainment in its half-open [floor, ceiling)
// range wins immediately. A tier whose floor is at or below the
// attainment but whose ceiling has been passed is kept as a tentative
// candidate and may be superseded by a later tier; after a full scan
// the candidate is the tier with the greatest floor not exceeding the
// attainment, in practice the uncapped top tier once attainment clears
// every finite ceiling. Returns false when every floor lies above the
// attainment.
//
// Note this containment-scan rule is intentionally distinct from the
// range-subtraction scheme in CalculateCommission: on overlapping
// schedules the two can pick different tiers at the same attainment.
func MatchTier(schedule types.Schedule, attainmentPercent float64) (types.Tier, bool) {
	var best types.Tier
	found := false

	for _, tier := range schedule {
		if tier.Contains(attainmentPercent) {
			return tier, true
		}
		if tier.FloorPercent <= attainmentPercent {
			best = tier
			found = true
		}
	}

	return best, found
}
