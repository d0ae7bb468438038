// Package engine implements the commission calculators.
// Both calculators are pure functions: no I/O, no shared state, and
// deterministic under IEEE 754 double-precision arithmetic. They are
// safe to call concurrently across independent statements.
package engine

import (
	"math"

	"commission-engine/core/types"
)

// CalculateCommission computes total commission and a per-tier
// breakdown for a bookings total against a quota and tier schedule.
//
// Each tier is treated as a bookings range [floor%*quota, ceiling%*quota);
// the bookings that land inside a tier's range earn that tier's rate.
// This range-subtraction scheme assumes a contiguous, non-overlapping
// schedule: overlapping tiers double-count the overlapped bookings.
//
// A non-positive quota yields a zero result with an empty breakdown.
func CalculateCommission(bookings, quota float64, tiers []types.Tier) types.CommissionCalculation {
	if quota <= 0 {
		return types.CommissionCalculation{TierBreakdown: []types.TierBreakdownEntry{}}
	}

	calc := types.CommissionCalculation{
		TierBreakdown:     []types.TierBreakdownEntry{},
		AttainmentPercent: bookings / quota * 100,
	}

	for _, tier := range types.NormalizeSchedule(tiers) {
		floorAmount := tier.FloorPercent / 100 * quota
		ceilingAmount := math.Inf(1)
		if !tier.Uncapped() {
			ceilingAmount = tier.Ceiling() / 100 * quota
		}

		bookingsAboveFloor := math.Max(bookings-floorAmount, 0)
		bookingsInTier := math.Min(bookingsAboveFloor, ceilingAmount-floorAmount)
		if bookingsInTier <= 0 {
			continue
		}

		commission := bookingsInTier * tier.Rate()
		calc.GrossCommission += commission
		calc.TierBreakdown = append(calc.TierBreakdown, types.TierBreakdownEntry{
			TierName:         tier.Name,
			BookingsInTier:   bookingsInTier,
			RateApplied:      tier.Rate(),
			CommissionAmount: commission,
		})
	}

	return calc
}
