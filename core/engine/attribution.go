// Package engine - Per-deal commission attribution
package engine

import (
	"sort"

	"commission-engine/core/types"
)

// AttributeDeals computes a per-deal commission record for each deal,
// ordered ascending by close date. Each deal's rate is taken from the
// tier covering the running attainment at the moment the deal closed,
// so deal order changes results; the close-date sort is stable and ties
// preserve input order.
//
// A non-positive quota or an empty deal list yields an empty sequence.
// No records are emitted for quota <= 0 even when deals exist.
func AttributeDeals(deals []types.Deal, quota float64, tiers []types.Tier) []types.DealCommissionRecord {
	if quota <= 0 || len(deals) == 0 {
		return []types.DealCommissionRecord{}
	}

	schedule := types.NormalizeSchedule(tiers)

	sorted := make([]types.Deal, len(deals))
	copy(sorted, deals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CloseDate.Before(sorted[j].CloseDate)
	})

	records := make([]types.DealCommissionRecord, 0, len(sorted))
	var runningBookings float64

	for _, deal := range sorted {
		runningBookings += deal.Amount
		attainment := runningBookings / quota * 100

		rate := 0.0
		tierName := types.BaseTierName
		if tier, ok := MatchTier(schedule, attainment); ok {
			rate = tier.Rate()
			tierName = tier.Name
		}

		records = append(records, types.DealCommissionRecord{
			DealID:           deal.ID,
			DealName:         deal.Name,
			DealAmount:       deal.Amount,
			CommissionRate:   rate,
			CommissionAmount: deal.Amount * rate,
			TierApplied:      tierName,
			AttainmentAtDeal: attainment,
			RunningBookings:  runningBookings,
		})
	}

	return records
}
