// Package types - Aggregate calculation types
package types

// TierBreakdownEntry is one line of the per-tier commission breakdown.
// Entries exist only for tiers holding strictly positive bookings.
type TierBreakdownEntry struct {
	// TierName identifies the tier
	TierName string `json:"tier_name"`

	// BookingsInTier is the bookings amount that landed in this tier
	BookingsInTier float64 `json:"bookings_in_tier"`

	// RateApplied is the tier rate as a fraction
	RateApplied float64 `json:"rate_applied"`

	// CommissionAmount is BookingsInTier * RateApplied
	CommissionAmount float64 `json:"commission_amount"`
}

// CommissionCalculation is the aggregate commission result for a
// bookings total against a quota and tier schedule.
type CommissionCalculation struct {
	// GrossCommission is the total commission across all tiers
	GrossCommission float64 `json:"gross_commission"`

	// TierBreakdown lists per-tier amounts in ascending floor order
	TierBreakdown []TierBreakdownEntry `json:"tier_breakdown"`

	// AttainmentPercent is bookings / quota as a percentage; it may
	// exceed 100
	AttainmentPercent float64 `json:"attainment_percent"`
}
