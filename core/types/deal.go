// Package types - Deal and attribution types
package types

import "time"

// Deal is a single closed deal, already scoped to the correct owner and
// fiscal period by the upstream data-fetch layer.
type Deal struct {
	// ID uniquely identifies the deal
	ID string `json:"id"`

	// Name is the deal display name
	Name string `json:"name"`

	// Amount is the booked deal value
	Amount float64 `json:"amount"`

	// CloseDate is when the deal closed
	CloseDate time.Time `json:"close_date"`
}

// DealCommissionRecord is the per-deal commission attribution. The rate
// applied to a deal depends on the running attainment at the moment the
// deal closed, so record order is significant.
type DealCommissionRecord struct {
	// DealID identifies the attributed deal
	DealID string `json:"deal_id"`

	// DealName is the deal display name
	DealName string `json:"deal_name"`

	// DealAmount is the booked deal value
	DealAmount float64 `json:"deal_amount"`

	// CommissionRate is the applied rate as a fraction
	CommissionRate float64 `json:"commission_rate"`

	// CommissionAmount is DealAmount * CommissionRate
	CommissionAmount float64 `json:"commission_amount"`

	// TierApplied is the matched tier name, or BaseTierName when no
	// tier covered the attainment
	TierApplied string `json:"tier_applied"`

	// AttainmentAtDeal is the running attainment percentage after this
	// deal closed
	AttainmentAtDeal float64 `json:"attainment_at_deal"`

	// RunningBookings is the cumulative bookings through this deal
	RunningBookings float64 `json:"running_bookings"`
}
