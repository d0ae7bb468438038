package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commission-engine/core/types"
)

// acceleratorSchedule is the standard three-tier ladder used across
// the engine tests: 10% to quota, 15% to 125%, 20% uncapped.
func acceleratorSchedule() []types.Tier {
	return []types.Tier{
		types.NewTier("Base", 0, 100, 10),
		types.NewTier("Accelerator", 100, 125, 15),
		types.NewUncappedTier("Super Accelerator", 125, 20),
	}
}

func TestCalculateCommissionZeroQuota(t *testing.T) {
	for _, quota := range []float64{0, -1, -100000} {
		calc := CalculateCommission(150000, quota, acceleratorSchedule())

		assert.Equal(t, 0.0, calc.GrossCommission)
		assert.Empty(t, calc.TierBreakdown)
		assert.Equal(t, 0.0, calc.AttainmentPercent)
	}
}

func TestCalculateCommissionSingleFlatTier(t *testing.T) {
	tiers := []types.Tier{types.NewUncappedTier("Flat", 0, 8)}

	calc := CalculateCommission(250000, 200000, tiers)

	assert.InDelta(t, 250000*0.08, calc.GrossCommission, 1e-9)
	assert.InDelta(t, 125.0, calc.AttainmentPercent, 1e-9)
	require.Len(t, calc.TierBreakdown, 1)
	assert.Equal(t, "Flat", calc.TierBreakdown[0].TierName)
	assert.InDelta(t, 250000.0, calc.TierBreakdown[0].BookingsInTier, 1e-9)
}

func TestCalculateCommissionAcceleratorLadder(t *testing.T) {
	calc := CalculateCommission(150000, 100000, acceleratorSchedule())

	assert.InDelta(t, 150.0, calc.AttainmentPercent, 1e-9)
	assert.InDelta(t, 18750.0, calc.GrossCommission, 1e-9)

	require.Len(t, calc.TierBreakdown, 3)

	assert.Equal(t, "Base", calc.TierBreakdown[0].TierName)
	assert.InDelta(t, 100000.0, calc.TierBreakdown[0].BookingsInTier, 1e-9)
	assert.InDelta(t, 10000.0, calc.TierBreakdown[0].CommissionAmount, 1e-9)

	assert.Equal(t, "Accelerator", calc.TierBreakdown[1].TierName)
	assert.InDelta(t, 25000.0, calc.TierBreakdown[1].BookingsInTier, 1e-9)
	assert.InDelta(t, 3750.0, calc.TierBreakdown[1].CommissionAmount, 1e-9)

	assert.Equal(t, "Super Accelerator", calc.TierBreakdown[2].TierName)
	assert.InDelta(t, 25000.0, calc.TierBreakdown[2].BookingsInTier, 1e-9)
	assert.InDelta(t, 5000.0, calc.TierBreakdown[2].CommissionAmount, 1e-9)
}

func TestCalculateCommissionSkipsEmptyTiers(t *testing.T) {
	// Bookings stop inside the base tier; the accelerators hold nothing.
	calc := CalculateCommission(60000, 100000, acceleratorSchedule())

	assert.InDelta(t, 6000.0, calc.GrossCommission, 1e-9)
	require.Len(t, calc.TierBreakdown, 1)
	assert.Equal(t, "Base", calc.TierBreakdown[0].TierName)
}

func TestCalculateCommissionZeroBookings(t *testing.T) {
	calc := CalculateCommission(0, 100000, acceleratorSchedule())

	assert.Equal(t, 0.0, calc.GrossCommission)
	assert.Empty(t, calc.TierBreakdown)
	assert.Equal(t, 0.0, calc.AttainmentPercent)
}

func TestCalculateCommissionUnsortedInput(t *testing.T) {
	// Tier order in the input must not matter; the breakdown comes out
	// ascending by floor either way.
	shuffled := []types.Tier{
		types.NewUncappedTier("Super Accelerator", 125, 20),
		types.NewTier("Base", 0, 100, 10),
		types.NewTier("Accelerator", 100, 125, 15),
	}

	calc := CalculateCommission(150000, 100000, shuffled)

	assert.InDelta(t, 18750.0, calc.GrossCommission, 1e-9)
	require.Len(t, calc.TierBreakdown, 3)
	assert.Equal(t, "Base", calc.TierBreakdown[0].TierName)
	assert.Equal(t, "Super Accelerator", calc.TierBreakdown[2].TierName)
}

func TestCalculateCommissionExactQuota(t *testing.T) {
	// At exactly 100% attainment the base tier is full and the first
	// accelerator holds nothing.
	calc := CalculateCommission(100000, 100000, acceleratorSchedule())

	assert.InDelta(t, 100.0, calc.AttainmentPercent, 1e-9)
	assert.InDelta(t, 10000.0, calc.GrossCommission, 1e-9)
	require.Len(t, calc.TierBreakdown, 1)
}

func TestCalculateCommissionOverlapDoubleCounts(t *testing.T) {
	// The range-subtraction scheme double-counts bookings that fall in
	// two overlapping tiers. Documented behavior, not a bug to fix:
	// plan validation flags overlapping schedules upstream.
	overlapping := []types.Tier{
		types.NewTier("A", 0, 100, 10),
		types.NewTier("B", 50, 150, 10),
	}

	calc := CalculateCommission(100000, 100000, overlapping)

	// Tier A holds 100000, tier B holds 50000 of the same bookings.
	assert.InDelta(t, 15000.0, calc.GrossCommission, 1e-9)
}
