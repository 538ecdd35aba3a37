package exchange

import (
	"math"
	"sort"

	apperrors "agency-dash/internal/errors"
)

// ValidateTiers rejects empty tables and tiers with non-positive cost or yield.
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return apperrors.InvalidArgument("tier table is empty")
	}
	for i, t := range tiers {
		if t.Cost <= 0 {
			return apperrors.InvalidArgumentf("tier %d: cost must be positive, got %d", i, t.Cost).
				WithContext("tier", i)
		}
		if t.Yield <= 0 {
			return apperrors.InvalidArgumentf("tier %d: yield must be positive, got %d", i, t.Yield).
				WithContext("tier", i)
		}
	}
	return nil
}

// SortTiers returns a copy of tiers ordered by cost descending.
// Equal costs put the higher yield first; full ties keep input order.
func SortTiers(tiers []Tier) []Tier {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Cost != sorted[j].Cost {
			return sorted[i].Cost > sorted[j].Cost
		}
		return sorted[i].Yield > sorted[j].Yield
	})
	return sorted
}

// ComputeBreakdown spends quantity on as many bundles of the most expensive
// affordable tier as possible, then moves down the table.
//
// The result is greedy with respect to cost order only. Tables that are
// not canonical can leave yield on the table compared with a hand-picked
// combination.
func ComputeBreakdown(quantity int64, tiers []Tier) (*Result, error) {
	if quantity < 0 {
		return nil, apperrors.InvalidArgumentf("quantity must be non-negative, got %d", quantity)
	}
	if err := ValidateTiers(tiers); err != nil {
		return nil, err
	}

	result := &Result{
		Input:     quantity,
		Breakdown: make([]TierApplication, 0, len(tiers)),
	}

	remaining := quantity
	for _, tier := range SortTiers(tiers) {
		if remaining < tier.Cost {
			continue
		}
		bundles := remaining / tier.Cost
		if bundles > math.MaxInt64/tier.Yield {
			return nil, apperrors.InvalidArgumentf("%d bundles of yield %d overflow the total", bundles, tier.Yield)
		}
		gained := bundles * tier.Yield
		if result.TotalYield > math.MaxInt64-gained {
			return nil, apperrors.InvalidArgumentf("total yield overflows at quantity %d", quantity)
		}
		result.TotalYield += gained
		remaining -= bundles * tier.Cost
		result.Breakdown = append(result.Breakdown, TierApplication{
			Tier:          tier,
			Bundles:       bundles,
			YieldFromTier: gained,
		})
	}

	result.Remainder = remaining
	return result, nil
}
