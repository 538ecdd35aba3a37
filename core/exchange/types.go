// Package exchange - Tiered bundle exchange
// Converts a quantity of one currency into another by buying fixed-price
// bundles, largest bundle first.
package exchange

// Tier is one exchange bundle: paying Cost units buys Yield units.
type Tier struct {
	Cost  int64 `json:"cost"`
	Yield int64 `json:"yield"`
}

// TierApplication records how many bundles of a tier were bought
type TierApplication struct {
	Tier          Tier  `json:"tier"`
	Bundles       int64 `json:"bundles"`
	YieldFromTier int64 `json:"yield_from_tier"`
}

// Result is the outcome of a single breakdown
type Result struct {
	// Input is the quantity that was converted
	Input int64 `json:"input"`

	// TotalYield is the sum of YieldFromTier over Breakdown
	TotalYield int64 `json:"total_yield"`

	// Remainder is the part of Input no tier could absorb
	Remainder int64 `json:"remainder"`

	// Breakdown lists applied tiers in processing order
	Breakdown []TierApplication `json:"breakdown"`
}

// Spent returns the quantity consumed by bundle purchases.
func (r *Result) Spent() int64 {
	return r.Input - r.Remainder
}
