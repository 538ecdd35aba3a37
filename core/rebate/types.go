// Package rebate - PK rebate tier selection
// Picks the single best rebate tier a PK score qualifies for, per match type.
package rebate

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

// Tier is a threshold-based reward: a score at or above Threshold earns Rebate.
type Tier struct {
	Threshold int64           `json:"threshold"`
	Rebate    decimal.Decimal `json:"rebate"`
}

// Table maps a category label (a PK match type) to its tiers.
type Table map[string][]Tier

// Outcome is the selection made for one category
type Outcome struct {
	Category string `json:"category"`

	// Eligible reports whether any tier was met
	Eligible bool `json:"eligible"`

	// Threshold and Rebate describe the selected tier when Eligible
	Threshold int64
	Rebate    decimal.Decimal

	// MinThreshold is the lowest threshold of the category when not Eligible
	MinThreshold int64
}

type eligibleJSON struct {
	Category  string          `json:"category"`
	Eligible  bool            `json:"eligible"`
	Threshold int64           `json:"threshold"`
	Rebate    decimal.Decimal `json:"rebate"`
}

type ineligibleJSON struct {
	Category     string `json:"category"`
	Eligible     bool   `json:"eligible"`
	MinThreshold int64  `json:"min_threshold"`
}

// MarshalJSON emits only the fields meaningful for the outcome's state.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Eligible {
		return json.Marshal(eligibleJSON{o.Category, true, o.Threshold, o.Rebate})
	}
	return json.Marshal(ineligibleJSON{o.Category, false, o.MinThreshold})
}

// NewTier builds a tier from an integer rebate.
func NewTier(threshold, rebate int64) Tier {
	return Tier{Threshold: threshold, Rebate: decimal.NewFromInt(rebate)}
}

// Categories returns the table's category labels in sorted order.
func (t Table) Categories() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
