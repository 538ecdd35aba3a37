package rebate

import (
	"sort"
	"strings"

	apperrors "agency-dash/internal/errors"
)

// ValidateTable rejects empty tables, blank category labels, empty tier
// lists and non-positive thresholds.
func ValidateTable(table Table) error {
	if len(table) == 0 {
		return apperrors.InvalidArgument("rebate table has no categories")
	}
	for category, tiers := range table {
		if strings.TrimSpace(category) == "" {
			return apperrors.InvalidArgument("rebate category label is empty")
		}
		if len(tiers) == 0 {
			return apperrors.InvalidArgumentf("category %q has no tiers", category).
				WithContext("category", category)
		}
		for i, tier := range tiers {
			if tier.Threshold <= 0 {
				return apperrors.InvalidArgumentf("category %q tier %d: threshold must be positive, got %d",
					category, i, tier.Threshold).WithContext("category", category)
			}
			if tier.Rebate.IsNegative() {
				return apperrors.InvalidArgumentf("category %q tier %d: rebate must not be negative",
					category, i).WithContext("category", category)
			}
		}
	}
	return nil
}

// LookupBestTier selects, for every category independently, the
// highest-threshold tier that score meets. Categories the score does not
// reach come back ineligible with their minimum threshold.
func LookupBestTier(score int64, table Table) (map[string]Outcome, error) {
	if score < 0 {
		return nil, apperrors.InvalidArgumentf("score must be non-negative, got %d", score)
	}
	if err := ValidateTable(table); err != nil {
		return nil, err
	}

	outcomes := make(map[string]Outcome, len(table))
	for category, tiers := range table {
		outcomes[category] = selectTier(score, category, tiers)
	}
	return outcomes, nil
}

// Sorted returns outcomes ordered by category label.
func Sorted(outcomes map[string]Outcome) []Outcome {
	list := make([]Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		list = append(list, o)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Category < list[j].Category
	})
	return list
}

func selectTier(score int64, category string, tiers []Tier) Outcome {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Threshold != sorted[j].Threshold {
			return sorted[i].Threshold > sorted[j].Threshold
		}
		return sorted[i].Rebate.GreaterThan(sorted[j].Rebate)
	})

	for _, tier := range sorted {
		if score >= tier.Threshold {
			return Outcome{
				Category:  category,
				Eligible:  true,
				Threshold: tier.Threshold,
				Rebate:    tier.Rebate,
			}
		}
	}

	return Outcome{
		Category:     category,
		Eligible:     false,
		MinThreshold: sorted[len(sorted)-1].Threshold,
	}
}
