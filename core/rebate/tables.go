package rebate

import (
	"math"

	"github.com/shopspring/decimal"

	apperrors "agency-dash/internal/errors"
)

// ScorePerDiamond is how many PK score points one diamond is worth.
const ScorePerDiamond = 10

// DiamondsToScore converts diamonds spent in a match into PK score at
// perDiamond points each.
func DiamondsToScore(diamonds, perDiamond int64) (int64, error) {
	if diamonds < 0 {
		return 0, apperrors.InvalidArgumentf("diamonds must be non-negative, got %d", diamonds)
	}
	if perDiamond <= 0 {
		return 0, apperrors.InvalidArgumentf("score per diamond must be positive, got %d", perDiamond)
	}
	if diamonds > math.MaxInt64/perDiamond {
		return 0, apperrors.InvalidArgumentf("%d diamonds is too large to score", diamonds)
	}
	return diamonds * perDiamond, nil
}

// PKRebates returns the built-in PK rebate table. Each call builds a
// fresh map so callers may edit the result.
func PKRebates() Table {
	return Table{
		"Daily PK": {
			NewTier(100000, 1800), NewTier(50000, 1000), NewTier(30000, 900),
			NewTier(20000, 600), NewTier(10000, 300), NewTier(7000, 210),
		},
		"Talent PK": {
			NewTier(50000, 1700), NewTier(30000, 1000), NewTier(20000, 700),
			NewTier(10000, 350), NewTier(5000, 150),
		},
		"2 vs 2 PK": {
			NewTier(100000, 3500), NewTier(70000, 2300), NewTier(50000, 1700),
			NewTier(25000, 800), NewTier(10000, 300), NewTier(5000, 150),
		},
		"Star Tasks PK": {
			NewTier(120000, 4000), NewTier(100000, 3500), NewTier(80000, 2800),
			NewTier(50000, 1700), NewTier(10000, 320), NewTier(2000, 60),
		},
		"Agency PK Party": {
			{Threshold: 150000, Rebate: decimal.RequireFromString("0.25")},
		},
		"Agency Glory PK": {
			NewTier(900000, 35000), NewTier(300000, 12000), NewTier(100000, 4000),
			NewTier(70000, 2800), NewTier(50000, 2000), NewTier(30000, 1200),
		},
	}
}
