package exchange

import (
	"math"
	"testing"

	apperrors "agency-dash/internal/errors"
)

func TestComputeBreakdownScenarios(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int64
		wantYield     int64
		wantRemainder int64
		wantBreakdown []TierApplication
	}{
		{
			name:          "zero beans buys nothing",
			quantity:      0,
			wantYield:     0,
			wantRemainder: 0,
			wantBreakdown: []TierApplication{},
		},
		{
			name:          "11000 beans buys one top bundle",
			quantity:      11000,
			wantYield:     3045,
			wantRemainder: 1,
			wantBreakdown: []TierApplication{
				{Tier: Tier{Cost: 10999, Yield: 3045}, Bundles: 1, YieldFromTier: 3045},
			},
		},
		{
			name:          "15107 beans walks three tiers to zero",
			quantity:      15107,
			wantYield:     4179,
			wantRemainder: 0,
			wantBreakdown: []TierApplication{
				{Tier: Tier{Cost: 10999, Yield: 3045}, Bundles: 1, YieldFromTier: 3045},
				{Tier: Tier{Cost: 3999, Yield: 1105}, Bundles: 1, YieldFromTier: 1105},
				{Tier: Tier{Cost: 109, Yield: 29}, Bundles: 1, YieldFromTier: 29},
			},
		},
		{
			name:          "below smallest bundle keeps everything",
			quantity:      7,
			wantYield:     0,
			wantRemainder: 7,
			wantBreakdown: []TierApplication{},
		},
		{
			name:          "multiple bundles of one tier",
			quantity:      24,
			wantYield:     6,
			wantRemainder: 0,
			wantBreakdown: []TierApplication{
				{Tier: Tier{Cost: 8, Yield: 2}, Bundles: 3, YieldFromTier: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeBreakdown(tt.quantity, BeansToDiamonds)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.TotalYield != tt.wantYield {
				t.Errorf("TotalYield = %d, want %d", result.TotalYield, tt.wantYield)
			}
			if result.Remainder != tt.wantRemainder {
				t.Errorf("Remainder = %d, want %d", result.Remainder, tt.wantRemainder)
			}
			if len(result.Breakdown) != len(tt.wantBreakdown) {
				t.Fatalf("Breakdown has %d entries, want %d: %+v", len(result.Breakdown), len(tt.wantBreakdown), result.Breakdown)
			}
			for i, want := range tt.wantBreakdown {
				if result.Breakdown[i] != want {
					t.Errorf("Breakdown[%d] = %+v, want %+v", i, result.Breakdown[i], want)
				}
			}
		})
	}
}

func TestComputeBreakdownInvariants(t *testing.T) {
	tables := map[string][]Tier{
		"beans": BeansToDiamonds,
		"unsorted": {
			{Cost: 7, Yield: 1},
			{Cost: 50, Yield: 9},
			{Cost: 13, Yield: 2},
		},
		"single": {{Cost: 3, Yield: 5}},
	}

	for name, tiers := range tables {
		t.Run(name, func(t *testing.T) {
			for q := int64(0); q <= 25000; q += 37 {
				result, err := ComputeBreakdown(q, tiers)
				if err != nil {
					t.Fatalf("q=%d: unexpected error: %v", q, err)
				}

				// conservation
				var spent, yield int64
				for _, ta := range result.Breakdown {
					if ta.Bundles <= 0 {
						t.Fatalf("q=%d: zero-bundle tier in breakdown: %+v", q, ta)
					}
					if ta.YieldFromTier != ta.Bundles*ta.Tier.Yield {
						t.Fatalf("q=%d: inconsistent tier yield: %+v", q, ta)
					}
					spent += ta.Bundles * ta.Tier.Cost
					yield += ta.YieldFromTier
				}
				if spent+result.Remainder != q {
					t.Fatalf("q=%d: spent %d + remainder %d != input", q, spent, result.Remainder)
				}
				if yield != result.TotalYield {
					t.Fatalf("q=%d: TotalYield %d != breakdown sum %d", q, result.TotalYield, yield)
				}
				if result.Spent() != spent {
					t.Fatalf("q=%d: Spent() = %d, want %d", q, result.Spent(), spent)
				}

				// remainder is below every processed tier it could afford
				var maxAffordable int64
				for _, tier := range tiers {
					if tier.Cost <= q && tier.Cost > maxAffordable {
						maxAffordable = tier.Cost
					}
				}
				if maxAffordable == 0 {
					if result.Remainder != q {
						t.Fatalf("q=%d: no tier applicable but remainder = %d", q, result.Remainder)
					}
				} else if result.Remainder < 0 || result.Remainder >= maxAffordable {
					t.Fatalf("q=%d: remainder %d not below %d", q, result.Remainder, maxAffordable)
				}
			}
		})
	}
}

func TestComputeBreakdownMonotonic(t *testing.T) {
	var previous int64
	for q := int64(0); q <= 30000; q++ {
		result, err := ComputeBreakdown(q, BeansToDiamonds)
		if err != nil {
			t.Fatalf("q=%d: unexpected error: %v", q, err)
		}
		if result.TotalYield < previous {
			t.Fatalf("yield dropped from %d to %d at q=%d", previous, result.TotalYield, q)
		}
		previous = result.TotalYield
	}
}

// Greedy by cost is not globally optimal for non-canonical tables. The
// engine still takes the largest tier first.
func TestComputeBreakdownGreedyIsNotOptimal(t *testing.T) {
	tiers := []Tier{
		{Cost: 100, Yield: 1},
		{Cost: 60, Yield: 2},
		{Cost: 40, Yield: 2},
	}

	result, err := ComputeBreakdown(100, tiers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalYield != 1 {
		t.Fatalf("greedy yield = %d, want 1", result.TotalYield)
	}
	if result.Remainder != 0 {
		t.Fatalf("remainder = %d, want 0", result.Remainder)
	}

	alternative := tiers[1].Yield + tiers[2].Yield
	if alternative <= result.TotalYield {
		t.Fatalf("expected 60+40 combination (%d) to beat greedy (%d)", alternative, result.TotalYield)
	}
}

func TestComputeBreakdownRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		quantity int64
		tiers    []Tier
	}{
		{"negative quantity", -1, BeansToDiamonds},
		{"empty table", 100, []Tier{}},
		{"nil table", 100, nil},
		{"zero cost", 100, []Tier{{Cost: 0, Yield: 1}}},
		{"negative yield", 100, []Tier{{Cost: 10, Yield: 1}, {Cost: 5, Yield: -2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeBreakdown(tt.quantity, tt.tiers)
			if err == nil {
				t.Fatalf("expected error, got result %+v", result)
			}
			if !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
				t.Errorf("expected INVALID_ARGUMENT, got %v", err)
			}
		})
	}
}

func TestComputeBreakdownTieBreak(t *testing.T) {
	tiers := []Tier{
		{Cost: 10, Yield: 3},
		{Cost: 10, Yield: 4},
		{Cost: 4, Yield: 1},
	}

	result, err := ComputeBreakdown(25, tiers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Breakdown) != 2 {
		t.Fatalf("expected 2 applied tiers, got %+v", result.Breakdown)
	}
	if result.Breakdown[0].Tier != (Tier{Cost: 10, Yield: 4}) {
		t.Errorf("equal cost should prefer higher yield, got %+v", result.Breakdown[0].Tier)
	}
	if result.TotalYield != 9 || result.Remainder != 1 {
		t.Errorf("got yield %d remainder %d, want 9 and 1", result.TotalYield, result.Remainder)
	}
}

func TestComputeBreakdownDoesNotMutateInput(t *testing.T) {
	tiers := []Tier{
		{Cost: 8, Yield: 2},
		{Cost: 10999, Yield: 3045},
		{Cost: 109, Yield: 29},
	}
	original := append([]Tier(nil), tiers...)

	if _, err := ComputeBreakdown(20000, tiers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range tiers {
		if tiers[i] != original[i] {
			t.Fatalf("input table reordered: %+v", tiers)
		}
	}
}

func TestDefaultTablesAreCopies(t *testing.T) {
	tables := DefaultTables()
	tables["beans_to_diamonds"][0].Cost = 1

	if BeansToDiamonds[0].Cost != 10999 {
		t.Fatal("DefaultTables leaked the package table")
	}
}

func TestComputeBreakdownRejectsYieldOverflow(t *testing.T) {
	generous := []Tier{{Cost: 1, Yield: 2}}

	tests := []struct {
		name     string
		quantity int64
		tiers    []Tier
	}{
		{name: "single tier product wraps", quantity: math.MaxInt64, tiers: generous},
		{name: "just past the limit", quantity: math.MaxInt64/2 + 1, tiers: generous},
		{
			name:     "running total wraps across tiers",
			quantity: math.MaxInt64,
			tiers:    []Tier{{Cost: 2, Yield: 2}, {Cost: 1, Yield: math.MaxInt64}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeBreakdown(tt.quantity, tt.tiers)
			if !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
				t.Fatalf("expected INVALID_ARGUMENT, got result %+v err %v", result, err)
			}
		})
	}
}

func TestComputeBreakdownAtArithmeticLimits(t *testing.T) {
	// The largest quantity a 1:2 tier can convert without wrapping.
	q := int64(math.MaxInt64 / 2)
	result, err := ComputeBreakdown(q, []Tier{{Cost: 1, Yield: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalYield != q*2 || result.Remainder != 0 {
		t.Errorf("got yield %d remainder %d, want %d and 0", result.TotalYield, result.Remainder, q*2)
	}

	// The built-in table never yields more than it costs, so the maximum quantity is safe.
	result, err = ComputeBreakdown(math.MaxInt64, BeansToDiamonds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var spent int64
	for _, ta := range result.Breakdown {
		spent += ta.Bundles * ta.Tier.Cost
	}
	if result.TotalYield <= 0 || spent+result.Remainder != math.MaxInt64 {
		t.Errorf("unexpected result at max quantity: %+v", result)
	}
}
