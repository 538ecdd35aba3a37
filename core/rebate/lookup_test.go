package rebate

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "agency-dash/internal/errors"
)

func TestLookupBestTierDailyPK(t *testing.T) {
	tests := []struct {
		name          string
		score         int64
		wantEligible  bool
		wantThreshold int64
		wantRebate    string
		wantMin       int64
	}{
		{"between tiers picks lower", 55000, true, 50000, "1000", 0},
		{"exact threshold qualifies", 100000, true, 100000, "1800", 0},
		{"above top tier", 5000000, true, 100000, "1800", 0},
		{"below minimum", 1000, false, 0, "", 7000},
		{"zero score", 0, false, 0, "", 7000},
	}

	table := Table{"Daily PK": PKRebates()["Daily PK"]}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcomes, err := LookupBestTier(tt.score, table)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, ok := outcomes["Daily PK"]
			if !ok {
				t.Fatal("Daily PK missing from outcomes")
			}
			if got.Eligible != tt.wantEligible {
				t.Fatalf("Eligible = %v, want %v", got.Eligible, tt.wantEligible)
			}
			if tt.wantEligible {
				if got.Threshold != tt.wantThreshold {
					t.Errorf("Threshold = %d, want %d", got.Threshold, tt.wantThreshold)
				}
				if !got.Rebate.Equal(decimal.RequireFromString(tt.wantRebate)) {
					t.Errorf("Rebate = %s, want %s", got.Rebate, tt.wantRebate)
				}
			} else if got.MinThreshold != tt.wantMin {
				t.Errorf("MinThreshold = %d, want %d", got.MinThreshold, tt.wantMin)
			}
		})
	}
}

func TestLookupBestTierCategoriesAreIndependent(t *testing.T) {
	score, err := DiamondsToScore(16000, ScorePerDiamond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outcomes, err := LookupBestTier(score, PKRebates())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(outcomes))
	}

	expect := map[string]int64{
		"Daily PK":        100000,
		"Talent PK":       50000,
		"2 vs 2 PK":       100000,
		"Star Tasks PK":   120000,
		"Agency Glory PK": 100000,
	}
	for category, threshold := range expect {
		o := outcomes[category]
		if !o.Eligible || o.Threshold != threshold {
			t.Errorf("%s: got %+v, want threshold %d", category, o, threshold)
		}
	}

	party := outcomes["Agency PK Party"]
	if !party.Eligible || !party.Rebate.Equal(decimal.RequireFromString("0.25")) {
		t.Errorf("Agency PK Party: got %+v, want rebate 0.25", party)
	}
}

func TestLookupBestTierUnsortedInput(t *testing.T) {
	table := Table{
		"Custom": {NewTier(10, 1), NewTier(1000, 50), NewTier(100, 7)},
	}
	outcomes, err := LookupBestTier(150, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := outcomes["Custom"]; got.Threshold != 100 {
		t.Errorf("expected threshold 100, got %+v", got)
	}
	if table["Custom"][0].Threshold != 10 {
		t.Error("input tiers were reordered")
	}
}

func TestLookupBestTierEqualThresholdPrefersHigherRebate(t *testing.T) {
	table := Table{"Custom": {NewTier(100, 5), NewTier(100, 9)}}
	outcomes, err := LookupBestTier(100, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := outcomes["Custom"].Rebate; !got.Equal(decimal.NewFromInt(9)) {
		t.Errorf("Rebate = %s, want 9", got)
	}
}

func TestLookupBestTierRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		score int64
		table Table
	}{
		{"negative score", -1, PKRebates()},
		{"no categories", 10, Table{}},
		{"empty category", 10, Table{"Daily PK": {}}},
		{"blank label", 10, Table{" ": {NewTier(1, 1)}}},
		{"zero threshold", 10, Table{"Daily PK": {NewTier(0, 1)}}},
		{"negative rebate", 10, Table{"Daily PK": {NewTier(5, -1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LookupBestTier(tt.score, tt.table)
			if !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
				t.Errorf("expected INVALID_ARGUMENT, got %v", err)
			}
		})
	}
}

func TestOutcomeJSON(t *testing.T) {
	outcomes, err := LookupBestTier(1000, Table{"Daily PK": PKRebates()["Daily PK"]})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(outcomes["Daily PK"])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"eligible":false`) || !strings.Contains(s, `"min_threshold":7000`) {
		t.Errorf("unexpected JSON: %s", s)
	}
	if strings.Contains(s, "rebate") {
		t.Errorf("ineligible outcome should not carry a rebate: %s", s)
	}
}

func TestSortedOrdersByCategory(t *testing.T) {
	outcomes, err := LookupBestTier(0, PKRebates())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := Sorted(outcomes)
	for i := 1; i < len(list); i++ {
		if list[i-1].Category > list[i].Category {
			t.Fatalf("not sorted: %s before %s", list[i-1].Category, list[i].Category)
		}
	}
}

func TestDiamondsToScore(t *testing.T) {
	tests := []struct {
		name       string
		diamonds   int64
		perDiamond int64
		want       int64
		wantErr    bool
	}{
		{name: "default multiplier", diamonds: 1600, perDiamond: ScorePerDiamond, want: 16000},
		{name: "zero diamonds", diamonds: 0, perDiamond: ScorePerDiamond, want: 0},
		{name: "largest exact product", diamonds: math.MaxInt64 / 10, perDiamond: 10, want: math.MaxInt64 / 10 * 10},
		{name: "product would wrap", diamonds: 1844674407370955162, perDiamond: 10, wantErr: true},
		{name: "negative diamonds", diamonds: -1, perDiamond: 10, wantErr: true},
		{name: "zero multiplier", diamonds: 5, perDiamond: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiamondsToScore(tt.diamonds, tt.perDiamond)
			if tt.wantErr {
				if !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
					t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}
