package conversion

import (
	"testing"

	"github.com/shopspring/decimal"

	apperrors "agency-dash/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFlatConversions(t *testing.T) {
	rates := DefaultRates()

	diamonds, err := rates.BeansToDiamonds(d("2100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !diamonds.Equal(d("10")) {
		t.Errorf("2100 beans = %s diamonds, want 10", diamonds)
	}

	beans, err := rates.DiamondsToBeans(d("10.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if beans != 2205 {
		t.Errorf("10.5 diamonds = %d beans, want 2205", beans)
	}

	beans, err = rates.DiamondsToBeans(d("0.01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if beans != 2 {
		t.Errorf("0.01 diamonds = %d beans, want 2 (truncated)", beans)
	}

	usd, err := rates.DiamondsToUSD(d("1000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !usd.Equal(d("5")) {
		t.Errorf("1000 diamonds = $%s, want $5", usd)
	}
}

func TestConversionsRejectInvalidInput(t *testing.T) {
	rates := DefaultRates()
	if _, err := rates.BeansToDiamonds(d("-1")); !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
		t.Errorf("negative beans: expected INVALID_ARGUMENT, got %v", err)
	}

	broken := Rates{BeansPerDiamond: decimal.Zero, USDPerDiamond: d("0.005")}
	if _, err := broken.BeansToDiamonds(d("10")); !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
		t.Errorf("zero rate: expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestCalculatePKPerformance(t *testing.T) {
	rates := DefaultRates()

	perf, err := rates.CalculatePKPerformance(42000, 21000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !perf.ReceivedDiamonds.Equal(d("200")) || !perf.SentDiamonds.Equal(d("100")) {
		t.Errorf("unexpected diamonds: %+v", perf)
	}
	if !perf.NetDiamonds.Equal(d("100")) {
		t.Errorf("NetDiamonds = %s, want 100", perf.NetDiamonds)
	}
	if !perf.NetUSD.Equal(d("0.5")) {
		t.Errorf("NetUSD = %s, want 0.5", perf.NetUSD)
	}
	if !perf.EfficiencyPercent.Equal(d("200")) {
		t.Errorf("EfficiencyPercent = %s, want 200", perf.EfficiencyPercent)
	}

	perf, err = rates.CalculatePKPerformance(2100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !perf.EfficiencyPercent.IsZero() {
		t.Errorf("nothing sent should give zero efficiency, got %s", perf.EfficiencyPercent)
	}

	if _, err := rates.CalculatePKPerformance(-5, 0); !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestCalculateTargets(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		days          int
		current       string
		wantDaily     string
		wantRemaining string
		wantRequired  string
		wantPercent   string
		wantOnTrack   bool
	}{
		{"halfway and on pace", "9000", 15, "4500", "300", "4500", "300", "50", true},
		{"behind pace", "9000", 15, "3000", "300", "6000", "400", "33.3333", false},
		{"target exceeded", "3000", 10, "5000", "100", "0", "0", "166.6667", true},
		{"month over", "3000", 30, "1000", "100", "2000", "0", "33.3333", false},
		{"zero target", "0", 5, "10", "0", "0", "0", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateTargets(d(tt.target), tt.days, d(tt.current))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.DailyTarget.Equal(d(tt.wantDaily)) {
				t.Errorf("DailyTarget = %s, want %s", got.DailyTarget, tt.wantDaily)
			}
			if !got.RemainingTarget.Equal(d(tt.wantRemaining)) {
				t.Errorf("RemainingTarget = %s, want %s", got.RemainingTarget, tt.wantRemaining)
			}
			if !got.DailyRequired.Equal(d(tt.wantRequired)) {
				t.Errorf("DailyRequired = %s, want %s", got.DailyRequired, tt.wantRequired)
			}
			if !got.ProgressPercent.Equal(d(tt.wantPercent)) {
				t.Errorf("ProgressPercent = %s, want %s", got.ProgressPercent, tt.wantPercent)
			}
			if got.OnTrack != tt.wantOnTrack {
				t.Errorf("OnTrack = %v, want %v", got.OnTrack, tt.wantOnTrack)
			}
		})
	}

	if _, err := CalculateTargets(d("100"), 40, d("0")); !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT for 40 days, got %v", err)
	}
}
