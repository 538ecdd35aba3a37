package paysheet

import (
	"testing"

	"github.com/shopspring/decimal"

	apperrors "agency-dash/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		entry     HostEntry
		wantBase  string
		wantPerf  string
		wantPK    string
		wantAtt   string
		wantGross string
		wantFinal string
	}{
		{
			name: "below bonus threshold",
			entry: HostEntry{
				ID: "h1", Name: "Mia", DiamondsEarned: d("5000"), PKWins: 3, DaysWorked: 25,
			},
			wantBase: "2000", wantPerf: "0", wantPK: "1500", wantAtt: "0",
			wantGross: "3500", wantFinal: "3500",
		},
		{
			name: "every bonus applies",
			entry: HostEntry{
				ID: "h2", Name: "Leo", DiamondsEarned: d("15000"), PKWins: 2, DaysWorked: 30,
				AdditionalBonuses: d("100"), Deductions: d("200"),
			},
			wantBase: "6000", wantPerf: "500", wantPK: "1000", wantAtt: "1000",
			wantGross: "8600", wantFinal: "8400",
		},
		{
			name: "deductions floor at zero",
			entry: HostEntry{
				ID: "h3", Name: "Ava", DiamondsEarned: d("100"), Deductions: d("1000"),
			},
			wantBase: "40", wantPerf: "0", wantPK: "0", wantAtt: "0",
			wantGross: "40", wantFinal: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Calculate(DefaultRules(), tt.entry)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			check := func(field string, got decimal.Decimal, want string) {
				if !got.Equal(d(want)) {
					t.Errorf("%s = %s, want %s", field, got, want)
				}
			}
			check("BasePayment", p.BasePayment, tt.wantBase)
			check("PerformanceBonus", p.PerformanceBonus, tt.wantPerf)
			check("PKBonus", p.PKBonus, tt.wantPK)
			check("AttendanceBonus", p.AttendanceBonus, tt.wantAtt)
			check("TotalBeforeDeductions", p.TotalBeforeDeductions, tt.wantGross)
			check("FinalPayment", p.FinalPayment, tt.wantFinal)
		})
	}
}

func TestCalculateRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry HostEntry
	}{
		{"missing id", HostEntry{Name: "Mia"}},
		{"missing name", HostEntry{ID: "h1"}},
		{"negative diamonds", HostEntry{ID: "h1", Name: "Mia", DiamondsEarned: d("-1")}},
		{"negative wins", HostEntry{ID: "h1", Name: "Mia", PKWins: -1}},
		{"too many days", HostEntry{ID: "h1", Name: "Mia", DaysWorked: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Calculate(DefaultRules(), tt.entry); !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
				t.Errorf("expected INVALID_ARGUMENT, got %v", err)
			}
		})
	}

	rules := DefaultRules()
	rules.TargetDays = 0
	if _, err := Calculate(rules, HostEntry{ID: "h1", Name: "Mia"}); !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT for zero target days, got %v", err)
	}
}

func TestSheetAccumulates(t *testing.T) {
	sheet, err := NewSheet(DefaultRules())
	if err != nil {
		t.Fatalf("NewSheet: %v", err)
	}

	entries := []HostEntry{
		{ID: "h1", Name: "Mia", DiamondsEarned: d("5000"), PKWins: 3, DaysWorked: 25},
		{ID: "h2", Name: "Leo", DiamondsEarned: d("1000")},
	}
	for _, e := range entries {
		if _, err := sheet.Add(e); err != nil {
			t.Fatalf("Add(%s): %v", e.ID, err)
		}
	}

	if _, err := sheet.Add(entries[0]); !apperrors.IsType(err, apperrors.TypeInvalidArgument) {
		t.Errorf("duplicate host: expected INVALID_ARGUMENT, got %v", err)
	}

	summary := sheet.Summary()
	if summary.Hosts != 2 {
		t.Errorf("Hosts = %d, want 2", summary.Hosts)
	}
	if !summary.TotalPayout.Equal(d("3900")) {
		t.Errorf("TotalPayout = %s, want 3900", summary.TotalPayout)
	}
	if !summary.AveragePayout.Equal(d("1950")) {
		t.Errorf("AveragePayout = %s, want 1950", summary.AveragePayout)
	}

	rows := sheet.Rows()
	if len(rows) != 2 || rows[0].Host.ID != "h1" || rows[1].Host.ID != "h2" {
		t.Fatalf("rows out of order: %+v", rows)
	}

	got, err := sheet.Get("h2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.FinalPayment.Equal(d("400")) {
		t.Errorf("h2 FinalPayment = %s, want 400", got.FinalPayment)
	}
	if _, err := sheet.Get("nobody"); !apperrors.IsType(err, apperrors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}

	sheet.Reset()
	if sheet.Len() != 0 || !sheet.Summary().TotalPayout.IsZero() {
		t.Error("Reset did not clear the sheet")
	}
	if _, err := sheet.Add(entries[0]); err != nil {
		t.Errorf("re-adding after reset: %v", err)
	}
}
