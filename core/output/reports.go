package output

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"agency-dash/core/conversion"
	"agency-dash/core/exchange"
	"agency-dash/core/paychart"
	"agency-dash/core/paysheet"
	"agency-dash/core/rebate"
)

// ExchangeReport describes a bean to diamond exchange breakdown.
func ExchangeReport(result *exchange.Result) *Report {
	report := &Report{
		Title: "Diamond Exchange",
		Headline: fmt.Sprintf("With %s beans you can get %s diamonds, with %s beans remaining.",
			Int(result.Input), Int(result.TotalYield), Int(result.Remainder)),
		Columns: []string{"Bundles", "Bundle Cost", "Bundle Yield", "Yield From Tier"},
		Data:    result,
	}
	for _, ta := range result.Breakdown {
		report.AddRow(
			strconv.FormatInt(ta.Bundles, 10)+"x",
			Int(ta.Tier.Cost),
			Int(ta.Tier.Yield),
			Int(ta.YieldFromTier),
		)
	}
	if len(result.Breakdown) == 0 {
		report.AddNote("No bundles could be purchased with this amount.")
	}
	return report
}

// RebateReport describes per-category PK rebate outcomes.
func RebateReport(score int64, outcomes map[string]rebate.Outcome) *Report {
	sorted := rebate.Sorted(outcomes)
	report := &Report{
		Title:    "PK Rebates",
		Headline: fmt.Sprintf("PK score %s", Int(score)),
		Columns:  []string{"PK Type", "Threshold", "Rebate"},
		Data: map[string]interface{}{
			"score":    score,
			"outcomes": sorted,
		},
	}
	for _, o := range sorted {
		if o.Eligible {
			report.AddRow(o.Category, Int(o.Threshold), o.Rebate.String())
			continue
		}
		report.AddRow(o.Category, "Below minimum", "No rebate available")
		report.AddNote(fmt.Sprintf("%s needs at least %s points.", o.Category, Int(o.MinThreshold)))
	}
	return report
}

// ConversionReport describes a single flat-rate conversion.
func ConversionReport(fromUnit, toUnit, from, to string) *Report {
	return &Report{
		Title:    "Conversion",
		Headline: fmt.Sprintf("%s %s = %s %s", from, fromUnit, to, toUnit),
		Columns:  []string{"From", "Unit", "To", "Unit"},
		Rows:     [][]string{{from, fromUnit, to, toUnit}},
		Data: map[string]string{
			"from": from, "from_unit": fromUnit,
			"to": to, "to_unit": toUnit,
		},
	}
}

// PKPerformanceReport describes a PK match result.
func PKPerformanceReport(perf *conversion.PKPerformance) *Report {
	return &Report{
		Title:    "PK Performance",
		Headline: fmt.Sprintf("Net %s diamonds (%s)", Amount(perf.NetDiamonds, 2), USD(perf.NetUSD)),
		Columns:  []string{"Metric", "Value"},
		Rows: [][]string{
			{"Received diamonds", Amount(perf.ReceivedDiamonds, 2)},
			{"Sent diamonds", Amount(perf.SentDiamonds, 2)},
			{"Net diamonds", Amount(perf.NetDiamonds, 2)},
			{"Net USD", USD(perf.NetUSD)},
			{"Efficiency", Amount(perf.EfficiencyPercent, 1) + "%"},
		},
		Data: perf,
	}
}

// TargetReport describes progress against a monthly target.
func TargetReport(p *conversion.TargetProgress) *Report {
	status := "Behind target"
	if p.OnTrack {
		status = "On track"
	}
	return &Report{
		Title:    "Host Target",
		Headline: status,
		Columns:  []string{"Metric", "Value"},
		Rows: [][]string{
			{"Daily target", Amount(p.DailyTarget, 0)},
			{"Expected by now", Amount(p.ExpectedProgress, 0)},
			{"Progress", Amount(p.ProgressPercent, 1) + "%"},
			{"Remaining", Amount(p.RemainingTarget, 0)},
			{"Daily required", Amount(p.DailyRequired, 0)},
		},
		Data: p,
	}
}

// PaysheetReport lists every payment on a sheet with its totals.
func PaysheetReport(sheet *paysheet.Sheet) *Report {
	summary := sheet.Summary()
	rows := sheet.Rows()
	report := &Report{
		Title: "Paysheet",
		Headline: fmt.Sprintf("%d hosts, total payout %s, average %s",
			summary.Hosts, USD(summary.TotalPayout), USD(summary.AveragePayout)),
		Columns: []string{
			"Host ID", "Host Name", "Diamonds Earned", "Days Worked", "PK Wins",
			"Base Payment", "Performance Bonus", "PK Bonus", "Attendance Bonus",
			"Additional Bonuses", "Total Bonuses", "Deductions", "Final Payment",
		},
		Data: map[string]interface{}{
			"payments": rows,
			"summary":  summary,
		},
	}
	for _, p := range rows {
		report.AddRow(
			p.Host.ID, p.Host.Name, p.Host.DiamondsEarned.String(),
			strconv.Itoa(p.Host.DaysWorked), strconv.Itoa(p.Host.PKWins),
			money(p.BasePayment), money(p.PerformanceBonus), money(p.PKBonus),
			money(p.AttendanceBonus), money(p.AdditionalBonuses), money(p.TotalBonuses),
			money(p.Deductions), money(p.FinalPayment),
		)
	}
	if len(rows) == 0 {
		report.AddNote("The paysheet is empty.")
	}
	return report
}

// ChartReport lists a pay chart.
func ChartReport(chart *paychart.Chart) *Report {
	report := &Report{Data: chart}
	switch chart.Kind {
	case paychart.KindAgency:
		report.Title = "Agency Pay Chart"
		report.Columns = []string{"Ranking", "Host Target Beans", "S Bonus For Agency",
			"Total Remuneration (USD)", "Beans", "Diamonds"}
		for _, r := range chart.Rows {
			report.AddRow(r.Ranking, Int(r.TargetBeans), USD(r.AgencyBonusUSD),
				USD(r.RemunerationUSD), Int(r.RemunerationBeans), Int(r.RemunerationDiamonds))
		}
	default:
		report.Title = "Host Pay Chart"
		report.Columns = []string{"Ranking", "Target Beans", "Salary in Beans", "Salary in Diamonds"}
		for _, r := range chart.Rows {
			report.AddRow(r.Ranking, Int(r.TargetBeans), Int(r.SalaryBeans), Int(r.SalaryDiamonds))
		}
	}
	return report
}

// PlacementReport describes where a bean total lands on a pay chart.
func PlacementReport(kind paychart.Kind, p *paychart.Placement) *Report {
	report := &Report{
		Title:   "Pay Chart Ranking",
		Columns: []string{"Ranking", "Target Beans"},
		Data:    p,
	}
	if !p.Eligible {
		report.Headline = fmt.Sprintf("%s beans is below the %s chart minimum of %s.",
			Int(p.Beans), kind, Int(p.MinTarget))
		return report
	}
	report.Headline = fmt.Sprintf("%s beans reaches ranking %s on the %s chart.", Int(p.Beans), p.Row.Ranking, kind)
	report.AddRow(p.Row.Ranking, Int(p.Row.TargetBeans))
	if p.Next != nil {
		report.AddRow(p.Next.Ranking, Int(p.Next.TargetBeans))
		report.AddNote(fmt.Sprintf("%s more beans to reach %s.", Int(p.BeansToNext), p.Next.Ranking))
	}
	return report
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
