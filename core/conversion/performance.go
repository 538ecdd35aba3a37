package conversion

import (
	"github.com/shopspring/decimal"

	apperrors "agency-dash/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// PKPerformance summarises one PK match from the beans a host received and sent.
type PKPerformance struct {
	ReceivedDiamonds decimal.Decimal `json:"received_diamonds"`
	SentDiamonds     decimal.Decimal `json:"sent_diamonds"`
	NetDiamonds      decimal.Decimal `json:"net_diamonds"`
	NetUSD           decimal.Decimal `json:"net_usd"`

	// EfficiencyPercent is received/sent*100, zero when nothing was sent
	EfficiencyPercent decimal.Decimal `json:"efficiency_percent"`
}

// CalculatePKPerformance converts both sides of a match to diamonds and compares them.
func (r Rates) CalculatePKPerformance(receivedBeans, sentBeans int64) (*PKPerformance, error) {
	if receivedBeans < 0 || sentBeans < 0 {
		return nil, apperrors.InvalidArgumentf("bean counts must be non-negative, got %d received and %d sent",
			receivedBeans, sentBeans)
	}

	received, err := r.BeansToDiamonds(decimal.NewFromInt(receivedBeans))
	if err != nil {
		return nil, err
	}
	sent, err := r.BeansToDiamonds(decimal.NewFromInt(sentBeans))
	if err != nil {
		return nil, err
	}

	net := received.Sub(sent)
	perf := &PKPerformance{
		ReceivedDiamonds:  received,
		SentDiamonds:      sent,
		NetDiamonds:       net,
		NetUSD:            net.Mul(r.USDPerDiamond),
		EfficiencyPercent: decimal.Zero,
	}
	if sentBeans > 0 {
		perf.EfficiencyPercent = decimal.NewFromInt(receivedBeans).
			Mul(hundred).
			DivRound(decimal.NewFromInt(sentBeans), 4)
	}
	return perf, nil
}

// TargetProgress reports how a host is pacing against a monthly diamond target.
type TargetProgress struct {
	DailyTarget      decimal.Decimal `json:"daily_target"`
	ExpectedProgress decimal.Decimal `json:"expected_progress"`
	ProgressPercent  decimal.Decimal `json:"progress_percent"`
	RemainingTarget  decimal.Decimal `json:"remaining_target"`
	DailyRequired    decimal.Decimal `json:"daily_required"`
	OnTrack          bool            `json:"on_track"`
}

// CalculateTargets paces currentDiamonds against monthlyTarget over a
// DaysInMonth month with daysWorked days elapsed.
func CalculateTargets(monthlyTarget decimal.Decimal, daysWorked int, currentDiamonds decimal.Decimal) (*TargetProgress, error) {
	if monthlyTarget.IsNegative() || currentDiamonds.IsNegative() {
		return nil, apperrors.InvalidArgument("target and current diamonds must be non-negative")
	}
	if daysWorked < 0 || daysWorked > 31 {
		return nil, apperrors.InvalidArgumentf("days worked must be between 0 and 31, got %d", daysWorked)
	}

	days := decimal.NewFromInt(DaysInMonth)
	daily := monthlyTarget.DivRound(days, 4)
	expected := daily.Mul(decimal.NewFromInt(int64(daysWorked)))

	progress := &TargetProgress{
		DailyTarget:      daily,
		ExpectedProgress: expected,
		ProgressPercent:  decimal.Zero,
		RemainingTarget:  decimal.Max(decimal.Zero, monthlyTarget.Sub(currentDiamonds)),
		DailyRequired:    decimal.Zero,
		OnTrack:          currentDiamonds.GreaterThanOrEqual(expected),
	}
	if monthlyTarget.IsPositive() {
		progress.ProgressPercent = currentDiamonds.Mul(hundred).DivRound(monthlyTarget, 4)
	}
	if daysRemaining := DaysInMonth - daysWorked; daysRemaining > 0 {
		progress.DailyRequired = progress.RemainingTarget.DivRound(decimal.NewFromInt(int64(daysRemaining)), 4)
	}
	return progress, nil
}
