// Package paysheet calculates host payouts from monthly performance and
// accumulates them into a paysheet.
package paysheet

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "agency-dash/internal/errors"
)

// Rules are the agency payment rules
type Rules struct {
	// BaseRate is the share of earned diamonds paid out
	BaseRate decimal.Decimal `json:"base_rate"`

	// BonusThreshold is the diamond count above which BonusRate applies
	BonusThreshold decimal.Decimal `json:"bonus_threshold"`

	// BonusRate is paid on diamonds above BonusThreshold
	BonusRate decimal.Decimal `json:"bonus_rate"`

	// PKWinBonus is paid per PK win
	PKWinBonus decimal.Decimal `json:"pk_win_bonus"`

	// AttendanceBonus is paid once DaysWorked reaches TargetDays
	AttendanceBonus decimal.Decimal `json:"attendance_bonus"`

	// TargetDays is the attendance requirement
	TargetDays int `json:"target_days"`
}

// DefaultRules returns the agency's standard payment rules.
func DefaultRules() Rules {
	return Rules{
		BaseRate:        decimal.RequireFromString("0.4"),
		BonusThreshold:  decimal.NewFromInt(10000),
		BonusRate:       decimal.RequireFromString("0.1"),
		PKWinBonus:      decimal.NewFromInt(500),
		AttendanceBonus: decimal.NewFromInt(1000),
		TargetDays:      30,
	}
}

// Validate rejects negative rule values.
func (r Rules) Validate() error {
	for name, v := range map[string]decimal.Decimal{
		"base_rate":        r.BaseRate,
		"bonus_threshold":  r.BonusThreshold,
		"bonus_rate":       r.BonusRate,
		"pk_win_bonus":     r.PKWinBonus,
		"attendance_bonus": r.AttendanceBonus,
	} {
		if v.IsNegative() {
			return apperrors.InvalidArgumentf("payment rule %s must not be negative, got %s", name, v)
		}
	}
	if r.TargetDays <= 0 {
		return apperrors.InvalidArgumentf("payment rule target_days must be positive, got %d", r.TargetDays)
	}
	return nil
}

// HostEntry is one host's performance for the pay period
type HostEntry struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	DiamondsEarned    decimal.Decimal `json:"diamonds_earned"`
	PKWins            int             `json:"pk_wins"`
	DaysWorked        int             `json:"days_worked"`
	AdditionalBonuses decimal.Decimal `json:"additional_bonuses"`
	Deductions        decimal.Decimal `json:"deductions"`
}

// Validate checks identity fields and rejects negative amounts.
func (h HostEntry) Validate() error {
	if strings.TrimSpace(h.ID) == "" || strings.TrimSpace(h.Name) == "" {
		return apperrors.InvalidArgument("host entry needs an id and a name")
	}
	if h.DiamondsEarned.IsNegative() || h.AdditionalBonuses.IsNegative() || h.Deductions.IsNegative() {
		return apperrors.InvalidArgumentf("host %s: amounts must not be negative", h.ID).WithContext("host", h.ID)
	}
	if h.PKWins < 0 || h.DaysWorked < 0 || h.DaysWorked > 31 {
		return apperrors.InvalidArgumentf("host %s: pk wins and days worked must be in range", h.ID).WithContext("host", h.ID)
	}
	return nil
}

// Payment is the payout breakdown for one host
type Payment struct {
	Host                  HostEntry       `json:"host"`
	BasePayment           decimal.Decimal `json:"base_payment"`
	PerformanceBonus      decimal.Decimal `json:"performance_bonus"`
	PKBonus               decimal.Decimal `json:"pk_bonus"`
	AttendanceBonus       decimal.Decimal `json:"attendance_bonus"`
	AdditionalBonuses     decimal.Decimal `json:"additional_bonuses"`
	TotalBonuses          decimal.Decimal `json:"total_bonuses"`
	TotalBeforeDeductions decimal.Decimal `json:"total_before_deductions"`
	Deductions            decimal.Decimal `json:"deductions"`
	FinalPayment          decimal.Decimal `json:"final_payment"`
}

// Calculate computes a host's payment under rules. The final payment
// never goes below zero.
func Calculate(rules Rules, entry HostEntry) (*Payment, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	base := entry.DiamondsEarned.Mul(rules.BaseRate)

	performance := decimal.Zero
	if entry.DiamondsEarned.GreaterThan(rules.BonusThreshold) {
		performance = entry.DiamondsEarned.Sub(rules.BonusThreshold).Mul(rules.BonusRate)
	}

	pk := rules.PKWinBonus.Mul(decimal.NewFromInt(int64(entry.PKWins)))

	attendance := decimal.Zero
	if entry.DaysWorked >= rules.TargetDays {
		attendance = rules.AttendanceBonus
	}

	bonuses := performance.Add(pk).Add(attendance).Add(entry.AdditionalBonuses)
	gross := base.Add(bonuses)

	return &Payment{
		Host:                  entry,
		BasePayment:           base,
		PerformanceBonus:      performance,
		PKBonus:               pk,
		AttendanceBonus:       attendance,
		AdditionalBonuses:     entry.AdditionalBonuses,
		TotalBonuses:          bonuses,
		TotalBeforeDeductions: gross,
		Deductions:            entry.Deductions,
		FinalPayment:          decimal.Max(decimal.Zero, gross.Sub(entry.Deductions)),
	}, nil
}
