// Package conversion provides flat-rate currency conversions between
// beans, diamonds and USD, plus the PK and target calculators built on them.
package conversion

import (
	"github.com/shopspring/decimal"

	apperrors "agency-dash/internal/errors"
)

// DaysInMonth is the month length used for target pacing.
const DaysInMonth = 30

// Rates holds the flat conversion rates
type Rates struct {
	// BeansPerDiamond is how many beans make one diamond
	BeansPerDiamond decimal.Decimal `json:"beans_per_diamond"`

	// USDPerDiamond is the dollar value of one diamond
	USDPerDiamond decimal.Decimal `json:"usd_per_diamond"`
}

// DefaultRates returns 210 beans per diamond and $0.005 per diamond.
func DefaultRates() Rates {
	return Rates{
		BeansPerDiamond: decimal.NewFromInt(210),
		USDPerDiamond:   decimal.RequireFromString("0.005"),
	}
}

// Validate rejects non-positive rates.
func (r Rates) Validate() error {
	if !r.BeansPerDiamond.IsPositive() {
		return apperrors.InvalidArgumentf("beans per diamond must be positive, got %s", r.BeansPerDiamond)
	}
	if !r.USDPerDiamond.IsPositive() {
		return apperrors.InvalidArgumentf("usd per diamond must be positive, got %s", r.USDPerDiamond)
	}
	return nil
}

// BeansToDiamonds converts beans at the flat rate.
func (r Rates) BeansToDiamonds(beans decimal.Decimal) (decimal.Decimal, error) {
	if err := r.check("beans", beans); err != nil {
		return decimal.Zero, err
	}
	return beans.DivRound(r.BeansPerDiamond, 8), nil
}

// DiamondsToBeans converts diamonds to whole beans, truncating fractions.
func (r Rates) DiamondsToBeans(diamonds decimal.Decimal) (int64, error) {
	if err := r.check("diamonds", diamonds); err != nil {
		return 0, err
	}
	return diamonds.Mul(r.BeansPerDiamond).IntPart(), nil
}

// DiamondsToUSD converts diamonds to dollars.
func (r Rates) DiamondsToUSD(diamonds decimal.Decimal) (decimal.Decimal, error) {
	if err := r.check("diamonds", diamonds); err != nil {
		return decimal.Zero, err
	}
	return diamonds.Mul(r.USDPerDiamond), nil
}

func (r Rates) check(name string, amount decimal.Decimal) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if amount.IsNegative() {
		return apperrors.InvalidArgumentf("%s must be non-negative, got %s", name, amount)
	}
	return nil
}
