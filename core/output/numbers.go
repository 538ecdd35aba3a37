package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Int formats n with thousands separators.
func Int(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	s = group(s)
	if neg {
		return "-" + s
	}
	return s
}

// Amount formats d rounded to places with thousands separators.
func Amount(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	s = group(whole)
	if hasFrac {
		s += "." + frac
	}
	if neg {
		return "-" + s
	}
	return s
}

// USD formats d as dollars and cents.
func USD(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + Amount(d.Neg(), 2)
	}
	return "$" + Amount(d, 2)
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
