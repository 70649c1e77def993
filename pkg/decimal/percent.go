package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percent represents a percentage with decimal precision
type Percent struct {
	decimal.Decimal
}

// NewPercent creates a Percent from a float64 already expressed in percent
func NewPercent(value float64) Percent {
	return Percent{decimal.NewFromFloat(value)}
}

// PercentOf returns part as a percentage of whole. ok is false when whole is
// zero or either argument is NaN or infinite.
func PercentOf(part, whole float64) (p Percent, ok bool) {
	if whole == 0 || !finite(part) || !finite(whole) {
		return Percent{}, false
	}
	d := decimal.NewFromFloat(part).Div(decimal.NewFromFloat(whole)).Mul(hundred)
	return Percent{d}, true
}

// Round rounds to the given number of decimal places
func (p Percent) Round(places int32) Percent {
	return Percent{p.Decimal.Round(places)}
}

// Float64 returns the nearest float64 value
func (p Percent) Float64() float64 {
	return p.Decimal.InexactFloat64()
}

// String returns the value with two decimals and a percent sign
func (p Percent) String() string {
	return p.Decimal.StringFixed(2) + "%"
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
