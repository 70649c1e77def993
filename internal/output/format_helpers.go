package output

import (
	"math"

	stddec "github.com/shopspring/decimal"

	"github.com/rpgo/funnel-label/pkg/decimal"
)

// FormatPercentage formats a conversion with 2 decimals, or "" when it does not apply.
func FormatPercentage(conversion *float64) string {
	if conversion == nil || math.IsNaN(*conversion) || math.IsInf(*conversion, 0) {
		return ""
	}
	return decimal.NewPercent(*conversion).String()
}

// FormatValue renders a raw value without grouping.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return stddec.NewFromFloat(v).String()
}
