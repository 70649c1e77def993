package domain

import "math"

// DataPoint is the per-call input to the label formatter: one chart segment's
// label, raw value, conversion percentage and optional pre-formatted value.
type DataPoint struct {
	Label string
	Value float64
	// Conversion is a percentage relative to a baseline segment. NaN means
	// not applicable (e.g. the first segment of a funnel).
	Conversion float64
	// FormattedValue, when non-nil, is used verbatim in place of the
	// locale-formatted Value.
	FormattedValue *string
}

// NewDataPoint builds a DataPoint with no conversion and no formatted override.
func NewDataPoint(label string, value float64) DataPoint {
	return DataPoint{Label: label, Value: value, Conversion: math.NaN()}
}

// HasConversion reports whether the conversion is applicable.
func (dp DataPoint) HasConversion() bool { return !math.IsNaN(dp.Conversion) }

// WithFormattedValue returns a copy of dp carrying the given display string.
func (dp DataPoint) WithFormattedValue(s string) DataPoint {
	dp.FormattedValue = &s
	return dp
}
