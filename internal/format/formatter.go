package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"

	"github.com/rpgo/funnel-label/internal/domain"
)

// Formatter turns data points into display strings.
//
// The zero value is ready to use and formats numbers with the host default
// locale. Setting Locale pins digit grouping to a specific language. A
// Formatter holds no other state and is safe for concurrent use.
type Formatter struct {
	Locale language.Tag
}

// New returns a Formatter pinned to the given locale.
func New(locale language.Tag) Formatter { return Formatter{Locale: locale} }

// Resolve turns a descriptor into a Callable. A Callable is returned as is;
// anything else is treated as a Template and wrapped. No validation happens
// here: a nil descriptor only fails once the returned Callable is invoked.
func (f Formatter) Resolve(d Descriptor) Callable {
	if c, ok := d.(Callable); ok {
		return c
	}
	return func(label string, value, conversion float64, formattedValue *string) string {
		return f.Substitute(label, value, conversion, formattedValue, string(d.(Template)))
	}
}

// Apply invokes fn with the fields of dp and returns its result verbatim.
func (f Formatter) Apply(dp domain.DataPoint, fn Callable) string {
	return fn(dp.Label, dp.Value, dp.Conversion, dp.FormattedValue)
}

// Format resolves d and applies it to dp in one step.
func (f Formatter) Format(dp domain.DataPoint, d Descriptor) string {
	return f.Apply(dp, f.Resolve(d))
}

// Substitute replaces the template tokens in expression:
//
//	{l}: label
//	{v}: raw value
//	{f}: formattedValue, or the locale-formatted value when nil
//	{c}: locale-formatted conversion followed by " %", or "null" when NaN
//
// Inserted text is never scanned for further tokens.
func (f Formatter) Substitute(label string, value, conversion float64, formattedValue *string, expression string) string {
	var formatted string
	if formattedValue == nil {
		formatted = f.DefaultFormattedValue(value)
	} else {
		formatted = *formattedValue
	}

	c := nullText
	if !math.IsNaN(conversion) {
		c = f.DefaultFormattedValue(conversion) + conversionSuffix
	}

	return strings.NewReplacer(
		TokenLabel, label,
		TokenValue, ValueString(value),
		TokenFormatted, formatted,
		TokenConversion, c,
	).Replace(expression)
}

// Resolve resolves d with the host-locale Formatter.
func Resolve(d Descriptor) Callable { return Formatter{}.Resolve(d) }

// Apply applies fn to dp.
func Apply(dp domain.DataPoint, fn Callable) string { return Formatter{}.Apply(dp, fn) }
