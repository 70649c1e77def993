package format

// Callable renders a data point. It receives the segment label, the raw
// value, the conversion percentage (NaN when not applicable) and the
// caller-supplied formatted value (nil when the default should be derived).
type Callable func(label string, value, conversion float64, formattedValue *string) string

// Template is a format string containing zero or more of the tokens
// {l}, {v}, {f} and {c}.
type Template string

// Descriptor is either a Callable or a Template.
//
// The set of implementations is closed; Resolve is the only place the two
// variants are told apart.
type Descriptor interface {
	descriptor()
}

func (Callable) descriptor() {}
func (Template) descriptor() {}

// Token placeholders recognised in a Template.
const (
	TokenLabel      = "{l}"
	TokenValue      = "{v}"
	TokenFormatted  = "{f}"
	TokenConversion = "{c}"
)

// nullText is what an inapplicable conversion renders as.
const nullText = "null"

// conversionSuffix follows a formatted conversion.
const conversionSuffix = " %"
