package format

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxFractionDigits matches the default precision of locale number formatting.
const maxFractionDigits = 3

// DefaultFormattedValue formats v with the digit grouping and decimal
// separator of the formatter's locale. Ties round away from zero and a
// negative value that rounds to zero keeps its sign.
func (f Formatter) DefaultFormattedValue(v float64) string {
	p := message.NewPrinter(f.locale())
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return p.Sprint(number.Decimal(v))
	}
	rounded := decimal.NewFromFloat(v).Round(maxFractionDigits)
	if rounded.IsZero() {
		s := p.Sprint(number.Decimal(0))
		if math.Signbit(v) {
			return "-" + s
		}
		return s
	}
	return p.Sprint(number.Decimal(rounded.InexactFloat64(), number.MaxFractionDigits(maxFractionDigits)))
}

func (f Formatter) locale() language.Tag {
	if f.Locale == language.Und {
		return HostLocale()
	}
	return f.Locale
}

// localeEnv lists the variables consulted for the host locale, highest
// priority first.
var localeEnv = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// HostLocale returns the locale of the running process as configured through
// the POSIX locale variables. Only the first non-empty variable counts; it
// falls back to English when none is set, the value is C/POSIX, or it cannot
// be parsed.
func HostLocale() language.Tag {
	for _, key := range localeEnv {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		tag, err := ParseLocale(v)
		if err != nil || tag == language.Und {
			return language.English
		}
		return tag
	}
	return language.English
}

// ParseLocale parses a BCP 47 or POSIX style locale name. An empty name
// yields language.Und, which a Formatter treats as the host locale. The C
// and POSIX locales map to English.
func ParseLocale(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	// en_US.UTF-8@euro -> en_US
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "":
		return language.Und, nil
	case "C", "POSIX":
		return language.English, nil
	}
	return language.Parse(strings.ReplaceAll(name, "_", "-"))
}

// ValueString is the plain string form of a number used for the {v} token:
// shortest round-trip digits, no grouping, exponent notation outside
// [1e-6, 1e21).
func ValueString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
