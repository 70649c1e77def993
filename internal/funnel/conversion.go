package funnel

import (
	"math"

	"github.com/rpgo/funnel-label/internal/domain"
	"github.com/rpgo/funnel-label/pkg/decimal"
)

// conversionPlaces is the precision conversions are rounded to.
const conversionPlaces = 2

// Conversions returns, for each value, its percentage of the preceding value.
// The first entry has no baseline and is NaN, as is any entry whose
// predecessor is zero or either side is not finite.
func Conversions(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.NaN()
		if i == 0 {
			continue
		}
		if p, ok := decimal.PercentOf(v, values[i-1]); ok {
			out[i] = p.Round(conversionPlaces).Float64()
		}
	}
	return out
}

// DataPoints converts the segments of f into formatter input, filling in
// conversions relative to the previous segment.
func DataPoints(f *domain.Funnel) []domain.DataPoint {
	values := make([]float64, len(f.Segments))
	for i, s := range f.Segments {
		values[i] = s.Value
	}
	conv := Conversions(values)
	points := make([]domain.DataPoint, len(f.Segments))
	for i, s := range f.Segments {
		points[i] = domain.DataPoint{
			Label:          s.Label,
			Value:          s.Value,
			Conversion:     conv[i],
			FormattedValue: s.FormattedValue,
		}
	}
	return points
}
