package funnel

import (
	"math"

	"golang.org/x/text/language"

	"github.com/rpgo/funnel-label/internal/domain"
	"github.com/rpgo/funnel-label/internal/format"
)

// DefaultTemplate is used when neither the caller nor the funnel names one.
const DefaultTemplate format.Template = "{l}: {f}"

// Labeler renders the label text of every segment in a funnel.
type Labeler struct {
	Formatter format.Formatter
	Logger    Logger
}

// NewLabeler creates a Labeler. A nil logger disables logging.
func NewLabeler(f format.Formatter, logger Logger) *Labeler {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Labeler{Formatter: f, Logger: logger}
}

// Label formats each segment of f with d. When d is nil the funnel's own
// format string is used, then DefaultTemplate.
func (l *Labeler) Label(f *domain.Funnel, d format.Descriptor) domain.LabeledFunnel {
	if d == nil {
		d = DefaultTemplate
		if f.Format != "" {
			d = format.Template(f.Format)
		}
	}

	formatter := l.formatterFor(f)
	fn := formatter.Resolve(d)

	points := DataPoints(f)
	out := domain.LabeledFunnel{
		Title:    f.Title,
		Locale:   l.localeName(formatter),
		Segments: make([]domain.LabeledSegment, len(points)),
	}
	for i, dp := range points {
		seg := domain.LabeledSegment{
			Label: dp.Label,
			Value: dp.Value,
			Text:  formatter.Apply(dp, fn),
		}
		if !math.IsNaN(dp.Conversion) {
			c := dp.Conversion
			seg.Conversion = &c
		}
		l.Logger.Debugf("segment %d %q -> %q", i, dp.Label, seg.Text)
		out.Segments[i] = seg
	}
	l.Logger.Infof("labelled %d segments of %q", len(points), f.Title)
	return out
}

// formatterFor pins the funnel's locale unless the Labeler already has one.
func (l *Labeler) formatterFor(f *domain.Funnel) format.Formatter {
	formatter := l.Formatter
	if formatter.Locale != language.Und || f.Locale == "" {
		return formatter
	}
	tag, err := format.ParseLocale(f.Locale)
	if err != nil {
		l.Logger.Warnf("ignoring locale %q of funnel %q: %v", f.Locale, f.Title, err)
		return formatter
	}
	formatter.Locale = tag
	return formatter
}

func (l *Labeler) localeName(f format.Formatter) string {
	if f.Locale == language.Und {
		return format.HostLocale().String()
	}
	return f.Locale.String()
}
