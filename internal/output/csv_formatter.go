package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/funnel-label/internal/domain"
)

// CSVFormatter writes one row per segment, in funnel order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }
func (c CSVFormatter) Ext() string  { return "csv" }

func (c CSVFormatter) Format(report *domain.LabeledFunnel) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Label", "Value", "Conversion", "Text"}); err != nil {
		return nil, err
	}
	for _, s := range report.Segments {
		row := []string{s.Label, FormatValue(s.Value), FormatPercentage(s.Conversion), s.Text}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
