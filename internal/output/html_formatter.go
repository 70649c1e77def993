package output

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rpgo/funnel-label/internal/domain"
)

const (
	chartWidth  = "960px"
	chartHeight = "600px"
)

// HTMLFormatter renders the funnel as an ECharts page whose segment names
// are the rendered labels.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }
func (h HTMLFormatter) Ext() string  { return "html" }

func (h HTMLFormatter) Format(report *domain.LabeledFunnel) ([]byte, error) {
	funnel := charts.NewFunnel()
	funnel.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: report.Title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: report.Title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	data := make([]opts.FunnelData, 0, len(report.Segments))
	for _, s := range report.Segments {
		data = append(data, opts.FunnelData{Name: s.Text, Value: s.Value})
	}
	funnel.AddSeries(report.Title, data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "inside"}),
	)

	var buf bytes.Buffer
	if err := funnel.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
