package output

import (
	"encoding/json"

	"github.com/rpgo/funnel-label/internal/domain"
)

// JSONFormatter serializes the labelled funnel as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }
func (j JSONFormatter) Ext() string  { return "json" }

func (j JSONFormatter) Format(report *domain.LabeledFunnel) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
