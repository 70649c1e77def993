package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/funnel-label/internal/domain"
)

// ConsoleFormatter prints the title followed by one rendered label per line.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

func (c ConsoleFormatter) Format(report *domain.LabeledFunnel) ([]byte, error) {
	var buf bytes.Buffer
	if report.Title != "" {
		fmt.Fprintln(&buf, strings.ToUpper(report.Title))
		fmt.Fprintln(&buf, strings.Repeat("=", 32))
	}
	for _, s := range report.Segments {
		fmt.Fprintln(&buf, s.Text)
	}
	return buf.Bytes(), nil
}
