package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/rpgo/funnel-label/internal/domain"
)

// Write runs the named formatter and writes its output to w.
func Write(w io.Writer, report *domain.LabeledFunnel, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return errors.Wrapf(err, "%s formatter", f.Name())
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted runs a formatter and writes output to filename. An empty
// filename picks a timestamped name with the formatter's extension.
func WriteFormatted(f Formatter, report *domain.LabeledFunnel, filename string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if filename == "" {
		filename = fmt.Sprintf("funnel_labels_%s.%s", time.Now().Format("20060102_150405"), f.Ext())
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateReport writes the report in the named format to filename.
func GenerateReport(report *domain.LabeledFunnel, format, filename string) (string, error) {
	f, err := lookup(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, filename)
}

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, errors.Wrapf(ErrUnsupportedFormat, "%q (try one of: %s; aliases: %s)", format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
