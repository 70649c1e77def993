package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/funnel-label/internal/domain"
)

func buildTestReport() *domain.LabeledFunnel {
	half := 50.0
	return &domain.LabeledFunnel{
		Title:  "Checkout",
		Locale: "en",
		Segments: []domain.LabeledSegment{
			{Label: "Visits", Value: 1234, Text: "Visits: 1,234"},
			{Label: "Cart", Value: 617, Conversion: &half, Text: "Cart: 617 (50 %)"},
		},
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "CHECKOUT", lines[0])
	assert.Equal(t, "Visits: 1,234", lines[2])
	assert.Equal(t, "Cart: 617 (50 %)", lines[3])
}

func TestCSVFormatterOrder(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "expected header + 2 rows")
	assert.Equal(t, "Label,Value,Conversion,Text", lines[0])
	assert.Equal(t, `Visits,1234,,"Visits: 1,234"`, lines[1])
	assert.Equal(t, `Cart,617,50.00%,Cart: 617 (50 %)`, lines[2])
}

func TestJSONFormatterOmitsMissingConversion(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	var decoded struct {
		Segments []map[string]any `json:"segments"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Segments, 2)
	assert.NotContains(t, decoded.Segments[0], "conversion")
	assert.Equal(t, 50.0, decoded.Segments[1]["conversion"])
}

func TestHTMLFormatterRendersFunnel(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "<html")
	assert.Contains(t, content, "funnel")
	assert.Contains(t, content, "Visits: 1,234")
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "TEXT", " chart ", "json-pretty", "csv"} {
		assert.NotNil(t, GetFormatterByName(name), name)
	}
	assert.Nil(t, GetFormatterByName("pdf"))
	assert.Equal(t, []string{"console", "csv", "html", "json"}, AvailableFormatterNames())
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, buildTestReport(), "pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "console, csv, html, json")
}

func TestFormatterFunc(t *testing.T) {
	ff := FormatterFunc{ID: "count", Extension: "txt", F: func(r *domain.LabeledFunnel) ([]byte, error) {
		return []byte(r.Title), nil
	}}
	out, err := ff.Format(buildTestReport())
	require.NoError(t, err)
	assert.Equal(t, "Checkout", string(out))
	assert.Equal(t, "count", ff.Name())
}

func TestGenerateReportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.csv")
	got, err := GenerateReport(buildTestReport(), "csv", path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Label,"))
}

func TestFormatHelpers(t *testing.T) {
	c := 48.622
	assert.Equal(t, "48.62%", FormatPercentage(&c))
	assert.Equal(t, "", FormatPercentage(nil))
	assert.Equal(t, "1200.5", FormatValue(1200.5))
}
