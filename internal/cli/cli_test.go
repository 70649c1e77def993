package cli

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"FUNNEL_LOCALE", "FUNNEL_FORMAT", "FUNNEL_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	cmd := NewRootCommand("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	err := cmd.Execute()
	return out.String(), err
}

func TestFormatCommand(t *testing.T) {
	out, err := run(t, "format", "-t", "{l}: {v} ({f}, {c})", "--label", "Visits", "--value", "1234", "--conversion", "50", "--locale", "en")
	require.NoError(t, err)
	assert.Equal(t, "Visits: 1234 (1,234, 50 %)\n", out)
}

func TestFormatCommandWithoutConversion(t *testing.T) {
	out, err := run(t, "format", "-t", "{l}: {v} ({f}, {c})", "--label", "Visits", "--value", "1234", "--locale", "en")
	require.NoError(t, err)
	assert.Equal(t, "Visits: 1234 (1,234, null)\n", out)
}

func TestFormatCommandFormattedValue(t *testing.T) {
	out, err := run(t, "format", "-t", "{f}", "--value", "1234", "--formatted-value", "1.2K")
	require.NoError(t, err)
	assert.Equal(t, "1.2K\n", out)
}

func TestFormatCommandBadLocale(t *testing.T) {
	_, err := run(t, "format", "--locale", "??")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid locale")
}

func TestFormatCommandCLocale(t *testing.T) {
	out, err := run(t, "format", "-t", "{f}", "--value", "1234.5", "--locale", "C.UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "1,234.5\n", out)
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funnel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Checkout\nlocale: en\nsegments:\n  - label: Visits\n    value: 1234\n  - label: Cart\n    value: 617\n"), 0o644))

	out, err := run(t, "render", path, "-t", "{l} {f} {c}")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Visits 1,234 null", lines[2])
	assert.Equal(t, "Cart 617 50 %", lines[3])
}

func TestRenderCommandToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "funnel.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \"T\"\n[[segments]]\nlabel = \"A\"\nvalue = 10\n"), 0o644))
	dest := filepath.Join(dir, "out.json")

	out, err := run(t, "render", path, "-o", "json", "--out", dest)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"label": "A"`)
}

func TestRenderCommandUnknownOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funnel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("segments:\n  - label: A\n    value: 1\n"), 0o644))
	_, err := run(t, "render", path, "-o", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestFormatsCommand(t *testing.T) {
	out, err := run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "formats: console, csv, html, json")
}

func TestParseConversion(t *testing.T) {
	v, err := parseConversion("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	v, err = parseConversion(" 12.5% ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	_, err = parseConversion("50abc")
	assert.Error(t, err)
}
