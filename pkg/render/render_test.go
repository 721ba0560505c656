package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/cstring/pkg/pattern"
)

func failingPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		&pattern.Summary{
			Label:  "FAIL libcstring_get_version (0s)",
			Passed: false,
			Metrics: []pattern.SummaryItem{
				{Label: "Failed", Value: "1/2 cases", Kind: "error"},
				{Label: "Passed", Value: "0/2 cases", Kind: "info"},
				{Label: "Not run", Value: "1", Kind: "warning"},
			},
		},
		&pattern.TestTable{
			Label: "cstring",
			Results: []pattern.TestTableItem{
				{
					Name:     "libcstring_get_version",
					Status:   "fail",
					Duration: "0s",
					Details:  "line1\nline2\nline3\nline4\nline5",
				},
				{Name: "later", Status: "skip"},
			},
		},
	}
}

func TestPlain_RendersEveryCase(t *testing.T) {
	out := NewPlain().Render(failingPatterns())

	assert.Contains(t, out, "RESULT: FAIL libcstring_get_version (0s)\n")
	assert.Contains(t, out, "  Not run: 1\n")
	assert.Contains(t, out, "  FAIL libcstring_get_version (0s)\n")
	assert.Contains(t, out, "    line3\n")
	assert.NotContains(t, out, "line4")
	assert.Contains(t, out, "    ... (2 more lines)\n")
	assert.Contains(t, out, "  SKIP later\n")
	assert.NotContains(t, out, "\033[", "plain output must not contain ANSI codes")
}

func TestPlain_PassingRun(t *testing.T) {
	patterns := []pattern.Pattern{
		&pattern.Summary{Label: "PASS (0s)", Passed: true},
		&pattern.TestTable{Results: []pattern.TestTableItem{
			{Name: "libcstring_get_version", Status: "pass", Duration: "0s"},
		}},
	}

	out := NewPlain().Render(patterns)

	assert.Equal(t, "RESULT: PASS (0s)\n\n  PASS libcstring_get_version (0s)\n", out)
}

func TestTerminal_MonoRendersStatusAndIcons(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render(failingPatterns())

	assert.Contains(t, out, "FAIL libcstring_get_version")
	assert.Contains(t, out, "x libcstring_get_version")
	assert.Contains(t, out, "Fail")
	assert.Contains(t, out, "- later")
	assert.Contains(t, out, "Skip")
	assert.Contains(t, out, "    line5")
}

func TestTerminal_AlignsNameColumn(t *testing.T) {
	table := &pattern.TestTable{Results: []pattern.TestTableItem{
		{Name: "short", Status: "pass"},
		{Name: "a_much_longer_name", Status: "pass"},
	}}

	out := NewTerminal(MonoTheme(), 80).Render([]pattern.Pattern{table})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "Pass"), strings.Index(lines[1], "Pass"))
}

func TestTerminal_TruncatesLongNames(t *testing.T) {
	table := &pattern.TestTable{Results: []pattern.TestTableItem{
		{Name: strings.Repeat("n", 200), Status: "pass"},
	}}

	out := NewTerminal(MonoTheme(), 80).Render([]pattern.Pattern{table})

	assert.Contains(t, out, "...")
	assert.NotContains(t, out, strings.Repeat("n", 61))
}

func TestTerminal_SkipsEmptyTable(t *testing.T) {
	out := NewTerminal(DefaultTheme(), 0).Render([]pattern.Pattern{&pattern.TestTable{Label: "empty"}})

	assert.Empty(t, out)
}

func TestJSON_EnvelopeCarriesBuildInfo(t *testing.T) {
	build := BuildInfo{Version: "v1.0.0", Commit: "abc1234", BuildDate: "2016-01-01", LibraryVersion: "20160101"}

	out := NewJSON(build).Render(failingPatterns())

	var doc struct {
		Version  string    `json:"version"`
		Build    BuildInfo `json:"build"`
		Patterns []struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, schemaVersion, doc.Version)
	assert.Equal(t, build, doc.Build)
	require.Len(t, doc.Patterns, 2)
	assert.Equal(t, "summary", doc.Patterns[0].Type)
	assert.Equal(t, "test-table", doc.Patterns[1].Type)

	var table pattern.TestTable
	require.NoError(t, json.Unmarshal(doc.Patterns[1].Data, &table))
	assert.Equal(t, "skip", table.Results[1].Status)
}

func TestJSON_EnvelopeCarriesSettings(t *testing.T) {
	settings := []Setting{
		{Name: "format", Value: "json", Source: "file"},
		{Name: "no_color", Value: "true", Source: "env"},
	}

	out := NewJSON(BuildInfo{}, settings...).Render(failingPatterns())

	var doc struct {
		Settings []Setting `json:"settings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, settings, doc.Settings)
}

func TestJSON_OmitsSettingsWhenNoneGiven(t *testing.T) {
	out := NewJSON(BuildInfo{}).Render(nil)

	assert.NotContains(t, out, `"settings"`)
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "orca", ThemeByName("orca").Name)
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("neon").Name)
}
