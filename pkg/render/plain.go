package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/cstring/pkg/pattern"
)

// detailLines is how many lines of a failure's details Plain prints.
const detailLines = 3

// Plain renders patterns as plain text for logs and pipes: no ANSI codes,
// one line per case, details indented beneath failures.
type Plain struct{}

// NewPlain creates a Plain renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats all patterns as plain text.
func (p *Plain) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, pt := range patterns {
		switch v := pt.(type) {
		case *pattern.Summary:
			sb.WriteString("RESULT: " + v.Label + "\n")
			for _, m := range v.Metrics {
				sb.WriteString("  " + m.Label + ": " + m.Value + "\n")
			}
		case *pattern.TestTable:
			p.renderTable(&sb, v)
		}
	}
	return sb.String()
}

func (p *Plain) renderTable(sb *strings.Builder, t *pattern.TestTable) {
	sb.WriteString("\n")
	if t.Label != "" {
		sb.WriteString(t.Label + "\n")
	}
	for _, item := range t.Results {
		prefix := "  PASS"
		switch item.Status {
		case statusFail:
			prefix = "  FAIL"
		case statusSkip:
			prefix = "  SKIP"
		}

		dur := ""
		if item.Duration != "" {
			dur = " (" + item.Duration + ")"
		}
		sb.WriteString(fmt.Sprintf("%s %s%s\n", prefix, item.Name, dur))

		if item.Details == "" {
			continue
		}
		lines := strings.Split(item.Details, "\n")
		n := min(len(lines), detailLines)
		for _, line := range lines[:n] {
			sb.WriteString("    " + line + "\n")
		}
		if len(lines) > detailLines {
			sb.WriteString(fmt.Sprintf("    ... (%d more lines)\n", len(lines)-detailLines))
		}
	}
}
