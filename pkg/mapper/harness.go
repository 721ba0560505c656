// Package mapper converts harness reports into visualization patterns.
package mapper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dkoosis/cstring/internal/harness"
	"github.com/dkoosis/cstring/pkg/pattern"
)

// stackLines is how much of a fault's stack trace is kept in the details.
const stackLines = 5

// FromReport converts a harness report into a Summary followed by a
// TestTable listing every case in run order. label names the suite.
func FromReport(label string, report harness.Report) []pattern.Pattern {
	patterns := []pattern.Pattern{summary(report)}
	if len(report.Results) == 0 {
		return patterns
	}

	items := make([]pattern.TestTableItem, 0, len(report.Results))
	for _, res := range report.Results {
		item := pattern.TestTableItem{
			Name:   res.Name,
			Status: string(res.Outcome),
		}
		if res.Outcome != harness.Skip {
			item.Duration = formatDuration(res.Duration)
		}
		if res.Err != nil {
			item.Details = details(res)
		}
		items = append(items, item)
	}
	patterns = append(patterns, &pattern.TestTable{Label: label, Results: items})
	return patterns
}

func summary(report harness.Report) *pattern.Summary {
	passed, failed, skipped := report.Counts()
	total := len(report.Results)

	var metrics []pattern.SummaryItem
	if failed > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Failed", Value: fmt.Sprintf("%d/%d cases", failed, total), Kind: "error",
		})
	}
	kind := "success"
	if failed > 0 {
		kind = "info"
	}
	metrics = append(metrics, pattern.SummaryItem{
		Label: "Passed", Value: fmt.Sprintf("%d/%d cases", passed, total), Kind: kind,
	})
	if skipped > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Not run", Value: fmt.Sprintf("%d", skipped), Kind: "warning",
		})
	}

	label := fmt.Sprintf("PASS (%s)", formatDuration(report.Duration))
	if f := report.Failed(); f != nil {
		verdict := "FAIL"
		if f.Fault {
			verdict = "FAULT"
		}
		label = fmt.Sprintf("%s %s (%s)", verdict, f.Name, formatDuration(report.Duration))
	}

	return &pattern.Summary{
		Label:   label,
		Passed:  report.Passed(),
		Metrics: metrics,
	}
}

func details(res harness.Result) string {
	msg := res.Err.Error()
	var fe *harness.FaultError
	if !errors.As(res.Err, &fe) || len(fe.Stack) == 0 {
		return msg
	}
	stack := strings.Split(strings.TrimRight(string(fe.Stack), "\n"), "\n")
	return msg + "\n" + truncateLines(stack, stackLines)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return "0s"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func truncateLines(lines []string, max int) string {
	if len(lines) <= max {
		return strings.Join(lines, "\n")
	}
	result := strings.Join(lines[:max], "\n")
	return result + fmt.Sprintf("\n... (%d more lines)", len(lines)-max)
}
