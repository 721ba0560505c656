// Package render provides output renderers for harness report patterns.
package render

import "github.com/dkoosis/cstring/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

const (
	statusPass = "pass"
	statusFail = "fail"
	statusSkip = "skip"
)
