package render

import (
	"encoding/json"

	"github.com/dkoosis/cstring/pkg/pattern"
)

// schemaVersion identifies the layout of the JSON envelope.
const schemaVersion = "1.0"

// BuildInfo describes the binary that produced the report.
type BuildInfo struct {
	Version        string `json:"version"`
	Commit         string `json:"commit"`
	BuildDate      string `json:"build_date"`
	LibraryVersion string `json:"library_version"`
}

// Setting is one effective configuration value and where it came from.
type Setting struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// JSON renders patterns as structured JSON for automation.
type JSON struct {
	build    BuildInfo
	settings []Setting
}

// NewJSON creates a JSON renderer stamping build and settings into every
// document.
func NewJSON(build BuildInfo, settings ...Setting) *JSON {
	return &JSON{build: build, settings: settings}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version  string        `json:"version"`
	Build    BuildInfo     `json:"build"`
	Settings []Setting     `json:"settings,omitempty"`
	Patterns []jsonPattern `json:"patterns"`
}

type jsonPattern struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Render formats all patterns as JSON.
func (j *JSON) Render(patterns []pattern.Pattern) string {
	out := jsonOutput{
		Version:  schemaVersion,
		Build:    j.build,
		Settings: j.settings,
		Patterns: make([]jsonPattern, 0, len(patterns)),
	}

	for _, p := range patterns {
		out.Patterns = append(out.Patterns, jsonPattern{
			Type: string(p.Type()),
			Data: p,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
