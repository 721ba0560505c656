package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Source names where a resolved value came from.
type Source string

const (
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

// Resolved is the effective configuration after applying precedence.
type Resolved struct {
	Format          string
	Theme           string
	NoColor         bool
	CI              bool
	ExpectedVersion string // empty: use the library's own constant

	FormatSource  Source
	ThemeSource   Source
	NoColorSource Source
}

// Resolve loads the config file, if any, and applies environment overrides.
// Warnings are written to warn; Resolve never fails.
func Resolve(warn io.Writer) *Resolved {
	return resolve(loadFromDisk(warn), warn)
}

func resolve(file *FileConfig, warn io.Writer) *Resolved {
	r := &Resolved{
		Format:        DefaultFormat,
		Theme:         DefaultTheme,
		FormatSource:  SourceDefault,
		ThemeSource:   SourceDefault,
		NoColorSource: SourceDefault,
	}

	if file != nil {
		if file.Format != "" {
			if validFormats[file.Format] {
				r.Format, r.FormatSource = file.Format, SourceFile
			} else {
				fmt.Fprintf(warn, "Warning: unknown format %q in config (expected auto, terminal, plain, json). Using %q.\n", file.Format, DefaultFormat)
			}
		}
		if file.Theme != "" {
			if validThemes[file.Theme] {
				r.Theme, r.ThemeSource = file.Theme, SourceFile
			} else {
				fmt.Fprintf(warn, "Warning: unknown theme %q in config (expected default, orca, mono). Using %q.\n", file.Theme, DefaultTheme)
			}
		}
		if file.NoColor {
			r.NoColor, r.NoColorSource = true, SourceFile
		}
		r.ExpectedVersion = file.ExpectedVersion
	}

	// NO_COLOR: presence disables color regardless of value (no-color.org).
	if os.Getenv("NO_COLOR") != "" {
		r.NoColor, r.NoColorSource = true, SourceEnv
	}
	if v := os.Getenv("CI"); v != "" {
		if ci, err := strconv.ParseBool(v); err == nil {
			r.CI = ci
		}
	}
	if r.CI && !r.NoColor {
		r.NoColor, r.NoColorSource = true, SourceEnv
	}

	if r.NoColor {
		r.Theme, r.ThemeSource = "mono", r.NoColorSource
	}
	return r
}
