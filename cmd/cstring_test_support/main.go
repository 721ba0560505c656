// cstring_test_support verifies that the string compatibility library
// reports the version it was built with.
//
// Usage:
//
//	cstring_test_support
//
// Arguments are ignored. Each case prints a status line as it runs; a report
// follows, styled when stdout is a terminal and plain text otherwise. The
// format, theme and expected version can be set in .cstring_test.yaml.
//
// Exit status is 0 when every case passes and 1 otherwise.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/dkoosis/cstring/internal/config"
	"github.com/dkoosis/cstring/internal/harness"
	"github.com/dkoosis/cstring/internal/suite"
	"github.com/dkoosis/cstring/internal/version"
	"github.com/dkoosis/cstring/pkg/cstring"
	"github.com/dkoosis/cstring/pkg/mapper"
	"github.com/dkoosis/cstring/pkg/render"
)

const progName = "cstring_test_support"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(_ []string, stdout, stderr io.Writer) int {
	cfg := config.Resolve(prefixed(stderr))

	sc := suite.DefaultConfig()
	if cfg.ExpectedVersion != "" {
		sc.ExpectedVersion = cfg.ExpectedVersion
	}
	return runSuite(sc, cfg, stdout)
}

// runSuite registers the support checks, runs them and renders the report.
func runSuite(sc suite.Config, cfg *config.Resolved, stdout io.Writer) int {
	format := resolveFormat(cfg, stdout)

	// Status lines would corrupt a JSON document on the same stream.
	progress := stdout
	if format == config.FormatJSON {
		progress = io.Discard
	}

	r := harness.New(harness.WithOutput(progress))
	suite.Register(r, sc)
	report := r.Run()

	patterns := mapper.FromReport("libcstring", report)
	output := selectRenderer(format, cfg, stdout).Render(patterns)
	if format != config.FormatJSON {
		fmt.Fprintln(stdout)
	}
	fmt.Fprint(stdout, output)
	return report.ExitCode()
}

func selectRenderer(format string, cfg *config.Resolved, w io.Writer) render.Renderer {
	switch format {
	case config.FormatJSON:
		return render.NewJSON(render.BuildInfo{
			Version:        version.Version,
			Commit:         version.CommitHash,
			BuildDate:      version.BuildDate,
			LibraryVersion: cstring.GetVersion(),
		}, settings(cfg)...)
	case config.FormatPlain:
		return render.NewPlain()
	default:
		return render.NewTerminal(render.ThemeByName(cfg.Theme), termWidth(w))
	}
}

// settings lists the effective configuration for the JSON envelope.
func settings(cfg *config.Resolved) []render.Setting {
	return []render.Setting{
		{Name: "format", Value: cfg.Format, Source: string(cfg.FormatSource)},
		{Name: "theme", Value: cfg.Theme, Source: string(cfg.ThemeSource)},
		{Name: "no_color", Value: strconv.FormatBool(cfg.NoColor), Source: string(cfg.NoColorSource)},
	}
}

// resolveFormat turns auto into terminal for a TTY and plain otherwise.
func resolveFormat(cfg *config.Resolved, w io.Writer) string {
	if cfg.Format != config.FormatAuto {
		return cfg.Format
	}
	if !cfg.CI && isTTYWriter(w) {
		return config.FormatTerminal
	}
	return config.FormatPlain
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80 columns.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

// prefixed tags every write with the program name.
func prefixed(w io.Writer) io.Writer {
	return prefixWriter{w: w}
}

type prefixWriter struct{ w io.Writer }

func (p prefixWriter) Write(b []byte) (int, error) {
	if _, err := fmt.Fprintf(p.w, "%s: %s", progName, b); err != nil {
		return 0, err
	}
	return len(b), nil
}
