//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/cstring"
	binName    = "cstring_test_support"
)

// Default target - build the harness binary
var Default = Build

// binPath is where Build writes the harness binary.
var binPath = filepath.Join("bin", binName)

// Build builds the harness, stamping build metadata and the library version.
//
// The library version comes from CSTRING_VERSION; it is left at its default
// when unset.
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binPath, "./cmd/"+binName)
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check builds the harness and runs it against the linked library.
func Check() error {
	mg.Deps(Build)
	return sh.RunV(binPath)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll("bin")
}

func ldflags() string {
	vars := map[string]string{
		"internal/version.Version":    gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*"),
		"internal/version.CommitHash": gitOutput("unknown", "rev-parse", "--short", "HEAD"),
		"internal/version.BuildDate":  time.Now().UTC().Format(time.RFC3339),
	}
	if v := os.Getenv("CSTRING_VERSION"); v != "" {
		vars["pkg/cstring.VersionString"] = v
	}

	flags := []string{"-s", "-w"}
	for name, value := range vars {
		flags = append(flags, fmt.Sprintf("-X '%s/%s=%s'", modulePath, name, value))
	}
	return strings.Join(flags, " ")
}

func gitOutput(fallback string, args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || out == "" {
		return fallback
	}
	return out
}
