// Package suite registers the cstring library support checks.
package suite

import (
	"errors"
	"fmt"

	"github.com/dkoosis/cstring/internal/harness"
	"github.com/dkoosis/cstring/pkg/cstring"
)

// VersionLength is the number of leading bytes of the version string that
// must match. Shorter versions never match.
const VersionLength = 9

// ErrMissingVersion is the fault raised when the library reports no version.
var ErrMissingVersion = errors.New("library returned no version string")

// VersionSource returns the version string reported by the library.
type VersionSource func() string

// Config selects the collaborator and the version it is expected to report.
type Config struct {
	Source          VersionSource
	ExpectedVersion string
}

// DefaultConfig checks the linked library against its own version constant.
func DefaultConfig() Config {
	return Config{
		Source:          cstring.GetVersion,
		ExpectedVersion: cstring.VersionString,
	}
}

// Register adds every support check to r, in run order.
func Register(r *harness.Runner, cfg Config) {
	r.Register("libcstring_get_version", GetVersion(cfg.Source, cfg.ExpectedVersion))
}

// GetVersion returns the case verifying that source reports expected.
func GetVersion(source VersionSource, expected string) func() error {
	return func() error {
		if source == nil {
			return &harness.FaultError{Value: ErrMissingVersion}
		}
		actual := source()
		if actual == "" {
			return &harness.FaultError{Value: ErrMissingVersion}
		}

		result := 0
		if !harness.CompareVersion(actual, expected, VersionLength) {
			result = 1
		}
		if err := harness.Equal("result", result, 0); err != nil {
			return fmt.Errorf("version %q does not match %q: %w", actual, expected, err)
		}
		return nil
	}
}
