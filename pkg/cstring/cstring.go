// Package cstring exposes the version metadata of the string compatibility
// library.
package cstring

// VersionString is the library version, populated by the linker at build time:
//
//	-ldflags "-X github.com/dkoosis/cstring/pkg/cstring.VersionString=201601011"
var VersionString = "development"

// GetVersion returns the library version string.
func GetVersion() string {
	return VersionString
}
