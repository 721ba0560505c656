package harness

// CompareVersion reports whether the first length bytes of actual and
// expectedPrefix are identical. Either string being shorter than length is a
// mismatch.
func CompareVersion(actual, expectedPrefix string, length int) bool {
	if length < 0 || len(actual) < length || len(expectedPrefix) < length {
		return false
	}
	return actual[:length] == expectedPrefix[:length]
}
