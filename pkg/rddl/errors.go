package rddl

import "fmt"

// MissingKeyError reports a skeleton placeholder that has no entry in the
// supplied values. Rendering fails whole on the first missing placeholder in
// skeleton order; there is no partial output.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("rddl: missing value for placeholder %q", e.Key)
}
