package rddl

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var (
	skeletonOnce sync.Once
	skeletonTpl  *pongo2.Template
	skeletonErr  error
)

// Validate checks that values carries an entry for every placeholder in the
// skeleton. Extra keys are ignored for forward compatibility.
func Validate(values map[string]string) error {
	for _, name := range Placeholders() {
		if _, ok := values[name]; !ok {
			return &MissingKeyError{Key: name}
		}
	}
	return nil
}

// Render substitutes every placeholder in the skeleton with its value and
// returns the resulting text. Values appear verbatim in the output, including
// any whitespace or newlines the caller supplies. The operation is pure: no
// I/O, no shared state, and identical inputs always produce identical output.
func Render(values map[string]string) (string, error) {
	if err := Validate(values); err != nil {
		return "", err
	}

	skeletonOnce.Do(func() {
		skeletonTpl, skeletonErr = pongo2.FromString(Skeleton())
	})
	if skeletonErr != nil {
		return "", fmt.Errorf("rddl: compile skeleton: %w", skeletonErr)
	}

	ctx := make(pongo2.Context, len(values))
	for key, value := range values {
		ctx[key] = value
	}

	out, err := skeletonTpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("rddl: execute skeleton: %w", err)
	}
	return out, nil
}
