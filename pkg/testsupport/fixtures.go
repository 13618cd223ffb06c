// Package testsupport bundles fixture helpers shared by contract tests across
// the repository.
package testsupport

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-rddlgen/pkg/model"
)

// SampleDocument returns a small but complete navigation problem used by
// contract tests across packages.
func SampleDocument() model.Document {
	return model.Document{
		Domain: model.Domain{
			Name:         "nav",
			Requirements: []string{"concurrent"},
			Types:        []model.TypeDecl{{Name: "agent"}},
			PVariables: []model.PVariable{
				{Name: "at", Params: []string{"?a"}, Class: model.ClassStateFluent, Range: "bool", Default: "false"},
				{Name: "go", Params: []string{"?a"}, Class: model.ClassActionFluent, Range: "bool", Default: "false"},
			},
			CPFs:   []model.Assignment{{Target: "at'(?a)", Value: "at(?a) | go(?a)"}},
			Reward: "0",
		},
		NonFluents: model.NonFluents{
			Name:    "nav_nf",
			Objects: []model.ObjectDecl{{Type: "agent", Objects: []string{"a1"}}},
		},
		Instance: model.Instance{
			Name:             "inst1",
			NonFluents:       "nav_nf",
			InitState:        []model.Assignment{{Target: "at(a1)", Value: "false"}},
			MaxNonDefActions: "pos-inf",
			Horizon:          "40",
			Discount:         "1.0",
		},
	}
}

// MustReadGoldenString loads a golden file as a string.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(data)
}

// CaptureTemplateOutput runs fn with a buffer writer and returns both the
// returned string and whatever fn wrote, so tests can assert the two agree.
func CaptureTemplateOutput(t *testing.T, fn func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	result, err := fn(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return result, buf.String()
}

// DiffStrings fails the test when got differs from want, printing a unified
// diff for readability.
func DiffStrings(t *testing.T, want, got string) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
