package orchestrator_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-rddlgen/pkg/orchestrator"
	"github.com/goliatone/go-rddlgen/pkg/problem"
	"github.com/goliatone/go-rddlgen/pkg/render"
	"github.com/goliatone/go-rddlgen/pkg/testsupport"
)

func TestGenerateFromFileSource(t *testing.T) {
	gen := orchestrator.New()

	out, err := gen.Generate(context.Background(), orchestrator.Request{
		Source: problem.SourceFromFile("testdata/nav.yaml"),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, want := range []string{
		"domain nav {",
		"non-fluents nav_nf {",
		"instance inst1 {",
		"horizon = 40;",
		"discount = 1.0;",
	} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateFromModel(t *testing.T) {
	gen := orchestrator.New()
	doc := testsupport.SampleDocument()

	out, err := gen.Generate(context.Background(), orchestrator.Request{Model: &doc})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "domain nav {") {
		t.Fatalf("output missing domain block:\n%s", out)
	}
}

func TestGenerateFromRawDocument(t *testing.T) {
	data, err := os.ReadFile("testdata/nav.yaml")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	raw := problem.MustNewDocument(problem.SourceFromFile("testdata/nav.yaml"), data)

	gen := orchestrator.New()
	out, err := gen.Generate(context.Background(), orchestrator.Request{Document: &raw})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "max-non-def-actions = pos-inf;") {
		t.Fatalf("output missing action bound:\n%s", out)
	}
}

func TestGenerateAppliesRenderOptions(t *testing.T) {
	gen := orchestrator.New()
	doc := testsupport.SampleDocument()

	out, err := gen.Generate(context.Background(), orchestrator.Request{
		Model:         &doc,
		RenderOptions: render.RenderOptions{Horizon: "7", Discount: "0.95"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "horizon = 7;") || !strings.Contains(string(out), "discount = 0.95;") {
		t.Fatalf("overrides missing:\n%s", out)
	}
}

func TestGenerateRequiresInput(t *testing.T) {
	gen := orchestrator.New()

	if _, err := gen.Generate(context.Background(), orchestrator.Request{}); err == nil {
		t.Fatal("expected empty request to fail")
	}
}

func TestGenerateUnknownRenderer(t *testing.T) {
	gen := orchestrator.New()
	doc := testsupport.SampleDocument()

	_, err := gen.Generate(context.Background(), orchestrator.Request{
		Model:    &doc,
		Renderer: "latex",
	})
	if err == nil || !strings.Contains(err.Error(), "latex") {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestGenerateNilContext(t *testing.T) {
	gen := orchestrator.New()
	doc := testsupport.SampleDocument()

	//nolint:staticcheck // exercising the nil-context guard on purpose
	if _, err := gen.Generate(nil, orchestrator.Request{Model: &doc}); err == nil {
		t.Fatal("expected nil context to fail")
	}
}
