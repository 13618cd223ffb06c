package parser

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-rddlgen/pkg/model"
	"github.com/goliatone/go-rddlgen/pkg/problem"
)

func loadFixture(t *testing.T, path string) problem.Document {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return problem.MustNewDocument(problem.SourceFromFile(path), data)
}

func TestParserParseYAML(t *testing.T) {
	doc, err := New().Parse(context.Background(), loadFixture(t, "testdata/nav.yaml"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := model.Document{
		Domain: model.Domain{
			Name:         "nav",
			Requirements: []string{"concurrent"},
			Types:        []model.TypeDecl{{Name: "agent"}},
			PVariables: []model.PVariable{
				{Name: "at", Params: []string{"?a"}, Class: "state-fluent", Range: "bool", Default: "false"},
				{Name: "go", Params: []string{"?a"}, Class: "action-fluent", Range: "bool", Default: "false"},
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

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestParserParseJSON(t *testing.T) {
	payload := `{"domain": {"name": "nav", "reward": "0"}, "nonFluents": {"name": "nav_nf"}, "instance": {"name": "i1", "horizon": "10", "discount": "0.9"}}`
	doc := problem.MustNewDocument(problem.SourceFromFS("inline.json"), []byte(payload))

	parsed, err := New().Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if parsed.Domain.Name != "nav" || parsed.Instance.Horizon != "10" {
		t.Fatalf("unexpected document: %+v", parsed)
	}
}

func TestParserRejectsUnknownFields(t *testing.T) {
	payload := "domain:\n  name: nav\n  reward: \"0\"\n  rewards: \"0\"\n"
	doc := problem.MustNewDocument(problem.SourceFromFS("typo.yaml"), []byte(payload))

	_, err := New().Parse(context.Background(), doc)
	if err == nil {
		t.Fatal("expected unknown field to fail")
	}
}

func TestParserRejectsMissingDomainName(t *testing.T) {
	payload := "instance:\n  name: i1\n"
	doc := problem.MustNewDocument(problem.SourceFromFS("anon.yaml"), []byte(payload))

	_, err := New().Parse(context.Background(), doc)
	if err == nil || !strings.Contains(err.Error(), "domain name") {
		t.Fatalf("expected domain name error, got %v", err)
	}
}

func TestParserHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Parse(ctx, loadFixture(t, "testdata/nav.yaml"))
	if err == nil {
		t.Fatal("expected cancelled context to fail")
	}
}
