package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	rddlgen "github.com/goliatone/go-rddlgen"
	"github.com/goliatone/go-rddlgen/pkg/orchestrator"
	"github.com/goliatone/go-rddlgen/pkg/problem"
	"github.com/goliatone/go-rddlgen/pkg/tui"
)

func main() {
	source := flag.String("source", "problem.yaml", "problem description path or URL")
	renderer := flag.String("renderer", "rddl", "renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for missing instance parameters")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	gen := orchestrator.New(
		orchestrator.WithLoaderOptions(problem.WithHTTPFallback(30 * time.Second)),
	)

	var (
		text []byte
		err  error
	)
	if *interactive {
		text, err = generateInteractive(ctx, gen, src, *renderer)
	} else {
		text, err = gen.Generate(ctx, orchestrator.Request{Source: src, Renderer: *renderer})
	}
	if err != nil {
		log.Fatalf("Failed to generate model: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, text, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Model written to %s\n", *output)
	} else {
		fmt.Println(string(text))
	}
}

func generateInteractive(ctx context.Context, gen *orchestrator.Orchestrator, src problem.Source, renderer string) ([]byte, error) {
	doc, err := rddlgen.NewLoader(problem.WithHTTPFallback(30 * time.Second)).Load(ctx, src)
	if err != nil {
		return nil, err
	}
	parsed, err := rddlgen.NewParser().Parse(ctx, doc)
	if err != nil {
		return nil, err
	}

	if err := tui.PromptInstance(ctx, tui.NewSurveyDriver(), &parsed.Instance); err != nil {
		return nil, err
	}

	return gen.Generate(ctx, orchestrator.Request{Model: &parsed, Renderer: renderer})
}

func parseSource(raw string) problem.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return problem.SourceFromURL(path)
	}
	return problem.SourceFromFile(path)
}
