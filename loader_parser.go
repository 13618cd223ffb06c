package rddlgen

import (
	internalLoader "github.com/goliatone/go-rddlgen/internal/problem/loader"
	internalParser "github.com/goliatone/go-rddlgen/internal/problem/parser"
	"github.com/goliatone/go-rddlgen/pkg/problem"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...problem.LoaderOption) problem.Loader {
	cfg := problem.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser() problem.Parser {
	return internalParser.New()
}
