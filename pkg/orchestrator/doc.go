// Package orchestrator wires the loader, parser, and renderer registry into a
// single Generate entry point. Defaults cover the common path (YAML problem
// file in, RDDL text out) while every stage stays injectable for callers that
// bring their own implementations.
package orchestrator
