// Package problem exposes the public contracts for the loader and parser
// stages that turn a problem description file into a renderable document.
// Implementations live under internal/problem to keep parsing dependencies
// hidden from consumers.
package problem
