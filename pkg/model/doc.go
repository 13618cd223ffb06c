// Package model defines the typed RDDL document model consumed by renderers.
// A Document bundles the three top-level blocks (domain, non-fluents,
// instance); the Builder formats a Document into the flat substitution
// request the skeleton consumes, handling indentation, declaration layout,
// and cross-referenced identifiers. Sorts model the object-type vocabulary a
// domain draws its types and objects from, including interval sorts for
// numeric ranges.
package model
