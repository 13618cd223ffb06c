// Package rddl holds the fixed RDDL document skeleton and the substitution
// contract used to fill it. The skeleton nests three blocks (domain,
// non-fluents, instance) with a flat set of named placeholders; rendering is
// literal substitution of caller-supplied text with no escaping, trimming, or
// re-indentation. Callers that want construction-time safety should build a
// Request instead of a raw map so every placeholder is accounted for by a
// struct field.
package rddl
