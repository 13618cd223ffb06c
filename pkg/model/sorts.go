package model

import (
	"fmt"
	"math"
)

// Sort is a named object type whose domain is a set of constant symbols.
// Sorts are identified by name alone: two sorts with the same name are the
// same sort.
type Sort struct {
	name    string
	builtin bool
	members map[string]struct{}
	order   []string
}

// Name returns the sort identifier.
func (s *Sort) Name() string {
	return s.name
}

// Builtin reports whether the sort is one of the built-in numeric sorts.
func (s *Sort) Builtin() bool {
	return s.builtin
}

// Contains reports whether the symbol belongs to the sort's domain.
func (s *Sort) Contains(symbol string) bool {
	_, ok := s.members[symbol]
	return ok
}

// Cardinality returns the number of symbols in the sort's domain.
func (s *Sort) Cardinality() int {
	return len(s.members)
}

// Domain returns the sort's symbols in declaration order.
func (s *Sort) Domain() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Sort) add(symbol string) {
	if _, ok := s.members[symbol]; ok {
		return
	}
	s.members[symbol] = struct{}{}
	s.order = append(s.order, symbol)
}

// Hierarchy owns a set of sorts plus the parent edges between them. It keeps
// declaration order so generated text is deterministic.
type Hierarchy struct {
	sorts   map[string]*Sort
	order   []string
	parents map[string][]string
}

// NewHierarchy returns an empty sort hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		sorts:   make(map[string]*Sort),
		parents: make(map[string][]string),
	}
}

// Declare registers a new sort. Re-declaring a name is an error.
func (h *Hierarchy) Declare(name string) (*Sort, error) {
	if name == "" {
		return nil, fmt.Errorf("model: sort name is required")
	}
	if _, exists := h.sorts[name]; exists {
		return nil, fmt.Errorf("model: sort %q already declared", name)
	}
	s := &Sort{name: name, members: make(map[string]struct{})}
	h.sorts[name] = s
	h.order = append(h.order, name)
	return s, nil
}

// Get returns a declared sort by name.
func (h *Hierarchy) Get(name string) (*Sort, bool) {
	s, ok := h.sorts[name]
	return s, ok
}

// Attach records parent as a direct supersort of child. Symbols added to the
// child afterwards propagate to the parent.
func (h *Hierarchy) Attach(child, parent string) error {
	if _, ok := h.sorts[child]; !ok {
		return fmt.Errorf("model: sort %q not declared", child)
	}
	if _, ok := h.sorts[parent]; !ok {
		return fmt.Errorf("model: sort %q not declared", parent)
	}
	for _, existing := range h.parents[child] {
		if existing == parent {
			return nil
		}
	}
	h.parents[child] = append(h.parents[child], parent)
	return nil
}

// Extend adds a constant symbol to the named sort and to every sort in its
// inclusion closure.
func (h *Hierarchy) Extend(name, symbol string) error {
	if _, ok := h.sorts[name]; !ok {
		return fmt.Errorf("model: sort %q not declared", name)
	}
	if symbol == "" {
		return fmt.Errorf("model: symbol is required")
	}
	for _, s := range h.InclusionClosure(name) {
		s.add(symbol)
	}
	return nil
}

// Parents returns the direct supersorts of the named sort.
func (h *Hierarchy) Parents(name string) []*Sort {
	var out []*Sort
	for _, parent := range h.parents[name] {
		if s, ok := h.sorts[parent]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Children returns the direct subsorts of the named sort.
func (h *Hierarchy) Children(name string) []*Sort {
	var out []*Sort
	for _, child := range h.order {
		for _, parent := range h.parents[child] {
			if parent == name {
				out = append(out, h.sorts[child])
			}
		}
	}
	return out
}

// InclusionClosure returns the named sort plus every sort reachable through
// parent edges.
func (h *Hierarchy) InclusionClosure(name string) []*Sort {
	seen := make(map[string]struct{})
	var closure []*Sort

	frontier := []string{name}
	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if _, done := seen[current]; done {
			continue
		}
		seen[current] = struct{}{}
		if s, ok := h.sorts[current]; ok {
			closure = append(closure, s)
		}
		frontier = append(frontier, h.parents[current]...)
	}
	return closure
}

// TypeDecls converts the hierarchy's non-builtin sorts into domain-block type
// declarations, in declaration order.
func (h *Hierarchy) TypeDecls() []TypeDecl {
	var out []TypeDecl
	for _, name := range h.order {
		if h.sorts[name].builtin {
			continue
		}
		out = append(out, TypeDecl{Name: name})
	}
	return out
}

// ObjectDecls converts the hierarchy's populated non-builtin sorts into
// non-fluents object declarations, in declaration order.
func (h *Hierarchy) ObjectDecls() []ObjectDecl {
	var out []ObjectDecl
	for _, name := range h.order {
		s := h.sorts[name]
		if s.builtin || s.Cardinality() == 0 {
			continue
		}
		out = append(out, ObjectDecl{Type: name, Objects: s.Domain()})
	}
	return out
}

// Interval is a numeric sort bounded below and above. Integral intervals
// contain only whole values.
type Interval struct {
	name     string
	builtin  bool
	lower    float64
	upper    float64
	integral bool
}

// NewInterval returns an interval sort with the given bounds.
func NewInterval(name string, lower, upper float64, integral bool) *Interval {
	return &Interval{name: name, lower: lower, upper: upper, integral: integral}
}

// Name returns the interval identifier.
func (i *Interval) Name() string {
	return i.name
}

// Builtin reports whether the interval is one of the built-in numeric sorts.
func (i *Interval) Builtin() bool {
	return i.builtin
}

// Bounds returns the interval's lower and upper bound.
func (i *Interval) Bounds() (float64, float64) {
	return i.lower, i.upper
}

// SetBounds replaces the interval's bounds.
func (i *Interval) SetBounds(lower, upper float64) {
	i.lower = lower
	i.upper = upper
}

// Contains reports whether the value lies within bounds. Integral intervals
// reject fractional values.
func (i *Interval) Contains(x float64) bool {
	if i.integral && x != math.Trunc(x) {
		return false
	}
	return i.lower <= x && x <= i.upper
}

// Cardinality returns the number of values an integral interval holds, or 0
// for a continuous one.
func (i *Interval) Cardinality() int64 {
	if !i.integral {
		return 0
	}
	return int64(i.upper-i.lower) + 1
}

// Naturals returns the built-in natural-number interval.
func Naturals() *Interval {
	return &Interval{name: "natural", builtin: true, lower: 0, upper: 1<<32 - 1, integral: true}
}

// Integers returns the built-in integer interval.
func Integers() *Interval {
	return &Interval{name: "int", builtin: true, lower: -(1<<31 - 1), upper: 1<<31 - 1, integral: true}
}

// Reals returns the built-in real interval.
func Reals() *Interval {
	return &Interval{name: "real", builtin: true, lower: -math.MaxFloat32, upper: math.MaxFloat32, integral: false}
}
