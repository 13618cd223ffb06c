package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHierarchyDeclare(t *testing.T) {
	h := NewHierarchy()

	if _, err := h.Declare("block"); err != nil {
		t.Fatalf("declare: %v", err)
	}
	if _, err := h.Declare("block"); err == nil {
		t.Fatal("expected duplicate declaration to fail")
	}
	if _, err := h.Declare(""); err == nil {
		t.Fatal("expected empty name to fail")
	}
	if _, ok := h.Get("block"); !ok {
		t.Fatal("declared sort not found")
	}
}

func TestHierarchyExtendPropagates(t *testing.T) {
	h := NewHierarchy()
	for _, name := range []string{"vehicle", "truck", "car"} {
		if _, err := h.Declare(name); err != nil {
			t.Fatalf("declare %s: %v", name, err)
		}
	}
	if err := h.Attach("truck", "vehicle"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := h.Attach("car", "vehicle"); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := h.Extend("truck", "t1"); err != nil {
		t.Fatalf("extend: %v", err)
	}

	truck, _ := h.Get("truck")
	vehicle, _ := h.Get("vehicle")
	car, _ := h.Get("car")

	if !truck.Contains("t1") {
		t.Fatal("truck missing its own symbol")
	}
	if !vehicle.Contains("t1") {
		t.Fatal("symbol did not propagate to parent sort")
	}
	if car.Contains("t1") {
		t.Fatal("symbol leaked into sibling sort")
	}
	if got := vehicle.Cardinality(); got != 1 {
		t.Fatalf("vehicle cardinality = %d, want 1", got)
	}
}

func TestHierarchyClosureAndChildren(t *testing.T) {
	h := NewHierarchy()
	for _, name := range []string{"a", "b", "c"} {
		if _, err := h.Declare(name); err != nil {
			t.Fatalf("declare %s: %v", name, err)
		}
	}
	if err := h.Attach("c", "b"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := h.Attach("b", "a"); err != nil {
		t.Fatalf("attach: %v", err)
	}

	closure := h.InclusionClosure("c")
	names := make([]string, 0, len(closure))
	for _, s := range closure {
		names = append(names, s.Name())
	}
	if diff := cmp.Diff([]string{"c", "b", "a"}, names); diff != "" {
		t.Fatalf("closure mismatch (-want +got):\n%s", diff)
	}

	children := h.Children("a")
	if len(children) != 1 || children[0].Name() != "b" {
		t.Fatalf("children of a = %v, want [b]", children)
	}
	parents := h.Parents("c")
	if len(parents) != 1 || parents[0].Name() != "b" {
		t.Fatalf("parents of c = %v, want [b]", parents)
	}
}

func TestHierarchyDecls(t *testing.T) {
	h := NewHierarchy()
	for _, name := range []string{"robot", "zone"} {
		if _, err := h.Declare(name); err != nil {
			t.Fatalf("declare %s: %v", name, err)
		}
	}
	for _, symbol := range []string{"r1", "r2"} {
		if err := h.Extend("robot", symbol); err != nil {
			t.Fatalf("extend: %v", err)
		}
	}

	wantTypes := []TypeDecl{{Name: "robot"}, {Name: "zone"}}
	if diff := cmp.Diff(wantTypes, h.TypeDecls()); diff != "" {
		t.Fatalf("type decls mismatch (-want +got):\n%s", diff)
	}

	wantObjects := []ObjectDecl{{Type: "robot", Objects: []string{"r1", "r2"}}}
	if diff := cmp.Diff(wantObjects, h.ObjectDecls()); diff != "" {
		t.Fatalf("object decls mismatch (-want +got):\n%s", diff)
	}
}

func TestIntervalContains(t *testing.T) {
	cases := []struct {
		name     string
		interval *Interval
		value    float64
		want     bool
	}{
		{"natural in range", Naturals(), 5, true},
		{"natural negative", Naturals(), -1, false},
		{"int fractional", Integers(), 1.5, false},
		{"int whole", Integers(), -7, true},
		{"real fractional", Reals(), 1.5, true},
		{"custom below bound", NewInterval("grade", 1, 10, true), 0, false},
		{"custom at bound", NewInterval("grade", 1, 10, true), 10, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.interval.Contains(tc.value); got != tc.want {
				t.Fatalf("Contains(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestIntervalCardinality(t *testing.T) {
	if got := NewInterval("grade", 1, 10, true).Cardinality(); got != 10 {
		t.Fatalf("cardinality = %d, want 10", got)
	}
	if got := Reals().Cardinality(); got != 0 {
		t.Fatalf("continuous cardinality = %d, want 0", got)
	}
	if !Naturals().Builtin() || !Integers().Builtin() || !Reals().Builtin() {
		t.Fatal("builtin intervals should report Builtin")
	}
}

func TestIntervalSetBounds(t *testing.T) {
	interval := NewInterval("load", 0, 1, false)
	interval.SetBounds(0, 100)
	if lower, upper := interval.Bounds(); lower != 0 || upper != 100 {
		t.Fatalf("bounds = (%v, %v), want (0, 100)", lower, upper)
	}
	if !interval.Contains(42.5) {
		t.Fatal("value within widened bounds rejected")
	}
}
