package model

// Fluent classes accepted in pvariable declarations.
const (
	ClassStateFluent  = "state-fluent"
	ClassActionFluent = "action-fluent"
	ClassIntermFluent = "interm-fluent"
	ClassObservFluent = "observ-fluent"
	ClassNonFluent    = "non-fluent"
)

// TypeDecl declares a type inside the domain block. A declaration with Values
// is an enumerated type; one without is a plain object type.
type TypeDecl struct {
	Name   string   `json:"name" yaml:"name"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// PVariable declares a parameterized variable inside the pvariables block.
type PVariable struct {
	Name    string   `json:"name" yaml:"name"`
	Params  []string `json:"params,omitempty" yaml:"params,omitempty"`
	Class   string   `json:"class" yaml:"class"`
	Range   string   `json:"range" yaml:"range"`
	Default string   `json:"default,omitempty" yaml:"default,omitempty"`
}

// Assignment pairs a target term with an expression. An assignment without a
// value renders as a bare positive literal, mirroring RDDL shorthand for
// boolean fluents.
type Assignment struct {
	Target string `json:"target" yaml:"target"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
}

// ObjectDecl lists the objects declared for one type.
type ObjectDecl struct {
	Type    string   `json:"type" yaml:"type"`
	Objects []string `json:"objects" yaml:"objects"`
}

// Domain is the domain block: the vocabulary and dynamics of the planning
// problem.
type Domain struct {
	Name                string       `json:"name" yaml:"name"`
	Requirements        []string     `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Types               []TypeDecl   `json:"types,omitempty" yaml:"types,omitempty"`
	PVariables          []PVariable  `json:"pvariables,omitempty" yaml:"pvariables,omitempty"`
	CPFs                []Assignment `json:"cpfs,omitempty" yaml:"cpfs,omitempty"`
	Reward              string       `json:"reward" yaml:"reward"`
	ActionPreconditions []string     `json:"actionPreconditions,omitempty" yaml:"actionPreconditions,omitempty"`
	StateConstraints    []string     `json:"stateConstraints,omitempty" yaml:"stateConstraints,omitempty"`
	StateInvariants     []string     `json:"stateInvariants,omitempty" yaml:"stateInvariants,omitempty"`
}

// NonFluents is the non-fluents block: the objects and fixed values of one
// problem family.
type NonFluents struct {
	Name        string       `json:"name" yaml:"name"`
	Domain      string       `json:"domain,omitempty" yaml:"domain,omitempty"`
	Objects     []ObjectDecl `json:"objects,omitempty" yaml:"objects,omitempty"`
	Assignments []Assignment `json:"nonFluents,omitempty" yaml:"nonFluents,omitempty"`
}

// Instance is the instance block: the initial state and run parameters of one
// concrete problem.
type Instance struct {
	Name             string       `json:"name" yaml:"name"`
	Domain           string       `json:"domain,omitempty" yaml:"domain,omitempty"`
	NonFluents       string       `json:"nonFluents,omitempty" yaml:"nonFluents,omitempty"`
	InitState        []Assignment `json:"initState,omitempty" yaml:"initState,omitempty"`
	MaxNonDefActions string       `json:"maxNonDefActions,omitempty" yaml:"maxNonDefActions,omitempty"`
	Horizon          string       `json:"horizon" yaml:"horizon"`
	Discount         string       `json:"discount" yaml:"discount"`
}

// Document bundles the three top-level blocks of one renderable problem.
type Document struct {
	Domain     Domain     `json:"domain" yaml:"domain"`
	NonFluents NonFluents `json:"nonFluents" yaml:"nonFluents"`
	Instance   Instance   `json:"instance" yaml:"instance"`
}
