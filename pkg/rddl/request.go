package rddl

// Placeholder keys as they appear in the skeleton. Callers assembling raw
// value maps should use these rather than repeating the literals.
const (
	KeyDomainName             = "domain_name"
	KeyReqList                = "req_list"
	KeyTypeList               = "type_list"
	KeyPvarList               = "pvar_list"
	KeyCpfsList               = "cpfs_list"
	KeyRewardExpr             = "reward_expr"
	KeyActionPreconditionList = "action_precondition_list"
	KeyStateConstraintList    = "state_constraint_list"
	KeyStateInvariantList     = "state_invariant_list"
	KeyDomainNonFluents       = "domain_non_fluents"
	KeyObjectList             = "object_list"
	KeyNonFluentExpr          = "non_fluent_expr"
	KeyInstanceName           = "instance_name"
	KeyNonFluentsRef          = "non_fluents_ref"
	KeyInitStateFluentExpr    = "init_state_fluent_expr"
	KeyMaxNonDefActions       = "max_nondef_actions"
	KeyHorizon                = "horizon"
	KeyDiscount               = "discount"
)

// Request enumerates one field per skeleton placeholder so a render input can
// be assembled with construction-time completeness instead of an open-ended
// map. Every field is pre-formatted text; list fields carry whole body blocks
// (one declaration per line, indentation included) and are substituted as-is.
type Request struct {
	// DomainName identifies the domain block and is cross-referenced by the
	// non-fluents and instance blocks.
	DomainName string

	// ReqList is the comma separated requirement tokens, e.g. "concurrent,
	// reward-deterministic".
	ReqList string

	// TypeList is the body of the types block.
	TypeList string

	// PvarList is the body of the pvariables block.
	PvarList string

	// CpfsList is the body of the cpfs block.
	CpfsList string

	// RewardExpr is the single reward expression.
	RewardExpr string

	// ActionPreconditionList is the body of the action-preconditions block.
	ActionPreconditionList string

	// StateConstraintList is the body of the state-constraints block.
	StateConstraintList string

	// StateInvariantList is the body of the state-invariants block.
	StateInvariantList string

	// DomainNonFluents names the non-fluents block.
	DomainNonFluents string

	// ObjectList is the body of the objects block.
	ObjectList string

	// NonFluentExpr is the body of the non-fluents assignment block.
	NonFluentExpr string

	// InstanceName names the instance block.
	InstanceName string

	// NonFluentsRef references the non-fluents block from the instance.
	NonFluentsRef string

	// InitStateFluentExpr is the body of the init-state block.
	InitStateFluentExpr string

	// MaxNonDefActions bounds concurrent non-default actions; a literal value
	// or a keyword such as "pos-inf".
	MaxNonDefActions string

	// Horizon is the planning horizon literal.
	Horizon string

	// Discount is the discount factor literal.
	Discount string
}

// Values expands the request into the placeholder map the renderer consumes.
// Every key is always present, so a Request renders without a MissingKeyError
// even when fields are left empty.
func (r Request) Values() map[string]string {
	return map[string]string{
		KeyDomainName:             r.DomainName,
		KeyReqList:                r.ReqList,
		KeyTypeList:               r.TypeList,
		KeyPvarList:               r.PvarList,
		KeyCpfsList:               r.CpfsList,
		KeyRewardExpr:             r.RewardExpr,
		KeyActionPreconditionList: r.ActionPreconditionList,
		KeyStateConstraintList:    r.StateConstraintList,
		KeyStateInvariantList:     r.StateInvariantList,
		KeyDomainNonFluents:       r.DomainNonFluents,
		KeyObjectList:             r.ObjectList,
		KeyNonFluentExpr:          r.NonFluentExpr,
		KeyInstanceName:           r.InstanceName,
		KeyNonFluentsRef:          r.NonFluentsRef,
		KeyInitStateFluentExpr:    r.InitStateFluentExpr,
		KeyMaxNonDefActions:       r.MaxNonDefActions,
		KeyHorizon:                r.Horizon,
		KeyDiscount:               r.Discount,
	}
}

// Render substitutes the request into the skeleton.
func (r Request) Render() (string, error) {
	return Render(r.Values())
}
