package render

import "github.com/goliatone/go-rddlgen/pkg/model"

// RenderOptions describe per-request data renderers can apply without
// mutating the document pipeline. All overrides are pre-formatted literals
// substituted verbatim, matching the substitution contract of the skeleton.
type RenderOptions struct {
	// Horizon overrides the planning horizon declared by the instance block.
	Horizon string
	// Discount overrides the discount factor declared by the instance block.
	Discount string
	// MaxNonDefActions overrides the concurrent non-default action bound.
	MaxNonDefActions string
	// InstanceName overrides the instance identifier, letting one document
	// render several instances of the same problem family.
	InstanceName string
}

// Apply copies the set overrides onto the instance block.
func (o RenderOptions) Apply(instance *model.Instance) {
	if instance == nil {
		return
	}
	if o.Horizon != "" {
		instance.Horizon = o.Horizon
	}
	if o.Discount != "" {
		instance.Discount = o.Discount
	}
	if o.MaxNonDefActions != "" {
		instance.MaxNonDefActions = o.MaxNonDefActions
	}
	if o.InstanceName != "" {
		instance.Name = o.InstanceName
	}
}
