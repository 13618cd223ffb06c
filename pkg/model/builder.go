package model

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-rddlgen/pkg/rddl"
)

// bodyIndent is the indentation applied to every generated declaration line.
const bodyIndent = "        "

// defaultMaxNonDefActions is used when an instance leaves the bound unset.
const defaultMaxNonDefActions = "pos-inf"

// Builder formats a Document into the flat substitution request the skeleton
// consumes. Implementations own layout decisions (indentation, line breaks,
// statement terminators); the renderer substitutes the result verbatim.
type Builder interface {
	Build(doc Document) (rddl.Request, error)
}

// NewBuilder returns the default builder.
func NewBuilder() Builder {
	return &builder{}
}

type builder struct{}

func (b *builder) Build(doc Document) (rddl.Request, error) {
	if err := validateDocument(doc); err != nil {
		return rddl.Request{}, err
	}

	nonFluentsRef := strings.TrimSpace(doc.Instance.NonFluents)
	if nonFluentsRef == "" {
		nonFluentsRef = doc.NonFluents.Name
	}

	return rddl.Request{
		DomainName:             doc.Domain.Name,
		ReqList:                strings.Join(doc.Domain.Requirements, ", "),
		TypeList:               formatTypes(doc.Domain.Types),
		PvarList:               formatPVariables(doc.Domain.PVariables),
		CpfsList:               formatAssignments(doc.Domain.CPFs),
		RewardExpr:             doc.Domain.Reward,
		ActionPreconditionList: formatExpressions(doc.Domain.ActionPreconditions),
		StateConstraintList:    formatExpressions(doc.Domain.StateConstraints),
		StateInvariantList:     formatExpressions(doc.Domain.StateInvariants),
		DomainNonFluents:       doc.NonFluents.Name,
		ObjectList:             formatObjects(doc.NonFluents.Objects),
		NonFluentExpr:          formatAssignments(doc.NonFluents.Assignments),
		InstanceName:           doc.Instance.Name,
		NonFluentsRef:          nonFluentsRef,
		InitStateFluentExpr:    formatAssignments(doc.Instance.InitState),
		MaxNonDefActions:       maxNonDefActionsOrDefault(doc.Instance.MaxNonDefActions),
		Horizon:                doc.Instance.Horizon,
		Discount:               doc.Instance.Discount,
	}, nil
}

func validateDocument(doc Document) error {
	if strings.TrimSpace(doc.Domain.Name) == "" {
		return fmt.Errorf("model: domain name is required")
	}
	if strings.TrimSpace(doc.Domain.Reward) == "" {
		return fmt.Errorf("model: reward expression is required")
	}
	if strings.TrimSpace(doc.NonFluents.Name) == "" {
		return fmt.Errorf("model: non-fluents name is required")
	}
	if strings.TrimSpace(doc.Instance.Name) == "" {
		return fmt.Errorf("model: instance name is required")
	}
	if strings.TrimSpace(doc.Instance.Horizon) == "" {
		return fmt.Errorf("model: instance horizon is required")
	}
	if strings.TrimSpace(doc.Instance.Discount) == "" {
		return fmt.Errorf("model: instance discount is required")
	}

	// The skeleton cross-references the domain name from the non-fluents and
	// instance blocks, so a divergent reference cannot be rendered.
	if ref := strings.TrimSpace(doc.NonFluents.Domain); ref != "" && ref != doc.Domain.Name {
		return fmt.Errorf("model: non-fluents block references domain %q, document declares %q", ref, doc.Domain.Name)
	}
	if ref := strings.TrimSpace(doc.Instance.Domain); ref != "" && ref != doc.Domain.Name {
		return fmt.Errorf("model: instance block references domain %q, document declares %q", ref, doc.Domain.Name)
	}
	return nil
}

func maxNonDefActionsOrDefault(value string) string {
	if strings.TrimSpace(value) == "" {
		return defaultMaxNonDefActions
	}
	return value
}

func formatTypes(types []TypeDecl) string {
	lines := make([]string, 0, len(types))
	for _, decl := range types {
		if len(decl.Values) > 0 {
			lines = append(lines, fmt.Sprintf("%s%s : {%s};", bodyIndent, decl.Name, strings.Join(decl.Values, ", ")))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s%s : object;", bodyIndent, decl.Name))
	}
	return strings.Join(lines, "\n")
}

func formatPVariables(pvars []PVariable) string {
	lines := make([]string, 0, len(pvars))
	for _, pvar := range pvars {
		head := pvar.Name
		if len(pvar.Params) > 0 {
			head = fmt.Sprintf("%s(%s)", pvar.Name, strings.Join(pvar.Params, ", "))
		}
		spec := fmt.Sprintf("{ %s, %s }", pvar.Class, pvar.Range)
		if pvar.Default != "" {
			spec = fmt.Sprintf("{ %s, %s, default = %s }", pvar.Class, pvar.Range, pvar.Default)
		}
		lines = append(lines, fmt.Sprintf("%s%s : %s;", bodyIndent, head, spec))
	}
	return strings.Join(lines, "\n")
}

func formatAssignments(assignments []Assignment) string {
	lines := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		if assignment.Value == "" {
			lines = append(lines, fmt.Sprintf("%s%s;", bodyIndent, assignment.Target))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s%s = %s;", bodyIndent, assignment.Target, assignment.Value))
	}
	return strings.Join(lines, "\n")
}

func formatExpressions(expressions []string) string {
	lines := make([]string, 0, len(expressions))
	for _, expr := range expressions {
		lines = append(lines, fmt.Sprintf("%s%s;", bodyIndent, expr))
	}
	return strings.Join(lines, "\n")
}

func formatObjects(objects []ObjectDecl) string {
	lines := make([]string, 0, len(objects))
	for _, decl := range objects {
		lines = append(lines, fmt.Sprintf("%s%s : {%s};", bodyIndent, decl.Type, strings.Join(decl.Objects, ", ")))
	}
	return strings.Join(lines, "\n")
}
