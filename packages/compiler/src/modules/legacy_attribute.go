package modules

import (
	"strings"

	"jsx2mp-go/packages/compiler/src/ml_parser"
	"jsx2mp-go/packages/compiler/src/util"
)

// TransformPreComponentAttr normalizes attribute names for the QuickApp
// runtime. On `rax-` components event handlers are renamed from onX to bindX
// and camelCase names are dash-cased. Attribute names on `div` are
// lower-cased.
func TransformPreComponentAttr(nodes []ml_parser.Node) error {
	return ml_parser.VisitAll(preComponentAttrTransformer{}, nodes)
}

type preComponentAttrTransformer struct {
	ml_parser.BaseVisitor
}

func (preComponentAttrTransformer) VisitAttribute(attr *ml_parser.Attribute, parent *ml_parser.Element) error {
	if strings.Contains(parent.Name, "rax-") {
		// onChange => bindChange
		if strings.HasPrefix(attr.Name, "on") {
			attr.Name = "bind" + attr.Name[len("on"):]
		}
		// bindChange => bind-change
		if attr.Name != "className" && attr.Name != "class" && util.HasUpper(attr.Name) {
			attr.Name = util.UpperRunsToDashCase(attr.Name)
		}
	}
	if parent.Name == "div" {
		attr.Name = strings.ToLower(attr.Name)
	}
	return nil
}
