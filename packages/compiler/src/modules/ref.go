package modules

import (
	ep "jsx2mp-go/packages/compiler/src/expression_parser"
	"jsx2mp-go/packages/compiler/src/ml_parser"
)

const bindComRefAttr = "bindComRef"

// injectComRef appends a bindComRef attribute to a child component so the
// ref reaches it at mount time:
//
//	<Child bindComRef="_r0" />       when refs are triggered by name
//	<Child bindComRef={this.ref} />  otherwise
func injectComRef(element *ml_parser.Element, expression ep.Expr, resolved *ml_parser.StringLiteral, triggerRef bool) {
	var value ml_parser.AttrValue
	if triggerRef {
		value = resolved.Clone()
	} else {
		value = ml_parser.NewExpressionContainer(ep.Clone(expression), resolved.SourceSpan())
	}
	element.AppendAttr(ml_parser.NewAttribute(bindComRefAttr, value, resolved.SourceSpan(), nil))
}
