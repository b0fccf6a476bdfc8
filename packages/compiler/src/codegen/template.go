// Package codegen prints a transformed markup tree as mini-app template text.
package codegen

import (
	"fmt"
	"strings"

	ep "jsx2mp-go/packages/compiler/src/expression_parser"
	"jsx2mp-go/packages/compiler/src/ml_parser"
)

// TemplateGenerator generates template text from a markup tree
type TemplateGenerator struct {
	builder strings.Builder
}

// NewTemplateGenerator creates a new template generator
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// GenTemplate is a shorthand for NewTemplateGenerator().Generate(nodes)
func GenTemplate(nodes []ml_parser.Node) string {
	return NewTemplateGenerator().Generate(nodes)
}

// Generate prints nodes in concise form: no added whitespace or indentation.
// Expressions are printed inside `{{ }}`.
func (g *TemplateGenerator) Generate(nodes []ml_parser.Node) string {
	g.builder.Reset()
	for _, node := range nodes {
		g.generateNode(node)
	}
	return g.builder.String()
}

func (g *TemplateGenerator) write(format string, args ...interface{}) {
	fmt.Fprintf(&g.builder, format, args...)
}

func (g *TemplateGenerator) generateNode(node ml_parser.Node) {
	switch n := node.(type) {
	case *ml_parser.Element:
		g.generateElement(n)
	case *ml_parser.Text:
		g.builder.WriteString(n.Value)
	case *ml_parser.ExpressionContainer:
		g.write("{{%s}}", ep.Stringify(n.Expression))
	default:
		panic(fmt.Sprintf("codegen: unknown node type %T", node))
	}
}

func (g *TemplateGenerator) generateElement(elem *ml_parser.Element) {
	g.write("<%s", elem.Name)
	for _, attr := range elem.Attrs {
		g.generateAttribute(attr)
	}
	if len(elem.Children) == 0 && elem.IsSelfClosing {
		g.builder.WriteString(" />")
		return
	}
	g.builder.WriteByte('>')
	for _, child := range elem.Children {
		g.generateNode(child)
	}
	g.write("</%s>", elem.Name)
}

func (g *TemplateGenerator) generateAttribute(attr *ml_parser.Attribute) {
	switch v := attr.Value.(type) {
	case nil:
		g.write(" %s", attr.Name)
	case *ml_parser.StringLiteral:
		g.write(" %s=\"%s\"", attr.Name, escapeAttr(v.Value))
	case *ml_parser.ExpressionContainer:
		g.write(" %s=\"{{%s}}\"", attr.Name, escapeAttr(ep.Stringify(v.Expression)))
	case *ml_parser.ExpressionValue:
		g.write(" %s=\"{{%s}}\"", attr.Name, escapeAttr(ep.Stringify(v.Expression)))
	}
}

// escapeAttr keeps the printed value inside its double quotes. Only the quote
// itself is escaped so that template expressions stay readable.
func escapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}
