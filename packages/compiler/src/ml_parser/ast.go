package ml_parser

import (
	"strings"

	ep "jsx2mp-go/packages/compiler/src/expression_parser"
	"jsx2mp-go/packages/compiler/src/util"
)

// Node represents a node in the markup tree
type Node interface {
	SourceSpan() *util.ParseSourceSpan
	Visit(visitor Visitor) error
}

// AttrValue is the value of an Attribute. The implementations are
// *StringLiteral, *ExpressionContainer and *ExpressionValue; a nil AttrValue
// means the attribute was written without a value.
type AttrValue interface {
	SourceSpan() *util.ParseSourceSpan
	// Clone returns a copy sharing no mutable state with the receiver.
	Clone() AttrValue
	// OriginalExpression returns the pre-transform expression this value was
	// derived from, if any.
	OriginalExpression() ep.Expr
	isAttrValue()
}

// StringLiteral is a quoted attribute value
type StringLiteral struct {
	Value      string
	Original   ep.Expr
	sourceSpan *util.ParseSourceSpan
}

// NewStringLiteral creates a new StringLiteral
func NewStringLiteral(value string, sourceSpan *util.ParseSourceSpan) *StringLiteral {
	return &StringLiteral{Value: value, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (s *StringLiteral) SourceSpan() *util.ParseSourceSpan {
	return s.sourceSpan
}

// Clone implements AttrValue
func (s *StringLiteral) Clone() AttrValue {
	return &StringLiteral{Value: s.Value, Original: ep.Clone(s.Original), sourceSpan: s.sourceSpan}
}

// OriginalExpression implements AttrValue
func (s *StringLiteral) OriginalExpression() ep.Expr {
	return s.Original
}

// ExpressionContainer wraps a captured expression, `{expr}` in source. It is
// used both as an attribute value and as a child node.
type ExpressionContainer struct {
	Expression ep.Expr
	Original   ep.Expr
	sourceSpan *util.ParseSourceSpan
}

// NewExpressionContainer creates a new ExpressionContainer
func NewExpressionContainer(expression ep.Expr, sourceSpan *util.ParseSourceSpan) *ExpressionContainer {
	return &ExpressionContainer{Expression: expression, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (c *ExpressionContainer) SourceSpan() *util.ParseSourceSpan {
	return c.sourceSpan
}

// Clone implements AttrValue
func (c *ExpressionContainer) Clone() AttrValue {
	return &ExpressionContainer{Expression: ep.Clone(c.Expression), Original: ep.Clone(c.Original), sourceSpan: c.sourceSpan}
}

// OriginalExpression implements AttrValue
func (c *ExpressionContainer) OriginalExpression() ep.Expr {
	return c.Original
}

// Visit implements the Node interface
func (c *ExpressionContainer) Visit(visitor Visitor) error {
	return visitor.VisitExpressionContainer(c)
}

// ExpressionValue is an attribute value that is a bare expression rather
// than a string or a container, e.g. `tabindex=1`.
type ExpressionValue struct {
	Expression ep.Expr
	sourceSpan *util.ParseSourceSpan
}

// NewExpressionValue creates a new ExpressionValue
func NewExpressionValue(expression ep.Expr, sourceSpan *util.ParseSourceSpan) *ExpressionValue {
	return &ExpressionValue{Expression: expression, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (v *ExpressionValue) SourceSpan() *util.ParseSourceSpan {
	return v.sourceSpan
}

// Clone implements AttrValue
func (v *ExpressionValue) Clone() AttrValue {
	return &ExpressionValue{Expression: ep.Clone(v.Expression), sourceSpan: v.sourceSpan}
}

// OriginalExpression implements AttrValue
func (v *ExpressionValue) OriginalExpression() ep.Expr {
	return nil
}

func (*StringLiteral) isAttrValue()       {}
func (*ExpressionContainer) isAttrValue() {}
func (*ExpressionValue) isAttrValue()     {}

// CloneValue clones v, keeping a nil value nil
func CloneValue(v AttrValue) AttrValue {
	if v == nil {
		return nil
	}
	return v.Clone()
}

// Attribute represents an attribute node
type Attribute struct {
	Name       string
	Value      AttrValue
	KeySpan    *util.ParseSourceSpan
	sourceSpan *util.ParseSourceSpan
}

// NewAttribute creates a new Attribute node
func NewAttribute(name string, value AttrValue, sourceSpan, keySpan *util.ParseSourceSpan) *Attribute {
	return &Attribute{
		Name:       name,
		Value:      value,
		KeySpan:    keySpan,
		sourceSpan: sourceSpan,
	}
}

// SourceSpan returns the source span
func (a *Attribute) SourceSpan() *util.ParseSourceSpan {
	return a.sourceSpan
}

// Element represents an element node
type Element struct {
	Name     string
	Attrs    []*Attribute
	Children []Node
	// IsCustom marks a user-defined component tag.
	IsCustom bool
	// IsCustomEl marks a custom element (dash-named tag).
	IsCustomEl    bool
	IsSelfClosing bool
	sourceSpan    *util.ParseSourceSpan
}

// NewElement creates a new Element node. The custom flags are derived from
// the tag name.
func NewElement(name string, attrs []*Attribute, children []Node, sourceSpan *util.ParseSourceSpan) *Element {
	return &Element{
		Name:       name,
		Attrs:      attrs,
		Children:   children,
		IsCustom:   isCustomTag(name),
		IsCustomEl: strings.Contains(name, "-"),
		sourceSpan: sourceSpan,
	}
}

// SourceSpan returns the source span
func (e *Element) SourceSpan() *util.ParseSourceSpan {
	return e.sourceSpan
}

// Visit implements the Node interface
func (e *Element) Visit(visitor Visitor) error {
	return visitor.VisitElement(e)
}

// IsMemberTag reports whether the tag is a member expression such as `Foo.Bar`
func (e *Element) IsMemberTag() bool {
	return strings.Contains(e.Name, ".")
}

// FindAttr returns the first attribute called name, or nil
func (e *Element) FindAttr(name string) *Attribute {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr
		}
	}
	return nil
}

// AppendAttr adds attr after the existing attributes
func (e *Element) AppendAttr(attr *Attribute) {
	e.Attrs = append(e.Attrs, attr)
}

func isCustomTag(name string) bool {
	if name == "" {
		return false
	}
	first := name[0]
	return (first >= 'A' && first <= 'Z') || strings.ContainsAny(name, ".-")
}

// Text represents a text node
type Text struct {
	Value      string
	sourceSpan *util.ParseSourceSpan
}

// NewText creates a new Text node
func NewText(value string, sourceSpan *util.ParseSourceSpan) *Text {
	return &Text{Value: value, sourceSpan: sourceSpan}
}

// SourceSpan returns the source span
func (t *Text) SourceSpan() *util.ParseSourceSpan {
	return t.sourceSpan
}

// Visit implements the Node interface
func (t *Text) Visit(visitor Visitor) error {
	return visitor.VisitText(t)
}
