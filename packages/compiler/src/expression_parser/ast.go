package expression_parser

// ParseSpan records the absolute byte range of an expression in its source file
type ParseSpan struct {
	Start int
	End   int
}

// Expr is a captured JavaScript expression. The set of implementations is
// closed; switch on the concrete type.
type Expr interface {
	Span() ParseSpan
	isExpr()
}

// Identifier is a bare name such as `item`
type Identifier struct {
	Loc  ParseSpan
	Name string
}

// ThisExpression is the `this` keyword
type ThisExpression struct {
	Loc ParseSpan
}

// MemberExpression is `object.property` or `object[property]`.
// When Computed is false Property is always an *Identifier.
type MemberExpression struct {
	Loc      ParseSpan
	Object   Expr
	Property Expr
	Computed bool
}

// StringLiteral is a quoted string
type StringLiteral struct {
	Loc   ParseSpan
	Value string
}

// NumericLiteral is a number; Raw keeps the source spelling
type NumericLiteral struct {
	Loc   ParseSpan
	Value float64
	Raw   string
}

// BooleanLiteral is `true` or `false`
type BooleanLiteral struct {
	Loc   ParseSpan
	Value bool
}

// NullLiteral is `null`
type NullLiteral struct {
	Loc ParseSpan
}

// CallExpression is `callee(args...)`
type CallExpression struct {
	Loc       ParseSpan
	Callee    Expr
	Arguments []Expr
}

// UnaryExpression is a prefix operator applied to Argument
type UnaryExpression struct {
	Loc      ParseSpan
	Operator string
	Argument Expr
}

// BinaryExpression covers arithmetic, comparison and logical operators
type BinaryExpression struct {
	Loc      ParseSpan
	Operator string
	Left     Expr
	Right    Expr
}

// ConditionalExpression is `test ? consequent : alternate`
type ConditionalExpression struct {
	Loc        ParseSpan
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

// ArrayExpression is `[a, b]`
type ArrayExpression struct {
	Loc      ParseSpan
	Elements []Expr
}

// ObjectProperty is one `key: value` entry of an object literal
type ObjectProperty struct {
	Key      Expr
	Value    Expr
	Computed bool
}

// ObjectExpression is `{a: b}`
type ObjectExpression struct {
	Loc        ParseSpan
	Properties []*ObjectProperty
}

func (e *Identifier) Span() ParseSpan            { return e.Loc }
func (e *ThisExpression) Span() ParseSpan        { return e.Loc }
func (e *MemberExpression) Span() ParseSpan      { return e.Loc }
func (e *StringLiteral) Span() ParseSpan         { return e.Loc }
func (e *NumericLiteral) Span() ParseSpan        { return e.Loc }
func (e *BooleanLiteral) Span() ParseSpan        { return e.Loc }
func (e *NullLiteral) Span() ParseSpan           { return e.Loc }
func (e *CallExpression) Span() ParseSpan        { return e.Loc }
func (e *UnaryExpression) Span() ParseSpan       { return e.Loc }
func (e *BinaryExpression) Span() ParseSpan      { return e.Loc }
func (e *ConditionalExpression) Span() ParseSpan { return e.Loc }
func (e *ArrayExpression) Span() ParseSpan       { return e.Loc }
func (e *ObjectExpression) Span() ParseSpan      { return e.Loc }

func (*Identifier) isExpr()            {}
func (*ThisExpression) isExpr()        {}
func (*MemberExpression) isExpr()      {}
func (*StringLiteral) isExpr()         {}
func (*NumericLiteral) isExpr()        {}
func (*BooleanLiteral) isExpr()        {}
func (*NullLiteral) isExpr()           {}
func (*CallExpression) isExpr()        {}
func (*UnaryExpression) isExpr()       {}
func (*BinaryExpression) isExpr()      {}
func (*ConditionalExpression) isExpr() {}
func (*ArrayExpression) isExpr()       {}
func (*ObjectExpression) isExpr()      {}

// IsThisMember reports whether e is a member access on the component
// instance, e.g. `this.scrollRef`.
func IsThisMember(e Expr) bool {
	m, ok := e.(*MemberExpression)
	if !ok {
		return false
	}
	_, ok = m.Object.(*ThisExpression)
	return ok
}

// Clone returns a deep copy of e sharing no nodes with it.
func Clone(e Expr) Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *Identifier:
		c := *n
		return &c
	case *ThisExpression:
		c := *n
		return &c
	case *MemberExpression:
		return &MemberExpression{Loc: n.Loc, Object: Clone(n.Object), Property: Clone(n.Property), Computed: n.Computed}
	case *StringLiteral:
		c := *n
		return &c
	case *NumericLiteral:
		c := *n
		return &c
	case *BooleanLiteral:
		c := *n
		return &c
	case *NullLiteral:
		c := *n
		return &c
	case *CallExpression:
		return &CallExpression{Loc: n.Loc, Callee: Clone(n.Callee), Arguments: cloneAll(n.Arguments)}
	case *UnaryExpression:
		return &UnaryExpression{Loc: n.Loc, Operator: n.Operator, Argument: Clone(n.Argument)}
	case *BinaryExpression:
		return &BinaryExpression{Loc: n.Loc, Operator: n.Operator, Left: Clone(n.Left), Right: Clone(n.Right)}
	case *ConditionalExpression:
		return &ConditionalExpression{Loc: n.Loc, Test: Clone(n.Test), Consequent: Clone(n.Consequent), Alternate: Clone(n.Alternate)}
	case *ArrayExpression:
		return &ArrayExpression{Loc: n.Loc, Elements: cloneAll(n.Elements)}
	case *ObjectExpression:
		props := make([]*ObjectProperty, len(n.Properties))
		for i, p := range n.Properties {
			props[i] = &ObjectProperty{Key: Clone(p.Key), Value: Clone(p.Value), Computed: p.Computed}
		}
		return &ObjectExpression{Loc: n.Loc, Properties: props}
	default:
		panic("expression_parser: unknown expression type")
	}
}

func cloneAll(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = Clone(e)
	}
	return out
}
