package expression_parser

import (
	"strconv"
	"strings"
)

// Stringify prints e back to JavaScript source
func Stringify(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e, precLowest)
	return b.String()
}

const (
	precLowest = iota
	precConditional
	precNullishOr
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precPrefix
	precMember
)

var binaryPrec = map[string]int{
	"??":  precNullishOr,
	"||":  precNullishOr,
	"&&":  precAnd,
	"==":  precEquality,
	"!=":  precEquality,
	"===": precEquality,
	"!==": precEquality,
	"<":   precRelational,
	">":   precRelational,
	"<=":  precRelational,
	">=":  precRelational,
	"+":   precAdditive,
	"-":   precAdditive,
	"*":   precMultiplicative,
	"/":   precMultiplicative,
	"%":   precMultiplicative,
}

func writeExpr(b *strings.Builder, e Expr, level int) {
	switch n := e.(type) {
	case *Identifier:
		b.WriteString(n.Name)
	case *ThisExpression:
		b.WriteString("this")
	case *StringLiteral:
		b.WriteString(QuoteString(n.Value))
	case *NumericLiteral:
		if n.Raw != "" {
			b.WriteString(n.Raw)
		} else {
			b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case *BooleanLiteral:
		b.WriteString(strconv.FormatBool(n.Value))
	case *NullLiteral:
		b.WriteString("null")
	case *MemberExpression:
		writeExpr(b, n.Object, precMember)
		if n.Computed {
			b.WriteByte('[')
			writeExpr(b, n.Property, precLowest)
			b.WriteByte(']')
		} else {
			b.WriteByte('.')
			writeExpr(b, n.Property, precMember)
		}
	case *CallExpression:
		writeExpr(b, n.Callee, precMember)
		b.WriteByte('(')
		writeList(b, n.Arguments)
		b.WriteByte(')')
	case *UnaryExpression:
		wrap(b, level > precPrefix, func() {
			b.WriteString(n.Operator)
			if n.Operator == "typeof" {
				b.WriteByte(' ')
			}
			writeExpr(b, n.Argument, precPrefix)
		})
	case *BinaryExpression:
		prec := binaryPrec[n.Operator]
		wrap(b, level > prec, func() {
			writeExpr(b, n.Left, prec)
			b.WriteString(" " + n.Operator + " ")
			writeExpr(b, n.Right, prec+1)
		})
	case *ConditionalExpression:
		wrap(b, level > precConditional, func() {
			writeExpr(b, n.Test, precNullishOr)
			b.WriteString(" ? ")
			writeExpr(b, n.Consequent, precConditional)
			b.WriteString(" : ")
			writeExpr(b, n.Alternate, precConditional)
		})
	case *ArrayExpression:
		b.WriteByte('[')
		writeList(b, n.Elements)
		b.WriteByte(']')
	case *ObjectExpression:
		b.WriteByte('{')
		for i, p := range n.Properties {
			if i > 0 {
				b.WriteString(", ")
			}
			if p.Computed {
				b.WriteByte('[')
				writeExpr(b, p.Key, precLowest)
				b.WriteByte(']')
			} else {
				writeExpr(b, p.Key, precLowest)
			}
			b.WriteString(": ")
			writeExpr(b, p.Value, precConditional)
		}
		b.WriteByte('}')
	}
}

func writeList(b *strings.Builder, exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			b.WriteString(", ")
		}
		writeExpr(b, e, precConditional)
	}
}

func wrap(b *strings.Builder, parens bool, body func()) {
	if parens {
		b.WriteByte('(')
	}
	body()
	if parens {
		b.WriteByte(')')
	}
}

// QuoteString prints s as a double quoted JavaScript string literal
func QuoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(ch)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}
