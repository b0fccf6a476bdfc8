package ml_parser

import (
	"fmt"
	"strings"

	"jsx2mp-go/packages/compiler/src/core"
	ep "jsx2mp-go/packages/compiler/src/expression_parser"
	"jsx2mp-go/packages/compiler/src/util"
)

// ParseTreeResult represents the result of parsing a template
type ParseTreeResult struct {
	RootNodes []Node
	Errors    []*util.CodeError
}

// Parser reads JSX style markup: elements, quoted or `{expr}` attribute
// values, text and `{expr}` children.
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses source into a markup tree. Parsing stops at the first syntax
// error, which is reported in the result's Errors.
func (p *Parser) Parse(source, url string) *ParseTreeResult {
	tb := &treeBuilder{
		file:  util.NewParseSourceFile(source, url),
		input: source,
	}
	nodes, err := tb.parseNodes("")
	if err != nil {
		return &ParseTreeResult{RootNodes: nodes, Errors: []*util.CodeError{err}}
	}
	return &ParseTreeResult{RootNodes: nodes}
}

type treeBuilder struct {
	file  *util.ParseSourceFile
	input string
	index int
}

func (tb *treeBuilder) errorf(start int, format string, args ...interface{}) *util.CodeError {
	end := start
	if end < len(tb.input) {
		end++
	}
	return util.NewCodeError(util.SyntaxError, tb.file.SpanOf(start, end), fmt.Sprintf(format, args...))
}

func (tb *treeBuilder) peek() int {
	if tb.index >= len(tb.input) {
		return core.CharEOF
	}
	return int(tb.input[tb.index])
}

func (tb *treeBuilder) startsWith(s string) bool {
	return strings.HasPrefix(tb.input[tb.index:], s)
}

func (tb *treeBuilder) skipWhitespace() {
	for tb.index < len(tb.input) && core.IsWhitespace(tb.peek()) {
		tb.index++
	}
}

func (tb *treeBuilder) consumeName() string {
	start := tb.index
	for tb.index < len(tb.input) && core.IsNameChar(tb.peek()) {
		tb.index++
	}
	return tb.input[start:tb.index]
}

// parseNodes consumes nodes until the closing tag of closing, or the end of
// input when closing is empty.
func (tb *treeBuilder) parseNodes(closing string) ([]Node, *util.CodeError) {
	var nodes []Node
	for {
		switch {
		case tb.index >= len(tb.input):
			if closing != "" {
				return nodes, tb.errorf(tb.index, "Unexpected end of input, expected </%s>", closing)
			}
			return nodes, nil

		case tb.startsWith("</"):
			start := tb.index
			tb.index += 2
			name := tb.consumeName()
			if closing == "" || name != closing {
				return nodes, tb.errorf(start, "Unexpected closing tag \"%s\"", name)
			}
			tb.skipWhitespace()
			if tb.peek() != core.CharGT {
				return nodes, tb.errorf(tb.index, "Expected '>' to close </%s", name)
			}
			tb.index++
			return nodes, nil

		case tb.peek() == core.CharLT:
			element, err := tb.parseElement()
			if element != nil {
				nodes = append(nodes, element)
			}
			if err != nil {
				return nodes, err
			}

		case tb.peek() == core.CharLBRACE:
			container, err := tb.parseExpressionContainer()
			if err != nil {
				return nodes, err
			}
			if container != nil {
				nodes = append(nodes, container)
			}

		default:
			start := tb.index
			for tb.index < len(tb.input) && tb.peek() != core.CharLT && tb.peek() != core.CharLBRACE {
				tb.index++
			}
			if text := strings.TrimSpace(tb.input[start:tb.index]); text != "" {
				nodes = append(nodes, NewText(text, tb.file.SpanOf(start, tb.index)))
			}
		}
	}
}

func (tb *treeBuilder) parseElement() (*Element, *util.CodeError) {
	start := tb.index
	tb.index++
	name := tb.consumeName()
	if name == "" {
		return nil, tb.errorf(start, "Expected tag name after '<'")
	}

	element := NewElement(name, nil, nil, nil)
	for {
		tb.skipWhitespace()
		switch {
		case tb.index >= len(tb.input):
			return nil, tb.errorf(start, "Unclosed start tag <%s", name)
		case tb.startsWith("/>"):
			tb.index += 2
			element.IsSelfClosing = true
			element.sourceSpan = tb.file.SpanOf(start, tb.index)
			return element, nil
		case tb.peek() == core.CharGT:
			tb.index++
			children, err := tb.parseNodes(name)
			element.Children = children
			element.sourceSpan = tb.file.SpanOf(start, tb.index)
			return element, err
		default:
			attr, err := tb.parseAttribute()
			if err != nil {
				return nil, err
			}
			element.AppendAttr(attr)
		}
	}
}

func (tb *treeBuilder) parseAttribute() (*Attribute, *util.CodeError) {
	start := tb.index
	name := tb.consumeName()
	if name == "" {
		return nil, tb.errorf(start, "Unexpected character %q in tag", tb.input[start])
	}
	keySpan := tb.file.SpanOf(start, tb.index)

	tb.skipWhitespace()
	if tb.peek() != core.CharEQ {
		return NewAttribute(name, nil, keySpan, keySpan), nil
	}
	tb.index++
	tb.skipWhitespace()

	var value AttrValue
	switch ch := tb.peek(); {
	case core.IsQuote(ch):
		valueStart := tb.index
		end := strings.IndexByte(tb.input[tb.index+1:], byte(ch))
		if end < 0 {
			return nil, tb.errorf(valueStart, "Unterminated attribute value")
		}
		tb.index += end + 2
		value = NewStringLiteral(tb.input[valueStart+1:tb.index-1], tb.file.SpanOf(valueStart, tb.index))
	case ch == core.CharLBRACE:
		container, err := tb.parseExpressionContainer()
		if err != nil {
			return nil, err
		}
		if container == nil {
			return nil, tb.errorf(start, "JSX attributes must only be assigned a non-empty expression")
		}
		if name == "key" {
			switch container.Expression.(type) {
			case *ep.Identifier, *ep.MemberExpression:
				container.Original = ep.Clone(container.Expression)
			}
		}
		value = container
	default:
		valueStart := tb.index
		for tb.index < len(tb.input) && !core.IsWhitespace(tb.peek()) && tb.peek() != core.CharGT && !tb.startsWith("/>") {
			tb.index++
		}
		expr, err := ep.Parse(tb.input[valueStart:tb.index], valueStart)
		if err != nil {
			return nil, tb.errorf(valueStart, "Invalid attribute value: %s", err)
		}
		value = NewExpressionValue(expr, tb.file.SpanOf(valueStart, tb.index))
	}

	return NewAttribute(name, value, tb.file.SpanOf(start, tb.index), keySpan), nil
}

// parseExpressionContainer consumes `{...}`. An empty or comment-only
// container yields nil.
func (tb *treeBuilder) parseExpressionContainer() (*ExpressionContainer, *util.CodeError) {
	start := tb.index
	end := tb.matchingBrace(start)
	if end < 0 {
		return nil, tb.errorf(start, "Unterminated expression, expected '}'")
	}
	tb.index = end + 1

	body := tb.input[start+1 : end]
	trimmed := strings.TrimSpace(body)
	if trimmed == "" || (strings.HasPrefix(trimmed, "/*") && strings.HasSuffix(trimmed, "*/")) {
		return nil, nil
	}
	expr, err := ep.Parse(body, start+1)
	if err != nil {
		return nil, tb.errorf(start+1, "Invalid expression: %s", err)
	}
	return NewExpressionContainer(expr, tb.file.SpanOf(start, tb.index)), nil
}

// matchingBrace returns the index of the '}' closing the '{' at open,
// skipping over quoted strings, or -1.
func (tb *treeBuilder) matchingBrace(open int) int {
	depth := 0
	for i := open; i < len(tb.input); i++ {
		switch ch := int(tb.input[i]); {
		case core.IsQuote(ch):
			for i++; i < len(tb.input) && int(tb.input[i]) != ch; i++ {
				if tb.input[i] == '\\' {
					i++
				}
			}
		case ch == core.CharLBRACE:
			depth++
		case ch == core.CharRBRACE:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
