package expression_parser

import (
	"fmt"
)

var binaryPrecedence = [][]string{
	{"??", "||"},
	{"&&"},
	{"==", "!=", "===", "!=="},
	{"<", ">", "<=", ">="},
	{"+", "-"},
	{"*", "/", "%"},
}

// Parser is a recursive descent parser for the expressions that appear inside
// `{...}` in templates.
type Parser struct {
	input  string
	offset int
	tokens []*Token
	index  int
}

// Parse parses input as a single expression. offset is the absolute position
// of input in its source file and is added to every span.
func Parse(input string, offset int) (Expr, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &Parser{input: input, offset: offset, tokens: tokens}
	expr, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if p.next().Type != TokenTypeEOF {
		return nil, p.errorf("unexpected token %s", p.next())
	}
	return expr, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixed inputs.
func MustParse(input string) Expr {
	expr, err := Parse(input, 0)
	if err != nil {
		panic(err)
	}
	return expr
}

func (p *Parser) next() *Token {
	return p.tokens[p.index]
}

func (p *Parser) advance() *Token {
	tok := p.tokens[p.index]
	if tok.Type != TokenTypeEOF {
		p.index++
	}
	return tok
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s at column %d in [%s]", fmt.Sprintf(format, args...), p.next().Index, p.input)
}

func (p *Parser) span(start int) ParseSpan {
	end := start
	if p.index > 0 {
		end = p.tokens[p.index-1].End
	}
	return ParseSpan{Start: p.offset + start, End: p.offset + end}
}

func (p *Parser) expectCharacter(ch byte) error {
	if !p.next().IsCharacter(ch) {
		return p.errorf("missing expected %q", ch)
	}
	p.advance()
	return nil
}

func (p *Parser) parseConditional() (Expr, error) {
	start := p.next().Index
	test, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if !p.next().IsOperator("?") {
		return test, nil
	}
	p.advance()
	consequent, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if !p.next().IsOperator(":") {
		return nil, p.errorf("conditional expression requires all 3 expressions")
	}
	p.advance()
	alternate, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	return &ConditionalExpression{Loc: p.span(start), Test: test, Consequent: consequent, Alternate: alternate}, nil
}

func (p *Parser) parseBinary(level int) (Expr, error) {
	if level == len(binaryPrecedence) {
		return p.parsePrefix()
	}
	start := p.next().Index
	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.matchAny(binaryPrecedence[level])
		if !ok {
			return left, nil
		}
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpression{Loc: p.span(start), Operator: op, Left: left, Right: right}
	}
}

func (p *Parser) matchAny(ops []string) (string, bool) {
	for _, op := range ops {
		if p.next().IsOperator(op) {
			p.advance()
			return op, true
		}
	}
	return "", false
}

func (p *Parser) parsePrefix() (Expr, error) {
	tok := p.next()
	if tok.IsOperator("!") || tok.IsOperator("-") || tok.IsOperator("+") || tok.IsKeyword("typeof") {
		p.advance()
		argument, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		return &UnaryExpression{Loc: p.span(tok.Index), Operator: tok.StrValue, Argument: argument}, nil
	}
	return p.parseCallChain()
}

func (p *Parser) parseCallChain() (Expr, error) {
	start := p.next().Index
	result, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch tok := p.next(); {
		case tok.IsCharacter('.'):
			p.advance()
			name := p.advance()
			if name.Type != TokenTypeIdentifier && name.Type != TokenTypeKeyword {
				return nil, p.errorf("expected identifier for property access")
			}
			property := &Identifier{Loc: ParseSpan{Start: p.offset + name.Index, End: p.offset + name.End}, Name: name.StrValue}
			result = &MemberExpression{Loc: p.span(start), Object: result, Property: property}
		case tok.IsCharacter('['):
			p.advance()
			key, err := p.parseConditional()
			if err != nil {
				return nil, err
			}
			if err := p.expectCharacter(']'); err != nil {
				return nil, err
			}
			result = &MemberExpression{Loc: p.span(start), Object: result, Property: key, Computed: true}
		case tok.IsCharacter('('):
			p.advance()
			args, err := p.parseList(')')
			if err != nil {
				return nil, err
			}
			result = &CallExpression{Loc: p.span(start), Callee: result, Arguments: args}
		default:
			return result, nil
		}
	}
}

// parseList parses comma separated expressions up to and including the closing character
func (p *Parser) parseList(closing byte) ([]Expr, error) {
	var exprs []Expr
	for !p.next().IsCharacter(closing) {
		expr, err := p.parseConditional()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.next().IsCharacter(',') {
			break
		}
		p.advance()
	}
	if err := p.expectCharacter(closing); err != nil {
		return nil, err
	}
	return exprs, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.next()
	start := tok.Index
	switch {
	case tok.IsCharacter('('):
		p.advance()
		expr, err := p.parseConditional()
		if err != nil {
			return nil, err
		}
		if err := p.expectCharacter(')'); err != nil {
			return nil, err
		}
		return expr, nil
	case tok.IsKeyword("this"):
		p.advance()
		return &ThisExpression{Loc: p.span(start)}, nil
	case tok.IsKeyword("true"), tok.IsKeyword("false"):
		p.advance()
		return &BooleanLiteral{Loc: p.span(start), Value: tok.StrValue == "true"}, nil
	case tok.IsKeyword("null"):
		p.advance()
		return &NullLiteral{Loc: p.span(start)}, nil
	case tok.Type == TokenTypeIdentifier:
		p.advance()
		return &Identifier{Loc: p.span(start), Name: tok.StrValue}, nil
	case tok.Type == TokenTypeNumber:
		p.advance()
		return &NumericLiteral{Loc: p.span(start), Value: tok.NumValue, Raw: tok.StrValue}, nil
	case tok.Type == TokenTypeString:
		p.advance()
		return &StringLiteral{Loc: p.span(start), Value: tok.StrValue}, nil
	case tok.IsCharacter('['):
		p.advance()
		elements, err := p.parseList(']')
		if err != nil {
			return nil, err
		}
		return &ArrayExpression{Loc: p.span(start), Elements: elements}, nil
	case tok.IsCharacter('{'):
		p.advance()
		return p.parseObject(start)
	case tok.Type == TokenTypeEOF:
		return nil, p.errorf("unexpected end of expression")
	default:
		return nil, p.errorf("unexpected token %s", tok)
	}
}

func (p *Parser) parseObject(start int) (Expr, error) {
	var props []*ObjectProperty
	for !p.next().IsCharacter('}') {
		prop := &ObjectProperty{}
		key := p.next()
		switch {
		case key.Type == TokenTypeIdentifier || key.Type == TokenTypeKeyword:
			p.advance()
			prop.Key = &Identifier{Loc: p.span(key.Index), Name: key.StrValue}
		case key.Type == TokenTypeString:
			p.advance()
			prop.Key = &StringLiteral{Loc: p.span(key.Index), Value: key.StrValue}
		case key.IsCharacter('['):
			p.advance()
			computed, err := p.parseConditional()
			if err != nil {
				return nil, err
			}
			if err := p.expectCharacter(']'); err != nil {
				return nil, err
			}
			prop.Key = computed
			prop.Computed = true
		default:
			return nil, p.errorf("invalid object key %s", key)
		}

		if p.next().IsOperator(":") {
			p.advance()
			value, err := p.parseConditional()
			if err != nil {
				return nil, err
			}
			prop.Value = value
		} else if ident, ok := prop.Key.(*Identifier); ok && !prop.Computed {
			// shorthand {a}
			prop.Value = &Identifier{Loc: ident.Loc, Name: ident.Name}
		} else {
			return nil, p.errorf("missing expected ':'")
		}
		props = append(props, prop)

		if !p.next().IsCharacter(',') {
			break
		}
		p.advance()
	}
	if err := p.expectCharacter('}'); err != nil {
		return nil, err
	}
	return &ObjectExpression{Loc: p.span(start), Properties: props}, nil
}
