package expression_parser

import (
	"fmt"
	"strconv"
	"strings"

	"jsx2mp-go/packages/compiler/src/core"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenTypeCharacter TokenType = iota
	TokenTypeIdentifier
	TokenTypeKeyword
	TokenTypeString
	TokenTypeOperator
	TokenTypeNumber
	TokenTypeEOF
)

var keywords = map[string]bool{
	"this":   true,
	"true":   true,
	"false":  true,
	"null":   true,
	"typeof": true,
}

// Token represents a token in the expression. Index and End are offsets
// relative to the lexed input.
type Token struct {
	Index    int
	End      int
	Type     TokenType
	NumValue float64
	StrValue string
}

// IsCharacter checks if the token is the given punctuation character
func (t *Token) IsCharacter(ch byte) bool {
	return t.Type == TokenTypeCharacter && t.StrValue == string(ch)
}

// IsOperator checks if the token is the given operator
func (t *Token) IsOperator(op string) bool {
	return t.Type == TokenTypeOperator && t.StrValue == op
}

// IsKeyword checks if the token is the given keyword
func (t *Token) IsKeyword(kw string) bool {
	return t.Type == TokenTypeKeyword && t.StrValue == kw
}

func (t *Token) String() string {
	if t.Type == TokenTypeEOF {
		return "end of input"
	}
	return strconv.Quote(t.StrValue)
}

// operators sorted so that longer spellings are tried first
var operators = []string{
	"===", "!==", "==", "!=", "<=", ">=", "&&", "||", "??",
	"+", "-", "*", "/", "%", "<", ">", "!", "?", ":",
}

// Tokenize splits an expression source into tokens. The trailing token is
// always TokenTypeEOF.
func Tokenize(input string) ([]*Token, error) {
	var tokens []*Token
	index := 0
	for {
		for index < len(input) && core.IsWhitespace(int(input[index])) {
			index++
		}
		if index >= len(input) {
			tokens = append(tokens, &Token{Index: index, End: index, Type: TokenTypeEOF})
			return tokens, nil
		}

		start := index
		ch := int(input[index])
		switch {
		case core.IsIdentifierStart(ch):
			for index < len(input) && core.IsIdentifierPart(int(input[index])) {
				index++
			}
			name := input[start:index]
			typ := TokenTypeIdentifier
			if keywords[name] {
				typ = TokenTypeKeyword
			}
			tokens = append(tokens, &Token{Index: start, End: index, Type: typ, StrValue: name})

		case core.IsDigit(ch) || (ch == core.CharPERIOD && index+1 < len(input) && core.IsDigit(int(input[index+1]))):
			for index < len(input) && (core.IsDigit(int(input[index])) || input[index] == '.') {
				index++
			}
			raw := input[start:index]
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q at column %d", raw, start)
			}
			tokens = append(tokens, &Token{Index: start, End: index, Type: TokenTypeNumber, NumValue: value, StrValue: raw})

		case core.IsQuote(ch):
			value, end, err := scanString(input, index)
			if err != nil {
				return nil, err
			}
			index = end
			tokens = append(tokens, &Token{Index: start, End: index, Type: TokenTypeString, StrValue: value})

		case strings.ContainsRune(".,()[]{}", rune(ch)):
			index++
			tokens = append(tokens, &Token{Index: start, End: index, Type: TokenTypeCharacter, StrValue: string(rune(ch))})

		default:
			op := matchOperator(input[index:])
			if op == "" {
				return nil, fmt.Errorf("unexpected character %q at column %d", input[index], index)
			}
			index += len(op)
			tokens = append(tokens, &Token{Index: start, End: index, Type: TokenTypeOperator, StrValue: op})
		}
	}
}

func matchOperator(rest string) string {
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			return op
		}
	}
	return ""
}

func scanString(input string, start int) (string, int, error) {
	quote := input[start]
	var b strings.Builder
	index := start + 1
	for index < len(input) {
		ch := input[index]
		switch ch {
		case quote:
			return b.String(), index + 1, nil
		case core.CharBACKSLASH:
			index++
			if index >= len(input) {
				break
			}
			switch esc := input[index]; esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(esc)
			}
		default:
			b.WriteByte(ch)
		}
		index++
	}
	return "", index, fmt.Errorf("unterminated string starting at column %d", start)
}
