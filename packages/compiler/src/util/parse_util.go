package util

import (
	"fmt"
	"strings"
)

// ParseLocation represents a location in the source file
type ParseLocation struct {
	File   *ParseSourceFile
	Offset int
	Line   int
	Col    int
}

// NewParseLocation creates a new ParseLocation
func NewParseLocation(file *ParseSourceFile, offset, line, col int) *ParseLocation {
	return &ParseLocation{
		File:   file,
		Offset: offset,
		Line:   line,
		Col:    col,
	}
}

// String returns a string representation of the location.
// Lines and columns are zero based internally and printed one based.
func (p *ParseLocation) String() string {
	if p.Offset >= 0 {
		return fmt.Sprintf("%s@%d:%d", p.File.URL, p.Line+1, p.Col+1)
	}
	return p.File.URL
}

// GetContext returns the source context around the location
func (p *ParseLocation) GetContext(maxChars, maxLines int) *Context {
	content := p.File.Content
	if p.Offset < 0 || len(content) == 0 {
		return nil
	}

	startOffset := p.Offset
	if startOffset > len(content)-1 {
		startOffset = len(content) - 1
	}
	anchor := startOffset
	endOffset := startOffset

	ctxChars := 0
	ctxLines := 0
	for ctxChars < maxChars && startOffset > 0 {
		startOffset--
		ctxChars++
		if content[startOffset] == '\n' {
			ctxLines++
			if ctxLines == maxLines {
				break
			}
		}
	}

	ctxChars = 0
	ctxLines = 0
	for ctxChars < maxChars && endOffset < len(content)-1 {
		endOffset++
		ctxChars++
		if content[endOffset] == '\n' {
			ctxLines++
			if ctxLines == maxLines {
				break
			}
		}
	}

	return &Context{
		Before: content[startOffset:anchor],
		After:  content[anchor : endOffset+1],
	}
}

// Context represents source context around a location
type Context struct {
	Before string
	After  string
}

// ParseSourceFile represents a source file
type ParseSourceFile struct {
	Content string
	URL     string
}

// NewParseSourceFile creates a new ParseSourceFile
func NewParseSourceFile(content, url string) *ParseSourceFile {
	return &ParseSourceFile{
		Content: content,
		URL:     url,
	}
}

// LocationAt returns the location of the given byte offset in the file
func (f *ParseSourceFile) LocationAt(offset int) *ParseLocation {
	if offset > len(f.Content) {
		offset = len(f.Content)
	}
	line := strings.Count(f.Content[:offset], "\n")
	col := offset
	if i := strings.LastIndexByte(f.Content[:offset], '\n'); i >= 0 {
		col = offset - i - 1
	}
	return NewParseLocation(f, offset, line, col)
}

// SpanOf returns the span covering [start, end) in the file
func (f *ParseSourceFile) SpanOf(start, end int) *ParseSourceSpan {
	return NewParseSourceSpan(f.LocationAt(start), f.LocationAt(end))
}

// ParseSourceSpan represents a span of source code
type ParseSourceSpan struct {
	Start *ParseLocation
	End   *ParseLocation
}

// NewParseSourceSpan creates a new ParseSourceSpan
func NewParseSourceSpan(start, end *ParseLocation) *ParseSourceSpan {
	return &ParseSourceSpan{
		Start: start,
		End:   end,
	}
}

// String returns the source code in this span
func (p *ParseSourceSpan) String() string {
	return p.Start.File.Content[p.Start.Offset:p.End.Offset]
}

//go:generate go tool stringer -type=ErrorKind -output=errorkind_string.go

// ErrorKind classifies a CodeError. It implements error itself so callers can
// match with errors.Is(err, util.InvalidRefValue).
type ErrorKind int

const (
	_ ErrorKind = iota

	SyntaxError
	InvalidRefValue
	InvalidRefExpression
	InvalidKeyExpression
)

func (k ErrorKind) Error() string {
	return k.String()
}

// CodeError is a fatal diagnostic pointing into the compiled source
type CodeError struct {
	Kind ErrorKind
	Span *ParseSourceSpan
	Msg  string
}

// NewCodeError creates a new CodeError for the node found at span
func NewCodeError(kind ErrorKind, span *ParseSourceSpan, msg string) *CodeError {
	return &CodeError{
		Kind: kind,
		Span: span,
		Msg:  msg,
	}
}

// Error implements the error interface
func (e *CodeError) Error() string {
	if e.Span == nil || e.Span.Start == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.ContextualMessage(), e.Span.Start)
}

// Unwrap exposes the kind to errors.Is
func (e *CodeError) Unwrap() error {
	return e.Kind
}

// ContextualMessage returns the error message with a source snippet
func (e *CodeError) ContextualMessage() string {
	if e.Span == nil || e.Span.Start == nil {
		return e.Msg
	}
	ctx := e.Span.Start.GetContext(100, 3)
	if ctx == nil {
		return e.Msg
	}
	return fmt.Sprintf(`%s ("%s[ERROR ->]%s")`, e.Msg, ctx.Before, ctx.After)
}
