package modules

import (
	ep "jsx2mp-go/packages/compiler/src/expression_parser"
)

//go:generate go tool stringer -type=RefKind -linecomment -output=refkind_string.go

// RefKind tells the runtime what a ref resolves to
type RefKind int

const (
	_ RefKind = iota

	RefKindComponent // component
	RefKindNative    // native
)

// RefEntry is an entry of Parsed.Refs. The implementations are *StringRef
// and *ComponentRefInfo.
type RefEntry interface {
	isRefEntry()
}

// StringRef is a QuickApp ref, resolved by element id
type StringRef struct {
	Value string
}

// ComponentRefInfo describes a ref on the component ref protocol
type ComponentRefInfo struct {
	// Name is the string the ref attribute was rewritten to.
	Name string
	// Method is the captured ref expression.
	Method ep.Expr
	Kind   RefKind
	// ID is the value of the element's id attribute.
	ID string
}

func (*StringRef) isRefEntry()        {}
func (*ComponentRefInfo) isRefEntry() {}
