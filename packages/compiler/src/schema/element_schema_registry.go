package schema

import "jsx2mp-go/packages/compiler/src/ml_parser"

// ElementSchemaRegistry answers whether a tag is a builtin primitive of a target
type ElementSchemaRegistry interface {
	// HasElement checks if the tag is a native primitive
	HasElement(tagName string) bool
}

// IsNative reports whether element is a native primitive of registry's
// platform. Anything else is a user-defined component.
func IsNative(registry ElementSchemaRegistry, element *ml_parser.Element) bool {
	return registry.HasElement(element.Name)
}
