// Package binding holds the per compilation unit side tables of the
// attribute pass: the dynamic binding registry and the element id allocator.
// Neither is safe for concurrent use; every unit gets its own instances.
package binding

import (
	ep "jsx2mp-go/packages/compiler/src/expression_parser"
)

const (
	// QuickAppRefPrefix prefixes registry keys on QuickApp
	QuickAppRefPrefix = "r"
	// RefPrefix prefixes registry keys on every other platform
	RefPrefix = "_r"
)

// Entry maps a generated key to the instance expression it stands for
type Entry struct {
	Key        string
	Expression ep.Expr
}

// DynamicBinding maps generated placeholder keys to captured instance-bound
// expressions. The runtime resolves a key back to its expression at mount
// time.
type DynamicBinding struct {
	prefix  string
	names   *namePool
	entries []*Entry
	byKey   map[string]*Entry
}

// NewDynamicBinding creates an empty registry whose keys start with prefix
func NewDynamicBinding(prefix string) *DynamicBinding {
	return &DynamicBinding{
		prefix: prefix,
		names:  newNamePool(),
		byKey:  make(map[string]*Entry),
	}
}

// Prefix returns the key prefix of the registry
func (d *DynamicBinding) Prefix() string {
	return d.prefix
}

// Add records expression under a fresh key and returns the key. Keys are
// never reused.
func (d *DynamicBinding) Add(expression ep.Expr) string {
	entry := &Entry{Key: d.names.uniqueName(d.prefix), Expression: expression}
	d.entries = append(d.entries, entry)
	d.byKey[entry.Key] = entry
	return entry.Key
}

// Lookup returns the expression recorded under key
func (d *DynamicBinding) Lookup(key string) (ep.Expr, bool) {
	entry, ok := d.byKey[key]
	if !ok {
		return nil, false
	}
	return entry.Expression, true
}

// Entries returns the entries in insertion order
func (d *DynamicBinding) Entries() []*Entry {
	return d.entries
}

// Len returns the number of entries
func (d *DynamicBinding) Len() int {
	return len(d.entries)
}
