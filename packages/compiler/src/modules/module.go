// Package modules holds the compile passes run over a parsed component
// template. Every module records what it learns on the unit's Parsed value
// during Parse and contributes to the output during Generate.
package modules

import (
	"jsx2mp-go/packages/compiler/src/binding"
	"jsx2mp-go/packages/compiler/src/codegen"
	"jsx2mp-go/packages/compiler/src/config"
	"jsx2mp-go/packages/compiler/src/ml_parser"
	"jsx2mp-go/packages/compiler/src/util"
)

// Parsed is the intermediate result of one compilation unit. A Parsed value
// must not be shared between units.
type Parsed struct {
	TemplateAST []ml_parser.Node
	File        *util.ParseSourceFile
	Adapter     *config.Adapter

	// Refs lists the ref attributes in document order.
	Refs       []RefEntry
	DynamicRef *binding.DynamicBinding
	Ids        *binding.IdAllocator
}

// NewParsed creates the unit state for a template parsed from file
func NewParsed(nodes []ml_parser.Node, file *util.ParseSourceFile, adapter *config.Adapter) *Parsed {
	prefix := binding.RefPrefix
	if adapter.IsQuickApp() {
		prefix = binding.QuickAppRefPrefix
	}
	return &Parsed{
		TemplateAST: nodes,
		File:        file,
		Adapter:     adapter,
		DynamicRef:  binding.NewDynamicBinding(prefix),
		Ids:         binding.NewIdAllocator(),
	}
}

// Generated is the output of one compilation unit
type Generated struct {
	Template string
}

// Module is a compile pass
type Module interface {
	Parse(parsed *Parsed) error
	Generate(generated *Generated, parsed *Parsed) error
}

var modulesList = []Module{
	attributeModule{},
}

// Parse runs the Parse step of every module in order. It must run exactly
// once per unit: the passes rewrite the tree in place.
func Parse(parsed *Parsed) error {
	for _, module := range modulesList {
		if err := module.Parse(parsed); err != nil {
			return err
		}
	}
	return nil
}

// Generate runs the Generate step of every module, then prints the
// transformed tree as the unit's template.
func Generate(parsed *Parsed) (*Generated, error) {
	generated := &Generated{}
	for _, module := range modulesList {
		if err := module.Generate(generated, parsed); err != nil {
			return nil, err
		}
	}
	generated.Template = codegen.GenTemplate(parsed.TemplateAST)
	return generated, nil
}
