package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jsx2mp-go/packages/compiler/src/config"
	"jsx2mp-go/packages/compiler/src/ml_parser"
	"jsx2mp-go/packages/compiler/src/modules"
	"jsx2mp-go/packages/compiler/src/util"
)

// SourceExt is the extension of the component templates the compiler reads
const SourceExt = ".jsx"

// Result is the output of compiling one component template
type Result struct {
	Parsed   *modules.Parsed
	Template string
}

// CompileTemplate compiles one component template for adapter's platform.
// Every call owns its own ids and dynamic ref keys, so templates may be
// compiled concurrently.
func CompileTemplate(source, url string, adapter *config.Adapter) (*Result, error) {
	tree := ml_parser.NewParser().Parse(source, url)
	if len(tree.Errors) > 0 {
		return nil, tree.Errors[0]
	}

	parsed := modules.NewParsed(tree.RootNodes, util.NewParseSourceFile(source, url), adapter)
	if err := modules.Parse(parsed); err != nil {
		return nil, err
	}
	generated, err := modules.Generate(parsed)
	if err != nil {
		return nil, err
	}
	return &Result{Parsed: parsed, Template: generated.Template}, nil
}

// Compiler compiles the component templates found under a project root
type Compiler struct {
	adapter     *config.Adapter
	projectRoot string
}

// NewCompiler creates a new compiler instance
func NewCompiler(projectRoot string, adapter *config.Adapter) (*Compiler, error) {
	absPath, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, err
	}
	return &Compiler{
		adapter:     adapter,
		projectRoot: absPath,
	}, nil
}

// ProjectRoot returns the absolute project root
func (c *Compiler) ProjectRoot() string {
	return c.projectRoot
}

// Adapter returns the adapter templates are compiled with
func (c *Compiler) Adapter() *config.Adapter {
	return c.adapter
}

// DiscoverFiles finds all templates that need compilation. A root that is a
// single file is returned as is.
func (c *Compiler) DiscoverFiles() ([]string, error) {
	info, err := os.Stat(c.projectRoot)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{c.projectRoot}, nil
	}

	var files []string
	err = filepath.Walk(c.projectRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			// Skip node_modules and dist directories
			if info.Name() == "node_modules" || info.Name() == "dist" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// CompileFile compiles the template at path
func (c *Compiler) CompileFile(path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return CompileTemplate(string(content), path, c.adapter)
}

// OutputPath returns where the template compiled from path is written under
// outDir, keeping its location relative to the project root.
func (c *Compiler) OutputPath(path, outDir string) string {
	rel, err := filepath.Rel(c.projectRoot, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(path)
	}
	return filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+"."+c.adapter.Platform.TemplateExt())
}
