package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	compiler "jsx2mp-go/packages/compiler/src"
	"jsx2mp-go/packages/compiler/src/config"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type compileOptions struct {
	platform    string
	adapterFile string
	outDir      string
	dump        bool
	jobs        int
	verbose     bool
}

// fileResult is the outcome of compiling one template
type fileResult struct {
	path    string
	outPath string
	result  *compiler.Result
	err     error
}

func runCompile(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	opts := compileOptions{}
	fs.StringVar(&opts.platform, "platform", config.PlatformAli.String(), "target platform (ali, wechat, bytedance, quickapp)")
	fs.StringVar(&opts.adapterFile, "adapter", "", "YAML file with adapter settings, overrides -platform")
	fs.StringVar(&opts.outDir, "out", "", "output directory (defaults to <path>/dist/<platform>)")
	fs.BoolVar(&opts.dump, "dump", false, "print the refs and dynamic ref registry of every template")
	fs.IntVar(&opts.jobs, "j", runtime.NumCPU(), "number of templates compiled concurrently")
	fs.BoolVar(&opts.verbose, "v", false, "print progress for every template")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := "."
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	return CompileProject(path, opts)
}

// CompileProject compiles every template under rootPath
func CompileProject(rootPath string, opts compileOptions) error {
	adapter, err := loadAdapter(opts.platform, opts.adapterFile)
	if err != nil {
		return fmt.Errorf("error loading adapter: %w", err)
	}

	c, err := compiler.NewCompiler(rootPath, adapter)
	if err != nil {
		return fmt.Errorf("failed to create compiler: %w", err)
	}
	fmt.Printf("🔨 Compiling %s for %s\n", c.ProjectRoot(), adapter.Platform)

	files, err := c.DiscoverFiles()
	if err != nil {
		return fmt.Errorf("failed to discover files: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("⚠️  No templates found")
		return nil
	}
	fmt.Printf("📦 Found %d template(s)\n", len(files))

	outputDir := resolveOutputDir(c, opts.outDir)
	if opts.verbose {
		fmt.Printf("📁 Output directory: %s\n", outputDir)
	}

	results := compileFiles(c, files, outputDir, opts.jobs)

	successCount := 0
	for i, res := range results {
		if res.err != nil {
			fmt.Printf("[%d/%d] ❌ %s: %v\n", i+1, len(results), res.path, res.err)
			continue
		}
		successCount++
		if opts.verbose {
			fmt.Printf("[%d/%d] ✅ %s -> %s\n", i+1, len(results), res.path, res.outPath)
		}
		if opts.dump {
			fmt.Printf("--- %s\n", res.path)
			dumpConfig.Dump(res.result.Parsed.Refs, res.result.Parsed.DynamicRef.Entries())
		}
	}

	fmt.Printf("✅ Compilation complete: %d/%d templates compiled\n", successCount, len(results))
	if successCount < len(results) {
		return fmt.Errorf("%d template(s) failed to compile", len(results)-successCount)
	}
	return nil
}

// compileFiles compiles and writes files with at most jobs templates in
// flight. Results keep the order of files.
func compileFiles(c *compiler.Compiler, files []string, outputDir string, jobs int) []fileResult {
	results := make([]fileResult, len(files))

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			res := fileResult{path: file, outPath: c.OutputPath(file, outputDir)}
			res.result, res.err = c.CompileFile(file)
			if res.err == nil {
				res.err = writeTemplate(res.outPath, res.result.Template)
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func writeTemplate(path, template string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	return os.WriteFile(path, []byte(template), 0644)
}

func resolveOutputDir(c *compiler.Compiler, outDir string) string {
	base := c.ProjectRoot()
	if info, err := os.Stat(base); err == nil && !info.IsDir() {
		base = filepath.Dir(base)
	}
	if outDir == "" {
		return filepath.Join(base, "dist", c.Adapter().Platform.String())
	}
	if filepath.IsAbs(outDir) {
		return outDir
	}
	return filepath.Join(base, outDir)
}
