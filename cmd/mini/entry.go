package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mini/interpreter-go/pkg/ast"
	"mini/interpreter-go/pkg/binder"
	"mini/interpreter-go/pkg/diagnostics"
	"mini/interpreter-go/pkg/driver"
	"mini/interpreter-go/pkg/parser"
	"mini/interpreter-go/pkg/runtime"
	"mini/interpreter-go/pkg/text"
)

// program is a loaded source file ready to be parsed.
type program struct {
	name   string
	source *text.SourceText
}

func (c *cli) runEntry(args []string, opts options, mode executionMode) int {
	if len(args) != 1 {
		if len(args) == 0 {
			fmt.Fprintf(c.stderr, "%s requires a source file or configured source name\n", modeCommandLabel(mode))
		} else {
			fmt.Fprintf(c.stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		}
		return 1
	}
	cfg, err := c.loadConfig(opts)
	if err != nil {
		fmt.Fprintf(c.stderr, "failed to load config: %v\n", err)
		return 1
	}
	prog, err := loadProgram(context.Background(), cfg, args[0])
	if err != nil {
		fmt.Fprintf(c.stderr, "%v\n", err)
		return 1
	}

	tree := parser.ParseTree(prog.source)
	compilation := driver.NewCompilation(tree)
	if opts.showTree || cfg.ShowTree {
		c.printTree(tree.Root)
	}
	if diags := compilation.Diagnostics(); len(diags) > 0 {
		c.reportDiagnostics(prog.name, prog.source, diags)
		return 1
	}
	if opts.showProgram || cfg.ShowProgram {
		c.printProgram(compilation.GlobalScope().Statement)
	}
	if mode == modeCheck {
		return 0
	}

	result := compilation.Evaluate(runtime.NewVariables())
	if result.Err != nil {
		c.reportRuntimeError(prog.name, prog.source, result.Err)
		return 1
	}
	if result.Value != nil {
		fmt.Fprintln(c.stdout, runtime.Format(result.Value))
	}
	return 0
}

func (c *cli) runTokens(args []string, opts options) int {
	prog, ok := c.loadSingleProgram("mini tokens", args, opts)
	if !ok {
		return 1
	}
	for token := range parser.ParseTokens(prog.source.String()) {
		if token.Value != nil {
			fmt.Fprintf(c.stdout, "%s %s:'%s' %v\n", token.Span(), token.Kind, token.Text, token.Value)
			continue
		}
		fmt.Fprintf(c.stdout, "%s %s:'%s'\n", token.Span(), token.Kind, token.Text)
	}
	return 0
}

func (c *cli) runTree(args []string, opts options) int {
	prog, ok := c.loadSingleProgram("mini tree", args, opts)
	if !ok {
		return 1
	}
	tree := parser.ParseTree(prog.source)
	c.printTree(tree.Root)
	if len(tree.Diagnostics) > 0 {
		c.reportDiagnostics(prog.name, prog.source, tree.Diagnostics)
		return 1
	}
	return 0
}

func (c *cli) loadSingleProgram(label string, args []string, opts options) (*program, bool) {
	if len(args) != 1 {
		fmt.Fprintf(c.stderr, "%s requires exactly one source file or configured source name\n", label)
		return nil, false
	}
	cfg, err := c.loadConfig(opts)
	if err != nil {
		fmt.Fprintf(c.stderr, "failed to load config: %v\n", err)
		return nil, false
	}
	prog, err := loadProgram(context.Background(), cfg, args[0])
	if err != nil {
		fmt.Fprintf(c.stderr, "%v\n", err)
		return nil, false
	}
	return prog, true
}

// loadConfig reads the --config file, or the nearest mini.yml above the
// working directory, or falls back to the defaults.
func (c *cli) loadConfig(opts options) (*driver.Config, error) {
	if opts.configPath != "" {
		return driver.LoadConfig(opts.configPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	path, err := driver.FindConfig(cwd)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return driver.DefaultConfig(), nil
	}
	return driver.LoadConfig(path)
}

// loadProgram resolves target as a configured source name first and as a
// file path otherwise.
func loadProgram(ctx context.Context, cfg *driver.Config, target string) (*program, error) {
	if spec, ok := cfg.Source(target); ok {
		contents, err := driver.LoadSource(ctx, cfg.Dir, spec)
		if err != nil {
			return nil, fmt.Errorf("failed to load source %q: %w", target, err)
		}
		return &program{name: target, source: text.NewSourceText(contents)}, nil
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}
	return &program{name: target, source: text.NewSourceText(string(data))}, nil
}

func (c *cli) printTree(root *ast.CompilationUnit) {
	if err := ast.Print(c.stdout, root); err != nil {
		fmt.Fprintf(c.stderr, "failed to print syntax tree: %v\n", err)
	}
}

func (c *cli) printProgram(statement *binder.BlockStatement) {
	if err := binder.Print(c.stdout, statement); err != nil {
		fmt.Fprintf(c.stderr, "failed to print program: %v\n", err)
	}
}

func (c *cli) reportDiagnostics(name string, source *text.SourceText, diags []diagnostics.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(c.stderr, diagnostics.Format(name, source, d))
	}
}

func (c *cli) reportRuntimeError(name string, source *text.SourceText, err error) {
	var runtimeErr *runtime.RuntimeError
	if errors.As(err, &runtimeErr) {
		d := diagnostics.Diagnostic{Message: "runtime error: " + runtimeErr.Err.Error(), Span: runtimeErr.Span}
		fmt.Fprintln(c.stderr, diagnostics.Format(name, source, d))
		return
	}
	fmt.Fprintf(c.stderr, "runtime error: %v\n", err)
}
