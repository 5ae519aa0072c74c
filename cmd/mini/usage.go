package main

import "fmt"

func modeCommandLabel(mode executionMode) string {
	switch mode {
	case modeCheck:
		return "mini check"
	default:
		return "mini run"
	}
}

func (c *cli) printUsage() {
	fmt.Fprintln(c.stderr, "Usage:")
	fmt.Fprintln(c.stderr, "  mini [options] run <file.mini|source>")
	fmt.Fprintln(c.stderr, "  mini [options] <file.mini|source>")
	fmt.Fprintln(c.stderr, "  mini [options] check <file.mini|source>")
	fmt.Fprintln(c.stderr, "  mini [options] tokens <file.mini|source>")
	fmt.Fprintln(c.stderr, "  mini [options] tree <file.mini|source>")
	fmt.Fprintln(c.stderr, "  mini [options] repl")
	fmt.Fprintln(c.stderr, "  mini version")
	fmt.Fprintln(c.stderr, "")
	fmt.Fprintln(c.stderr, "Options:")
	fmt.Fprintln(c.stderr, "  --config=<path>   use this mini.yml instead of searching upward")
	fmt.Fprintln(c.stderr, "  --show-tree       print the syntax tree before evaluating")
	fmt.Fprintln(c.stderr, "  --show-program    print the bound program before evaluating")
}
