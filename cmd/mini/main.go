package main

import (
	"fmt"
	"io"
	"os"
)

const cliToolVersion = "mini 0.0.0-dev"

type executionMode int

const (
	modeRun executionMode = iota
	modeCheck
)

// cli carries the streams a command reads from and writes to.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}
	if len(args) == 0 {
		c.printUsage()
		return 1
	}

	opts, remaining, err := parseOptions(args)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return 1
	}
	if len(remaining) == 0 {
		c.printUsage()
		return 1
	}

	switch remaining[0] {
	case "--help", "-h", "help":
		c.printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(c.stdout, cliToolVersion)
		return 0
	case "run":
		return c.runEntry(remaining[1:], opts, modeRun)
	case "check":
		return c.runEntry(remaining[1:], opts, modeCheck)
	case "tokens":
		return c.runTokens(remaining[1:], opts)
	case "tree":
		return c.runTree(remaining[1:], opts)
	case "repl":
		return c.runRepl(remaining[1:], opts)
	default:
		return c.runEntry(remaining, opts, modeRun)
	}
}
