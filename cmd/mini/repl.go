package main

import (
	"bufio"
	"fmt"
	"strings"

	"mini/interpreter-go/pkg/driver"
	"mini/interpreter-go/pkg/parser"
	"mini/interpreter-go/pkg/runtime"
)

const continuationPrompt = "· "

type repl struct {
	*cli
	session     *driver.Session
	prompt      string
	showTree    bool
	showProgram bool
}

func (c *cli) runRepl(args []string, opts options) int {
	if len(args) > 0 {
		fmt.Fprintf(c.stderr, "mini repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return 1
	}
	cfg, err := c.loadConfig(opts)
	if err != nil {
		fmt.Fprintf(c.stderr, "failed to load config: %v\n", err)
		return 1
	}
	r := &repl{
		cli:         c,
		session:     driver.NewSession(),
		prompt:      cfg.Prompt,
		showTree:    opts.showTree || cfg.ShowTree,
		showProgram: opts.showProgram || cfg.ShowProgram,
	}
	return r.loop()
}

// loop reads submissions line by line. A submission that does not parse yet
// keeps collecting lines until it does or until a blank line forces it.
func (r *repl) loop() int {
	scanner := bufio.NewScanner(r.stdin)
	var pending strings.Builder
	for {
		if pending.Len() == 0 {
			fmt.Fprint(r.stdout, r.prompt)
		} else {
			fmt.Fprint(r.stdout, continuationPrompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		blank := strings.TrimSpace(line) == ""

		if pending.Len() == 0 {
			if blank {
				continue
			}
			if strings.HasPrefix(strings.TrimSpace(line), "#") {
				if !r.evaluateMetaCommand(strings.TrimSpace(line)) {
					return 0
				}
				continue
			}
		} else {
			pending.WriteByte('\n')
		}
		pending.WriteString(line)

		input := pending.String()
		if !blank && !isCompleteSubmission(input) {
			continue
		}
		pending.Reset()
		r.submit(input)
	}
	if pending.Len() > 0 {
		r.submit(pending.String())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(r.stderr, "failed to read input: %v\n", err)
		return 1
	}
	fmt.Fprintln(r.stdout)
	return 0
}

func isCompleteSubmission(input string) bool {
	_, diags := parser.Parse(input)
	return len(diags) == 0
}

func (r *repl) submit(input string) {
	result, tree := r.session.Submit(input)
	if r.showTree {
		r.printTree(tree.Root)
	}
	if len(result.Diagnostics) > 0 {
		r.reportDiagnostics("", tree.Source, result.Diagnostics)
		return
	}
	if result.Err != nil {
		r.reportRuntimeError("", tree.Source, result.Err)
		return
	}
	if r.showProgram {
		r.printProgram(r.session.Current().GlobalScope().Statement)
	}
	if result.Value != nil {
		fmt.Fprintln(r.stdout, runtime.Format(result.Value))
	}
}

// evaluateMetaCommand runs a #command and reports whether the REPL should
// keep going.
func (r *repl) evaluateMetaCommand(line string) bool {
	switch line {
	case "#exit":
		return false
	case "#showTree":
		r.showTree = !r.showTree
		fmt.Fprintln(r.stdout, toggleMessage(r.showTree, "syntax trees"))
	case "#showProgram":
		r.showProgram = !r.showProgram
		fmt.Fprintln(r.stdout, toggleMessage(r.showProgram, "bound programs"))
	case "#reset":
		r.session.Reset()
		fmt.Fprintln(r.stdout, "session reset")
	case "#vars":
		vars := r.session.Variables()
		for _, name := range vars.Names() {
			value, _ := vars.Get(name)
			fmt.Fprintf(r.stdout, "%s = %s\n", name, runtime.Format(value))
		}
	default:
		fmt.Fprintf(r.stderr, "unknown command %s\n", line)
	}
	return true
}

func toggleMessage(enabled bool, what string) string {
	if enabled {
		return "showing " + what
	}
	return "not showing " + what
}
