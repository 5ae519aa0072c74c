package main

import (
	"fmt"
	"strings"
)

type options struct {
	configPath  string
	showTree    bool
	showProgram bool
}

// parseOptions pulls global flags out of args wherever they appear. Everything
// after "--" is passed through untouched.
func parseOptions(args []string) (options, []string, error) {
	var opts options
	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			remaining = append(remaining, args[i+1:]...)
			break
		}
		switch {
		case arg == "--config":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--config expects a value")
			}
			opts.configPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			value := strings.TrimSpace(strings.TrimPrefix(arg, "--config="))
			if value == "" {
				return opts, nil, fmt.Errorf("--config expects a value")
			}
			opts.configPath = value
		case arg == "--show-tree":
			opts.showTree = true
		case arg == "--show-program":
			opts.showProgram = true
		case strings.HasPrefix(arg, "--") && !isCommandFlag(arg):
			return opts, nil, fmt.Errorf("unknown option %s", arg)
		default:
			remaining = append(remaining, arg)
		}
	}
	return opts, remaining, nil
}

func isCommandFlag(arg string) bool {
	return arg == "--help" || arg == "--version"
}
