package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file FindConfig looks for.
const ConfigFileName = "mini.yml"

const defaultPrompt = "» "

// Config represents the parsed contents of mini.yml.
type Config struct {
	Path        string
	Dir         string
	Prompt      string
	ShowTree    bool
	ShowProgram bool
	Sources     map[string]*SourceSpec
}

// SourceSpec names a program either by file path or by a path inside a git
// repository at a chosen revision.
type SourceSpec struct {
	Name   string
	Path   string
	Git    string
	Rev    string
	Tag    string
	Branch string
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig is used when no mini.yml is found.
func DefaultConfig() *Config {
	return &Config{Prompt: defaultPrompt, Sources: map[string]*SourceSpec{}}
}

// LoadConfig parses mini.yml from disk, returning a validated config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfig walks up from start looking for mini.yml. It returns "" when
// no directory up to the root has one.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", start, err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config: stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Source looks up a named source.
func (c *Config) Source(name string) (*SourceSpec, bool) {
	if c == nil {
		return nil, false
	}
	spec, ok := c.Sources[strings.TrimSpace(name)]
	return spec, ok && spec != nil
}

// SourceNames lists the configured sources in sorted order.
func (c *Config) SourceNames() []string {
	names := make([]string, 0, len(c.Sources))
	for name := range c.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) validate() error {
	var errs ValidationError
	for _, name := range c.SourceNames() {
		for _, issue := range c.Sources[name].validate() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("sources.%s: %s", name, issue))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (s *SourceSpec) validate() []string {
	var errs []string
	if s.Path == "" {
		errs = append(errs, "path must be provided")
	}
	pins := 0
	for _, pin := range []string{s.Rev, s.Tag, s.Branch} {
		if pin != "" {
			pins++
		}
	}
	if pins > 0 && s.Git == "" {
		errs = append(errs, "rev, tag, and branch require a git source")
	}
	if pins > 1 {
		errs = append(errs, "only one of rev, tag, or branch may be given")
	}
	return errs
}

type configFile struct {
	Prompt      *string                `yaml:"prompt"`
	ShowTree    bool                   `yaml:"show_tree"`
	ShowProgram bool                   `yaml:"show_program"`
	Sources     map[string]*sourceYAML `yaml:"sources"`
}

type sourceYAML struct {
	Path   string `yaml:"path"`
	Git    string `yaml:"git"`
	Rev    string `yaml:"rev"`
	Tag    string `yaml:"tag"`
	Branch string `yaml:"branch"`
}

func (cf configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	cfg.Dir = filepath.Dir(path)
	if cf.Prompt != nil {
		cfg.Prompt = *cf.Prompt
	}
	cfg.ShowTree = cf.ShowTree
	cfg.ShowProgram = cf.ShowProgram
	for name, src := range cf.Sources {
		name = strings.TrimSpace(name)
		if src == nil {
			src = &sourceYAML{}
		}
		cfg.Sources[name] = &SourceSpec{
			Name:   name,
			Path:   strings.TrimSpace(src.Path),
			Git:    strings.TrimSpace(src.Git),
			Rev:    strings.TrimSpace(src.Rev),
			Tag:    strings.TrimSpace(src.Tag),
			Branch: strings.TrimSpace(src.Branch),
		}
	}
	return cfg
}
