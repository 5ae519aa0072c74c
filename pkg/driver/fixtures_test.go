package driver

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"

	"mini/interpreter-go/pkg/runtime"
)

type fixtureCase struct {
	Name        string              `yaml:"name"`
	Submissions []fixtureSubmission `yaml:"submissions"`
}

type fixtureSubmission struct {
	Source      string   `yaml:"source"`
	Value       string   `yaml:"value"`
	Diagnostics []string `yaml:"diagnostics"`
	Error       string   `yaml:"error"`
}

func loadFixtureCases(t *testing.T, name string) []fixtureCase {
	t.Helper()
	file, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	var cases []fixtureCase
	if err := decoder.Decode(&cases); err != nil {
		t.Fatalf("decode %s: %v", name, err)
	}
	return cases
}

func TestEvaluationFixtures(t *testing.T) {
	for _, tc := range loadFixtureCases(t, "evaluation.yml") {
		t.Run(tc.Name, func(t *testing.T) {
			session := NewSession()
			for i, sub := range tc.Submissions {
				result, _ := session.Submit(sub.Source)

				var messages []string
				for _, d := range result.Diagnostics {
					messages = append(messages, d.Message)
				}
				if !slices.Equal(messages, sub.Diagnostics) {
					t.Fatalf("submission %d diagnostics = %q, want %q", i, messages, sub.Diagnostics)
				}

				switch {
				case sub.Error != "":
					var runtimeErr *runtime.RuntimeError
					if result.Err == nil || !errors.As(result.Err, &runtimeErr) || runtimeErr.Err.Error() != sub.Error {
						t.Fatalf("submission %d error = %v, want %q", i, result.Err, sub.Error)
					}
				case result.Err != nil:
					t.Fatalf("submission %d: unexpected error %v", i, result.Err)
				case sub.Value != "":
					if got := runtime.Format(result.Value); got != sub.Value {
						t.Fatalf("submission %d value = %s, want %s", i, got, sub.Value)
					}
				}
			}
		})
	}
}
