package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LoadSource returns the program text spec refers to. Relative paths, and
// relative git repository locations, resolve against baseDir.
func LoadSource(ctx context.Context, baseDir string, spec *SourceSpec) (string, error) {
	if spec == nil {
		return "", fmt.Errorf("source: nil spec")
	}
	if spec.Git != "" {
		return loadGitSource(ctx, baseDir, spec)
	}
	path := resolvePath(baseDir, spec.Path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("source: read %s: %w", path, err)
	}
	return string(data), nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
