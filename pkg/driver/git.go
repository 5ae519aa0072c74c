package driver

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
)

// loadGitSource reads spec.Path from the commit spec selects. A location
// naming an existing directory is opened in place; anything else is cloned
// into memory.
func loadGitSource(ctx context.Context, baseDir string, spec *SourceSpec) (string, error) {
	repo, err := openRepository(ctx, baseDir, spec.Git)
	if err != nil {
		return "", err
	}
	revision, hash, err := resolveRevision(repo, spec)
	if err != nil {
		return "", fmt.Errorf("source: resolve revision %s in %s: %w", revision, spec.Git, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("source: commit %s: %w", hash, err)
	}
	file, err := commit.File(path.Clean(filepath.ToSlash(spec.Path)))
	if err != nil {
		return "", fmt.Errorf("source: %s at %s: %w", spec.Path, revision, err)
	}
	contents, err := file.Contents()
	if err != nil {
		return "", fmt.Errorf("source: read %s at %s: %w", spec.Path, revision, err)
	}
	return contents, nil
}

func openRepository(ctx context.Context, baseDir, location string) (*git.Repository, error) {
	dir := resolvePath(baseDir, location)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			return nil, fmt.Errorf("source: git open %s: %w", dir, err)
		}
		return repo, nil
	}
	repo, err := git.CloneContext(ctx, memory.NewStorage(), nil, &git.CloneOptions{
		URL:  location,
		Tags: git.AllTags,
	})
	if err != nil {
		return nil, fmt.Errorf("source: git clone %s: %w", location, err)
	}
	return repo, nil
}

// resolveRevision tries each candidate gitRevisions yields and reports the
// first error when none resolves.
func resolveRevision(repo *git.Repository, spec *SourceSpec) (plumbing.Revision, *plumbing.Hash, error) {
	candidates := gitRevisions(spec)
	var firstErr error
	for _, revision := range candidates {
		hash, err := repo.ResolveRevision(revision)
		if err == nil {
			return revision, hash, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return candidates[0], nil, firstErr
}

// gitRevisions lists the revisions spec may name, most specific first. A
// clone only creates a local ref for the default branch, so other branches
// are also looked up among the origin's remote refs.
func gitRevisions(spec *SourceSpec) []plumbing.Revision {
	switch {
	case spec.Rev != "":
		return []plumbing.Revision{plumbing.Revision(spec.Rev)}
	case spec.Tag != "":
		return []plumbing.Revision{plumbing.Revision(plumbing.NewTagReferenceName(spec.Tag))}
	case spec.Branch != "":
		return []plumbing.Revision{
			plumbing.Revision(plumbing.NewBranchReferenceName(spec.Branch)),
			plumbing.Revision(plumbing.NewRemoteReferenceName(git.DefaultRemoteName, spec.Branch)),
		}
	default:
		return []plumbing.Revision{plumbing.Revision(plumbing.HEAD)}
	}
}
