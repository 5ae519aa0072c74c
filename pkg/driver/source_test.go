package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func commitFile(t *testing.T, repo *git.Repository, dir, name, contents string) plumbing.Hash {
	t.Helper()
	writeFile(t, filepath.Join(dir, name), contents)
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := worktree.Add(filepath.ToSlash(name)); err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	hash, err := worktree.Commit("update "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "Mini", Email: "mini@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return hash
}

func TestLoadSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "scripts", "hello.mini"), "1 + 2")

	got, err := LoadSource(context.Background(), dir, &SourceSpec{Path: "scripts/hello.mini"})
	if err != nil || got != "1 + 2" {
		t.Fatalf("LoadSource = %q, %v", got, err)
	}
	if _, err := LoadSource(context.Background(), dir, &SourceSpec{Path: "missing.mini"}); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestLoadSourceFromGit(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "scripts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	first := commitFile(t, repo, dir, "loops/sum.mini", "var s = 0 for i = 1 to 3 s = s + i s")
	if _, err := repo.CreateTag("v1", first, nil); err != nil {
		t.Fatalf("tag: %v", err)
	}
	if err := repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName("old"), first)); err != nil {
		t.Fatalf("branch: %v", err)
	}
	commitFile(t, repo, dir, "loops/sum.mini", "var s = 0 for i = 1 to 4 s = s + i s")

	original := "var s = 0 for i = 1 to 3 s = s + i s"
	latest := "var s = 0 for i = 1 to 4 s = s + i s"
	cases := []struct {
		name string
		spec SourceSpec
		want string
	}{
		{"head", SourceSpec{Git: dir, Path: "loops/sum.mini"}, latest},
		{"relative location", SourceSpec{Git: "scripts", Path: "loops/sum.mini"}, latest},
		{"tag", SourceSpec{Git: dir, Path: "loops/sum.mini", Tag: "v1"}, original},
		{"branch", SourceSpec{Git: dir, Path: "loops/sum.mini", Branch: "old"}, original},
		{"rev", SourceSpec{Git: dir, Path: "loops/sum.mini", Rev: first.String()}, original},
		{"nested directory", SourceSpec{Git: filepath.Join(dir, "loops"), Path: "loops/sum.mini"}, latest},
		{"cloned head", SourceSpec{Git: "file://" + dir, Path: "loops/sum.mini"}, latest},
		{"cloned branch", SourceSpec{Git: "file://" + dir, Path: "loops/sum.mini", Branch: "old"}, original},
		{"cloned tag", SourceSpec{Git: "file://" + dir, Path: "loops/sum.mini", Tag: "v1"}, original},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LoadSource(context.Background(), root, &tc.spec)
			if err != nil {
				t.Fatalf("LoadSource: %v", err)
			}
			if got != tc.want {
				t.Fatalf("LoadSource = %q, want %q", got, tc.want)
			}
		})
	}

	if _, err := LoadSource(context.Background(), root, &SourceSpec{Git: dir, Path: "loops/none.mini"}); err == nil {
		t.Fatalf("expected error for a file missing from the commit")
	}
	if _, err := LoadSource(context.Background(), root, &SourceSpec{Git: dir, Path: "loops/sum.mini", Tag: "v9"}); err == nil {
		t.Fatalf("expected error for an unknown tag")
	}
	_, err = LoadSource(context.Background(), root, &SourceSpec{Git: "file://" + dir, Path: "loops/sum.mini", Branch: "gone"})
	if err == nil || !strings.Contains(err.Error(), "refs/heads/gone") {
		t.Fatalf("unknown branch error = %v", err)
	}
}

func TestLoadSourceCloneFailure(t *testing.T) {
	_, err := LoadSource(context.Background(), t.TempDir(), &SourceSpec{Git: "does-not-exist", Path: "a.mini"})
	if err == nil {
		t.Fatalf("expected clone error")
	}
}
