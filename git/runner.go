// Package git provides repository state access via shell commands,
// with diff output parsed by bluekeyes/go-gitdiff.
package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	gogit "github.com/go-git/go-git/v5"

	"github.com/pgebal/commitsense"
)

// Compile-time interface verification.
var _ commitsense.Repository = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Validate confirms dir exists and holds a git repository.
func (r *Runner) Validate(ctx context.Context, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return &commitsense.ValidationError{Field: "rootDir", Reason: "directory does not exist"}
	}
	if _, err := gogit.PlainOpen(dir); err != nil {
		return &commitsense.ValidationError{Field: "rootDir", Reason: "not a Git repository"}
	}
	return nil
}

// StagedChanges lists files in the staged change set with their
// insertion/deletion counts.
func (r *Runner) StagedChanges(ctx context.Context, dir string) ([]commitsense.ChangedFile, error) {
	out, err := r.run(ctx, dir, "diff", "--cached")
	if err != nil {
		return nil, err
	}
	return changedFiles(strings.NewReader(out))
}

// WorkingChanges lists all changed files: staged, unstaged and
// untracked. Untracked files carry no line counts.
func (r *Runner) WorkingChanges(ctx context.Context, dir string) ([]commitsense.ChangedFile, error) {
	out, err := r.run(ctx, dir, "diff", "HEAD")
	if err != nil {
		// A freshly initialized repository has no HEAD yet.
		out, err = r.run(ctx, dir, "diff")
		if err != nil {
			return nil, err
		}
	}
	files, err := changedFiles(strings.NewReader(out))
	if err != nil {
		return nil, err
	}

	untracked, err := r.untracked(ctx, dir)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f.Path] = true
	}
	for _, p := range untracked {
		if !seen[p] {
			files = append(files, commitsense.ChangedFile{Path: p})
		}
	}
	return files, nil
}

// Diff returns the raw textual diff for a single path, preferring the
// staged diff and falling back to the working-tree diff.
func (r *Runner) Diff(ctx context.Context, dir, path string) (string, error) {
	out, err := r.run(ctx, dir, "diff", "--cached", "--", path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) != "" {
		return out, nil
	}
	out, err = r.run(ctx, dir, "diff", "HEAD", "--", path)
	if err != nil {
		return r.run(ctx, dir, "diff", "--", path)
	}
	return out, nil
}

// untracked returns paths reported as untracked by git status.
func (r *Runner) untracked(ctx context.Context, dir string) ([]string, error) {
	out, err := r.run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "?? ") {
			paths = append(paths, strings.Trim(strings.TrimPrefix(line, "?? "), `"`))
		}
	}
	return paths, nil
}

func (r *Runner) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s failed: %s", args[0], string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return string(output), nil
}

// changedFiles folds parsed diff output into per-file change counts.
func changedFiles(r io.Reader) ([]commitsense.ChangedFile, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	result := make([]commitsense.ChangedFile, 0, len(files))
	for _, f := range files {
		cf := commitsense.ChangedFile{
			Path:   filePath(f),
			Binary: f.IsBinary,
		}
		for _, frag := range f.TextFragments {
			cf.Insertions += int(frag.LinesAdded)
			cf.Deletions += int(frag.LinesDeleted)
		}
		result = append(result, cf)
	}
	return result, nil
}

func filePath(f *gitdiff.File) string {
	if f.NewName != "" {
		return f.NewName
	}
	return f.OldName
}
