package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgebal/commitsense"
	"github.com/pgebal/commitsense/git"
)

// setupTestRepo creates a temporary git repository with an initial commit.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	writeFile(t, dir, "README.md", "# Test Repo\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// runGit executes a git command in the given directory.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command git %v failed: %s", args, string(output))
	return string(output)
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRunner_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a git repository", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		err := git.NewRunner().Validate(context.Background(), dir)

		assert.NoError(t, err)
	})

	t.Run("rejects a missing directory", func(t *testing.T) {
		t.Parallel()

		err := git.NewRunner().Validate(context.Background(), filepath.Join(t.TempDir(), "missing"))

		var verr *commitsense.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Reason, "does not exist")
	})

	t.Run("rejects a directory without a repository", func(t *testing.T) {
		t.Parallel()

		err := git.NewRunner().Validate(context.Background(), t.TempDir())

		var verr *commitsense.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Reason, "not a Git repository")
	})
}

func TestRunner_StagedChanges(t *testing.T) {
	t.Parallel()

	t.Run("returns empty set for a clean tree", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		files, err := git.NewRunner().StagedChanges(context.Background(), dir)

		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("counts insertions for a new staged file", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		writeFile(t, dir, "src/app.ts", "line one\nline two\nline three\n")
		runGit(t, dir, "add", ".")

		files, err := git.NewRunner().StagedChanges(context.Background(), dir)

		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "src/app.ts", files[0].Path)
		assert.Equal(t, 3, files[0].Insertions)
		assert.Equal(t, 0, files[0].Deletions)
		assert.False(t, files[0].Binary)
	})

	t.Run("counts insertions and deletions for a modification", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		writeFile(t, dir, "README.md", "# Renamed Repo\nwith a second line\n")
		runGit(t, dir, "add", ".")

		files, err := git.NewRunner().StagedChanges(context.Background(), dir)

		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "README.md", files[0].Path)
		assert.Equal(t, 2, files[0].Insertions)
		assert.Equal(t, 1, files[0].Deletions)
	})

	t.Run("flags binary files", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0x01}, 0644))
		runGit(t, dir, "add", ".")

		files, err := git.NewRunner().StagedChanges(context.Background(), dir)

		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "logo.png", files[0].Path)
		assert.True(t, files[0].Binary)
		assert.Equal(t, 0, files[0].Insertions)
		assert.Equal(t, 0, files[0].Deletions)
	})
}

func TestRunner_WorkingChanges(t *testing.T) {
	t.Parallel()

	t.Run("includes unstaged modifications", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		writeFile(t, dir, "README.md", "# Test Repo\nextra line\n")

		files, err := git.NewRunner().WorkingChanges(context.Background(), dir)

		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "README.md", files[0].Path)
		assert.Equal(t, 1, files[0].Insertions)
	})

	t.Run("includes untracked files without counts", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		writeFile(t, dir, "notes.txt", "untracked\n")

		files, err := git.NewRunner().WorkingChanges(context.Background(), dir)

		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "notes.txt", files[0].Path)
		assert.Zero(t, files[0].Insertions)
		assert.Zero(t, files[0].Deletions)
	})

	t.Run("combines staged and unstaged changes", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		writeFile(t, dir, "staged.ts", "staged\n")
		runGit(t, dir, "add", "staged.ts")
		writeFile(t, dir, "README.md", "# Test Repo\nmore\n")

		files, err := git.NewRunner().WorkingChanges(context.Background(), dir)

		require.NoError(t, err)
		paths := make([]string, 0, len(files))
		for _, f := range files {
			paths = append(paths, f.Path)
		}
		assert.ElementsMatch(t, []string{"staged.ts", "README.md"}, paths)
	})
}

func TestRunner_Diff(t *testing.T) {
	t.Parallel()

	t.Run("returns the staged diff", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		writeFile(t, dir, "src/app.ts", "hello\n")
		runGit(t, dir, "add", ".")

		diff, err := git.NewRunner().Diff(context.Background(), dir, "src/app.ts")

		require.NoError(t, err)
		assert.Contains(t, diff, "src/app.ts")
		assert.Contains(t, diff, "+hello")
	})

	t.Run("falls back to the working-tree diff", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		writeFile(t, dir, "README.md", "# Test Repo\nunstaged line\n")

		diff, err := git.NewRunner().Diff(context.Background(), dir, "README.md")

		require.NoError(t, err)
		assert.Contains(t, diff, "+unstaged line")
	})

	t.Run("returns empty output for an unchanged path", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		diff, err := git.NewRunner().Diff(context.Background(), dir, "README.md")

		require.NoError(t, err)
		assert.Empty(t, diff)
	})
}
