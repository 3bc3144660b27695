package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgebal/commitsense"
	"github.com/pgebal/commitsense/chroma"
	lipglosspkg "github.com/pgebal/commitsense/lipgloss"
	"github.com/pgebal/commitsense/mock"
)

func testApp(repo *mock.Repository, picker commitsense.Picker, out *bytes.Buffer) *App {
	return &App{
		Engine:      commitsense.NewEngine(repo, nil),
		Renderer:    lipglosspkg.NewRenderer(lipglosspkg.DefaultTheme(), nil),
		Picker:      picker,
		Highlighter: chroma.NewHighlighter("monokai"),
		Out:         out,
	}
}

func stagedRepo(files []commitsense.ChangedFile) *mock.Repository {
	return &mock.Repository{
		ValidateFn: func(ctx context.Context, dir string) error { return nil },
		StagedChangesFn: func(ctx context.Context, dir string) ([]commitsense.ChangedFile, error) {
			return files, nil
		},
		WorkingChangesFn: func(ctx context.Context, dir string) ([]commitsense.ChangedFile, error) {
			return files, nil
		},
		DiffFn: func(ctx context.Context, dir, path string) (string, error) {
			return "diff --git a/" + path + " b/" + path + "\n+added\n", nil
		},
	}
}

func TestApp_Suggest_Rendered(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	files := []commitsense.ChangedFile{{Path: "src/auth/login.ts", Insertions: 10}}
	app := testApp(stagedRepo(files), nil, &out)

	err := app.Suggest(context.Background(), commitsense.NewRequest("/repo"), false, false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "feat(auth): add new functionality")
}

func TestApp_Suggest_JSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	files := []commitsense.ChangedFile{{Path: "src/auth/login.ts", Insertions: 10}}
	app := testApp(stagedRepo(files), nil, &out)

	err := app.Suggest(context.Background(), commitsense.NewRequest("/repo"), true, false)

	require.NoError(t, err)
	var resp commitsense.CommitResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 3)
	assert.Equal(t, "feat(auth): add new functionality", resp.Summary.PrimarySuggestion)
}

func TestApp_Suggest_Pick(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	files := []commitsense.ChangedFile{{Path: "src/auth/login.ts", Insertions: 10}}
	picker := &mock.Picker{
		PickFn: func(ctx context.Context, resp *commitsense.CommitResponse) (*commitsense.CommitSuggestion, error) {
			return &resp.Suggestions[1], nil
		},
	}
	app := testApp(stagedRepo(files), picker, &out)

	err := app.Suggest(context.Background(), commitsense.NewRequest("/repo"), false, true)

	require.NoError(t, err)
	assert.Equal(t, resp1Message(t, stagedRepo(files))+"\n", out.String())
}

// resp1Message generates the expected second suggestion for the repo.
func resp1Message(t *testing.T, repo *mock.Repository) string {
	t.Helper()
	resp, err := commitsense.NewEngine(repo, nil).Generate(context.Background(), commitsense.NewRequest("/repo"))
	require.NoError(t, err)
	require.Greater(t, len(resp.Suggestions), 1)
	return resp.Suggestions[1].Message
}

func TestApp_Diffs(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	files := []commitsense.ChangedFile{{Path: "src/app.ts", Insertions: 1}}
	app := testApp(stagedRepo(files), nil, &out)

	err := app.Diffs(context.Background(), "/repo", false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "=== src/app.ts ===")
	assert.Contains(t, out.String(), "+added")
}

func TestApp_Diffs_Empty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app := testApp(stagedRepo(nil), nil, &out)

	err := app.Diffs(context.Background(), "/repo", false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No changed files.")
}
