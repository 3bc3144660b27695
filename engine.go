package commitsense

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Default request parameters.
const (
	DefaultStyle          = StyleConventional
	DefaultMaxSuggestions = 3
	MinSuggestions        = 1
	MaxSuggestions        = 5
)

// Request holds the parameters of a single suggestion run.
// Use NewRequest for the documented defaults; a zero MaxSuggestions is
// invalid, not a default.
type Request struct {
	RootDir        string
	Style          Style
	MaxSuggestions int
	IncludeScope   bool
}

// NewRequest returns a Request for rootDir with default parameters:
// conventional style, three suggestions, scope included.
func NewRequest(rootDir string) Request {
	return Request{
		RootDir:        rootDir,
		Style:          DefaultStyle,
		MaxSuggestions: DefaultMaxSuggestions,
		IncludeScope:   true,
	}
}

// Engine turns repository state into ranked commit-message suggestions.
// Every call recomputes from scratch; the engine holds no state across
// invocations.
type Engine struct {
	repo   Repository
	logger *zap.Logger
}

// NewEngine creates an engine backed by repo. A nil logger disables
// advisory logging.
func NewEngine(repo Repository, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{repo: repo, logger: logger}
}

// Generate produces a CommitResponse for the request. Expected failure
// modes (bad parameters, missing directory, not a repository, query
// failures, empty change sets) surface as terminal responses, never as
// errors; the error return is reserved for unexpected internal faults.
func (e *Engine) Generate(ctx context.Context, req Request) (*CommitResponse, error) {
	req = withDefaults(req)

	if err := validateRequest(req); err != nil {
		return validationResponse(req.Style, err), nil
	}
	if err := e.repo.Validate(ctx, req.RootDir); err != nil {
		return validationResponse(req.Style, err), nil
	}

	staged, working, err := e.changeSets(ctx, req.RootDir)
	if err != nil {
		e.logger.Error("change set retrieval failed", zap.Error(err))
		return gitFailureResponse(req.Style, err), nil
	}

	if len(staged) == 0 && len(working) == 0 {
		return noChangesResponse(req.Style), nil
	}
	if len(staged) == 0 {
		return unstagedResponse(req.Style), nil
	}

	included := FilterExcluded(staged)
	if len(included) == 0 {
		return excludedOnlyResponse(req.Style), nil
	}

	agg := Aggregate(included)

	suggestions := make([]CommitSuggestion, 0, req.MaxSuggestions)
	for variant := 0; variant < req.MaxSuggestions; variant++ {
		s := Synthesize(agg, req.Style, req.IncludeScope, variant)
		if s.Length > MaxMessageLength {
			e.logger.Warn("suggestion exceeds subject-line limit",
				zap.Int("variant", variant),
				zap.Int("length", s.Length),
				zap.String("message", s.Message))
		}
		suggestions = append(suggestions, s)
	}

	return assemble(suggestions, included, agg, req.Style), nil
}

// Diffs returns the raw diff for every non-excluded changed file,
// preferring the staged change set. A diff failure for an individual
// file degrades to a placeholder entry.
func (e *Engine) Diffs(ctx context.Context, rootDir string) ([]FileDiff, error) {
	if rootDir == "" {
		return nil, &ValidationError{Field: "rootDir", Reason: "must not be empty"}
	}
	if err := e.repo.Validate(ctx, rootDir); err != nil {
		return nil, err
	}

	staged, working, err := e.changeSets(ctx, rootDir)
	if err != nil {
		return nil, err
	}
	files := staged
	if len(files) == 0 {
		files = working
	}

	diffs := make([]FileDiff, 0, len(files))
	for _, f := range FilterExcluded(files) {
		text, err := e.repo.Diff(ctx, rootDir, f.Path)
		if err != nil {
			e.logger.Warn("diff retrieval failed", zap.String("path", f.Path), zap.Error(err))
			text = fmt.Sprintf("diff unavailable: %v", err)
		}
		diffs = append(diffs, FileDiff{File: f.Path, Diff: text})
	}
	return diffs, nil
}

// changeSets fetches the staged and full change sets concurrently.
// Both queries must complete before aggregation starts.
func (e *Engine) changeSets(ctx context.Context, dir string) (staged, working []ChangedFile, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		staged, err = e.repo.StagedChanges(ctx, dir)
		if err != nil {
			return &GitError{Op: "staged changes", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		working, err = e.repo.WorkingChanges(ctx, dir)
		if err != nil {
			return &GitError{Op: "working changes", Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return staged, working, nil
}

func withDefaults(req Request) Request {
	if req.Style == "" {
		req.Style = DefaultStyle
	}
	return req
}

func validateRequest(req Request) error {
	if req.RootDir == "" {
		return &ValidationError{Field: "rootDir", Reason: "must not be empty"}
	}
	if !req.Style.Valid() {
		return &ValidationError{Field: "style", Reason: fmt.Sprintf("unknown style %q", req.Style)}
	}
	if req.MaxSuggestions < MinSuggestions || req.MaxSuggestions > MaxSuggestions {
		return &ValidationError{
			Field:  "maxSuggestions",
			Reason: fmt.Sprintf("must be between %d and %d", MinSuggestions, MaxSuggestions),
		}
	}
	return nil
}

// terminal builds the single-suggestion response used for every
// short-circuit outcome.
func terminal(message string, typ ChangeType, rationale string, style Style, changeTypes []string, guidance string, examples []string) *CommitResponse {
	s := CommitSuggestion{
		Message:   message,
		Type:      typ,
		Rationale: rationale,
		Style:     style,
		Example:   fmt.Sprintf("git commit -m %q", message),
		Priority:  PriorityPrimary,
		Length:    len(message),
	}
	if changeTypes == nil {
		changeTypes = []string{}
	}
	return &CommitResponse{
		Suggestions: []CommitSuggestion{s},
		Summary: Summary{
			TotalSuggestions:  1,
			FilesChanged:      0,
			ChangeTypes:       changeTypes,
			RecommendedStyle:  style,
			PrimarySuggestion: message,
		},
		Usage: Usage{HowToUse: guidance, Examples: examples},
	}
}

func validationResponse(style Style, err error) *CommitResponse {
	return terminal("Validation Error", TypeError, err.Error(), style, nil,
		"Fix the reported parameter and retry.", []string{})
}

func gitFailureResponse(style Style, err error) *CommitResponse {
	return terminal("Git Operation Failed", TypeError, err.Error(), style, nil,
		"Check the repository state and retry.", []string{"git status"})
}

func noChangesResponse(style Style) *CommitResponse {
	return terminal("No changes detected", TypeNone,
		"The working tree is clean; there is nothing to commit.", style, nil,
		"Make some changes, stage them with git add, then retry.",
		[]string{"git add <files>"})
}

func unstagedResponse(style Style) *CommitResponse {
	return terminal("No staged changes detected", TypeNone,
		"Files changed but none are staged for commit.", style,
		[]string{"unstaged"},
		"Stage your changes with git add, then retry.",
		[]string{"git add <files>", "git add -A"})
}

func excludedOnlyResponse(style Style) *CommitResponse {
	return terminal("Only excluded files changed", TypeChore,
		"Every staged file matches an exclusion marker (build output, lockfiles, OS artifacts).",
		style, nil,
		"Stage a non-generated file to get a classified suggestion.",
		[]string{"git status"})
}

// assemble builds the final response from the generated variants.
func assemble(suggestions []CommitSuggestion, included []ChangedFile, agg ChangeAggregate, style Style) *CommitResponse {
	primary := suggestions[0].Message

	changeTypes := make([]string, 0, len(agg.Natures))
	for _, n := range agg.Natures {
		changeTypes = append(changeTypes, string(n))
	}

	examples := []string{
		fmt.Sprintf("git commit -m %q", primary),
		fmt.Sprintf("git add -A && git commit -m %q", primary),
	}
	if len(suggestions) > 1 {
		examples = append(examples, fmt.Sprintf("git commit -m %q", suggestions[1].Message))
	}

	return &CommitResponse{
		Suggestions: suggestions,
		Summary: Summary{
			TotalSuggestions:  len(suggestions),
			FilesChanged:      len(included),
			ChangeTypes:       changeTypes,
			RecommendedStyle:  style,
			PrimarySuggestion: primary,
		},
		Usage: Usage{
			HowToUse: fmt.Sprintf("Commit the staged changes with the primary suggestion: %q", primary),
			Examples: examples,
		},
	}
}
