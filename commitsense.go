// Package commitsense provides domain types for classifying working-tree
// changes and synthesizing commit-message suggestions.
package commitsense

import "context"

// ChangedFile describes a single changed path in the working tree.
type ChangedFile struct {
	Path       string // repository-relative
	Insertions int
	Deletions  int
	Binary     bool // binary files carry no line counts
}

// FileDiff pairs a changed path with its raw textual diff.
type FileDiff struct {
	File string `json:"file"`
	Diff string `json:"diff"`
}

// ChangeType is the semantic kind of a change set.
type ChangeType string

// Change types.
const (
	TypeFeat     ChangeType = "feat"
	TypeFix      ChangeType = "fix"
	TypeDocs     ChangeType = "docs"
	TypeStyle    ChangeType = "style"
	TypeRefactor ChangeType = "refactor"
	TypeTest     ChangeType = "test"
	TypeChore    ChangeType = "chore"

	// TypeNone and TypeError appear only in terminal responses
	// (no changes, invalid input), never in aggregation output.
	TypeNone  ChangeType = "none"
	TypeError ChangeType = "error"
)

// Nature classifies how a single file changed.
type Nature string

// Change natures.
const (
	NatureAddition     Nature = "addition"
	NatureDeletion     Nature = "deletion"
	NatureModification Nature = "modification"
)

// Style selects the phrasing of generated messages.
type Style string

// Message styles.
const (
	StyleConventional Style = "conventional"
	StyleSemantic     Style = "semantic"
	StyleDescriptive  Style = "descriptive"
)

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	switch s {
	case StyleConventional, StyleSemantic, StyleDescriptive:
		return true
	}
	return false
}

// Priority ranks a suggestion within a response.
type Priority string

// Suggestion priorities. Variant 0 is always primary.
const (
	PriorityPrimary     Priority = "primary"
	PriorityAlternative Priority = "alternative"
)

// ChangeAggregate is the single classification derived from a change set.
type ChangeAggregate struct {
	Type        ChangeType
	Scope       string // empty when no scope could be derived
	Description string
	Extensions  []string // distinct file extensions touched
	Natures     []Nature // distinct change natures across files
}

// CommitSuggestion is one rendered message variant.
type CommitSuggestion struct {
	Message   string     `json:"message"`
	Type      ChangeType `json:"type"`
	Scope     string     `json:"scope,omitempty"`
	Rationale string     `json:"rationale"`
	Style     Style      `json:"style"`
	Example   string     `json:"example"`
	Priority  Priority   `json:"priority"`
	Length    int        `json:"length"` // character length of Message
}

// Summary aggregates response-level counts and the primary message.
type Summary struct {
	TotalSuggestions  int      `json:"totalSuggestions"`
	FilesChanged      int      `json:"filesChanged"`
	ChangeTypes       []string `json:"changeTypes"`
	RecommendedStyle  Style    `json:"recommendedStyle"`
	PrimarySuggestion string   `json:"primarySuggestion"`
}

// Usage tells the caller how to apply the primary suggestion.
type Usage struct {
	HowToUse string   `json:"howToUse"`
	Examples []string `json:"examples"`
}

// CommitResponse is the sole output artifact of the engine.
type CommitResponse struct {
	Suggestions []CommitSuggestion `json:"suggestions"`
	Summary     Summary            `json:"summary"`
	Usage       Usage              `json:"usage"`
}

// Primary returns the primary suggestion, or nil for an empty response.
func (r *CommitResponse) Primary() *CommitSuggestion {
	if len(r.Suggestions) == 0 {
		return nil
	}
	return &r.Suggestions[0]
}

// Repository provides read-only access to version-control state.
type Repository interface {
	// Validate confirms dir exists and is a version-controlled working tree.
	Validate(ctx context.Context, dir string) error
	// StagedChanges lists files in the staged change set.
	StagedChanges(ctx context.Context, dir string) ([]ChangedFile, error)
	// WorkingChanges lists all changed files: staged, unstaged and untracked.
	WorkingChanges(ctx context.Context, dir string) ([]ChangedFile, error)
	// Diff returns the raw textual diff for a single path.
	Diff(ctx context.Context, dir, path string) (string, error)
}

// Picker lets a user choose one suggestion from a response interactively.
type Picker interface {
	Pick(ctx context.Context, resp *CommitResponse) (*CommitSuggestion, error)
}

// Highlighter adds terminal colors to raw diff text.
type Highlighter interface {
	Highlight(diff string) (string, error)
}
