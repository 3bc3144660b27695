package commitsense

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// MaxMessageLength is the advisory limit for a commit subject line.
// Longer messages are still returned; callers may warn.
const MaxMessageLength = 72

// renderInput carries the normalized fields a transform renders from.
type renderInput struct {
	Type         string
	Scope        string
	Description  string
	IncludeScope bool
}

// transform renders one message variant and explains the phrasing choice.
type transform func(in renderInput) (message, rationale string)

var updatePattern = regexp.MustCompile(`\bupdate\b`)

// swapUpdate replaces the verb "update" (word-boundary, case-sensitive,
// all occurrences) with an alternative.
func swapUpdate(s, with string) string {
	return updatePattern.ReplaceAllString(s, with)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func conventionalMessage(in renderInput, description string) string {
	if in.IncludeScope && in.Scope != "" {
		return fmt.Sprintf("%s(%s): %s", in.Type, in.Scope, description)
	}
	return fmt.Sprintf("%s: %s", in.Type, description)
}

// transforms enumerates the phrasing variants per style. Variant
// indices beyond a style's table fall back to styleFallback.
var transforms = map[Style][]transform{
	StyleConventional: {
		func(in renderInput) (string, string) {
			return conventionalMessage(in, in.Description),
				"Standard conventional commit format based on the change analysis"
		},
		func(in renderInput) (string, string) {
			return conventionalMessage(in, swapUpdate(in.Description, "improve")),
				"Conventional format with stronger phrasing (update becomes improve)"
		},
		func(in renderInput) (string, string) {
			return conventionalMessage(in, swapUpdate(in.Description, "modify")),
				"Conventional format with alternative phrasing (update becomes modify)"
		},
	},
	StyleSemantic: {
		func(in renderInput) (string, string) {
			return fmt.Sprintf("%s: %s", strings.ToUpper(in.Type), in.Description),
				"Semantic format with an upper-case type tag"
		},
		func(in renderInput) (string, string) {
			return fmt.Sprintf("[%s] %s", in.Type, in.Description),
				"Semantic format with a bracketed type tag"
		},
		func(in renderInput) (string, string) {
			return fmt.Sprintf("%s: %s", in.Type, in.Description),
				"Semantic format with a plain type prefix"
		},
	},
	StyleDescriptive: {
		func(in renderInput) (string, string) {
			return capitalize(in.Description),
				"Plain-sentence description of the change"
		},
		func(in renderInput) (string, string) {
			return capitalize(swapUpdate(in.Description, "refactor")),
				"Plain sentence with alternative phrasing (update becomes refactor)"
		},
	},
}

// styleFallback is the transform index used for variants beyond the
// enumerated table entries.
var styleFallback = map[Style]int{
	StyleConventional: 0,
	StyleSemantic:     2,
	StyleDescriptive:  0,
}

func variantPriority(variant int) Priority {
	if variant == 0 {
		return PriorityPrimary
	}
	return PriorityAlternative
}

// fallbackSuggestion stands in for a variant whose synthesis failed.
func fallbackSuggestion(style Style, variant int, cause any) CommitSuggestion {
	const message = "Update code"
	return CommitSuggestion{
		Message:   message,
		Type:      TypeFeat,
		Rationale: fmt.Sprintf("fallback suggestion: synthesis failed (%v)", cause),
		Style:     style,
		Example:   fmt.Sprintf("git commit -m %q", message),
		Priority:  variantPriority(variant),
		Length:    len(message),
	}
}

// Synthesize renders one suggestion variant from an aggregate. It is a
// pure function of its inputs: identical arguments always produce an
// identical suggestion. It never fails; an internal panic degrades to
// the fallback suggestion.
func Synthesize(agg ChangeAggregate, style Style, includeScope bool, variant int) (s CommitSuggestion) {
	defer func() {
		if r := recover(); r != nil {
			s = fallbackSuggestion(style, variant, r)
		}
	}()

	in := renderInput{
		Type:         strings.ToLower(strings.TrimSpace(string(agg.Type))),
		Scope:        strings.ToLower(strings.TrimSpace(agg.Scope)),
		Description:  strings.TrimSpace(agg.Description),
		IncludeScope: includeScope,
	}

	table := transforms[style]
	idx := variant
	if idx < 0 || idx >= len(table) {
		idx = styleFallback[style]
	}
	message, rationale := table[idx](in)

	scope := ""
	if includeScope {
		scope = in.Scope
	}

	return CommitSuggestion{
		Message:   message,
		Type:      agg.Type,
		Scope:     scope,
		Rationale: rationale,
		Style:     style,
		Example:   fmt.Sprintf("git commit -m %q", message),
		Priority:  variantPriority(variant),
		Length:    len(message),
	}
}
