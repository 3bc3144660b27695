package commitsense

import (
	"path"
	"strings"

	"github.com/samber/lo"
)

// ExcludedMarkers are path substrings that remove a file from
// aggregation: build output, lockfile noise, OS metadata and
// dependency directories. Matching is case-sensitive.
var ExcludedMarkers = []string{"dist/", "bun.lock", ".DS_Store", "node_modules"}

// Excluded reports whether p contains any exclusion marker.
func Excluded(p string) bool {
	return lo.SomeBy(ExcludedMarkers, func(marker string) bool {
		return strings.Contains(p, marker)
	})
}

// FilterExcluded returns the files that survive the exclusion set.
func FilterExcluded(files []ChangedFile) []ChangedFile {
	return lo.Filter(files, func(f ChangedFile, _ int) bool {
		return !Excluded(f.Path)
	})
}

// FileNature classifies a single file's edit. Binary files carry no
// insertion/deletion signal and fall through to modification.
func FileNature(f ChangedFile) Nature {
	switch {
	case f.Insertions > 0 && f.Deletions == 0:
		return NatureAddition
	case f.Deletions > 0 && f.Insertions == 0:
		return NatureDeletion
	default:
		return NatureModification
	}
}

var (
	sourceExtensions     = []string{"ts", "tsx", "js", "jsx", "mjs", "cjs", "go"}
	stylesheetExtensions = []string{"css", "scss", "sass", "less", "styl"}
	configExtensions     = []string{"yml", "yaml", "toml", "ini"}
	lockfileNames        = []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml"}
)

// fileExtension returns the lower-cased extension without the dot,
// or "unknown" for extensionless paths.
func fileExtension(p string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}

func hasExtension(f ChangedFile, exts []string) bool {
	return lo.Contains(exts, fileExtension(f.Path))
}

// ruleOutcome is the classification produced by a matching rule.
// An empty Scope leaves scope derivation to the path-prefix resolver.
type ruleOutcome struct {
	Type        ChangeType
	Description string
	Scope       string
}

// classifyRule inspects the post-exclusion file set and either claims it
// or passes. Rules run top to bottom; the first match wins.
type classifyRule func(files []ChangedFile) (ruleOutcome, bool)

var classifyRules = []classifyRule{
	docsRule,
	manifestRule,
	lockfileRule,
	sourceRule,
	stylesheetRule,
	configRule,
}

func docsRule(files []ChangedFile) (ruleOutcome, bool) {
	all := lo.EveryBy(files, func(f ChangedFile) bool {
		return hasExtension(f, []string{"md", "mdx"}) ||
			strings.Contains(strings.ToLower(f.Path), "readme")
	})
	if !all {
		return ruleOutcome{}, false
	}
	return ruleOutcome{Type: TypeDocs, Description: "update documentation"}, true
}

func manifestRule(files []ChangedFile) (ruleOutcome, bool) {
	if !lo.SomeBy(files, func(f ChangedFile) bool { return path.Base(f.Path) == "package.json" }) {
		return ruleOutcome{}, false
	}
	return ruleOutcome{Type: TypeChore, Description: "update dependencies", Scope: "deps"}, true
}

func lockfileRule(files []ChangedFile) (ruleOutcome, bool) {
	if !lo.SomeBy(files, func(f ChangedFile) bool { return lo.Contains(lockfileNames, path.Base(f.Path)) }) {
		return ruleOutcome{}, false
	}
	return ruleOutcome{Type: TypeChore, Description: "update lockfile", Scope: "deps"}, true
}

// isTestFile matches the usual test naming conventions: a "test" or
// "spec" segment anywhere in the path (which also covers .test.ts /
// .spec.ts suffixes) or a __tests__ directory.
func isTestFile(p string) bool {
	lower := strings.ToLower(p)
	return strings.Contains(lower, "test") ||
		strings.Contains(lower, "spec") ||
		strings.Contains(lower, "__tests__")
}

func sourceRule(files []ChangedFile) (ruleOutcome, bool) {
	if !lo.SomeBy(files, func(f ChangedFile) bool { return hasExtension(f, sourceExtensions) }) {
		return ruleOutcome{}, false
	}

	if lo.EveryBy(files, func(f ChangedFile) bool { return isTestFile(f.Path) }) {
		return ruleOutcome{Type: TypeTest, Description: "update tests"}, true
	}

	natures := lo.Map(files, func(f ChangedFile, _ int) Nature { return FileNature(f) })
	hasAdditions := lo.Contains(natures, NatureAddition)
	hasDeletions := lo.Contains(natures, NatureDeletion)

	switch {
	case hasAdditions && !hasDeletions:
		return ruleOutcome{Type: TypeFeat, Description: "add new functionality"}, true
	case hasDeletions && !hasAdditions:
		return ruleOutcome{Type: TypeRefactor, Description: "remove code"}, true
	case hasAdditions && hasDeletions:
		return ruleOutcome{Type: TypeRefactor, Description: "restructure code"}, true
	}

	// Pure modifications. A file with both insertions and deletions
	// signals restructuring; a one-sided edit reads as a fix. This rule
	// is intentionally coarser than the per-file nature tagging above.
	mixed := lo.SomeBy(files, func(f ChangedFile) bool {
		return f.Insertions > 0 && f.Deletions > 0
	})
	if mixed {
		return ruleOutcome{Type: TypeRefactor, Description: "update implementation"}, true
	}
	return ruleOutcome{Type: TypeFix, Description: "fix issue"}, true
}

func stylesheetRule(files []ChangedFile) (ruleOutcome, bool) {
	if !lo.EveryBy(files, func(f ChangedFile) bool { return hasExtension(f, stylesheetExtensions) }) {
		return ruleOutcome{}, false
	}
	return ruleOutcome{Type: TypeStyle, Description: "update styles"}, true
}

func configRule(files []ChangedFile) (ruleOutcome, bool) {
	if !lo.SomeBy(files, func(f ChangedFile) bool { return hasExtension(f, configExtensions) }) {
		return ruleOutcome{}, false
	}
	return ruleOutcome{Type: TypeChore, Description: "update configuration", Scope: "config"}, true
}

// defaultAggregate is returned when aggregation fails internally.
func defaultAggregate() ChangeAggregate {
	return ChangeAggregate{
		Type:        TypeFeat,
		Description: "update code",
		Extensions:  []string{"unknown"},
		Natures:     []Nature{NatureModification},
	}
}

// Aggregate folds a non-empty post-exclusion change set into a single
// classification. It never fails: an internal panic degrades to the
// safe default aggregate.
func Aggregate(files []ChangedFile) (agg ChangeAggregate) {
	defer func() {
		if recover() != nil {
			agg = defaultAggregate()
		}
	}()

	outcome := ruleOutcome{Type: TypeFeat, Description: "update code"}
	for _, rule := range classifyRules {
		if o, ok := rule(files); ok {
			outcome = o
			break
		}
	}

	scope := outcome.Scope
	if scope == "" {
		scope = resolveScope(lo.Map(files, func(f ChangedFile, _ int) string { return f.Path }))
	}

	return ChangeAggregate{
		Type:        outcome.Type,
		Scope:       scope,
		Description: outcome.Description,
		Extensions:  lo.Uniq(lo.Map(files, func(f ChangedFile, _ int) string { return fileExtension(f.Path) })),
		Natures:     lo.Uniq(lo.Map(files, func(f ChangedFile, _ int) Nature { return FileNature(f) })),
	}
}

// resolveScope derives a directory-based scope token from the longest
// common path-segment prefix. A generic "src" top-level segment defers
// to the next segment. Failure to derive a scope is not an error; the
// scope just stays empty.
func resolveScope(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	var prefix []string
	if len(paths) == 1 {
		segments := strings.Split(paths[0], "/")
		prefix = segments[:len(segments)-1]
	} else {
		prefix = strings.Split(paths[0], "/")
		for _, p := range paths[1:] {
			segments := strings.Split(p, "/")
			prefix = commonSegments(prefix, segments)
			if len(prefix) == 0 {
				return ""
			}
		}
		// The last common segment may be a shared filename, never a
		// directory, when the paths are identical; scope tokens only
		// come from directory segments.
		if prefix[len(prefix)-1] == path.Base(paths[0]) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	if len(prefix) == 0 {
		return ""
	}
	if prefix[0] == "src" && len(prefix) > 1 {
		return prefix[1]
	}
	return prefix[0]
}

func commonSegments(a, b []string) []string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
