// Package matching compiles vocabulary patterns and extracts canonical skill
// mentions from free text, resolving overlapping matches so that no span of
// text is credited to more than one skill.
package matching

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/skill-auditor/internal/types"
)

// CompiledSkill holds one vocabulary entry's compiled matchers.
type CompiledSkill struct {
	Name     string
	Patterns []*regexp.Regexp
}

// CompileWarning records a pattern that failed to compile and was excluded
// from matching. A bad pattern never aborts the run.
type CompileWarning struct {
	Skill   string
	Pattern string
	Err     error
}

func (w CompileWarning) String() string {
	return "skill " + w.Skill + ": pattern " + w.Pattern + ": " + w.Err.Error()
}

// Compile turns a vocabulary into compiled skills. Patterns are compiled
// case-insensitively. Invalid patterns are skipped with a warning; a
// definition with no valid patterns is excluded entirely.
func Compile(vocab *types.Vocabulary) ([]CompiledSkill, []CompileWarning) {
	compiled := make([]CompiledSkill, 0, len(vocab.Skills))
	var warnings []CompileWarning

	for _, def := range vocab.Skills {
		cs := CompiledSkill{Name: def.Name}
		for _, pat := range def.Patterns {
			re, err := compilePattern(pat)
			if err != nil {
				warnings = append(warnings, CompileWarning{Skill: def.Name, Pattern: pat, Err: err})
				continue
			}
			cs.Patterns = append(cs.Patterns, re)
		}
		if len(cs.Patterns) > 0 {
			compiled = append(compiled, cs)
		}
	}
	return compiled, warnings
}

// compilePattern compiles a pattern string case-insensitively.
func compilePattern(pat string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(pat, "(?i)") {
		pat = "(?i)" + pat
	}
	return regexp.Compile(pat)
}

// span is one candidate match: a character range attributed to a skill.
type span struct {
	start, end int
	name       string
}

// ExtractSkills returns the canonical names of all skills mentioned in text,
// deduplicated and sorted lexicographically. Overlapping matches are resolved
// by greedy interval scheduling: spans are considered longest-first (then by
// position), and a span is accepted only if it does not overlap any
// previously accepted span. This keeps "Java" from also being credited when
// "JavaScript" matched the same characters.
func ExtractSkills(text string, compiled []CompiledSkill) []string {
	var spans []span
	for _, cs := range compiled {
		for _, re := range cs.Patterns {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				spans = append(spans, span{start: loc[0], end: loc[1], name: cs.Name})
			}
		}
	}
	if len(spans) == 0 {
		return []string{}
	}

	sort.Slice(spans, func(i, j int) bool {
		li, lj := spans[i].end-spans[i].start, spans[j].end-spans[j].start
		if li != lj {
			return li > lj // longer span wins
		}
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].name < spans[j].name
	})

	var accepted []span
	for _, s := range spans {
		if !overlapsAny(s, accepted) {
			accepted = append(accepted, s)
		}
	}

	seen := make(map[string]bool, len(accepted))
	names := make([]string, 0, len(accepted))
	for _, s := range accepted {
		if !seen[s.name] {
			seen[s.name] = true
			names = append(names, s.name)
		}
	}
	sort.Strings(names)
	return names
}

// TestSkill reports whether any of one skill's patterns match the text. It
// skips the overlap-resolution pass, which the audit analyses do not need.
func TestSkill(text string, skill CompiledSkill) bool {
	for _, re := range skill.Patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func overlapsAny(s span, accepted []span) bool {
	for _, a := range accepted {
		if s.start < a.end && a.start < s.end {
			return true
		}
	}
	return false
}
