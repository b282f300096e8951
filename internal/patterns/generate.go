// Package patterns derives matching pattern sets for canonical skill names:
// case variants, spacing variants, and camel-case splits, each regex-escaped
// and word-boundary wrapped.
package patterns

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Generate derives the pattern set for a skill name. All variants are
// escaped and wrapped in word boundaries; duplicates are removed and the
// output order is stable for identical input.
func Generate(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(variant string) {
		if variant == "" {
			return
		}
		pattern := `\b` + regexp.QuoteMeta(variant) + `\b`
		if !seen[pattern] {
			seen[pattern] = true
			out = append(out, pattern)
		}
	}
	addRaw := func(pattern string) {
		if !seen[pattern] {
			seen[pattern] = true
			out = append(out, pattern)
		}
	}

	// Case variants. Identical forms collapse via the seen set.
	add(strings.ToUpper(name))
	add(name)
	add(strings.ToLower(name))

	words := whitespaceRE.Split(name, -1)
	if len(words) > 1 {
		// Spacing variants for multi-word names.
		add(strings.Join(words, ""))
		add(strings.ToLower(strings.Join(words, "_")))
		add(strings.ToLower(strings.Join(words, "-")))

		escaped := make([]string, len(words))
		for i, w := range words {
			escaped[i] = regexp.QuoteMeta(w)
		}
		addRaw(`\b` + strings.Join(escaped, `\s+`) + `\b`)
	}

	// Camel-case names also get a natural-language spaced form, so that
	// "FastAPI" matches a "fast api" mention.
	if camel := SplitCamel(name); len(camel) > 1 {
		add(strings.ToLower(strings.Join(camel, " ")))
	}

	return out
}

// SplitCamel splits a single camel-case token into its constituent words.
// It returns nil for terms containing whitespace or separators, and a
// one-element slice for tokens with no interior case boundary. An uppercase
// run followed by a capitalized word keeps the final capital with the next
// word, so "HTTPServer" splits into "HTTP", "Server".
func SplitCamel(term string) []string {
	if term == "" || strings.IndexFunc(term, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) >= 0 {
		return nil
	}

	runes := []rune(term)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			boundary = true
		case unicode.IsDigit(prev) && unicode.IsUpper(cur):
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}
