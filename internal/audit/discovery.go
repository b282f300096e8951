package audit

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/skill-auditor/internal/types"
)

// shapePatterns is the battery of token shapes that tend to be technology
// names. Each discovered token counts once per record regardless of repeats.
var shapePatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"camel-case", regexp.MustCompile(`\b[A-Z][a-z]+(?:[A-Z][a-zA-Z]*)+\b`)},
	{"versioned", regexp.MustCompile(`\b[A-Za-z]{2,}[0-9]{1,4}\b`)},
	{"acronym", regexp.MustCompile(`\b[A-Z]{3,5}\b`)},
	{"tech-suffix", regexp.MustCompile(`\b[A-Za-z]{2,}(?:DB|JS|TS|API|SDK|CLI)\b`)},
	{"dot-js", regexp.MustCompile(`\b[A-Za-z]+\.js\b`)},
	{"cloud-service", regexp.MustCompile(`\b(?:AWS|Azure|Google)\s+[A-Z][A-Za-z0-9]+\b`)},
	{"ops-family", regexp.MustCompile(`\b[A-Za-z]+Ops\b`)},
	{"model-family", regexp.MustCompile(`\b[A-Za-z]*(?:GPT|BERT|LLM)[A-Za-z0-9-]*\b`)},
}

// discoveryStopWords are frequent tokens the shape battery picks up that are
// never skills: sentence-case words, HR boilerplate, place names.
var discoveryStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "you": true, "our": true,
	"with": true, "will": true, "who": true, "what": true, "this": true,
	"eeo": true, "eoe": true, "usa": true, "nyc": true, "ceo": true,
	"cto": true, "coo": true, "faq": true, "pdf": true, "usd": true,
	"eur": true, "gbp": true, "llc": true, "inc": true, "plc": true,
	"covid": true, "401k": true, "linkedin": true, "glassdoor": true,
}

// Discover scans raw record text for unknown technology-shaped terms and
// aggregates them into candidates with per-record counts and sample coverage.
// Terms already resolvable to the vocabulary are excluded.
func Discover(records []types.TextRecord, vocab *types.Vocabulary) *types.DiscoveryReport {
	known := knownForms(vocab)
	counts := make(map[string]int)
	display := make(map[string]string)

	for _, rec := range records {
		perRecord := make(map[string]bool)
		for _, shape := range shapePatterns {
			for _, token := range shape.re.FindAllString(rec.Text, -1) {
				key := strings.ToLower(token)
				if perRecord[key] || discoveryStopWords[key] || known[key] {
					continue
				}
				perRecord[key] = true
				counts[key]++
				if _, ok := display[key]; !ok {
					display[key] = token
				}
			}
		}
	}

	report := &types.DiscoveryReport{
		Generated:  time.Now().UTC(),
		SampleSize: len(records),
	}
	for key, count := range counts {
		candidate := types.Candidate{Term: display[key], Count: count}
		if len(records) > 0 {
			candidate.Coverage = float64(count) / float64(len(records)) * 100
		}
		report.Candidates = append(report.Candidates, candidate)
	}

	sort.SliceStable(report.Candidates, func(i, j int) bool {
		if report.Candidates[i].Count != report.Candidates[j].Count {
			return report.Candidates[i].Count > report.Candidates[j].Count
		}
		return strings.ToLower(report.Candidates[i].Term) < strings.ToLower(report.Candidates[j].Term)
	})
	return report
}

// knownForms returns the lookup set used to filter discoveries against the
// vocabulary: each name in exact, space-stripped, and hyphenated form.
func knownForms(vocab *types.Vocabulary) map[string]bool {
	known := make(map[string]bool, len(vocab.Skills)*3)
	for _, def := range vocab.Skills {
		lower := strings.ToLower(def.Name)
		known[lower] = true
		known[strings.ReplaceAll(lower, " ", "")] = true
		known[strings.ReplaceAll(lower, " ", "-")] = true
	}
	return known
}
