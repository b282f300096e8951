// Package audit implements the read-only analyses that measure extraction
// quality over a corpus sample: coverage ranking, label disagreement
// (false positives and negatives), mention context, emerging-term discovery,
// and trend velocity. No analysis mutates the vocabulary or the corpus.
package audit

import (
	"sort"

	"github.com/jonathan/skill-auditor/internal/matching"
	"github.com/jonathan/skill-auditor/internal/types"
)

// Coverage counts, for each compiled skill, how many sampled records it
// matches, and ranks the entries by count descending.
func Coverage(records []types.TextRecord, compiled []matching.CompiledSkill) *types.CoverageReport {
	report := &types.CoverageReport{SampleSize: len(records)}

	for _, skill := range compiled {
		count := 0
		for _, rec := range records {
			if matching.TestSkill(rec.Text, skill) {
				count++
			}
		}
		entry := types.CoverageEntry{Name: skill.Name, Count: count}
		if len(records) > 0 {
			entry.Coverage = float64(count) / float64(len(records)) * 100
		}
		report.Entries = append(report.Entries, entry)
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		if report.Entries[i].Count != report.Entries[j].Count {
			return report.Entries[i].Count > report.Entries[j].Count
		}
		return report.Entries[i].Name < report.Entries[j].Name
	})

	return report
}
