package audit

import (
	"strings"

	"github.com/jonathan/skill-auditor/internal/matching"
	"github.com/jonathan/skill-auditor/internal/types"
)

// FalsePositives flags label entries the pattern matcher disagrees with: a
// record labeled with a skill whose patterns do not match the record's text.
// Labeled skills absent from the vocabulary are ignored; they are a
// vocabulary-drift concern, not a matching error.
func FalsePositives(records []types.TextRecord, compiled []matching.CompiledSkill) *types.LabelAuditReport {
	byName := indexByName(compiled)
	report := &types.LabelAuditReport{SampleSize: len(records), BySkill: make(map[string]int)}

	for _, rec := range records {
		for _, labeled := range rec.LabelSkills() {
			skill, known := byName[strings.ToLower(labeled)]
			if !known {
				continue
			}
			if !matching.TestSkill(rec.Text, skill) {
				report.Findings = append(report.Findings, types.LabelFinding{RecordID: rec.ID, Skill: skill.Name})
				report.BySkill[skill.Name]++
			}
		}
	}
	return report
}

// FalseNegatives is the symmetric check: a skill whose patterns match the
// record's text but which is absent from the prior label.
func FalseNegatives(records []types.TextRecord, compiled []matching.CompiledSkill) *types.LabelAuditReport {
	report := &types.LabelAuditReport{SampleSize: len(records), BySkill: make(map[string]int)}

	for _, rec := range records {
		labeled := make(map[string]bool)
		for _, name := range rec.LabelSkills() {
			labeled[strings.ToLower(name)] = true
		}
		for _, skill := range compiled {
			if labeled[strings.ToLower(skill.Name)] {
				continue
			}
			if matching.TestSkill(rec.Text, skill) {
				report.Findings = append(report.Findings, types.LabelFinding{RecordID: rec.ID, Skill: skill.Name})
				report.BySkill[skill.Name]++
			}
		}
	}
	return report
}

func indexByName(compiled []matching.CompiledSkill) map[string]matching.CompiledSkill {
	byName := make(map[string]matching.CompiledSkill, len(compiled))
	for _, skill := range compiled {
		byName[strings.ToLower(skill.Name)] = skill
	}
	return byName
}
