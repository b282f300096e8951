package audit

import (
	"regexp"
	"strings"

	"github.com/jonathan/skill-auditor/internal/types"
)

// contextWindowRadius is the number of characters inspected on either side
// of a labeled mention when looking for negation and requirement cues.
const contextWindowRadius = 150

// negationCues flag mentions that may be disqualifying rather than
// affirming ("no Java required", "migrating away from PHP").
var negationCues = []struct {
	cue string
	re  *regexp.Regexp
}{
	{"no", regexp.MustCompile(`(?i)\bno\b`)},
	{"not", regexp.MustCompile(`(?i)\bnot\b`)},
	{"without", regexp.MustCompile(`(?i)\bwithout\b`)},
	{"doesn't", regexp.MustCompile(`(?i)\bdoesn'?t\b`)},
	{"don't", regexp.MustCompile(`(?i)\bdon'?t\b`)},
	{"instead of", regexp.MustCompile(`(?i)\binstead of\b`)},
	{"rather than", regexp.MustCompile(`(?i)\brather than\b`)},
	{"deprecated", regexp.MustCompile(`(?i)\bdeprecated\b`)},
	{"migrating away", regexp.MustCompile(`(?i)\bmigrating (away|off)\b`)},
	{"legacy", regexp.MustCompile(`(?i)\blegacy\b`)},
}

// requirementRules bucket a mention into a requirement level. Ordered:
// the first matching level wins.
var requirementRules = []struct {
	level string
	re    *regexp.Regexp
}{
	{types.RequirementRequired, regexp.MustCompile(`(?i)\b(required|must[- ]have|must be|essential|mandatory)\b`)},
	{types.RequirementPreferred, regexp.MustCompile(`(?i)\b(preferred|nice[- ]to[- ]have|desirable|ideally)\b`)},
	{types.RequirementBonus, regexp.MustCompile(`(?i)\b(bonus|a plus|advantageous)\b`)},
}

// seniorityRules bucket a whole record into a seniority band. Ordered.
var seniorityRules = []struct {
	band string
	re   *regexp.Regexp
}{
	{types.SenioritySenior, regexp.MustCompile(`(?i)\b(senior|staff|principal|lead|architect|sr\.?)\b`)},
	{types.SeniorityMid, regexp.MustCompile(`(?i)\b(mid[- ]level|intermediate)\b`)},
	{types.SeniorityJunior, regexp.MustCompile(`(?i)\b(junior|entry[- ]level|graduate|intern|internship|jr\.?)\b`)},
}

// Context inspects every labeled mention for negation cues within a fixed
// window and buckets it into a requirement level; each record is also
// assigned a seniority band from its full text. Only the first occurrence of
// a skill name per record is inspected, which can misfire on short or
// repeated names; that is a known limit of the heuristic.
func Context(records []types.TextRecord) *types.ContextReport {
	report := &types.ContextReport{SampleSize: len(records)}

	for _, rec := range records {
		seniority := classifySeniority(rec.Text)
		lowerText := strings.ToLower(rec.Text)

		for _, labeled := range rec.LabelSkills() {
			finding := types.ContextFinding{
				RecordID:         rec.ID,
				Skill:            labeled,
				RequirementLevel: types.RequirementUnspecified,
				Seniority:        seniority,
			}

			if window, ok := mentionWindow(lowerText, strings.ToLower(labeled)); ok {
				finding.RequirementLevel = classifyRequirement(window)
				if cue, negated := findNegation(window); negated {
					finding.Negated = true
					finding.NegationCue = cue
					report.NegatedCount++
				}
			}

			report.Findings = append(report.Findings, finding)
		}
	}
	return report
}

// mentionWindow returns the text surrounding the first occurrence of the
// skill substring, clipped to the record bounds.
func mentionWindow(lowerText, lowerSkill string) (string, bool) {
	idx := strings.Index(lowerText, lowerSkill)
	if idx < 0 {
		return "", false
	}
	start := idx - contextWindowRadius
	if start < 0 {
		start = 0
	}
	end := idx + len(lowerSkill) + contextWindowRadius
	if end > len(lowerText) {
		end = len(lowerText)
	}
	return lowerText[start:end], true
}

func classifyRequirement(window string) string {
	for _, rule := range requirementRules {
		if rule.re.MatchString(window) {
			return rule.level
		}
	}
	return types.RequirementUnspecified
}

func classifySeniority(text string) string {
	for _, rule := range seniorityRules {
		if rule.re.MatchString(text) {
			return rule.band
		}
	}
	return types.SeniorityUnspecified
}

func findNegation(window string) (string, bool) {
	for _, cue := range negationCues {
		if cue.re.MatchString(window) {
			return cue.cue, true
		}
	}
	return "", false
}
