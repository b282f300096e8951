package optimize

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/skill-auditor/internal/classify"
	"github.com/jonathan/skill-auditor/internal/matching"
	"github.com/jonathan/skill-auditor/internal/patterns"
	"github.com/jonathan/skill-auditor/internal/schemas"
	"github.com/jonathan/skill-auditor/internal/types"
	"github.com/jonathan/skill-auditor/internal/vocab"
)

// Options configure one merge run. All thresholds are overridable per run.
type Options struct {
	MinCoverage         float64 // percent of sample a candidate must appear in
	MinJobCount         int     // distinct records a candidate must appear in
	MaxSkills           int     // batch cap per run
	ConfidenceThreshold float64 // classifier confidence floor
	DryRun              bool    // report decisions, commit nothing
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		MinCoverage:         2.0,
		MinJobCount:         10,
		MaxSkills:           10,
		ConfidenceThreshold: 0.7,
	}
}

// AddedSkill is one vocabulary entry accepted by the run.
type AddedSkill struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Confidence float64  `json:"confidence"`
	Patterns   []string `json:"patterns"`
}

// Rejection is one candidate the run turned down, with a human-readable
// reason so a reviewer can audit and override the decision.
type Rejection struct {
	Term   string `json:"term"`
	Reason string `json:"reason"`
}

// Result summarizes a merge run. Dry runs produce the identical decision
// report with no BackupPath and no side effects.
type Result struct {
	Added      []AddedSkill `json:"added"`
	Rejected   []Rejection  `json:"rejected"`
	Existing   []Rejection  `json:"existing"`
	BackupPath string       `json:"backup_path,omitempty"`
	DryRun     bool         `json:"dry_run"`
}

// Workflow merges discovered candidates into the vocabulary. The store is
// threaded through explicitly; the workflow holds no ambient state.
type Workflow struct {
	Store   *vocab.Store
	Options Options
}

// LoadReport reads and schema-validates a candidates report. A missing file
// or an empty candidate list is a fatal prerequisite failure.
func LoadReport(path string) (*types.DiscoveryReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingInputError{Path: path, Message: "no candidates report; run discovery first"}
		}
		return nil, fmt.Errorf("failed to read candidates report %s: %w", path, err)
	}

	if err := schemas.ValidateBytes(schemas.CandidatesReportSchema, data); err != nil {
		return nil, fmt.Errorf("candidates report %s is not valid: %w", path, err)
	}

	var report types.DiscoveryReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse candidates report %s: %w", path, err)
	}
	if len(report.Candidates) == 0 {
		return nil, &MissingInputError{Path: path, Message: "report contains no candidates"}
	}
	return &report, nil
}

// Run evaluates every candidate in the report's frequency order and, unless
// dry-run, commits the accepted ones: vocabulary backup, append, re-sort,
// atomic persist, history entry.
func (w *Workflow) Run(report *types.DiscoveryReport) (*Result, error) {
	if report == nil || len(report.Candidates) == 0 {
		return nil, &MissingInputError{Path: w.Store.VocabPath, Message: "no candidates to merge"}
	}

	vocabulary, err := w.Store.Load()
	if err != nil {
		return nil, err
	}
	compiled, _ := matching.Compile(vocabulary)

	result := &Result{DryRun: w.Options.DryRun}
	var newDefs []types.SkillDefinition
	acceptedNames := make(map[string]bool)

	for _, candidate := range report.Candidates {
		if len(result.Added) >= w.Options.MaxSkills {
			result.Rejected = append(result.Rejected, Rejection{Term: candidate.Term, Reason: "batch cap reached"})
			continue
		}

		if candidate.Count < w.Options.MinJobCount {
			result.Rejected = append(result.Rejected, Rejection{
				Term:   candidate.Term,
				Reason: fmt.Sprintf("count %d below minimum %d", candidate.Count, w.Options.MinJobCount),
			})
			continue
		}
		if candidate.Coverage < w.Options.MinCoverage {
			result.Rejected = append(result.Rejected, Rejection{
				Term:   candidate.Term,
				Reason: fmt.Sprintf("coverage %.2f%% below minimum %.2f%%", candidate.Coverage, w.Options.MinCoverage),
			})
			continue
		}

		// Reports may carry case variants of one term; only the first
		// accepted one may reach the vocabulary or Save fails the
		// duplicate-name invariant.
		if acceptedNames[strings.ToLower(candidate.Term)] {
			result.Existing = append(result.Existing, Rejection{Term: candidate.Term, Reason: "accepted earlier in this run"})
			continue
		}

		if existing, reason := resolveExisting(candidate.Term, vocabulary, compiled); existing {
			result.Existing = append(result.Existing, Rejection{Term: candidate.Term, Reason: reason})
			continue
		}

		verdict := classify.Classify(candidate.Term)
		if !verdict.IsSkill {
			result.Rejected = append(result.Rejected, Rejection{
				Term:   candidate.Term,
				Reason: fmt.Sprintf("classified as %s", verdict.Category),
			})
			continue
		}
		if verdict.Confidence < w.Options.ConfidenceThreshold {
			result.Rejected = append(result.Rejected, Rejection{
				Term:   candidate.Term,
				Reason: fmt.Sprintf("confidence %.2f below threshold %.2f", verdict.Confidence, w.Options.ConfidenceThreshold),
			})
			continue
		}

		valid := compilablePatterns(patterns.Generate(candidate.Term))
		if len(valid) == 0 {
			result.Rejected = append(result.Rejected, Rejection{Term: candidate.Term, Reason: "no valid patterns generated"})
			continue
		}

		result.Added = append(result.Added, AddedSkill{
			Name:       candidate.Term,
			Category:   verdict.Category,
			Confidence: verdict.Confidence,
			Patterns:   valid,
		})
		newDefs = append(newDefs, types.SkillDefinition{Name: candidate.Term, Patterns: valid})
		acceptedNames[strings.ToLower(candidate.Term)] = true
	}

	if w.Options.DryRun || len(newDefs) == 0 {
		return result, nil
	}

	backupPath, err := w.Store.Backup()
	if err != nil {
		return nil, err
	}
	result.BackupPath = backupPath

	for _, def := range newDefs {
		vocabulary.Append(def)
	}
	if err := w.Store.Save(vocabulary); err != nil {
		return nil, err
	}

	names := make([]string, len(result.Added))
	for i, added := range result.Added {
		names[i] = added.Name
	}
	run := types.OptimizationRun{
		Timestamp:   time.Now().UTC(),
		SkillsAdded: len(names),
		Skills:      names,
		Backup:      backupPath,
	}
	if err := w.Store.AppendHistory(run); err != nil {
		return nil, err
	}
	return result, nil
}

// resolveExisting reports whether the candidate already maps onto a
// vocabulary entry: case-insensitive exact match, whole-word containment in
// either direction, a parenthetical alias inside an existing name, or an
// existing definition's patterns matching the bare term.
func resolveExisting(term string, vocabulary *types.Vocabulary, compiled []matching.CompiledSkill) (bool, string) {
	if vocabulary.FindByName(term) != nil {
		return true, "exact name match"
	}

	for _, def := range vocabulary.Skills {
		if containsWord(def.Name, term) || containsWord(term, def.Name) {
			return true, fmt.Sprintf("name overlap with %q", def.Name)
		}
		if alias := parentheticalAlias(def.Name); alias != "" && strings.EqualFold(alias, term) {
			return true, fmt.Sprintf("alias of %q", def.Name)
		}
	}

	for _, skill := range compiled {
		if matching.TestSkill(term, skill) {
			return true, fmt.Sprintf("matched by patterns of %q", skill.Name)
		}
	}
	return false, ""
}

// containsWord reports whether needle appears in haystack as a whole word.
// Word-bounding keeps short names like "R" from swallowing unrelated terms.
func containsWord(haystack, needle string) bool {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(needle) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(haystack)
}

var parentheticalRE = regexp.MustCompile(`\(([^)]+)\)`)

// parentheticalAlias extracts an alias like "AWS" from "Amazon Web Services (AWS)".
func parentheticalAlias(name string) string {
	m := parentheticalRE.FindStringSubmatch(name)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// compilablePatterns drops any generated pattern that fails to compile, the
// same skip-and-continue treatment the matcher applies at extraction time.
func compilablePatterns(candidates []string) []string {
	valid := make([]string, 0, len(candidates))
	for _, pat := range candidates {
		if _, err := regexp.Compile("(?i)" + pat); err != nil {
			continue
		}
		valid = append(valid, pat)
	}
	return valid
}
