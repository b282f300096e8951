// Package observability provides formatted console output for audit reports
// and merge results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skill-auditor/internal/matching"
	"github.com/jonathan/skill-auditor/internal/optimize"
	"github.com/jonathan/skill-auditor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 15
)

// Printer handles formatted report output. Detail lists are capped at
// maxItemsToShow unless verbose is set.
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{out: out, verbose: verbose}
}

// limit returns how many of n list items to print.
func (p *Printer) limit(n int) int {
	if p.verbose || n <= maxItemsToShow {
		return n
	}
	return maxItemsToShow
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintWarnings lists patterns that failed to compile and were skipped.
func (p *Printer) PrintWarnings(warnings []matching.CompileWarning) {
	for _, w := range warnings {
		fmt.Fprintf(p.out, "Warning: skipped pattern: %s\n", w)
	}
}

// PrintCoverageReport outputs the ranked coverage entries.
func (p *Printer) PrintCoverageReport(report *types.CoverageReport) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sample: %d records\n\n", report.SampleSize))

	count := p.limit(len(report.Entries))
	for i := 0; i < count; i++ {
		e := report.Entries[i]
		sb.WriteString(fmt.Sprintf("%-28s %5d  %5.1f%%\n", e.Name, e.Count, e.Coverage))
	}
	if count < len(report.Entries) {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.Entries)-count))
	}

	p.printBox("SKILL COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLabelAudit outputs a false-positive or false-negative report.
func (p *Printer) PrintLabelAudit(title string, report *types.LabelAuditReport) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sample: %d records, %d findings\n", report.SampleSize, len(report.Findings)))

	count := p.limit(len(report.Findings))
	for _, f := range report.Findings[:count] {
		sb.WriteString(fmt.Sprintf("  %s  record %s\n", f.Skill, f.RecordID))
	}
	if count < len(report.Findings) {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.Findings)-count))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContextReport outputs negated-mention findings and bucket counts.
func (p *Printer) PrintContextReport(report *types.ContextReport) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sample: %d records, %d mentions, %d negated\n",
		report.SampleSize, len(report.Findings), report.NegatedCount))

	levels := make(map[string]int)
	for _, f := range report.Findings {
		levels[f.RequirementLevel]++
	}
	for _, level := range []string{types.RequirementRequired, types.RequirementPreferred, types.RequirementBonus, types.RequirementUnspecified} {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", level, levels[level]))
	}

	shown := 0
	for _, f := range report.Findings {
		if !f.Negated {
			continue
		}
		if shown >= p.limit(report.NegatedCount) {
			break
		}
		sb.WriteString(fmt.Sprintf("  NEGATED %s (%q) record %s\n", f.Skill, f.NegationCue, f.RecordID))
		shown++
	}

	p.printBox("MENTION CONTEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrendReport outputs rising and falling skills.
func (p *Printer) PrintTrendReport(report *types.TrendReport) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sample: %d records over %d periods\n\n", report.SampleSize, report.Periods))

	count := p.limit(len(report.Trends))
	for _, t := range report.Trends[:count] {
		sb.WriteString(fmt.Sprintf("%-22s %-8s %+6.1f%%  (%d mentions)\n", t.Name, t.Direction, t.ChangePct, t.Total))
	}
	if count < len(report.Trends) {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.Trends)-count))
	}

	p.printBox("SKILL TRENDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDiscoveryReport outputs the top discovered candidates.
func (p *Printer) PrintDiscoveryReport(report *types.DiscoveryReport) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sample: %d records, %d candidates\n\n", report.SampleSize, len(report.Candidates)))

	count := p.limit(len(report.Candidates))
	for i := 0; i < count; i++ {
		c := report.Candidates[i]
		sb.WriteString(fmt.Sprintf("%-28s %5d  %5.1f%%\n", c.Term, c.Count, c.Coverage))
	}
	if count < len(report.Candidates) {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.Candidates)-count))
	}

	p.printBox("EMERGING TERMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMergeResult enumerates every decision of a merge run.
func (p *Printer) PrintMergeResult(result *optimize.Result) {
	var sb strings.Builder
	mode := "LIVE"
	if result.DryRun {
		mode = "DRY RUN"
	}
	sb.WriteString(fmt.Sprintf("Mode: %s\n", mode))
	sb.WriteString(fmt.Sprintf("Added %d, rejected %d, already existing %d\n",
		len(result.Added), len(result.Rejected), len(result.Existing)))
	if result.BackupPath != "" {
		sb.WriteString(fmt.Sprintf("Backup: %s\n", result.BackupPath))
	}

	if len(result.Added) > 0 {
		sb.WriteString("\nAdded:\n")
		for _, a := range result.Added {
			sb.WriteString(fmt.Sprintf("  + %s (%s, %.2f, %d patterns)\n", a.Name, a.Category, a.Confidence, len(a.Patterns)))
		}
	}
	if len(result.Existing) > 0 {
		sb.WriteString("\nAlready existing:\n")
		count := p.limit(len(result.Existing))
		for _, e := range result.Existing[:count] {
			sb.WriteString(fmt.Sprintf("  = %s: %s\n", e.Term, e.Reason))
		}
		if count < len(result.Existing) {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Existing)-count))
		}
	}
	if len(result.Rejected) > 0 {
		sb.WriteString("\nRejected:\n")
		count := p.limit(len(result.Rejected))
		for _, r := range result.Rejected[:count] {
			sb.WriteString(fmt.Sprintf("  - %s: %s\n", r.Term, r.Reason))
		}
		if count < len(result.Rejected) {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Rejected)-count))
		}
	}

	p.printBox("VOCABULARY OPTIMIZATION", strings.TrimSuffix(sb.String(), "\n"))
}
