package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-auditor/internal/audit"
	"github.com/jonathan/skill-auditor/internal/matching"
	"github.com/jonathan/skill-auditor/internal/observability"
	"github.com/jonathan/skill-auditor/internal/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run extraction-quality analyses over a corpus sample",
}

var auditSampleSize int

func init() {
	auditCmd.PersistentFlags().IntVar(&auditSampleSize, "sample", 0, "Sample size (default from config)")

	auditCmd.AddCommand(&cobra.Command{
		Use:   "coverage",
		Short: "Rank vocabulary entries by how many sampled records they match",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, func(p *observability.Printer, records []types.TextRecord, compiled []matching.CompiledSkill) {
				p.PrintCoverageReport(audit.Coverage(records, compiled))
			})
		},
	})
	auditCmd.AddCommand(&cobra.Command{
		Use:   "false-positives",
		Short: "Find labeled skills whose patterns do not match the record",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, func(p *observability.Printer, records []types.TextRecord, compiled []matching.CompiledSkill) {
				p.PrintLabelAudit("FALSE POSITIVES", audit.FalsePositives(records, compiled))
			})
		},
	})
	auditCmd.AddCommand(&cobra.Command{
		Use:   "false-negatives",
		Short: "Find matching skills missing from the prior label",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, func(p *observability.Printer, records []types.TextRecord, compiled []matching.CompiledSkill) {
				p.PrintLabelAudit("FALSE NEGATIVES", audit.FalseNegatives(records, compiled))
			})
		},
	})
	auditCmd.AddCommand(&cobra.Command{
		Use:   "context",
		Short: "Flag negated mentions and bucket requirement level and seniority",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, func(p *observability.Printer, records []types.TextRecord, compiled []matching.CompiledSkill) {
				p.PrintContextReport(audit.Context(records))
			})
		},
	})
	auditCmd.AddCommand(&cobra.Command{
		Use:   "trends",
		Short: "Compare recent vs older mention rates per skill",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, func(p *observability.Printer, records []types.TextRecord, compiled []matching.CompiledSkill) {
				p.PrintTrendReport(audit.Trends(records, compiled, audit.DefaultTrendOptions()))
			})
		},
	})

	rootCmd.AddCommand(auditCmd)
}

// runAudit wires the shared sample-then-analyze flow for every audit
// subcommand. Analyses are pure reads; nothing is persisted.
func runAudit(cmd *cobra.Command, analyze func(*observability.Printer, []types.TextRecord, []matching.CompiledSkill)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, compiled, err := loadCompiled(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := connectCorpus(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sampleSize := cfg.SampleSize
	if auditSampleSize > 0 {
		sampleSize = auditSampleSize
	}
	records, err := db.SampleRecords(ctx, sampleSize)
	if err != nil {
		return err
	}

	analyze(observability.NewPrinter(os.Stdout, cfg.Verbose), records, compiled)
	return nil
}
