package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-auditor/internal/observability"
	"github.com/jonathan/skill-auditor/internal/optimize"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Merge discovered candidates into the vocabulary",
	Long:  "Run the autonomous merge workflow over a candidates report: filter, check existence, classify, generate patterns, and commit with a backup and a history entry. Dry-run reports the same decisions without committing.",
	RunE:  runOptimize,
}

var (
	optCandidatesPath string
	optMinCoverage    float64
	optMinCount       int
	optMaxSkills      int
	optConfidence     float64
	optDryRun         bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optCandidatesPath, "candidates", "c", "", "Path to the candidates report (required)")
	optimizeCmd.Flags().Float64Var(&optMinCoverage, "min-coverage", 0, "Minimum sample coverage percent")
	optimizeCmd.Flags().IntVar(&optMinCount, "min-count", 0, "Minimum distinct-record count")
	optimizeCmd.Flags().IntVar(&optMaxSkills, "max-skills", 0, "Maximum skills added per run")
	optimizeCmd.Flags().Float64Var(&optConfidence, "confidence", 0, "Classifier confidence threshold")
	optimizeCmd.Flags().BoolVar(&optDryRun, "dry-run", false, "Report decisions without committing")

	_ = optimizeCmd.MarkFlagRequired("candidates")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := optimize.Options{
		MinCoverage:         cfg.MinCoverage,
		MinJobCount:         cfg.MinJobCount,
		MaxSkills:           cfg.MaxSkillsPerRun,
		ConfidenceThreshold: cfg.ConfidenceThreshold,
		DryRun:              cfg.DryRun || optDryRun,
	}
	if cmd.Flags().Changed("min-coverage") {
		opts.MinCoverage = optMinCoverage
	}
	if cmd.Flags().Changed("min-count") {
		opts.MinJobCount = optMinCount
	}
	if cmd.Flags().Changed("max-skills") {
		opts.MaxSkills = optMaxSkills
	}
	if cmd.Flags().Changed("confidence") {
		opts.ConfidenceThreshold = optConfidence
	}

	report, err := optimize.LoadReport(optCandidatesPath)
	if err != nil {
		return err
	}

	workflow := &optimize.Workflow{Store: openStore(cfg), Options: opts}
	result, err := workflow.Run(report)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout, cfg.Verbose).PrintMergeResult(result)
	return nil
}
