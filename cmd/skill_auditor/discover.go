package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-auditor/internal/audit"
	"github.com/jonathan/skill-auditor/internal/observability"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover emerging terms absent from the vocabulary",
	Long:  "Scan a corpus sample for technology-shaped terms not yet in the vocabulary and write the candidates report consumed by optimize.",
	RunE:  runDiscover,
}

var (
	discoverSampleSize int
	discoverOut        string
)

func init() {
	discoverCmd.Flags().IntVar(&discoverSampleSize, "sample", 0, "Sample size (default from config)")
	discoverCmd.Flags().StringVarP(&discoverOut, "out", "o", "", "Path to write the candidates report JSON")

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	vocabulary, _, err := loadCompiled(cfg)
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
	if discoverSampleSize > 0 {
		sampleSize = discoverSampleSize
	}
	records, err := db.SampleRecords(ctx, sampleSize)
	if err != nil {
		return err
	}

	report := audit.Discover(records, vocabulary)
	observability.NewPrinter(os.Stdout, cfg.Verbose).PrintDiscoveryReport(report)

	if discoverOut != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal candidates report: %w", err)
		}
		if err := os.WriteFile(discoverOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write candidates report: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Candidates report: %s\n", discoverOut)
	}
	return nil
}
