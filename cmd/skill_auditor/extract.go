package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/skill-auditor/internal/ingestion"
	"github.com/jonathan/skill-auditor/internal/matching"
	"github.com/jonathan/skill-auditor/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from a posting or re-extract the whole corpus",
	Long:  "Extract canonical skill names from a text snippet or file, or re-run extraction over every corpus record and persist the new labels in one transaction.",
	RunE:  runExtract,
}

var (
	extractText  string
	extractFile  string
	extractWrite bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractText, "text", "t", "", "Posting text to extract from")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to a posting file to extract from")
	extractCmd.Flags().BoolVar(&extractWrite, "write", false, "Re-extract the whole corpus and persist labels")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractText != "" && extractFile != "" {
		return fmt.Errorf("--text and --file are mutually exclusive; provide only one")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, compiled, err := loadCompiled(cfg)
	if err != nil {
		return err
	}

	// One-off extraction from a snippet or file.
	if extractText != "" || extractFile != "" {
		text := extractText
		if extractFile != "" {
			text, err = ingestion.ReadPosting(extractFile)
			if err != nil {
				return err
			}
		}
		skills := matching.ExtractSkills(text, compiled)
		if len(skills) == 0 {
			fmt.Fprintln(os.Stdout, "No skills found")
			return nil
		}
		fmt.Fprintln(os.Stdout, strings.Join(skills, ", "))
		return nil
	}

	if !extractWrite {
		return fmt.Errorf("provide --text, --file, or --write")
	}

	ctx := cmd.Context()
	db, err := connectCorpus(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.AllRecords(ctx)
	if err != nil {
		return err
	}

	labels := make(map[uuid.UUID]string, len(records))
	for _, rec := range records {
		labels[rec.ID] = types.FormatLabel(matching.ExtractSkills(rec.Text, compiled))
	}

	if err := db.UpdateLabels(ctx, labels); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Re-extracted %d records\n", len(records))
	return nil
}
