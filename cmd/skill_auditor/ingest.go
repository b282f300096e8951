package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-auditor/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest job postings into the corpus",
	Long:  "Load posting text or HTML files into the corpus store, cleaning each body first.",
	RunE:  runIngest,
}

var (
	ingestFile     string
	ingestDir      string
	ingestPostedAt string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to a single posting file")
	ingestCmd.Flags().StringVarP(&ingestDir, "dir", "d", "", "Directory of posting files")
	ingestCmd.Flags().StringVar(&ingestPostedAt, "posted-at", "", "Posting date (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestFile == "" && ingestDir == "" {
		return fmt.Errorf("either --file or --dir must be provided")
	}
	if ingestFile != "" && ingestDir != "" {
		return fmt.Errorf("--file and --dir are mutually exclusive; provide only one")
	}

	postedAt := time.Now().UTC()
	if ingestPostedAt != "" {
		parsed, err := time.Parse("2006-01-02", ingestPostedAt)
		if err != nil {
			return fmt.Errorf("invalid --posted-at %q: %w", ingestPostedAt, err)
		}
		postedAt = parsed
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := connectCorpus(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	if ingestFile != "" {
		text, err := ingestion.ReadPosting(ingestFile)
		if err != nil {
			return err
		}
		id, err := db.InsertPosting(ctx, ingestFile, text, postedAt)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Ingested 1 posting (%s)\n", id)
		return nil
	}

	count, err := ingestion.IngestDir(ctx, db, ingestDir, postedAt)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Ingested %d postings\n", count)
	return nil
}
