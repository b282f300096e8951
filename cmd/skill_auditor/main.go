// Package main provides the entry point for the skill auditor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skill_auditor",
	Short: "Skill vocabulary extraction and audit tool",
	Long:  "Skill auditor extracts technical skill mentions from job postings, audits extraction quality against the corpus, and autonomously grows the skill vocabulary.",
}

var (
	configPath  string
	verboseFlag bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print full report detail lists")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
