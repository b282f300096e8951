package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/skill-auditor/internal/config"
	"github.com/jonathan/skill-auditor/internal/corpus"
	"github.com/jonathan/skill-auditor/internal/matching"
	"github.com/jonathan/skill-auditor/internal/observability"
	"github.com/jonathan/skill-auditor/internal/types"
	"github.com/jonathan/skill-auditor/internal/vocab"
)

// loadConfig merges the optional config file over the built-in defaults and
// fills the database URL from the environment when unset.
func loadConfig() (config.Config, error) {
	cfg := config.DefaultConfig()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if verboseFlag {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openStore builds the vocabulary store from config.
func openStore(cfg config.Config) *vocab.Store {
	return vocab.NewStore(cfg.VocabularyPath, cfg.BackupDir, cfg.HistoryPath)
}

// loadCompiled loads the vocabulary and compiles it, printing any
// skipped-pattern warnings to stderr.
func loadCompiled(cfg config.Config) (*types.Vocabulary, []matching.CompiledSkill, error) {
	vocabulary, err := openStore(cfg).Load()
	if err != nil {
		return nil, nil, err
	}
	compiled, warnings := matching.Compile(vocabulary)
	observability.NewPrinter(os.Stderr, cfg.Verbose).PrintWarnings(warnings)
	return vocabulary, compiled, nil
}

// connectCorpus opens the corpus database from config.
func connectCorpus(ctx context.Context, cfg config.Config) (*corpus.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("no database URL configured; set DATABASE_URL or database_url in config")
	}
	return corpus.Connect(ctx, cfg.DatabaseURL)
}
