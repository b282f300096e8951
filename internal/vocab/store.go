// Package vocab persists the skill vocabulary, its timestamped backups, and
// the optimization history. The vocabulary file is always replaced whole:
// writes go to a temp file in the same directory followed by a rename, so a
// failed write never leaves a truncated store behind.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/skill-auditor/internal/schemas"
	"github.com/jonathan/skill-auditor/internal/types"
)

// Store locates the vocabulary file and its companion artifacts. There must
// be at most one writer per store at a time; the merge workflow is the only
// mutator.
type Store struct {
	VocabPath   string
	BackupDir   string
	HistoryPath string
}

// NewStore builds a store rooted at the vocabulary path, with backups and
// history in sibling locations unless overridden.
func NewStore(vocabPath, backupDir, historyPath string) *Store {
	dir := filepath.Dir(vocabPath)
	if backupDir == "" {
		backupDir = filepath.Join(dir, "backups")
	}
	if historyPath == "" {
		historyPath = filepath.Join(dir, "optimization_history.json")
	}
	return &Store{VocabPath: vocabPath, BackupDir: backupDir, HistoryPath: historyPath}
}

// Load reads and schema-validates the vocabulary file.
func (s *Store) Load() (*types.Vocabulary, error) {
	data, err := os.ReadFile(s.VocabPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", s.VocabPath, err)
	}

	if err := schemas.ValidateBytes(schemas.VocabularySchema, data); err != nil {
		return nil, fmt.Errorf("vocabulary %s is not valid: %w", s.VocabPath, err)
	}

	var vocab types.Vocabulary
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary %s: %w", s.VocabPath, err)
	}
	return &vocab, nil
}

// Save sorts the vocabulary, checks its invariants, and atomically replaces
// the store file.
func (s *Store) Save(vocab *types.Vocabulary) error {
	vocab.Sort()
	if err := vocab.CheckInvariants(); err != nil {
		return fmt.Errorf("refusing to persist invalid vocabulary: %w", err)
	}

	data, err := json.MarshalIndent(vocab, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal vocabulary: %w", err)
	}
	return atomicWrite(s.VocabPath, data)
}

// Backup snapshots the current vocabulary file into the backup directory and
// returns the snapshot path.
func (s *Store) Backup() (string, error) {
	data, err := os.ReadFile(s.VocabPath)
	if err != nil {
		return "", fmt.Errorf("failed to read vocabulary for backup: %w", err)
	}
	if err := os.MkdirAll(s.BackupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("vocabulary_%s.json", time.Now().UTC().Format("20060102_150405"))
	backupPath := filepath.Join(s.BackupDir, name)
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// LoadHistory reads the optimization history; a missing file yields an empty
// history.
func (s *Store) LoadHistory() (*types.OptimizationHistory, error) {
	data, err := os.ReadFile(s.HistoryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &types.OptimizationHistory{}, nil
		}
		return nil, fmt.Errorf("failed to read history %s: %w", s.HistoryPath, err)
	}

	if err := schemas.ValidateBytes(schemas.OptimizationHistorySchema, data); err != nil {
		return nil, fmt.Errorf("history %s is not valid: %w", s.HistoryPath, err)
	}

	var history types.OptimizationHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse history %s: %w", s.HistoryPath, err)
	}
	return &history, nil
}

// AppendHistory appends one run record to the history file. Existing run
// entries are never rewritten.
func (s *Store) AppendHistory(run types.OptimizationRun) error {
	history, err := s.LoadHistory()
	if err != nil {
		return err
	}
	history.AppendRun(run)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	return atomicWrite(s.HistoryPath, data)
}

// atomicWrite writes data to a temp file in the target's directory and
// renames it into place.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
