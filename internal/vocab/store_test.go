package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-auditor/internal/types"
)

func testVocabulary() *types.Vocabulary {
	return &types.Vocabulary{
		Total: 2,
		Skills: []types.SkillDefinition{
			{Name: "Python", Patterns: []string{`\bpython\b`}},
			{Name: "Rust", Patterns: []string{`\brust\b`}},
		},
	}
}

func TestNewStore_SiblingDefaults(t *testing.T) {
	store := NewStore("/data/vocab/vocabulary.json", "", "")
	assert.Equal(t, filepath.Join("/data/vocab", "backups"), store.BackupDir)
	assert.Equal(t, filepath.Join("/data/vocab", "optimization_history.json"), store.HistoryPath)
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "vocabulary.json"), "", "")
	require.NoError(t, store.Save(testVocabulary()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Total)
	require.Len(t, loaded.Skills, 2)
	assert.Equal(t, "Python", loaded.Skills[0].Name)
}

func TestStore_SaveSortsBeforePersisting(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "vocabulary.json"), "", "")
	unsorted := &types.Vocabulary{
		Total: 2,
		Skills: []types.SkillDefinition{
			{Name: "Rust", Patterns: []string{`\brust\b`}},
			{Name: "Go", Patterns: []string{`\bgolang\b`}},
		},
	}
	require.NoError(t, store.Save(unsorted))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Go", loaded.Skills[0].Name)
	assert.Equal(t, "Rust", loaded.Skills[1].Name)
}

func TestStore_SaveRejectsInvalidVocabulary(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "vocabulary.json"), "", "")
	invalid := &types.Vocabulary{
		Total:  1,
		Skills: []types.SkillDefinition{{Name: "Python"}},
	}

	err := store.Save(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to persist")

	_, statErr := os.Stat(store.VocabPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "vocabulary.json"), "", "")
	require.NoError(t, store.Save(testVocabulary()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "vocabulary.json", entries[0].Name())
}

func TestStore_LoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabulary.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"total": 1`), 0o644))

	_, err := NewStore(path, "", "").Load()
	require.Error(t, err)
}

func TestStore_BackupSnapshotsCurrentFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "vocabulary.json"), "", "")
	require.NoError(t, store.Save(testVocabulary()))

	backupPath, err := store.Backup()
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(backupPath), "vocabulary_")

	original, err := os.ReadFile(store.VocabPath)
	require.NoError(t, err)
	snapshot, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, original, snapshot)
}

func TestStore_HistoryStartsEmptyAndAppends(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "vocabulary.json"), "", "")

	history, err := store.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, history.Runs)
	assert.Zero(t, history.TotalSkillsAdded)

	require.NoError(t, store.AppendHistory(types.OptimizationRun{SkillsAdded: 2, Skills: []string{"dbt", "Kafka"}}))
	require.NoError(t, store.AppendHistory(types.OptimizationRun{SkillsAdded: 1, Skills: []string{"Flink"}}))

	history, err = store.LoadHistory()
	require.NoError(t, err)
	require.Len(t, history.Runs, 2)
	assert.Equal(t, 3, history.TotalSkillsAdded)
	assert.Equal(t, []string{"Flink"}, history.Runs[1].Skills)
}
