package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary_SortIsCaseInsensitive(t *testing.T) {
	v := &Vocabulary{
		Skills: []SkillDefinition{
			{Name: "dbt", Patterns: []string{`\bdbt\b`}},
			{Name: "AWS", Patterns: []string{`\baws\b`}},
			{Name: "Docker", Patterns: []string{`\bdocker\b`}},
		},
	}
	v.Sort()

	assert.Equal(t, 3, v.Total)
	assert.Equal(t, "AWS", v.Skills[0].Name)
	assert.Equal(t, "dbt", v.Skills[1].Name)
	assert.Equal(t, "Docker", v.Skills[2].Name)
}

func TestVocabulary_FindByName(t *testing.T) {
	v := &Vocabulary{
		Total:  1,
		Skills: []SkillDefinition{{Name: "Machine Learning", Patterns: []string{`\bml\b`}}},
	}

	require.NotNil(t, v.FindByName("machine learning"))
	require.NotNil(t, v.FindByName("  MACHINE LEARNING  "))
	assert.Nil(t, v.FindByName("Deep Learning"))
}

func TestVocabulary_CheckInvariants(t *testing.T) {
	tests := []struct {
		name    string
		vocab   Vocabulary
		wantErr string
	}{
		{
			name: "valid",
			vocab: Vocabulary{Total: 2, Skills: []SkillDefinition{
				{Name: "Go", Patterns: []string{`\bgolang\b`}},
				{Name: "Rust", Patterns: []string{`\brust\b`}},
			}},
		},
		{
			name:    "total mismatch",
			vocab:   Vocabulary{Total: 5, Skills: []SkillDefinition{{Name: "Go", Patterns: []string{`x`}}}},
			wantErr: "does not match skill count",
		},
		{
			name:    "empty patterns",
			vocab:   Vocabulary{Total: 1, Skills: []SkillDefinition{{Name: "Go"}}},
			wantErr: "has no patterns",
		},
		{
			name: "duplicate under case folding",
			vocab: Vocabulary{Total: 2, Skills: []SkillDefinition{
				{Name: "Kafka", Patterns: []string{`x`}},
				{Name: "KAFKA", Patterns: []string{`y`}},
			}},
			wantErr: "duplicate skill name",
		},
		{
			name: "unsorted",
			vocab: Vocabulary{Total: 2, Skills: []SkillDefinition{
				{Name: "Rust", Patterns: []string{`x`}},
				{Name: "Go", Patterns: []string{`y`}},
			}},
			wantErr: "not sorted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vocab.CheckInvariants()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestVocabulary_AppendKeepsTotalInSync(t *testing.T) {
	v := &Vocabulary{}
	v.Append(SkillDefinition{Name: "Go", Patterns: []string{`\bgolang\b`}})
	v.Append(SkillDefinition{Name: "Rust", Patterns: []string{`\brust\b`}})
	assert.Equal(t, 2, v.Total)
}
