package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-auditor/internal/types"
)

func TestContext_NegatedMention(t *testing.T) {
	records := []types.TextRecord{
		record("We are migrating away from PHP this year.", "PHP", time.Now()),
	}

	report := Context(records)
	require.Len(t, report.Findings, 1)
	assert.True(t, report.Findings[0].Negated)
	assert.Equal(t, "migrating away", report.Findings[0].NegationCue)
	assert.Equal(t, 1, report.NegatedCount)
}

func TestContext_AffirmingMentionNotNegated(t *testing.T) {
	records := []types.TextRecord{
		record("Hands-on Kubernetes work every day.", "Kubernetes", time.Now()),
	}

	report := Context(records)
	require.Len(t, report.Findings, 1)
	assert.False(t, report.Findings[0].Negated)
	assert.Equal(t, 0, report.NegatedCount)
}

func TestContext_RequirementLevels(t *testing.T) {
	tests := []struct {
		text  string
		skill string
		level string
	}{
		{"Python is required for this position.", "Python", types.RequirementRequired},
		{"Kubernetes experience is preferred.", "Kubernetes", types.RequirementPreferred},
		{"Terraform knowledge is a plus.", "Terraform", types.RequirementBonus},
		{"We happen to mention Rust somewhere.", "Rust", types.RequirementUnspecified},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			report := Context([]types.TextRecord{record(tt.text, tt.skill, time.Now())})
			require.Len(t, report.Findings, 1)
			assert.Equal(t, tt.level, report.Findings[0].RequirementLevel)
		})
	}
}

func TestContext_SeniorityBands(t *testing.T) {
	tests := []struct {
		text string
		band string
	}{
		{"Senior Engineer needed. Python welcome.", types.SenioritySenior},
		{"Mid-level position. Python welcome.", types.SeniorityMid},
		{"Entry-level role for a recent graduate. Python welcome.", types.SeniorityJunior},
		{"Engineer wanted. Python welcome.", types.SeniorityUnspecified},
	}
	for _, tt := range tests {
		t.Run(tt.band, func(t *testing.T) {
			report := Context([]types.TextRecord{record(tt.text, "Python", time.Now())})
			require.Len(t, report.Findings, 1)
			assert.Equal(t, tt.band, report.Findings[0].Seniority)
		})
	}
}

func TestContext_LabelAbsentFromText(t *testing.T) {
	// A labeled skill with no occurrence in the body gets no window; the
	// mention stays unspecified and unflagged.
	report := Context([]types.TextRecord{record("Nothing relevant.", "Python", time.Now())})
	require.Len(t, report.Findings, 1)
	assert.Equal(t, types.RequirementUnspecified, report.Findings[0].RequirementLevel)
	assert.False(t, report.Findings[0].Negated)
}
