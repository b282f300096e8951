package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-auditor/internal/types"
)

func vocabOf(defs ...types.SkillDefinition) *types.Vocabulary {
	return &types.Vocabulary{Total: len(defs), Skills: defs}
}

func TestCompile_SkipsInvalidPatterns(t *testing.T) {
	vocab := vocabOf(
		types.SkillDefinition{Name: "Go", Patterns: []string{`\bGo\b`, `[invalid`}},
		types.SkillDefinition{Name: "Broken", Patterns: []string{`(unclosed`}},
	)

	compiled, warnings := Compile(vocab)

	// Go keeps its one valid pattern; Broken is excluded entirely.
	require.Len(t, compiled, 1)
	assert.Equal(t, "Go", compiled[0].Name)
	assert.Len(t, compiled[0].Patterns, 1)

	require.Len(t, warnings, 2)
	assert.Equal(t, "Go", warnings[0].Skill)
	assert.Equal(t, "Broken", warnings[1].Skill)
}

func TestCompile_CaseInsensitive(t *testing.T) {
	vocab := vocabOf(types.SkillDefinition{Name: "Python", Patterns: []string{`\bpython\b`}})

	compiled, warnings := Compile(vocab)
	require.Empty(t, warnings)
	require.Len(t, compiled, 1)

	assert.True(t, TestSkill("We use PYTHON daily", compiled[0]))
	assert.True(t, TestSkill("Python experience required", compiled[0]))
}

func TestExtractSkills_SingleMentionCountedOnce(t *testing.T) {
	vocab := vocabOf(types.SkillDefinition{Name: "AWS", Patterns: []string{`\bAWS\b`}})
	compiled, _ := Compile(vocab)

	skills := ExtractSkills("We use AWS Lambda and also require AWS", compiled)
	assert.Equal(t, []string{"AWS"}, skills)
}

func TestExtractSkills_NoDoubleCreditOnOverlap(t *testing.T) {
	// Unbounded patterns so "Java" matches inside "JavaScript": the longer
	// span must win and Java must not be credited.
	vocab := vocabOf(
		types.SkillDefinition{Name: "Java", Patterns: []string{`Java`}},
		types.SkillDefinition{Name: "JavaScript", Patterns: []string{`JavaScript`}},
	)
	compiled, _ := Compile(vocab)

	skills := ExtractSkills("Strong JavaScript skills", compiled)
	assert.Equal(t, []string{"JavaScript"}, skills)
}

func TestExtractSkills_SeparateMentionsBothCredited(t *testing.T) {
	vocab := vocabOf(
		types.SkillDefinition{Name: "Java", Patterns: []string{`\bJava\b`}},
		types.SkillDefinition{Name: "JavaScript", Patterns: []string{`\bJavaScript\b`}},
	)
	compiled, _ := Compile(vocab)

	skills := ExtractSkills("Java on the backend, JavaScript on the frontend", compiled)
	assert.Equal(t, []string{"Java", "JavaScript"}, skills)
}

func TestExtractSkills_Deterministic(t *testing.T) {
	vocab := vocabOf(
		types.SkillDefinition{Name: "Go", Patterns: []string{`\bGo\b`, `\bGolang\b`}},
		types.SkillDefinition{Name: "Kubernetes", Patterns: []string{`\bKubernetes\b`, `\bk8s\b`}},
		types.SkillDefinition{Name: "Terraform", Patterns: []string{`\bTerraform\b`}},
	)
	compiled, _ := Compile(vocab)
	text := "Go services on Kubernetes, deployed with Terraform and k8s tooling"

	first := ExtractSkills(text, compiled)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractSkills(text, compiled))
	}
	assert.Equal(t, []string{"Go", "Kubernetes", "Terraform"}, first)
}

func TestExtractSkills_EmptyResult(t *testing.T) {
	vocab := vocabOf(types.SkillDefinition{Name: "Rust", Patterns: []string{`\bRust\b`}})
	compiled, _ := Compile(vocab)

	assert.Empty(t, ExtractSkills("Nothing relevant here", compiled))
	assert.Empty(t, ExtractSkills("", compiled))
}

func TestTestSkill_NoOverlapAccounting(t *testing.T) {
	vocab := vocabOf(
		types.SkillDefinition{Name: "Java", Patterns: []string{`Java`}},
	)
	compiled, _ := Compile(vocab)

	// TestSkill answers the raw question without overlap resolution.
	assert.True(t, TestSkill("JavaScript shop", compiled[0]))
	assert.False(t, TestSkill("Python shop", compiled[0]))
}
