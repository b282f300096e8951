package types

import (
	"time"

	"github.com/google/uuid"
)

// CoverageEntry records how many sampled records one skill definition matched.
type CoverageEntry struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Coverage float64 `json:"coverage"` // percent of sample
}

// CoverageReport ranks vocabulary entries by how often they match, descending.
type CoverageReport struct {
	SampleSize int             `json:"sample_size"`
	Entries    []CoverageEntry `json:"entries"`
}

// LabelFinding identifies one disagreement between a record's prior label and
// the current pattern matcher: a false positive (labeled but not matched) or
// a false negative (matched but not labeled).
type LabelFinding struct {
	RecordID uuid.UUID `json:"record_id"`
	Skill    string    `json:"skill"`
}

// LabelAuditReport aggregates false-positive or false-negative findings.
type LabelAuditReport struct {
	SampleSize int            `json:"sample_size"`
	Findings   []LabelFinding `json:"findings"`
	BySkill    map[string]int `json:"by_skill"`
}

// Requirement levels assigned to a labeled mention by the context analysis.
const (
	RequirementRequired    = "required"
	RequirementPreferred   = "preferred"
	RequirementBonus       = "bonus"
	RequirementUnspecified = "unspecified"
)

// Seniority bands assigned to a whole record by the context analysis.
const (
	SenioritySenior      = "senior"
	SeniorityMid         = "mid"
	SeniorityJunior      = "junior"
	SeniorityUnspecified = "unspecified"
)

// ContextFinding describes one labeled mention with its surrounding signals.
type ContextFinding struct {
	RecordID         uuid.UUID `json:"record_id"`
	Skill            string    `json:"skill"`
	RequirementLevel string    `json:"requirement_level"`
	Seniority        string    `json:"seniority"`
	Negated          bool      `json:"negated"`
	NegationCue      string    `json:"negation_cue,omitempty"`
}

// ContextReport is the output of the negative-context analysis.
type ContextReport struct {
	SampleSize   int              `json:"sample_size"`
	Findings     []ContextFinding `json:"findings"`
	NegatedCount int              `json:"negated_count"`
}

// DiscoveryReport is the candidates artifact emitted by emerging-term
// discovery and consumed by the merge workflow. Any producer conforming to
// this shape is an acceptable input for optimization.
type DiscoveryReport struct {
	Generated  time.Time   `json:"generated"`
	SampleSize int         `json:"sample_size"`
	Candidates []Candidate `json:"candidates"`
}

// Trend directions.
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendSteady  = "steady"
)

// SkillTrend describes one skill's mention velocity between the older and
// recent halves of the observed period range.
type SkillTrend struct {
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	OlderRate  float64 `json:"older_rate"`  // mean mentions per period, older half
	RecentRate float64 `json:"recent_rate"` // mean mentions per period, recent half
	ChangePct  float64 `json:"change_pct"`
	Direction  string  `json:"direction"`
}

// TrendReport is the output of the trend/velocity analysis.
type TrendReport struct {
	SampleSize int          `json:"sample_size"`
	Periods    int          `json:"periods"`
	Trends     []SkillTrend `json:"trends"`
}
