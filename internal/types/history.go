package types

import "time"

// OptimizationRun records one committed merge workflow run.
type OptimizationRun struct {
	Timestamp   time.Time `json:"timestamp"`
	SkillsAdded int       `json:"skills_added"`
	Skills      []string  `json:"skills"`
	Backup      string    `json:"backup"`
}

// OptimizationHistory is the append-only log of merge workflow runs. Existing
// runs are never rewritten; each commit appends one entry and bumps the total.
type OptimizationHistory struct {
	TotalSkillsAdded int               `json:"total_skills_added"`
	Runs             []OptimizationRun `json:"runs"`
}

// AppendRun adds a run record and updates the running total.
func (h *OptimizationHistory) AppendRun(run OptimizationRun) {
	h.Runs = append(h.Runs, run)
	h.TotalSkillsAdded += run.SkillsAdded
}
