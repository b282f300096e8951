package types

// CategoryNonSkill is the verdict category for terms rejected by the
// deny-rule table.
const CategoryNonSkill = "non-skill"

// CategoryUnknown is the verdict category for terms that match no category
// rule and are scored by the heuristic instead.
const CategoryUnknown = "Unknown"

// ClassificationVerdict is the classifier's decision for one candidate
// term. It is a pure function of the term and the static rule tables.
type ClassificationVerdict struct {
	IsSkill    bool    `json:"is_skill"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Candidate is a term discovered by the emerging-term analysis that is not
// yet in the vocabulary. Count is the number of distinct records containing
// the term; Coverage is count over sample size, as a percentage.
type Candidate struct {
	Term     string  `json:"term"`
	Count    int     `json:"count"`
	Coverage float64 `json:"coverage"`
}
