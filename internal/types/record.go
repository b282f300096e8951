package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TextRecord is one corpus entry: a job posting body plus the skill label
// asserted by a previous extraction pass. Records are immutable inputs to
// every analysis; only a bulk re-extraction rewrites the label.
type TextRecord struct {
	ID       uuid.UUID
	Text     string
	Label    string // comma-separated canonical skill names, may be empty
	PostedAt time.Time
}

// LabelSkills splits the comma-separated label into trimmed skill names,
// dropping empty entries.
func (r *TextRecord) LabelSkills() []string {
	if strings.TrimSpace(r.Label) == "" {
		return nil
	}
	parts := strings.Split(r.Label, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// FormatLabel joins canonical skill names back into the stored label form.
func FormatLabel(skills []string) string {
	return strings.Join(skills, ", ")
}
