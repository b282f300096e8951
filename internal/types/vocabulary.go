// Package types defines the shared data structures used throughout the skill auditor.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// SkillDefinition represents one entry in the controlled vocabulary: a
// canonical display name plus the set of patterns that match mentions of it.
type SkillDefinition struct {
	Name     string   `json:"name"`
	Patterns []string `json:"patterns"`
}

// Vocabulary is the ordered collection of skill definitions. Skills are kept
// sorted case-insensitively by name and Total must always equal len(Skills).
type Vocabulary struct {
	Total  int               `json:"total"`
	Skills []SkillDefinition `json:"skills"`
}

// Sort orders the skills case-insensitively by name and fixes up Total.
func (v *Vocabulary) Sort() {
	sort.SliceStable(v.Skills, func(i, j int) bool {
		return strings.ToLower(v.Skills[i].Name) < strings.ToLower(v.Skills[j].Name)
	})
	v.Total = len(v.Skills)
}

// Append adds a definition without re-sorting. Callers are expected to call
// Sort before persisting.
func (v *Vocabulary) Append(def SkillDefinition) {
	v.Skills = append(v.Skills, def)
	v.Total = len(v.Skills)
}

// FindByName returns the definition whose name matches case-insensitively,
// or nil if absent.
func (v *Vocabulary) FindByName(name string) *SkillDefinition {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i := range v.Skills {
		if strings.ToLower(v.Skills[i].Name) == lower {
			return &v.Skills[i]
		}
	}
	return nil
}

// CheckInvariants verifies the structural invariants: Total matches the skill
// count, the list is sorted case-insensitively, every definition has at least
// one pattern, and no two definitions share a name under case folding.
func (v *Vocabulary) CheckInvariants() error {
	if v.Total != len(v.Skills) {
		return fmt.Errorf("vocabulary total %d does not match skill count %d", v.Total, len(v.Skills))
	}

	seen := make(map[string]string, len(v.Skills))
	prev := ""
	for _, def := range v.Skills {
		if def.Name == "" {
			return fmt.Errorf("vocabulary contains a definition with an empty name")
		}
		if len(def.Patterns) == 0 {
			return fmt.Errorf("skill %q has no patterns", def.Name)
		}
		lower := strings.ToLower(def.Name)
		if other, dup := seen[lower]; dup {
			return fmt.Errorf("duplicate skill name: %q and %q", other, def.Name)
		}
		seen[lower] = def.Name
		if prev != "" && lower < prev {
			return fmt.Errorf("vocabulary is not sorted: %q appears after %q", def.Name, prev)
		}
		prev = lower
	}
	return nil
}
