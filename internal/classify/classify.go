package classify

import (
	"regexp"
	"strings"

	"github.com/jonathan/skill-auditor/internal/patterns"
	"github.com/jonathan/skill-auditor/internal/types"
)

const (
	heuristicBase         = 0.5
	heuristicCap          = 0.8
	bonusCamelCase        = 0.2
	bonusTechSuffix       = 0.15
	bonusEmbeddedDigit    = 0.1
	bonusAcronym          = 0.1
	skillConfidenceCutoff = 0.6
)

var (
	digitRE   = regexp.MustCompile(`\d`)
	numericRE = regexp.MustCompile(`^\d+([.,]\d+)?$`)
	acronymRE = regexp.MustCompile(`^[A-Z]{3,6}$`)
)

// Classify decides whether term is a skill. It runs the deny table first,
// then the ordered category table, and falls back to a shape heuristic for
// unknown terms. The verdict depends only on the term and the static rule
// tables, never on prior calls.
func Classify(term string) types.ClassificationVerdict {
	term = strings.TrimSpace(term)
	if term == "" {
		return types.ClassificationVerdict{IsSkill: false, Category: types.CategoryNonSkill, Confidence: 0}
	}

	for _, rule := range denyRules {
		if rule.re.MatchString(term) {
			return types.ClassificationVerdict{IsSkill: false, Category: types.CategoryNonSkill, Confidence: 0}
		}
	}

	for _, rule := range categoryRules {
		if rule.re.MatchString(term) {
			return types.ClassificationVerdict{IsSkill: true, Category: rule.category, Confidence: rule.confidence}
		}
	}

	confidence := heuristicScore(term)
	return types.ClassificationVerdict{
		IsSkill:    confidence >= skillConfidenceCutoff,
		Category:   types.CategoryUnknown,
		Confidence: confidence,
	}
}

// heuristicScore scores an unknown term by shape. Whitelisted terms never
// reach here, so the score is capped below whitelist confidence levels.
func heuristicScore(term string) float64 {
	confidence := heuristicBase

	if len(patterns.SplitCamel(term)) >= 2 {
		confidence += bonusCamelCase
	}
	if hasTechSuffix(term) {
		confidence += bonusTechSuffix
	}
	if digitRE.MatchString(term) && !numericRE.MatchString(term) {
		confidence += bonusEmbeddedDigit
	}
	if acronymRE.MatchString(term) {
		confidence += bonusAcronym
	}

	if confidence > heuristicCap {
		confidence = heuristicCap
	}
	return confidence
}

func hasTechSuffix(term string) bool {
	upper := strings.ToUpper(term)
	for _, suffix := range techSuffixes {
		if len(upper) > len(suffix) && strings.HasSuffix(upper, suffix) {
			return true
		}
	}
	return false
}
