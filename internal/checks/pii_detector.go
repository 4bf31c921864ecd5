package checks

import (
	"fmt"
	"regexp"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
)

// PIIPattern is a named regex matched against user text.
type PIIPattern struct {
	Name    string
	Pattern string
}

// DefaultPIIPatterns cover the identifiers the chat surface must not accept.
// Order is fixed so results are deterministic.
var DefaultPIIPatterns = []PIIPattern{
	{Name: "ssn", Pattern: `\b\d{3}-?\d{2}-?\d{4}\b`},
	{Name: "phone", Pattern: `\b\d{3}-?\d{3}-?\d{4}\b`},
	{Name: "email", Pattern: `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`},
	{Name: "credit_card", Pattern: `\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`},
}

type namedPattern struct {
	name string
	re   *regexp.Regexp
}

// PIIDetector scans text for personally identifiable information.
// Unlike ContentFilter it collects every matching pattern, not just the first.
type PIIDetector struct {
	patterns []namedPattern
}

func NewPIIDetector(patterns []PIIPattern) (*PIIDetector, error) {
	d := &PIIDetector{patterns: make([]namedPattern, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pii pattern %s: %w", p.Name, err)
		}
		d.patterns = append(d.patterns, namedPattern{name: p.Name, re: re})
	}
	return d, nil
}

// NewDefaultPIIDetector builds a detector with the built-in pattern set.
func NewDefaultPIIDetector() *PIIDetector {
	d, err := NewPIIDetector(DefaultPIIPatterns)
	if err != nil {
		panic(err)
	}
	return d
}

// CheckPII returns UNSAFE if any pattern matches, naming every matched
// pattern and its matched substrings in the result metadata.
func (d *PIIDetector) CheckPII(text string) models.GuardrailResult {
	var foundNames []string
	foundMatches := make(map[string][]string)

	for _, p := range d.patterns {
		matches := p.re.FindAllString(text, -1)
		if len(matches) > 0 {
			foundNames = append(foundNames, p.name)
			foundMatches[p.name] = matches
		}
	}

	if len(foundNames) > 0 {
		return models.GuardrailResult{
			IsSafe:          false,
			SafetyLevel:     models.LevelUnsafe,
			CheckKind:       models.CheckPIIDetection,
			Reason:          fmt.Sprintf("Detected PII: %v", foundNames),
			Confidence:      0.95,
			SuggestedAction: "Remove PII before processing",
			Metadata: map[string]any{
				"pii_found": foundNames,
				"matches":   foundMatches,
			},
		}
	}

	return models.GuardrailResult{
		IsSafe:          true,
		SafetyLevel:     models.LevelSafe,
		CheckKind:       models.CheckPIIDetection,
		Reason:          "No PII detected",
		Confidence:      0.9,
		SuggestedAction: "Proceed normally",
	}
}
