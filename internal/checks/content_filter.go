package checks

import (
	"fmt"
	"regexp"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
)

// DefaultHarmfulPatterns block a message outright on first match.
var DefaultHarmfulPatterns = []string{
	`\b(?:kill|murder|suicide|harm)\s+(?:yourself|myself|themselves)\b`,
	`\b(?:how\s+to\s+make|build|create)\s+(?:bomb|explosive|weapon)\b`,
	`\b(?:illegal\s+drug|drug\s+dealing|sell\s+drugs)\b`,
	`\b(?:hack|hacking|ddos|phishing|malware)\b`,
	`\b(?:child\s+abuse|sexual\s+content|explicit\s+content)\b`,
}

// DefaultSensitivePatterns flag topics that proceed with a disclaimer.
var DefaultSensitivePatterns = []string{
	`\b(?:depression|anxiety|mental\s+health|therapy)\b`,
	`\b(?:medical\s+advice|diagnosis|treatment)\b`,
	`\b(?:legal\s+advice|lawsuit|court)\b`,
	`\b(?:investment\s+advice|financial\s+advice|trading)\b`,
}

type compiledPattern struct {
	source string
	re     *regexp.Regexp
}

// ContentFilter scans text against ordered harmful and sensitive pattern
// lists. Harmful patterns win over sensitive ones; within a list the first
// match decides, so the same input always yields the same result.
type ContentFilter struct {
	harmful   []compiledPattern
	sensitive []compiledPattern
}

func NewContentFilter(harmful []string, sensitive []string) (*ContentFilter, error) {
	f := &ContentFilter{}

	var err error
	f.harmful, err = compileAll(harmful)
	if err != nil {
		return nil, fmt.Errorf("harmful pattern: %w", err)
	}

	f.sensitive, err = compileAll(sensitive)
	if err != nil {
		return nil, fmt.Errorf("sensitive pattern: %w", err)
	}

	return f, nil
}

// NewDefaultContentFilter builds a filter with the built-in pattern lists.
func NewDefaultContentFilter() *ContentFilter {
	f, err := NewContentFilter(DefaultHarmfulPatterns, DefaultSensitivePatterns)
	if err != nil {
		// Built-in patterns are constants; a compile failure is a bug.
		panic(err)
	}
	return f
}

func compileAll(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		compiled = append(compiled, compiledPattern{source: p, re: re})
	}
	return compiled, nil
}

// CheckContent evaluates harmful patterns first, then sensitive ones.
// It is a pure function of the input text.
func (f *ContentFilter) CheckContent(text string) models.GuardrailResult {
	for _, p := range f.harmful {
		if p.re.MatchString(text) {
			return models.GuardrailResult{
				IsSafe:          false,
				SafetyLevel:     models.LevelBlocked,
				CheckKind:       models.CheckContentFilter,
				Reason:          fmt.Sprintf("Detected harmful content pattern: %s", p.source),
				Confidence:      0.9,
				SuggestedAction: "Block request and provide safety resources",
				Metadata:        map[string]any{"pattern_matched": p.source},
			}
		}
	}

	for _, p := range f.sensitive {
		if p.re.MatchString(text) {
			return models.GuardrailResult{
				IsSafe:          true,
				SafetyLevel:     models.LevelWarning,
				CheckKind:       models.CheckContentFilter,
				Reason:          fmt.Sprintf("Detected sensitive content: %s", p.source),
				Confidence:      0.7,
				SuggestedAction: "Proceed with disclaimer",
				Metadata: map[string]any{
					"pattern_matched":     p.source,
					"requires_disclaimer": true,
				},
			}
		}
	}

	return models.GuardrailResult{
		IsSafe:          true,
		SafetyLevel:     models.LevelSafe,
		CheckKind:       models.CheckContentFilter,
		Reason:          "No harmful content detected",
		Confidence:      0.8,
		SuggestedAction: "Proceed normally",
	}
}
