package checks

import (
	"strings"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
)

// DefaultLeakIndicators are substrings that suggest the response leaked
// system-prompt material.
var DefaultLeakIndicators = []string{
	"system:",
	"assistant:",
	"you are an ai",
	"your instructions are",
	"your role is to",
	"you must not",
	"you are programmed to",
}

const (
	DefaultMaxResponseLength = 2000
	DefaultMinOverlapRatio   = 0.2
)

// OutputValidator inspects generated responses before they reach the user:
// system-prompt leaks, relevance to the original query, and response length.
type OutputValidator struct {
	leakIndicators    []string
	maxResponseLength int
	minOverlapRatio   float64
}

func NewOutputValidator(leakIndicators []string, maxResponseLength int, minOverlapRatio float64) *OutputValidator {
	if len(leakIndicators) == 0 {
		leakIndicators = DefaultLeakIndicators
	}
	if maxResponseLength <= 0 {
		maxResponseLength = DefaultMaxResponseLength
	}
	if minOverlapRatio <= 0 {
		minOverlapRatio = DefaultMinOverlapRatio
	}
	return &OutputValidator{
		leakIndicators:    leakIndicators,
		maxResponseLength: maxResponseLength,
		minOverlapRatio:   minOverlapRatio,
	}
}

// ValidateOutput checks leaks first, relevance second, length last.
func (v *OutputValidator) ValidateOutput(response string, originalQuery string) models.GuardrailResult {
	responseLower := strings.ToLower(response)
	for _, indicator := range v.leakIndicators {
		if strings.Contains(responseLower, indicator) {
			return models.GuardrailResult{
				IsSafe:          false,
				SafetyLevel:     models.LevelBlocked,
				CheckKind:       models.CheckOutputValidation,
				Reason:          "Response contains leaked system information",
				Confidence:      0.9,
				SuggestedAction: "Generate new response",
				Metadata:        map[string]any{"leak_type": "system_prompt"},
			}
		}
	}

	if score, relevant := v.relevance(response, originalQuery); !relevant {
		return models.GuardrailResult{
			IsSafe:          false,
			SafetyLevel:     models.LevelWarning,
			CheckKind:       models.CheckOutputValidation,
			Reason:          "Response not relevant to query",
			Confidence:      0.6,
			SuggestedAction: "Generate more relevant response",
			Metadata:        map[string]any{"relevance_score": score},
		}
	}

	if len(response) > v.maxResponseLength {
		return models.GuardrailResult{
			IsSafe:          true,
			SafetyLevel:     models.LevelWarning,
			CheckKind:       models.CheckOutputValidation,
			Reason:          "Response very long",
			Confidence:      0.8,
			SuggestedAction: "Consider truncating response",
			Metadata:        map[string]any{"response_length": len(response)},
		}
	}

	return models.GuardrailResult{
		IsSafe:          true,
		SafetyLevel:     models.LevelSafe,
		CheckKind:       models.CheckOutputValidation,
		Reason:          "Output validation passed",
		Confidence:      0.9,
		SuggestedAction: "Send response to user",
	}
}

// relevance compares lower-cased word sets: the response must share at least
// max(1, ratio * |query words|) words with the query.
func (v *OutputValidator) relevance(response string, query string) (float64, bool) {
	queryWords := wordSet(query)
	responseWords := wordSet(response)

	overlap := 0
	for word := range queryWords {
		if responseWords[word] {
			overlap++
		}
	}

	// At least one shared word is always required, so an empty query can
	// never be satisfied.
	required := v.minOverlapRatio * float64(len(queryWords))
	if required < 1 {
		required = 1
	}

	score := 0.0
	if len(queryWords) > 0 {
		score = float64(overlap) / float64(len(queryWords))
	}
	return score, float64(overlap) >= required
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}
