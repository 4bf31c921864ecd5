package checks

import (
	"strings"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
)

// DefaultInjectionIndicators are phrases that signal a context-switching
// (prompt injection) attempt in the current message.
var DefaultInjectionIndicators = []string{
	"ignore previous instructions",
	"forget what i said before",
	"new instructions:",
	"system prompt:",
	"you are now",
	"pretend you are",
	"act as if",
	"roleplay as",
}

const (
	DefaultMaxTurns         = 20
	DefaultMaxContextLength = 4000
)

// ContextValidator evaluates conversation-history size and prompt-injection
// indicators. The three checks run in order and the first violation wins.
type ContextValidator struct {
	maxTurns            int
	maxContextLength    int
	injectionIndicators []string
}

func NewContextValidator(maxTurns int, maxContextLength int, indicators []string) *ContextValidator {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	if maxContextLength <= 0 {
		maxContextLength = DefaultMaxContextLength
	}
	if len(indicators) == 0 {
		indicators = DefaultInjectionIndicators
	}
	return &ContextValidator{
		maxTurns:            maxTurns,
		maxContextLength:    maxContextLength,
		injectionIndicators: indicators,
	}
}

// ValidateContext checks turn count, total context size, then injection
// indicators. History entries with empty content count as empty strings.
func (v *ContextValidator) ValidateContext(history []models.ChatMessage, message string) models.GuardrailResult {
	if len(history) > v.maxTurns {
		return models.GuardrailResult{
			IsSafe:          false,
			SafetyLevel:     models.LevelWarning,
			CheckKind:       models.CheckContextValidation,
			Reason:          "Conversation too long, context may be degraded",
			Confidence:      0.8,
			SuggestedAction: "Truncate conversation history",
			Metadata:        map[string]any{"turn_count": len(history)},
		}
	}

	// History counts as if space-joined, one separator between entries.
	totalLength := len(message)
	for _, msg := range history {
		totalLength += len(msg.Content)
	}
	if len(history) > 1 {
		totalLength += len(history) - 1
	}
	if totalLength > v.maxContextLength {
		return models.GuardrailResult{
			IsSafe:          false,
			SafetyLevel:     models.LevelWarning,
			CheckKind:       models.CheckContextValidation,
			Reason:          "Context length exceeds maximum",
			Confidence:      0.9,
			SuggestedAction: "Truncate context to fit limits",
			Metadata:        map[string]any{"context_length": totalLength},
		}
	}

	messageLower := strings.ToLower(message)
	for _, indicator := range v.injectionIndicators {
		if strings.Contains(messageLower, indicator) {
			return models.GuardrailResult{
				IsSafe:          false,
				SafetyLevel:     models.LevelUnsafe,
				CheckKind:       models.CheckContextValidation,
				Reason:          "Potential context switching attack detected",
				Confidence:      0.7,
				SuggestedAction: "Reset conversation context",
				Metadata:        map[string]any{"attack_type": "context_switching"},
			}
		}
	}

	return models.GuardrailResult{
		IsSafe:          true,
		SafetyLevel:     models.LevelSafe,
		CheckKind:       models.CheckContextValidation,
		Reason:          "Context validation passed",
		Confidence:      0.9,
		SuggestedAction: "Proceed normally",
	}
}
