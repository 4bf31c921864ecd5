package orchestrator

import (
	"context"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// RateLimiter enforces per-user message frequency and warning accumulation.
type RateLimiter interface {
	CheckRateLimit(userID string) models.GuardrailResult
	AddWarning(userID string, reason string)
	SessionStats(userID string) models.SessionStats
}

// ContentChecker scans text against harmful and sensitive patterns.
type ContentChecker interface {
	CheckContent(text string) models.GuardrailResult
}

// PIIChecker scans text for personally identifiable information.
type PIIChecker interface {
	CheckPII(text string) models.GuardrailResult
}

// ToxicityChecker runs the external moderation check.
type ToxicityChecker interface {
	CheckToxicity(ctx context.Context, text string) models.GuardrailResult
}

// ContextChecker validates conversation history and the current message.
type ContextChecker interface {
	ValidateContext(history []models.ChatMessage, message string) models.GuardrailResult
}

// OutputChecker validates a generated response against the original query.
type OutputChecker interface {
	ValidateOutput(response string, originalQuery string) models.GuardrailResult
}
