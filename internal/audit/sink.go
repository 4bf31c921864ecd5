package audit

import (
	"context"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
)

// Sink receives guardrail violations for durable audit. Sinks are best
// effort: a failed write is logged by the caller, never surfaced to the user.
type Sink interface {
	RecordViolation(ctx context.Context, userID string, violation models.Violation) error
}

// Noop discards violations. Used when no audit backend is configured.
type Noop struct{}

func (Noop) RecordViolation(ctx context.Context, userID string, violation models.Violation) error {
	return nil
}
