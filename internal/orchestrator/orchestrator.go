package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/audit"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
	"github.com/rs/zerolog"
)

// DefaultSafetyResponses is the user-facing text per aggregated severity.
// SAFE has no entry: no guardrail message is shown for safe traffic.
var DefaultSafetyResponses = map[models.SafetyLevel]string{
	models.LevelBlocked: "I can't help with that request. Let's talk about something else.",
	models.LevelUnsafe:  "I noticed some concerning content. Let me help you with something safer.",
	models.LevelWarning: "I want to be helpful while keeping our conversation appropriate.",
}

const fallbackSafetyResponse = "I'm here to help with appropriate questions. What else can I assist you with?"

// Orchestrator composes the individual guardrails into an ordered input
// pipeline and an output pipeline. Checks run strictly sequentially because
// each may short-circuit the next.
type Orchestrator struct {
	rateLimiter      RateLimiter
	contentFilter    ContentChecker
	piiDetector      PIIChecker
	toxicityDetector ToxicityChecker
	contextValidator ContextChecker
	outputValidator  OutputChecker
	auditSink        audit.Sink
	logger           *zerolog.Logger

	mu              sync.RWMutex
	safetyResponses map[models.SafetyLevel]string
}

func New(
	rateLimiter RateLimiter,
	contentFilter ContentChecker,
	piiDetector PIIChecker,
	toxicityDetector ToxicityChecker,
	contextValidator ContextChecker,
	outputValidator OutputChecker,
	auditSink audit.Sink,
	logger *zerolog.Logger,
) *Orchestrator {
	if auditSink == nil {
		auditSink = audit.Noop{}
	}

	// Each instance owns its own copy so operator overrides never leak
	// across orchestrators.
	responses := make(map[models.SafetyLevel]string, len(DefaultSafetyResponses))
	for level, text := range DefaultSafetyResponses {
		responses[level] = text
	}

	return &Orchestrator{
		rateLimiter:      rateLimiter,
		contentFilter:    contentFilter,
		piiDetector:      piiDetector,
		toxicityDetector: toxicityDetector,
		contextValidator: contextValidator,
		outputValidator:  outputValidator,
		auditSink:        auditSink,
		logger:           logger,
		safetyResponses:  responses,
	}
}

// CheckInput runs the input pipeline: rate limit, content filter, PII,
// toxicity, then context validation. It stops at the first hard failure.
// Warnings collected along the way are recorded against the user session on
// every exit path.
func (o *Orchestrator) CheckInput(ctx context.Context, userID string, message string, history []models.ChatMessage) (bool, []models.GuardrailResult) {
	o.logger.Info().Str("user_id", userID).Msg("starting input checks")

	var results []models.GuardrailResult
	defer func() { o.recordWarnings(ctx, userID, results) }()

	rateResult := o.rateLimiter.CheckRateLimit(userID)
	results = append(results, rateResult)
	if !rateResult.IsSafe {
		return false, results
	}

	contentResult := o.contentFilter.CheckContent(message)
	results = append(results, contentResult)
	if !contentResult.IsSafe {
		return false, results
	}

	piiResult := o.piiDetector.CheckPII(message)
	results = append(results, piiResult)
	if !piiResult.IsSafe {
		return false, results
	}

	toxicityResult := o.toxicityDetector.CheckToxicity(ctx, message)
	results = append(results, toxicityResult)
	if !toxicityResult.IsSafe {
		return false, results
	}

	// Context warnings flag the request but only a BLOCKED verdict stops it.
	contextResult := o.contextValidator.ValidateContext(history, message)
	results = append(results, contextResult)
	if !contextResult.IsSafe && contextResult.SafetyLevel == models.LevelBlocked {
		return false, results
	}

	return true, results
}

// CheckOutput validates a generated response, then re-runs toxicity on it.
func (o *Orchestrator) CheckOutput(ctx context.Context, response string, originalQuery string) (bool, models.GuardrailResult) {
	outputResult := o.outputValidator.ValidateOutput(response, originalQuery)
	if !outputResult.IsSafe {
		return false, outputResult
	}

	toxicityResult := o.toxicityDetector.CheckToxicity(ctx, response)
	if !toxicityResult.IsSafe {
		return false, toxicityResult
	}

	return true, outputResult
}

// GetSafetyResponse renders the user-facing message for the most severe
// level across the given results.
func (o *Orchestrator) GetSafetyResponse(results []models.GuardrailResult) string {
	level := models.MaxLevel(results)

	o.mu.RLock()
	defer o.mu.RUnlock()
	if text, ok := o.safetyResponses[level]; ok {
		return text
	}
	return fallbackSafetyResponse
}

// AddCustomSafetyResponse lets operators override the text for a level.
func (o *Orchestrator) AddCustomSafetyResponse(level models.SafetyLevel, text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.safetyResponses[level] = text
}

// GetSessionStats exposes the user's rate-limit session snapshot.
func (o *Orchestrator) GetSessionStats(userID string) models.SessionStats {
	return o.rateLimiter.SessionStats(userID)
}

func (o *Orchestrator) recordWarnings(ctx context.Context, userID string, results []models.GuardrailResult) {
	for _, result := range results {
		if result.SafetyLevel != models.LevelWarning && result.SafetyLevel != models.LevelUnsafe {
			continue
		}
		o.rateLimiter.AddWarning(userID, result.Reason)

		violation := models.Violation{At: time.Now(), Reason: result.Reason}
		if err := o.auditSink.RecordViolation(ctx, userID, violation); err != nil {
			o.logger.Error().Err(err).Str("user_id", userID).Msg("failed to audit violation")
		}
	}
}
