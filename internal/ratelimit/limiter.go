package ratelimit

import (
	"time"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
	"github.com/rs/zerolog"
)

// Limits are the rate-limiting thresholds for a single user session.
type Limits struct {
	MessagesPerMinute  int
	MessagesPerHour    int
	WarningsPerSession int
	SessionTimeout     time.Duration
}

func DefaultLimits() Limits {
	return Limits{
		MessagesPerMinute:  10,
		MessagesPerHour:    100,
		WarningsPerSession: 3,
		SessionTimeout:     30 * time.Minute,
	}
}

// Limiter enforces per-user message frequency and warning accumulation.
// Sessions are created lazily and reset after SessionTimeout of inactivity.
type Limiter struct {
	limits Limits
	store  SessionStore
	logger *zerolog.Logger

	// overridable in tests
	now func() time.Time
}

func NewLimiter(limits Limits, store SessionStore, logger *zerolog.Logger) *Limiter {
	if limits.MessagesPerMinute <= 0 {
		limits = DefaultLimits()
	}
	return &Limiter{
		limits: limits,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CheckRateLimit admits or blocks the current message. Counters only advance
// on the accept branch; a blocked message leaves the session untouched.
func (l *Limiter) CheckRateLimit(userID string) models.GuardrailResult {
	now := l.now()

	var result models.GuardrailResult
	l.store.Mutate(userID, func() *Session {
		return &Session{
			UserID:          userID,
			SessionStart:    now,
			LastMessageTime: now,
		}
	}, func(s *Session) {
		if now.Sub(s.LastMessageTime) > l.limits.SessionTimeout {
			// Fresh session; violation history is retained for audit.
			s.MessageCount = 0
			s.WarningCount = 0
			s.SessionStart = now
		}

		switch {
		case now.Sub(s.LastMessageTime) < time.Minute && s.MessageCount >= l.limits.MessagesPerMinute:
			result = blockedResult(
				"Rate limit exceeded: too many messages per minute",
				"Block request and ask user to slow down",
				map[string]any{"limit_type": "per_minute", "count": s.MessageCount},
			)
		case now.Sub(s.SessionStart) < time.Hour && s.MessageCount >= l.limits.MessagesPerHour:
			result = blockedResult(
				"Rate limit exceeded: too many messages per hour",
				"Block request and implement cooling off period",
				map[string]any{"limit_type": "per_hour", "count": s.MessageCount},
			)
		case s.WarningCount >= l.limits.WarningsPerSession:
			result = blockedResult(
				"Too many warnings in session",
				"End session and require fresh start",
				map[string]any{"warning_count": s.WarningCount},
			)
		default:
			s.MessageCount++
			s.LastMessageTime = now
			result = models.GuardrailResult{
				IsSafe:          true,
				SafetyLevel:     models.LevelSafe,
				CheckKind:       models.CheckRateLimiting,
				Reason:          "Within rate limits",
				Confidence:      1.0,
				SuggestedAction: "Proceed normally",
				Metadata:        map[string]any{"message_count": s.MessageCount},
			}
		}
	})

	if !result.IsSafe {
		l.logger.Info().
			Str("user_id", userID).
			Str("reason", result.Reason).
			Msg("rate limit blocked message")
	}
	return result
}

// AddWarning appends to the user's violation history and bumps the warning
// counter. Missing sessions are ignored; the orchestrator always checks the
// rate limit (which creates the session) before recording warnings.
func (l *Limiter) AddWarning(userID string, reason string) {
	now := l.now()
	l.store.Mutate(userID, nil, func(s *Session) {
		s.WarningCount++
		s.ViolationHistory = append(s.ViolationHistory, models.Violation{At: now, Reason: reason})
	})
}

// SessionStats returns a read-only snapshot for the user, zero-valued when
// the user has no session yet.
func (l *Limiter) SessionStats(userID string) models.SessionStats {
	s, ok := l.store.Snapshot(userID)
	if !ok {
		return models.SessionStats{ViolationHistory: []models.Violation{}}
	}
	return models.SessionStats{
		MessageCount:     s.MessageCount,
		WarningCount:     s.WarningCount,
		SessionDuration:  l.now().Sub(s.SessionStart).Seconds(),
		ViolationHistory: s.ViolationHistory,
	}
}

func blockedResult(reason string, action string, metadata map[string]any) models.GuardrailResult {
	return models.GuardrailResult{
		IsSafe:          false,
		SafetyLevel:     models.LevelBlocked,
		CheckKind:       models.CheckRateLimiting,
		Reason:          reason,
		Confidence:      1.0,
		SuggestedAction: action,
		Metadata:        metadata,
	}
}
