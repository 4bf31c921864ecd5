package ratelimit

import (
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func newTestLimiter(limits Limits) (*Limiter, *time.Time) {
	l := NewLimiter(limits, NewMemoryStore(), newTestLogger())
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestLimiter_PerMinuteLimit(t *testing.T) {
	limiter, _ := newTestLimiter(Limits{
		MessagesPerMinute:  3,
		MessagesPerHour:    100,
		WarningsPerSession: 3,
		SessionTimeout:     30 * time.Minute,
	})

	for i := 0; i < 3; i++ {
		result := limiter.CheckRateLimit("user-1")
		if !result.IsSafe {
			t.Fatalf("message %d unexpectedly blocked: %s", i+1, result.Reason)
		}
	}

	result := limiter.CheckRateLimit("user-1")
	if result.IsSafe {
		t.Fatal("expected fourth message to be blocked")
	}
	if result.SafetyLevel != models.LevelBlocked {
		t.Errorf("SafetyLevel: %s, want: %s", result.SafetyLevel, models.LevelBlocked)
	}
	if result.Confidence != 1.0 {
		t.Errorf("Confidence: %f, want: 1.0", result.Confidence)
	}
	if result.Metadata["limit_type"] != "per_minute" {
		t.Errorf("limit_type: %v, want: per_minute", result.Metadata["limit_type"])
	}
}

func TestLimiter_BlockedMessageDoesNotAdvanceCount(t *testing.T) {
	limiter, _ := newTestLimiter(Limits{
		MessagesPerMinute:  2,
		MessagesPerHour:    100,
		WarningsPerSession: 3,
		SessionTimeout:     30 * time.Minute,
	})

	limiter.CheckRateLimit("user-1")
	limiter.CheckRateLimit("user-1")
	limiter.CheckRateLimit("user-1") // blocked
	limiter.CheckRateLimit("user-1") // blocked

	stats := limiter.SessionStats("user-1")
	if stats.MessageCount != 2 {
		t.Errorf("MessageCount: %d, want: 2", stats.MessageCount)
	}
}

func TestLimiter_PerHourLimit(t *testing.T) {
	limiter, current := newTestLimiter(Limits{
		MessagesPerMinute:  10,
		MessagesPerHour:    15,
		WarningsPerSession: 100,
		SessionTimeout:     2 * time.Hour,
	})

	// Send messages in bursts under the per-minute cap, advancing the clock
	// so only the hourly counter accumulates.
	for i := 0; i < 15; i++ {
		result := limiter.CheckRateLimit("user-1")
		if !result.IsSafe {
			t.Fatalf("message %d unexpectedly blocked: %s", i+1, result.Reason)
		}
		*current = current.Add(2 * time.Minute)
	}

	result := limiter.CheckRateLimit("user-1")
	if result.IsSafe {
		t.Fatal("expected sixteenth message to be blocked")
	}
	if result.Metadata["limit_type"] != "per_hour" {
		t.Errorf("limit_type: %v, want: per_hour", result.Metadata["limit_type"])
	}
}

func TestLimiter_WarningThresholdBlocks(t *testing.T) {
	limiter, _ := newTestLimiter(Limits{
		MessagesPerMinute:  100,
		MessagesPerHour:    100,
		WarningsPerSession: 3,
		SessionTimeout:     30 * time.Minute,
	})

	limiter.CheckRateLimit("user-1")
	limiter.AddWarning("user-1", "sensitive content")
	limiter.AddWarning("user-1", "sensitive content")

	result := limiter.CheckRateLimit("user-1")
	if !result.IsSafe {
		t.Fatalf("two warnings should not block: %s", result.Reason)
	}

	limiter.AddWarning("user-1", "sensitive content")

	result = limiter.CheckRateLimit("user-1")
	if result.IsSafe {
		t.Fatal("expected block after three warnings")
	}
	if result.Metadata["warning_count"] != 3 {
		t.Errorf("warning_count: %v, want: 3", result.Metadata["warning_count"])
	}
}

func TestLimiter_SessionTimeoutResetsCounters(t *testing.T) {
	limiter, current := newTestLimiter(Limits{
		MessagesPerMinute:  2,
		MessagesPerHour:    100,
		WarningsPerSession: 3,
		SessionTimeout:     30 * time.Minute,
	})

	limiter.CheckRateLimit("user-1")
	limiter.CheckRateLimit("user-1")
	limiter.AddWarning("user-1", "first violation")

	*current = current.Add(31 * time.Minute)

	result := limiter.CheckRateLimit("user-1")
	if !result.IsSafe {
		t.Fatalf("message after timeout unexpectedly blocked: %s", result.Reason)
	}

	stats := limiter.SessionStats("user-1")
	if stats.MessageCount != 1 {
		t.Errorf("MessageCount after reset: %d, want: 1", stats.MessageCount)
	}
	if stats.WarningCount != 0 {
		t.Errorf("WarningCount after reset: %d, want: 0", stats.WarningCount)
	}
	// Violation history survives the reset.
	if len(stats.ViolationHistory) != 1 {
		t.Errorf("ViolationHistory length: %d, want: 1", len(stats.ViolationHistory))
	}
}

func TestLimiter_SessionStats_UnknownUser(t *testing.T) {
	limiter, _ := newTestLimiter(DefaultLimits())

	stats := limiter.SessionStats("nobody")
	if stats.MessageCount != 0 || stats.WarningCount != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if stats.ViolationHistory == nil {
		t.Error("ViolationHistory should be empty, not nil")
	}
}

func TestLimiter_AddWarning_UnknownUserIgnored(t *testing.T) {
	limiter, _ := newTestLimiter(DefaultLimits())

	limiter.AddWarning("nobody", "whatever")

	stats := limiter.SessionStats("nobody")
	if stats.WarningCount != 0 {
		t.Errorf("WarningCount: %d, want: 0", stats.WarningCount)
	}
}

func TestLimiter_UsersAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(Limits{
		MessagesPerMinute:  1,
		MessagesPerHour:    100,
		WarningsPerSession: 3,
		SessionTimeout:     30 * time.Minute,
	})

	limiter.CheckRateLimit("user-1")
	if result := limiter.CheckRateLimit("user-1"); result.IsSafe {
		t.Fatal("expected user-1 to be blocked")
	}

	if result := limiter.CheckRateLimit("user-2"); !result.IsSafe {
		t.Fatalf("user-2 unexpectedly blocked: %s", result.Reason)
	}
}

func TestMemoryStore_SnapshotIsACopy(t *testing.T) {
	store := NewMemoryStore()
	store.Mutate("user-1", func() *Session {
		return &Session{UserID: "user-1"}
	}, func(s *Session) {
		s.ViolationHistory = append(s.ViolationHistory, models.Violation{Reason: "first"})
	})

	snap, ok := store.Snapshot("user-1")
	if !ok {
		t.Fatal("expected session")
	}
	snap.ViolationHistory[0].Reason = "mutated"

	fresh, _ := store.Snapshot("user-1")
	if fresh.ViolationHistory[0].Reason != "first" {
		t.Error("snapshot mutation leaked into the store")
	}
}
