package moderation

import (
	"context"
)

// Verdict is a moderation response normalized over a provider's fixed
// category enumeration. Providers populate every known category explicitly;
// nothing is discovered at runtime.
type Verdict struct {
	Flagged        bool
	Categories     map[string]bool
	CategoryScores map[string]float64
}

// Client is an interface for external moderation providers.
// This allows mocking in tests without making real API calls.
type Client interface {
	Moderate(ctx context.Context, text string) (*Verdict, error)
}
