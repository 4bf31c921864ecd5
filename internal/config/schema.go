package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/checks"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/ratelimit"
)

// GuardrailsConfig is the complete pattern and limit configuration.
// Every section has built-in defaults, so a missing file or section is fine.
type GuardrailsConfig struct {
	Limits          LimitsConfig        `yaml:"limits"`
	ContentFilter   ContentFilterConfig `yaml:"content_filter"`
	PII             PIIConfig           `yaml:"pii"`
	Context         ContextConfig       `yaml:"context"`
	Output          OutputConfig        `yaml:"output"`
	Moderation      ModerationConfig    `yaml:"moderation"`
	SafetyResponses map[string]string   `yaml:"safety_responses"`
}

type LimitsConfig struct {
	MessagesPerMinute     int `yaml:"messages_per_minute"`
	MessagesPerHour       int `yaml:"messages_per_hour"`
	WarningsPerSession    int `yaml:"warnings_per_session"`
	SessionTimeoutMinutes int `yaml:"session_timeout_minutes"`
}

// ToLimits converts the YAML shape into rate-limiter limits.
func (c LimitsConfig) ToLimits() ratelimit.Limits {
	return ratelimit.Limits{
		MessagesPerMinute:  c.MessagesPerMinute,
		MessagesPerHour:    c.MessagesPerHour,
		WarningsPerSession: c.WarningsPerSession,
		SessionTimeout:     time.Duration(c.SessionTimeoutMinutes) * time.Minute,
	}
}

type ContentFilterConfig struct {
	HarmfulPatterns   []string `yaml:"harmful_patterns"`
	SensitivePatterns []string `yaml:"sensitive_patterns"`
}

type PIIPatternConfig struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

type PIIConfig struct {
	Patterns []PIIPatternConfig `yaml:"patterns"`
}

type ContextConfig struct {
	MaxTurns            int      `yaml:"max_turns"`
	MaxContextLength    int      `yaml:"max_context_length"`
	InjectionIndicators []string `yaml:"injection_indicators"`
}

type OutputConfig struct {
	LeakIndicators    []string `yaml:"leak_indicators"`
	MaxResponseLength int      `yaml:"max_response_length"`
	MinOverlapRatio   float64  `yaml:"min_overlap_ratio"`
}

type ModerationConfig struct {
	Provider       string `yaml:"provider"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (c ModerationConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func applyDefaults(cfg *GuardrailsConfig) {
	if cfg.Limits.MessagesPerMinute == 0 {
		cfg.Limits.MessagesPerMinute = 10
	}
	if cfg.Limits.MessagesPerHour == 0 {
		cfg.Limits.MessagesPerHour = 100
	}
	if cfg.Limits.WarningsPerSession == 0 {
		cfg.Limits.WarningsPerSession = 3
	}
	if cfg.Limits.SessionTimeoutMinutes == 0 {
		cfg.Limits.SessionTimeoutMinutes = 30
	}

	if len(cfg.ContentFilter.HarmfulPatterns) == 0 {
		cfg.ContentFilter.HarmfulPatterns = checks.DefaultHarmfulPatterns
	}
	if len(cfg.ContentFilter.SensitivePatterns) == 0 {
		cfg.ContentFilter.SensitivePatterns = checks.DefaultSensitivePatterns
	}

	if len(cfg.PII.Patterns) == 0 {
		for _, p := range checks.DefaultPIIPatterns {
			cfg.PII.Patterns = append(cfg.PII.Patterns, PIIPatternConfig{Name: p.Name, Pattern: p.Pattern})
		}
	}

	if cfg.Context.MaxTurns == 0 {
		cfg.Context.MaxTurns = checks.DefaultMaxTurns
	}
	if cfg.Context.MaxContextLength == 0 {
		cfg.Context.MaxContextLength = checks.DefaultMaxContextLength
	}
	if len(cfg.Context.InjectionIndicators) == 0 {
		cfg.Context.InjectionIndicators = checks.DefaultInjectionIndicators
	}

	if len(cfg.Output.LeakIndicators) == 0 {
		cfg.Output.LeakIndicators = checks.DefaultLeakIndicators
	}
	if cfg.Output.MaxResponseLength == 0 {
		cfg.Output.MaxResponseLength = checks.DefaultMaxResponseLength
	}
	if cfg.Output.MinOverlapRatio == 0 {
		cfg.Output.MinOverlapRatio = checks.DefaultMinOverlapRatio
	}

	if cfg.Moderation.Provider == "" {
		cfg.Moderation.Provider = "openai"
	}
	if cfg.Moderation.TimeoutSeconds == 0 {
		cfg.Moderation.TimeoutSeconds = 10
	}
}

func (cfg *GuardrailsConfig) Validate() error {
	for _, p := range cfg.ContentFilter.HarmfulPatterns {
		if _, err := regexp.Compile("(?i)" + p); err != nil {
			return fmt.Errorf("invalid harmful pattern %q: %w", p, err)
		}
	}
	for _, p := range cfg.ContentFilter.SensitivePatterns {
		if _, err := regexp.Compile("(?i)" + p); err != nil {
			return fmt.Errorf("invalid sensitive pattern %q: %w", p, err)
		}
	}
	for _, p := range cfg.PII.Patterns {
		if p.Name == "" {
			return fmt.Errorf("pii pattern with empty name")
		}
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return fmt.Errorf("invalid pii pattern %s: %w", p.Name, err)
		}
	}

	switch cfg.Moderation.Provider {
	case "openai", "bedrock":
	default:
		return fmt.Errorf("unknown moderation provider %q", cfg.Moderation.Provider)
	}

	for level := range cfg.SafetyResponses {
		switch level {
		case "warning", "unsafe", "blocked":
		default:
			return fmt.Errorf("unknown safety response level %q", level)
		}
	}

	return nil
}
