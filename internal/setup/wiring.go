package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/audit"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/checks"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/config"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/moderation"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/moderation/bedrock"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/moderation/openai"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/orchestrator"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/ratelimit"
	red "github.com/povarna/generative-ai-agents/safety-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/toxicity"
	"github.com/rs/zerolog"
)

type Config struct {
	AWSRegion               string
	BedrockGuardrailID      string
	BedrockGuardrailVersion string
	OpenAIKey               string
	OpenAIModerationModel   string
	ModerationProvider      string
	AuditBackend            string
	PostgresURL             string
	RedisAddr               string
	RedisPassword           string
}

type Dependencies struct {
	Orchestrator *orchestrator.Orchestrator
	Logger       *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		AWSRegion:               getEnv("AWS_REGION", "us-east-1"),
		BedrockGuardrailID:      getEnv("BEDROCK_GUARDRAIL_ID", ""),
		BedrockGuardrailVersion: getEnv("BEDROCK_GUARDRAIL_VERSION", "DRAFT"),
		OpenAIKey:               getEnv("OPEN_AI_KEY", ""),
		OpenAIModerationModel:   getEnv("OPEN_AI_MODERATION_MODEL", ""),
		ModerationProvider:      getEnv("MODERATION_PROVIDER", ""),
		AuditBackend:            getEnv("AUDIT_BACKEND", "none"),
		PostgresURL:             getEnv("POSTGRES_URL", ""),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
	}
}

// Wire builds the full guardrails pipeline from environment and YAML config.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	guardCfg, err := config.LoadGuardrailsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load guardrails config: %w", err)
	}

	// Env overrides YAML for the provider choice.
	provider := guardCfg.Moderation.Provider
	if cfg.ModerationProvider != "" {
		provider = cfg.ModerationProvider
	}

	moderationClient, err := createModerationClient(ctx, provider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create moderation client: %w", err)
	}

	contentFilter, err := checks.NewContentFilter(
		guardCfg.ContentFilter.HarmfulPatterns,
		guardCfg.ContentFilter.SensitivePatterns,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build content filter: %w", err)
	}

	piiPatterns := make([]checks.PIIPattern, 0, len(guardCfg.PII.Patterns))
	for _, p := range guardCfg.PII.Patterns {
		piiPatterns = append(piiPatterns, checks.PIIPattern{Name: p.Name, Pattern: p.Pattern})
	}
	piiDetector, err := checks.NewPIIDetector(piiPatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to build pii detector: %w", err)
	}

	contextValidator := checks.NewContextValidator(
		guardCfg.Context.MaxTurns,
		guardCfg.Context.MaxContextLength,
		guardCfg.Context.InjectionIndicators,
	)

	outputValidator := checks.NewOutputValidator(
		guardCfg.Output.LeakIndicators,
		guardCfg.Output.MaxResponseLength,
		guardCfg.Output.MinOverlapRatio,
	)

	limiter := ratelimit.NewLimiter(guardCfg.Limits.ToLimits(), ratelimit.NewMemoryStore(), logger)

	detector := toxicity.NewDetector(moderationClient, guardCfg.Moderation.Timeout(), logger)

	auditSink, err := createAuditSink(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit sink: %w", err)
	}

	orch := orchestrator.New(
		limiter,
		contentFilter,
		piiDetector,
		detector,
		contextValidator,
		outputValidator,
		auditSink,
		logger,
	)

	applySafetyResponses(orch, guardCfg.SafetyResponses)

	return &Dependencies{
		Orchestrator: orch,
		Logger:       logger,
	}, nil
}

func createModerationClient(ctx context.Context, provider string, cfg *Config) (moderation.Client, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.BedrockGuardrailID, cfg.BedrockGuardrailVersion)
	case "openai", "":
		return openai.NewClient(cfg.OpenAIKey, cfg.OpenAIModerationModel)
	default:
		return nil, fmt.Errorf("unknown moderation provider %q", provider)
	}
}

func createAuditSink(ctx context.Context, cfg *Config, logger *zerolog.Logger) (audit.Sink, error) {
	switch cfg.AuditBackend {
	case "", "none":
		return audit.Noop{}, nil
	case "postgres":
		sink, err := audit.NewPostgresSink(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := sink.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return sink, nil
	case "redis":
		client, err := red.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 3, logger)
		if err != nil {
			return nil, err
		}
		return audit.NewRedisStreamSink(client, getEnv("AUDIT_STREAM", "guardrail-violations")), nil
	default:
		return nil, fmt.Errorf("unknown audit backend %q", cfg.AuditBackend)
	}
}

func applySafetyResponses(orch *orchestrator.Orchestrator, responses map[string]string) {
	for name, text := range responses {
		var level models.SafetyLevel
		// Validate() already rejected unknown level names.
		if err := level.UnmarshalText([]byte(name)); err != nil {
			continue
		}
		orch.AddCustomSafetyResponse(level, text)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
