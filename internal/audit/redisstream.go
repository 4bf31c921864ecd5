package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisStreamSink publishes violations to a Redis stream so downstream
// consumers (alerting, analytics) can subscribe.
type RedisStreamSink struct {
	client *redis.Client
	stream string
}

func NewRedisStreamSink(client *redis.Client, stream string) *RedisStreamSink {
	if stream == "" {
		stream = "guardrail-violations"
	}
	return &RedisStreamSink{client: client, stream: stream}
}

func (s *RedisStreamSink) RecordViolation(ctx context.Context, userID string, violation models.Violation) error {
	payload, err := json.Marshal(map[string]any{
		"user_id":     userID,
		"reason":      violation.Reason,
		"occurred_at": violation.At,
	})
	if err != nil {
		return fmt.Errorf("failed to encode violation: %w", err)
	}

	err = s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{"payload": string(payload)},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish violation: %w", err)
	}
	return nil
}
