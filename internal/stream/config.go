package stream

import (
	"github.com/povarna/generative-ai-agents/safety-agent/internal/stream/redis"
)

type StreamConfig struct {
	Provider    string // redis today; kafka, sqs, etc later
	RedisConfig *redis.RedisStreamConfig
}
