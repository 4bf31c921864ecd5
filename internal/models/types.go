package models

import (
	"fmt"
	"time"
)

// SafetyLevel classifies the severity of a guardrail verdict.
// Levels are totally ordered: SAFE < WARNING < UNSAFE < BLOCKED.
type SafetyLevel int

const (
	LevelSafe SafetyLevel = iota
	LevelWarning
	LevelUnsafe
	LevelBlocked
)

func (l SafetyLevel) String() string {
	switch l {
	case LevelSafe:
		return "safe"
	case LevelWarning:
		return "warning"
	case LevelUnsafe:
		return "unsafe"
	case LevelBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("safety_level(%d)", int(l))
	}
}

func (l SafetyLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *SafetyLevel) UnmarshalText(text []byte) error {
	switch string(text) {
	case "safe":
		*l = LevelSafe
	case "warning":
		*l = LevelWarning
	case "unsafe":
		*l = LevelUnsafe
	case "blocked":
		*l = LevelBlocked
	default:
		return fmt.Errorf("unknown safety level %q", string(text))
	}
	return nil
}

// MaxLevel returns the most severe level across the given results.
func MaxLevel(results []GuardrailResult) SafetyLevel {
	max := LevelSafe
	for _, r := range results {
		if r.SafetyLevel > max {
			max = r.SafetyLevel
		}
	}
	return max
}

// CheckKind identifies which guardrail produced a result.
type CheckKind string

const (
	CheckContentFilter     CheckKind = "content_filter"
	CheckPIIDetection      CheckKind = "pii_detection"
	CheckRateLimiting      CheckKind = "rate_limiting"
	CheckContextValidation CheckKind = "context_validation"
	CheckOutputValidation  CheckKind = "output_validation"
	CheckToxicityDetection CheckKind = "toxicity_detection"
)

// GuardrailResult is the immutable outcome of a single guardrail check.
type GuardrailResult struct {
	IsSafe          bool           `json:"is_safe"`
	SafetyLevel     SafetyLevel    `json:"safety_level"`
	CheckKind       CheckKind      `json:"check_kind"`
	Reason          string         `json:"reason"`
	Confidence      float64        `json:"confidence"`
	SuggestedAction string         `json:"suggested_action"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// ChatMessage is one turn of caller-supplied conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionStats is a read-only snapshot of a user's rate-limit session.
type SessionStats struct {
	MessageCount     int         `json:"message_count"`
	WarningCount     int         `json:"warning_count"`
	SessionDuration  float64     `json:"session_duration"`
	ViolationHistory []Violation `json:"violation_history"`
}

// Violation is one append-only audit entry in a user session.
type Violation struct {
	At     time.Time `json:"at"`
	Reason string    `json:"reason"`
}

// CheckEvent is the message consumed from the chat-events stream.
type CheckEvent struct {
	EventID string        `json:"event_id"`
	UserID  string        `json:"user_id"`
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

// Input message for the input pipeline.
type CheckInputRequest struct {
	UserID  string        `json:"user_id"`
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

type CheckInputResponse struct {
	Safe          bool              `json:"safe"`
	Results       []GuardrailResult `json:"results"`
	SafetyMessage string            `json:"safety_message,omitempty"`
}

// Input message for the output pipeline.
type CheckOutputRequest struct {
	Response      string `json:"response"`
	OriginalQuery string `json:"original_query"`
}

type CheckOutputResponse struct {
	Safe          bool            `json:"safe"`
	Result        GuardrailResult `json:"result"`
	SafetyMessage string          `json:"safety_message,omitempty"`
}

// SafetyResponseUpdate is the operator override for one severity level.
type SafetyResponseUpdate struct {
	Level SafetyLevel `json:"level"`
	Text  string      `json:"text"`
}
