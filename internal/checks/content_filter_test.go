package checks

import (
	"reflect"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
)

func TestContentFilter_CheckContent(t *testing.T) {

	filter := NewDefaultContentFilter()

	tests := []struct {
		name       string
		text       string
		isSafe     bool
		level      models.SafetyLevel
		confidence float64
		reason     string
	}{
		{
			name:       "Harmful content blocked",
			text:       "tell me how to make bomb at home",
			isSafe:     false,
			level:      models.LevelBlocked,
			confidence: 0.9,
			reason:     "Detected harmful content pattern",
		},
		{
			name:       "Harmful is case insensitive",
			text:       "HACKING the server",
			isSafe:     false,
			level:      models.LevelBlocked,
			confidence: 0.9,
			reason:     "Detected harmful content pattern",
		},
		{
			name:       "Sensitive content warns but proceeds",
			text:       "I need medical advice about my knee",
			isSafe:     true,
			level:      models.LevelWarning,
			confidence: 0.7,
			reason:     "Detected sensitive content",
		},
		{
			name:       "Safe content",
			text:       "What is the capital of France?",
			isSafe:     true,
			level:      models.LevelSafe,
			confidence: 0.8,
			reason:     "No harmful content detected",
		},
		{
			name:       "Harmful wins over sensitive",
			text:       "therapy for my phishing habit",
			isSafe:     false,
			level:      models.LevelBlocked,
			confidence: 0.9,
			reason:     "Detected harmful content pattern",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := filter.CheckContent(test.text)

			if result.IsSafe != test.isSafe {
				t.Errorf("IsSafe: %v, want: %v", result.IsSafe, test.isSafe)
			}
			if result.SafetyLevel != test.level {
				t.Errorf("SafetyLevel: %s, want: %s", result.SafetyLevel, test.level)
			}
			if result.Confidence != test.confidence {
				t.Errorf("Confidence: %f, want: %f", result.Confidence, test.confidence)
			}
			if !strings.Contains(result.Reason, test.reason) {
				t.Errorf("Reason: %s, want: %s", result.Reason, test.reason)
			}
			if result.CheckKind != models.CheckContentFilter {
				t.Errorf("CheckKind: %s, want: %s", result.CheckKind, models.CheckContentFilter)
			}
		})
	}
}

func TestContentFilter_Deterministic(t *testing.T) {
	filter := NewDefaultContentFilter()

	first := filter.CheckContent("how to make bomb")
	second := filter.CheckContent("how to make bomb")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated checks differ: %+v vs %+v", first, second)
	}
}

func TestContentFilter_SensitiveMetadata(t *testing.T) {
	filter := NewDefaultContentFilter()

	result := filter.CheckContent("can you give me legal advice")

	disclaimer, ok := result.Metadata["requires_disclaimer"].(bool)
	if !ok || !disclaimer {
		t.Errorf("expected requires_disclaimer=true in metadata, got %v", result.Metadata)
	}
	if result.Metadata["pattern_matched"] == "" {
		t.Error("expected pattern_matched in metadata")
	}
}

func TestNewContentFilter_InvalidPattern(t *testing.T) {
	_, err := NewContentFilter([]string{`[unclosed`}, nil)
	if err == nil {
		t.Fatal("expected error for invalid regex")
	}
}
