package models

import (
	"encoding/json"
	"testing"
)

func TestSafetyLevel_Ordering(t *testing.T) {
	if !(LevelSafe < LevelWarning && LevelWarning < LevelUnsafe && LevelUnsafe < LevelBlocked) {
		t.Error("severity ordering broken")
	}
}

func TestMaxLevel(t *testing.T) {
	tests := []struct {
		name    string
		results []GuardrailResult
		want    SafetyLevel
	}{
		{
			name:    "Empty defaults to safe",
			results: nil,
			want:    LevelSafe,
		},
		{
			name: "Blocked dominates",
			results: []GuardrailResult{
				{SafetyLevel: LevelWarning},
				{SafetyLevel: LevelBlocked},
				{SafetyLevel: LevelSafe},
			},
			want: LevelBlocked,
		},
		{
			name: "Unsafe over warning",
			results: []GuardrailResult{
				{SafetyLevel: LevelWarning},
				{SafetyLevel: LevelUnsafe},
			},
			want: LevelUnsafe,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := MaxLevel(test.results); got != test.want {
				t.Errorf("MaxLevel: %s, want: %s", got, test.want)
			}
		})
	}
}

func TestSafetyLevel_TextRoundTrip(t *testing.T) {
	for _, level := range []SafetyLevel{LevelSafe, LevelWarning, LevelUnsafe, LevelBlocked} {
		text, err := level.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", level, err)
		}

		var parsed SafetyLevel
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if parsed != level {
			t.Errorf("round trip: %s -> %s", level, parsed)
		}
	}

	var bad SafetyLevel
	if err := bad.UnmarshalText([]byte("catastrophic")); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestSessionStats_WireFieldNames(t *testing.T) {
	data, err := json.Marshal(SessionStats{
		MessageCount:     2,
		WarningCount:     1,
		SessionDuration:  12.5,
		ViolationHistory: []Violation{},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	for _, key := range []string{"message_count", "warning_count", "session_duration", "violation_history"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing field %q in %s", key, data)
		}
	}
}
