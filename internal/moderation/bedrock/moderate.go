package bedrock

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/moderation"
)

// Content-policy filter types reported by Bedrock guardrails. This
// enumeration is part of the provider contract.
const (
	CategoryHate         = "hate"
	CategoryInsults      = "insults"
	CategorySexual       = "sexual"
	CategoryViolence     = "violence"
	CategoryMisconduct   = "misconduct"
	CategoryPromptAttack = "prompt_attack"
)

var knownCategories = []string{
	CategoryHate,
	CategoryInsults,
	CategorySexual,
	CategoryViolence,
	CategoryMisconduct,
	CategoryPromptAttack,
}

func (c *Client) Moderate(ctx context.Context, text string) (*moderation.Verdict, error) {
	output, err := c.Client.ApplyGuardrail(ctx, &bedrockruntime.ApplyGuardrailInput{
		GuardrailIdentifier: aws.String(c.GuardrailID),
		GuardrailVersion:    aws.String(c.GuardrailVersion),
		Source:              types.GuardrailContentSourceInput,
		Content: []types.GuardrailContentBlock{
			&types.GuardrailContentBlockMemberText{
				Value: types.GuardrailTextBlock{Text: aws.String(text)},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to apply guardrail: %w", err)
	}

	return toVerdict(output), nil
}

func toVerdict(output *bedrockruntime.ApplyGuardrailOutput) *moderation.Verdict {
	verdict := &moderation.Verdict{
		Flagged:        output.Action == types.GuardrailActionGuardrailIntervened,
		Categories:     make(map[string]bool, len(knownCategories)),
		CategoryScores: make(map[string]float64, len(knownCategories)),
	}
	for _, name := range knownCategories {
		verdict.Categories[name] = false
		verdict.CategoryScores[name] = 0.0
	}

	for _, assessment := range output.Assessments {
		if assessment.ContentPolicy == nil {
			continue
		}
		for _, filter := range assessment.ContentPolicy.Filters {
			name := strings.ToLower(string(filter.Type))
			if _, known := verdict.Categories[name]; !known {
				continue
			}
			if filter.Action == types.GuardrailContentPolicyActionBlocked {
				verdict.Categories[name] = true
			}
			if score := confidenceScore(filter.Confidence); score > verdict.CategoryScores[name] {
				verdict.CategoryScores[name] = score
			}
		}
	}

	return verdict
}

// confidenceScore maps the guardrail confidence enum onto the [0,1] scale the
// toxicity detector expects.
func confidenceScore(confidence types.GuardrailContentFilterConfidence) float64 {
	switch confidence {
	case types.GuardrailContentFilterConfidenceHigh:
		return 0.99
	case types.GuardrailContentFilterConfidenceMedium:
		return 0.66
	case types.GuardrailContentFilterConfidenceLow:
		return 0.33
	default:
		return 0.0
	}
}
