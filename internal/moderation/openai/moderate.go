package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/moderation"
)

// Category names as published by the omni moderation model. This enumeration
// is part of the provider contract; new categories require a code change.
const (
	CategoryHarassment           = "harassment"
	CategoryHarassmentThreat     = "harassment/threatening"
	CategoryHate                 = "hate"
	CategoryHateThreat           = "hate/threatening"
	CategoryIllicit              = "illicit"
	CategoryIllicitViolent       = "illicit/violent"
	CategorySelfHarm             = "self-harm"
	CategorySelfHarmInstructions = "self-harm/instructions"
	CategorySelfHarmIntent       = "self-harm/intent"
	CategorySexual               = "sexual"
	CategorySexualMinors         = "sexual/minors"
	CategoryViolence             = "violence"
	CategoryViolenceGraphic      = "violence/graphic"
)

func (c *Client) Moderate(ctx context.Context, text string) (*moderation.Verdict, error) {
	response, err := c.Client.Moderations.New(ctx, openai.ModerationNewParams{
		Input: openai.ModerationNewParamsInputUnion{
			OfString: openai.String(text),
		},
		Model: openai.ModerationModel(c.ModelID),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to call moderation API: %w", err)
	}

	if len(response.Results) == 0 {
		return nil, fmt.Errorf("no results in moderation response")
	}

	return toVerdict(response.Results[0]), nil
}

func toVerdict(result openai.Moderation) *moderation.Verdict {
	categories := result.Categories
	scores := result.CategoryScores

	return &moderation.Verdict{
		Flagged: result.Flagged,
		Categories: map[string]bool{
			CategoryHarassment:           categories.Harassment,
			CategoryHarassmentThreat:     categories.HarassmentThreatening,
			CategoryHate:                 categories.Hate,
			CategoryHateThreat:           categories.HateThreatening,
			CategoryIllicit:              categories.Illicit,
			CategoryIllicitViolent:       categories.IllicitViolent,
			CategorySelfHarm:             categories.SelfHarm,
			CategorySelfHarmInstructions: categories.SelfHarmInstructions,
			CategorySelfHarmIntent:       categories.SelfHarmIntent,
			CategorySexual:               categories.Sexual,
			CategorySexualMinors:         categories.SexualMinors,
			CategoryViolence:             categories.Violence,
			CategoryViolenceGraphic:      categories.ViolenceGraphic,
		},
		CategoryScores: map[string]float64{
			CategoryHarassment:           scores.Harassment,
			CategoryHarassmentThreat:     scores.HarassmentThreatening,
			CategoryHate:                 scores.Hate,
			CategoryHateThreat:           scores.HateThreatening,
			CategoryIllicit:              scores.Illicit,
			CategoryIllicitViolent:       scores.IllicitViolent,
			CategorySelfHarm:             scores.SelfHarm,
			CategorySelfHarmInstructions: scores.SelfHarmInstructions,
			CategorySelfHarmIntent:       scores.SelfHarmIntent,
			CategorySexual:               scores.Sexual,
			CategorySexualMinors:         scores.SexualMinors,
			CategoryViolence:             scores.Violence,
			CategoryViolenceGraphic:      scores.ViolenceGraphic,
		},
	}
}
