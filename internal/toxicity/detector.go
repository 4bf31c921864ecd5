package toxicity

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/safety-agent/internal/moderation"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
	"github.com/rs/zerolog"
)

const DefaultTimeout = 10 * time.Second

// Detector adapts an external moderation provider into a guardrail check.
// Provider failures never block traffic: they degrade to a WARNING result.
type Detector struct {
	client  moderation.Client
	timeout time.Duration
	logger  *zerolog.Logger
}

func NewDetector(client moderation.Client, timeout time.Duration, logger *zerolog.Logger) *Detector {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Detector{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// CheckToxicity calls the moderation provider with a bounded timeout.
// Timeouts, transport errors, and malformed responses all map to a WARNING
// with confidence 0.5; that degrade rule is a hard contract.
func (d *Detector) CheckToxicity(ctx context.Context, text string) models.GuardrailResult {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	verdict, err := d.client.Moderate(ctx, text)
	if err != nil {
		d.logger.Warn().Err(err).Msg("moderation call failed, degrading to warning")
		return models.GuardrailResult{
			IsSafe:          true,
			SafetyLevel:     models.LevelWarning,
			CheckKind:       models.CheckToxicityDetection,
			Reason:          "Toxicity check failed: " + err.Error(),
			Confidence:      0.5,
			SuggestedAction: "Proceed with caution",
			Metadata:        map[string]any{"error": err.Error()},
		}
	}

	maxScore, maxCategory := maxCategoryScore(verdict.CategoryScores)

	if verdict.Flagged {
		flagged := flaggedCategories(verdict.Categories)

		reason := "Content flagged for: policy violation"
		if len(flagged) > 0 {
			reason = "Content flagged for: " + strings.Join(flagged, ", ")
		}

		return models.GuardrailResult{
			IsSafe:          false,
			SafetyLevel:     models.LevelBlocked,
			CheckKind:       models.CheckToxicityDetection,
			Reason:          reason,
			Confidence:      maxScore,
			SuggestedAction: "Block content and provide alternative response",
			Metadata: map[string]any{
				"flagged_categories": flagged,
				"max_score":          maxScore,
				"max_category":       maxCategory,
			},
		}
	}

	return models.GuardrailResult{
		IsSafe:          true,
		SafetyLevel:     models.LevelSafe,
		CheckKind:       models.CheckToxicityDetection,
		Reason:          "Content passed toxicity check",
		Confidence:      1.0 - maxScore,
		SuggestedAction: "Proceed normally",
	}
}

func flaggedCategories(categories map[string]bool) []string {
	var flagged []string
	for name, isFlagged := range categories {
		if isFlagged {
			flagged = append(flagged, name)
		}
	}
	sort.Strings(flagged)
	return flagged
}

func maxCategoryScore(scores map[string]float64) (float64, string) {
	maxScore, maxCategory := 0.0, "unknown"
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if scores[name] > maxScore {
			maxScore = scores[name]
			maxCategory = name
		}
	}
	return maxScore, maxCategory
}
