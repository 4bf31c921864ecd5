package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

type Client struct {
	Client           *bedrockruntime.Client
	GuardrailID      string
	GuardrailVersion string
}

func NewClient(ctx context.Context, region string, guardrailID string, guardrailVersion string) (*Client, error) {
	if guardrailID == "" {
		return nil, fmt.Errorf("Bedrock guardrail ID is required")
	}
	if guardrailVersion == "" {
		guardrailVersion = "DRAFT"
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("Unable to load AWS config: %w", err)
	}

	return &Client{
		Client:           bedrockruntime.NewFromConfig(cfg),
		GuardrailID:      guardrailID,
		GuardrailVersion: guardrailVersion,
	}, nil
}
