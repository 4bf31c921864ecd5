package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/orchestrator"
)

// CheckInputArgs is the MCP tool input schema (matches HTTP API field names).
type CheckInputArgs struct {
	UserID  string               `json:"user_id" jsonschema:"session identifier for rate limiting and warnings"`
	Message string               `json:"message" jsonschema:"user message to screen"`
	History []models.ChatMessage `json:"history,omitempty" jsonschema:"optional conversation history"`
}

// CheckOutputArgs is the MCP tool input schema for output validation.
type CheckOutputArgs struct {
	Response      string `json:"response" jsonschema:"agent response to screen"`
	OriginalQuery string `json:"original_query" jsonschema:"user query the response answers"`
}

// SessionStatsArgs is the MCP tool input schema for session lookups.
type SessionStatsArgs struct {
	UserID string `json:"user_id" jsonschema:"session identifier"`
}

// NewCheckInputHandler returns a tool handler that screens user input through
// the full guardrail pipeline. Pass the returned function to mcp.AddTool.
func NewCheckInputHandler(orch *orchestrator.Orchestrator) func(context.Context, *mcp.CallToolRequest, CheckInputArgs) (*mcp.CallToolResult, models.CheckInputResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args CheckInputArgs) (*mcp.CallToolResult, models.CheckInputResponse, error) {
		safe, results := orch.CheckInput(ctx, args.UserID, args.Message, args.History)

		resp := models.CheckInputResponse{Safe: safe, Results: results}
		if !safe {
			resp.SafetyMessage = orch.GetSafetyResponse(results)
		}
		return nil, resp, nil
	}
}

// NewCheckOutputHandler returns a tool handler that validates an agent
// response before it reaches the user.
func NewCheckOutputHandler(orch *orchestrator.Orchestrator) func(context.Context, *mcp.CallToolRequest, CheckOutputArgs) (*mcp.CallToolResult, models.CheckOutputResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args CheckOutputArgs) (*mcp.CallToolResult, models.CheckOutputResponse, error) {
		safe, result := orch.CheckOutput(ctx, args.Response, args.OriginalQuery)

		resp := models.CheckOutputResponse{Safe: safe, Result: result}
		if !safe {
			resp.SafetyMessage = orch.GetSafetyResponse([]models.GuardrailResult{result})
		}
		return nil, resp, nil
	}
}

// NewSessionStatsHandler returns a tool handler that reports per-session
// rate limit counters and warning history.
func NewSessionStatsHandler(orch *orchestrator.Orchestrator) func(context.Context, *mcp.CallToolRequest, SessionStatsArgs) (*mcp.CallToolResult, models.SessionStats, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SessionStatsArgs) (*mcp.CallToolResult, models.SessionStats, error) {
		return nil, orch.GetSessionStats(args.UserID), nil
	}
}
