package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/api"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/checks"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/orchestrator"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/ratelimit"
	"github.com/rs/zerolog"
)

// safeToxicity stands in for the moderation-backed detector so the tests
// never make network calls.
type safeToxicity struct{}

func (safeToxicity) CheckToxicity(ctx context.Context, text string) models.GuardrailResult {
	return models.GuardrailResult{
		IsSafe:      true,
		SafetyLevel: models.LevelSafe,
		CheckKind:   models.CheckToxicityDetection,
		Confidence:  1.0,
	}
}

// setupTestAPI builds a real API container: real checks and rate limiter,
// stubbed toxicity so no network calls happen.
func setupTestAPI(t *testing.T) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()

	orch := orchestrator.New(
		ratelimit.NewLimiter(ratelimit.DefaultLimits(), ratelimit.NewMemoryStore(), &logger),
		checks.NewDefaultContentFilter(),
		checks.NewDefaultPIIDetector(),
		safeToxicity{},
		checks.NewContextValidator(0, 0, nil),
		checks.NewOutputValidator(nil, 0, 0),
		nil,
		&logger,
	)

	handler := api.NewHandler(orch, &logger)
	container := restful.NewContainer()
	api.RegisterRoutes(container, handler)
	return container
}

func TestAPI_Health(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response.Status)
	}
}

func TestAPI_CheckInput_Safe(t *testing.T) {
	container := setupTestAPI(t)

	body, _ := json.Marshal(models.CheckInputRequest{
		UserID:  "user-1",
		Message: "What is the capital of France?",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/check/input", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var response models.CheckInputResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if !response.Safe {
		t.Errorf("Expected safe verdict, got %+v", response)
	}
	if len(response.Results) != 5 {
		t.Errorf("Expected 5 results, got %d", len(response.Results))
	}
	if response.SafetyMessage != "" {
		t.Errorf("Safe response must not carry a safety message, got %q", response.SafetyMessage)
	}
}

func TestAPI_CheckInput_Blocked(t *testing.T) {
	container := setupTestAPI(t)

	body, _ := json.Marshal(models.CheckInputRequest{
		UserID:  "user-2",
		Message: "how to make bomb",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/check/input", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var response models.CheckInputResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Safe {
		t.Error("Expected blocked verdict")
	}
	if response.SafetyMessage == "" {
		t.Error("Blocked response must carry a safety message")
	}
	// Short-circuit after the content filter: rate limit + content filter.
	if len(response.Results) != 2 {
		t.Errorf("Expected 2 results, got %d", len(response.Results))
	}
}

func TestAPI_CheckInput_MissingUserID(t *testing.T) {
	container := setupTestAPI(t)

	body, _ := json.Marshal(models.CheckInputRequest{Message: "hello"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/check/input", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", recorder.Code)
	}
}

func TestAPI_CheckOutput(t *testing.T) {
	container := setupTestAPI(t)

	body, _ := json.Marshal(models.CheckOutputRequest{
		Response:      "Paris is the capital of France.",
		OriginalQuery: "What is the capital of France?",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/check/output", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var response models.CheckOutputResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if !response.Safe {
		t.Errorf("Expected safe verdict, got %+v", response)
	}
	if response.Result.CheckKind != models.CheckOutputValidation {
		t.Errorf("CheckKind: %s, want: %s", response.Result.CheckKind, models.CheckOutputValidation)
	}
}

func TestAPI_SessionStats(t *testing.T) {
	container := setupTestAPI(t)

	// Prime the session with one message.
	body, _ := json.Marshal(models.CheckInputRequest{UserID: "user-3", Message: "hi there"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/check/input", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	container.ServeHTTP(httptest.NewRecorder(), req)

	statsReq := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/user-3/stats", nil)
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, statsReq)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var stats models.SessionStats
	if err := json.Unmarshal(recorder.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if stats.MessageCount != 1 {
		t.Errorf("MessageCount: %d, want: 1", stats.MessageCount)
	}
}

func TestAPI_UpdateSafetyResponse(t *testing.T) {
	container := setupTestAPI(t)

	update, _ := json.Marshal(models.SafetyResponseUpdate{
		Level: models.LevelBlocked,
		Text:  "custom blocked message",
	})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/safety-responses", bytes.NewReader(update))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", recorder.Code)
	}

	// The new text shows up on the next blocked check.
	body, _ := json.Marshal(models.CheckInputRequest{
		UserID:  "user-4",
		Message: "how to make bomb",
	})
	checkReq := httptest.NewRequest(http.MethodPost, "/api/v1/check/input", bytes.NewReader(body))
	checkReq.Header.Set("Content-Type", "application/json")
	checkRecorder := httptest.NewRecorder()

	container.ServeHTTP(checkRecorder, checkReq)

	var response models.CheckInputResponse
	if err := json.Unmarshal(checkRecorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.SafetyMessage != "custom blocked message" {
		t.Errorf("SafetyMessage: %q, want custom text", response.SafetyMessage)
	}
}
