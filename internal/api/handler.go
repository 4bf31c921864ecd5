package api

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/orchestrator"
	"github.com/rs/zerolog"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Handler struct {
	orchestrator *orchestrator.Orchestrator
	logger       *zerolog.Logger
}

func NewHandler(orch *orchestrator.Orchestrator, logger *zerolog.Logger) *Handler {
	return &Handler{
		orchestrator: orch,
		logger:       logger,
	}
}

// POST /api/v1/check/input
// Body: CheckInputRequest
// Returns: CheckInputResponse
func (h *Handler) CheckInput(req *restful.Request, resp *restful.Response) {
	var checkRequest models.CheckInputRequest
	if err := req.ReadEntity(&checkRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if checkRequest.UserID == "" {
		middleware.HandleError(resp, errMissingUserID, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("user_id", checkRequest.UserID).
		Int("history_turns", len(checkRequest.History)).
		Msg("Start input checks")

	ctx := req.Request.Context()
	safe, results := h.orchestrator.CheckInput(ctx, checkRequest.UserID, checkRequest.Message, checkRequest.History)

	response := models.CheckInputResponse{
		Safe:    safe,
		Results: results,
	}
	if !safe {
		response.SafetyMessage = h.orchestrator.GetSafetyResponse(results)
	}

	h.logger.Info().
		Str("user_id", checkRequest.UserID).
		Bool("safe", safe).
		Int("checks_run", len(results)).
		Msg("Input checks complete")

	resp.WriteHeaderAndEntity(http.StatusOK, response)
}

// POST /api/v1/check/output
// Body: CheckOutputRequest
// Returns: CheckOutputResponse
func (h *Handler) CheckOutput(req *restful.Request, resp *restful.Response) {
	var checkRequest models.CheckOutputRequest
	if err := req.ReadEntity(&checkRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	safe, result := h.orchestrator.CheckOutput(ctx, checkRequest.Response, checkRequest.OriginalQuery)

	response := models.CheckOutputResponse{
		Safe:   safe,
		Result: result,
	}
	if !safe {
		response.SafetyMessage = h.orchestrator.GetSafetyResponse([]models.GuardrailResult{result})
	}

	h.logger.Info().
		Bool("safe", safe).
		Str("check_kind", string(result.CheckKind)).
		Msg("Output checks complete")

	resp.WriteHeaderAndEntity(http.StatusOK, response)
}

// GET /api/v1/sessions/{user_id}/stats
func (h *Handler) SessionStats(req *restful.Request, resp *restful.Response) {
	userID := req.PathParameter("user_id")
	if userID == "" {
		middleware.HandleError(resp, errMissingUserID, http.StatusBadRequest)
		return
	}

	stats := h.orchestrator.GetSessionStats(userID)
	resp.WriteHeaderAndEntity(http.StatusOK, stats)
}

// PUT /api/v1/safety-responses
// Body: SafetyResponseUpdate
func (h *Handler) UpdateSafetyResponse(req *restful.Request, resp *restful.Response) {
	var update models.SafetyResponseUpdate
	if err := req.ReadEntity(&update); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.orchestrator.AddCustomSafetyResponse(update.Level, update.Text)

	h.logger.Info().
		Str("level", update.Level.String()).
		Msg("Safety response updated")

	resp.WriteHeader(http.StatusNoContent)
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
