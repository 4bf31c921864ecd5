package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/safety-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/check/input").
			To(handler.CheckInput).
			Doc("Run the input guardrail pipeline on a user message").
			Metadata(restfulspec.KeyOpenAPITags, []string{"check"}).
			Reads(models.CheckInputRequest{}).
			Writes(models.CheckInputResponse{}).
			Returns(200, "OK", models.CheckInputResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/check/output").
			To(handler.CheckOutput).
			Doc("Validate a generated response before it reaches the user").
			Metadata(restfulspec.KeyOpenAPITags, []string{"check"}).
			Reads(models.CheckOutputRequest{}).
			Writes(models.CheckOutputResponse{}).
			Returns(200, "OK", models.CheckOutputResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/sessions/{user_id}/stats").
			To(handler.SessionStats).
			Doc("Session statistics for a user").
			Metadata(restfulspec.KeyOpenAPITags, []string{"sessions"}).
			Param(ws.PathParameter("user_id", "Opaque user identifier").DataType("string")).
			Writes(models.SessionStats{}).
			Returns(200, "OK", models.SessionStats{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.PUT("/safety-responses").
			To(handler.UpdateSafetyResponse).
			Doc("Override the user-facing safety message for a severity level").
			Metadata(restfulspec.KeyOpenAPITags, []string{"config"}).
			Reads(models.SafetyResponseUpdate{}).
			Returns(204, "No Content", nil).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	container.Add(ws)
}
