package middleware

import (
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Logger records method, path, status and latency for every request.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request handled")
}

// RecoverPanic converts handler panics into a 500 error response.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Str("path", req.Request.URL.Path).Msg("handler panicked")
			HandleError(resp, nil, http.StatusInternalServerError)
		}
	}()
	chain.ProcessFilter(req, resp)
}

// HandleError writes a JSON error envelope with the given status.
func HandleError(resp *restful.Response, err error, status int) {
	message := http.StatusText(status)
	if err != nil {
		message = err.Error()
	}
	if writeErr := resp.WriteHeaderAndEntity(status, ErrorResponse{Error: message}); writeErr != nil {
		log.Error().Err(writeErr).Msg("failed to write error response")
	}
}
