package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chatbot-gateway/internal/chat"
	"chatbot-gateway/pkg/response"
)

// mapError translates use-case errors into the public wire responses.
// Validation errors are the client's fault; everything else collapses to
// the opaque 500; upstream detail stays in the logs.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrMissingMessage), errors.Is(err, chat.ErrMissingSessionID):
		response.BadRequest(c, response.MessageMissingFields)
	default:
		response.InternalError(c)
	}
}
