package http

import (
	"github.com/gin-gonic/gin"

	"chatbot-gateway/pkg/response"
)

// Chat godoc
// @Summary     Run one chat turn
// @Description Sends a user message for the given session, replays the stored history as model context, persists the new turn, and returns the bot reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Turn payload"
// @Success     200 {object} response.ReplyResp
// @Failure     400 {object} response.ErrorResp "Message or sessionId is missing"
// @Failure     405 {string} string "Method Not Allowed"
// @Failure     500 {object} response.ErrorResp "Internal failure (detail logged, not returned)"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.MessageMissingFields)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.mapError(c, err)
		return
	}

	response.Reply(c, output.Reply)
}
