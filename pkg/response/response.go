package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Reply sends 200 with the bot reply.
func Reply(c *gin.Context, reply string) {
	c.JSON(http.StatusOK, ReplyResp{Reply: reply})
}

// BadRequest sends 400 with the given client-facing message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResp{Error: message})
}

// InternalError sends 500 with the fixed opaque message.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: MessageInternalError})
}

// MethodNotAllowed sends a plain 405.
func MethodNotAllowed(c *gin.Context) {
	c.String(http.StatusMethodNotAllowed, MessageNotAllowed)
}
