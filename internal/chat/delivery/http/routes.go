package http

import (
	"github.com/gin-gonic/gin"

	"chatbot-gateway/pkg/response"
)

// RegisterRoutes maps the chat entry point. Only POST is accepted; the
// engine's no-method handler (registered in httpserver) answers 405 for
// every other verb.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/chat", h.Chat)
}

// MethodNotAllowed is the engine-wide handler for verbs without a route.
func MethodNotAllowed(c *gin.Context) {
	response.MethodNotAllowed(c)
}
