package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "chatbot-gateway/internal/chat/delivery/http"
	chatUC "chatbot-gateway/internal/chat/usecase"
	"chatbot-gateway/internal/middleware"
)

// setupChatDomain initializes the chat domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, deps...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h)
func (srv *HTTPServer) setupChatDomain(rg *gin.RouterGroup, _ middleware.Middleware) error {
	// 1. UseCase
	uc := chatUC.New(srv.l, srv.llm, srv.historyRepo)

	// 2. HTTP Handler
	h := chatHTTP.New(srv.l, uc)

	// 3. Routes: registers POST /chat
	chatHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(context.Background(), "Chat domain registered")
	return nil
}
