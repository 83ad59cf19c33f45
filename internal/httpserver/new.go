package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chatbot-gateway/internal/chat/repository"
	"chatbot-gateway/pkg/gemini"
	pkgLog "chatbot-gateway/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	llm         *gemini.Client
	historyRepo repository.HistoryRepository
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	// Chat domain. LLM may be nil (no API key configured); the chat
	// endpoint then answers 500 while health endpoints keep working.
	LLM         *gemini.Client
	HistoryRepo repository.HistoryRepository
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		llm:         cfg.LLM,
		historyRepo: cfg.HistoryRepo,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.historyRepo == nil {
		return errors.New("history repository is required")
	}
	return nil
}
