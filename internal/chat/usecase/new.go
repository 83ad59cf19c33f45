package usecase

import (
	"chatbot-gateway/internal/chat/repository"
	"chatbot-gateway/pkg/gemini"
	pkgLog "chatbot-gateway/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	llm  *gemini.Client
	repo repository.HistoryRepository
}

// New creates a new chat UseCase instance. llm may be nil when no API key
// is configured; Chat then fails per request instead of at startup.
func New(l pkgLog.Logger, llm *gemini.Client, repo repository.HistoryRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		llm:  llm,
		repo: repo,
	}
}
