package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Chat runs one conversation turn: replays the session history as
	// context, asks the model for a reply, and persists the new turn.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
}
