package chat

// ChatInput carries one inbound turn request.
type ChatInput struct {
	SessionID string
	Message   string
}

// ChatOutput carries the model reply for a completed turn.
type ChatOutput struct {
	Reply string
}
