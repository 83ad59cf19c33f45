package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrMissingMessage   = errors.New("message is empty")
	ErrMissingSessionID = errors.New("sessionId is empty")
	ErrLLMNotConfigured = errors.New("gemini API key is not configured")
)
