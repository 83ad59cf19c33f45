package http

import "chatbot-gateway/internal/chat"

// chatReq is the inbound turn payload. Field presence is validated in the
// use case so that the public error message stays uniform for both
// missing and empty values.
type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}
