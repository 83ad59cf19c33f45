package usecase

import (
	"context"
	"fmt"

	"chatbot-gateway/internal/chat"
	"chatbot-gateway/internal/chat/repository"
	"chatbot-gateway/pkg/gemini"
)

// FallbackReply is returned (and persisted) when the model response has
// no extractable text. The turn still round-trips as a success.
const FallbackReply = "No reply from the bot."

// Chat runs one conversation turn:
// validate → fetch history → compose → generate → persist → respond.
// The steps are strictly sequential; a failure at any point fails the
// whole request, and nothing is persisted unless the model call
// succeeded. A reply is only returned once its turn is durably stored.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	// 1. Validate before any I/O.
	if input.Message == "" {
		return chat.ChatOutput{}, chat.ErrMissingMessage
	}
	if input.SessionID == "" {
		return chat.ChatOutput{}, chat.ErrMissingSessionID
	}
	if uc.llm == nil {
		return chat.ChatOutput{}, chat.ErrLLMNotConfigured
	}

	// 2. Fetch history.
	history, err := uc.repo.ListTurns(ctx, input.SessionID)
	if err != nil {
		return chat.ChatOutput{}, fmt.Errorf("failed to load history: %w", err)
	}

	// 3. Compose.
	prompt := BuildChatPrompt(history, input.Message)

	// 4. Complete. On failure the turn is not persisted: a half
	// conversation must not be saved.
	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: prompt}}},
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.Chat: gemini call failed: %v", err)
		return chat.ChatOutput{}, fmt.Errorf("completion failed: %w", err)
	}

	reply := extractReply(resp)

	// 5. Persist. The model call has no undo, so a store failure here
	// still fails the request without compensation.
	if err := uc.repo.AppendTurn(ctx, repository.AppendTurnOptions{
		SessionID: input.SessionID,
		User:      input.Message,
		Bot:       reply,
	}); err != nil {
		return chat.ChatOutput{}, fmt.Errorf("failed to save turn: %w", err)
	}

	uc.l.Infof(ctx, "chat/usecase.Chat: session=%s history_turns=%d", input.SessionID, len(history))

	// 6. Respond.
	return chat.ChatOutput{Reply: reply}, nil
}

// extractReply pulls the first candidate's first text part. Any missing
// piece degrades to the fixed fallback instead of failing the turn.
func extractReply(resp *gemini.GenerateResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return FallbackReply
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return FallbackReply
	}
	return parts[0].Text
}
