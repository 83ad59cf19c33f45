package usecase

import (
	"strings"

	"chatbot-gateway/internal/model"
)

// Prompt lines. The model is expected to continue the transcript with the
// next "Bot:" turn, so the prompt ends on the new user line.
const (
	PromptPreamble  = "Previous conversation:"
	PromptNoHistory = "No previous history."
)

// BuildChatPrompt assembles the replay-style prompt from the stored
// history plus the new user message. Pure function: same inputs, same
// output. The full history is always replayed; windowing is a deliberate
// non-feature.
func BuildChatPrompt(history []model.Turn, newMessage string) string {
	var sb strings.Builder

	sb.WriteString(PromptPreamble)
	sb.WriteString("\n")

	if len(history) == 0 {
		sb.WriteString(PromptNoHistory)
		sb.WriteString("\n")
	} else {
		for _, turn := range history {
			sb.WriteString("User: ")
			sb.WriteString(turn.User)
			sb.WriteString("\nBot: ")
			sb.WriteString(turn.Bot)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("User: ")
	sb.WriteString(newMessage)

	return sb.String()
}
