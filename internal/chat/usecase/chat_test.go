package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chatbot-gateway/internal/chat"
	"chatbot-gateway/internal/chat/repository"
	"chatbot-gateway/internal/chat/usecase"
	"chatbot-gateway/internal/model"
	"chatbot-gateway/pkg/gemini"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockHistoryRepo struct {
	history    []model.Turn
	failList   bool
	failAppend bool

	listCalls   int
	appendCalls int
	appended    []repository.AppendTurnOptions
}

func (m *mockHistoryRepo) AppendTurn(ctx context.Context, opt repository.AppendTurnOptions) error {
	m.appendCalls++
	if m.failAppend {
		return repository.ErrFailedToAppend
	}
	m.appended = append(m.appended, opt)
	return nil
}

func (m *mockHistoryRepo) ListTurns(ctx context.Context, sessionID string) ([]model.Turn, error) {
	m.listCalls++
	if m.failList {
		return nil, repository.ErrFailedToList
	}
	return m.history, nil
}

// newMockGemini serves canned Gemini responses keyed on prompt markers,
// recording every received prompt.
func newMockGemini(t *testing.T, prompts *[]string) *gemini.Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		prompt := req.Contents[0].Parts[0].Text
		*prompts = append(*prompts, prompt)

		switch {
		case strings.Contains(prompt, "cause_upstream_500"):
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "model exploded"}`))
		case strings.Contains(prompt, "cause_empty_candidates"):
			w.Write([]byte(`{"candidates": []}`))
		case strings.Contains(prompt, "cause_empty_parts"):
			w.Write([]byte(`{"candidates": [{"content": {"parts": []}}]}`))
		default:
			resp := gemini.GenerateResponse{
				Candidates: []gemini.Candidate{
					{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "echo: " + prompt}}}},
				},
			}
			json.NewEncoder(w).Encode(resp)
		}
	}))
	t.Cleanup(ts.Close)

	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)
	return client
}

func TestChat_Success(t *testing.T) {
	var prompts []string
	repo := &mockHistoryRepo{
		history: []model.Turn{{User: "a", Bot: "b"}},
	}
	uc := usecase.New(&mockLogger{}, newMockGemini(t, &prompts), repo)

	out, err := uc.Chat(context.Background(), chat.ChatInput{SessionID: "s1", Message: "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantPrompt := "Previous conversation:\nUser: a\nBot: b\nUser: c"
	if len(prompts) != 1 || prompts[0] != wantPrompt {
		t.Errorf("model must receive the replayed history:\ngot:  %q\nwant: %q", prompts, wantPrompt)
	}
	if out.Reply != "echo: "+wantPrompt {
		t.Errorf("unexpected reply: %q", out.Reply)
	}

	if repo.appendCalls != 1 {
		t.Fatalf("expected exactly one append, got %d", repo.appendCalls)
	}
	saved := repo.appended[0]
	if saved.SessionID != "s1" || saved.User != "c" || saved.Bot != out.Reply {
		t.Errorf("persisted turn mismatch: %+v", saved)
	}
}

func TestChat_ValidationShortCircuits(t *testing.T) {
	cases := []struct {
		name  string
		input chat.ChatInput
		want  error
	}{
		{"Missing Message", chat.ChatInput{SessionID: "s1"}, chat.ErrMissingMessage},
		{"Missing Session", chat.ChatInput{Message: "hi"}, chat.ErrMissingSessionID},
		{"Missing Both", chat.ChatInput{}, chat.ErrMissingMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var prompts []string
			repo := &mockHistoryRepo{}
			uc := usecase.New(&mockLogger{}, newMockGemini(t, &prompts), repo)

			_, err := uc.Chat(context.Background(), tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if repo.listCalls != 0 || repo.appendCalls != 0 || len(prompts) != 0 {
				t.Errorf("validation failure must cause zero side effects: list=%d append=%d llm=%d",
					repo.listCalls, repo.appendCalls, len(prompts))
			}
		})
	}
}

func TestChat_NoAPIKeyConfigured(t *testing.T) {
	repo := &mockHistoryRepo{}
	uc := usecase.New(&mockLogger{}, nil, repo)

	_, err := uc.Chat(context.Background(), chat.ChatInput{SessionID: "s1", Message: "hi"})
	if !errors.Is(err, chat.ErrLLMNotConfigured) {
		t.Fatalf("expected ErrLLMNotConfigured, got %v", err)
	}
	if repo.listCalls != 0 || repo.appendCalls != 0 {
		t.Errorf("missing key must short-circuit before any I/O")
	}
}

func TestChat_HistoryFetchFailure(t *testing.T) {
	var prompts []string
	repo := &mockHistoryRepo{failList: true}
	uc := usecase.New(&mockLogger{}, newMockGemini(t, &prompts), repo)

	_, err := uc.Chat(context.Background(), chat.ChatInput{SessionID: "s1", Message: "hi"})
	if !errors.Is(err, repository.ErrFailedToList) {
		t.Fatalf("expected wrapped ErrFailedToList, got %v", err)
	}
	if len(prompts) != 0 || repo.appendCalls != 0 {
		t.Errorf("store read failure must stop the turn before the model call")
	}
}

func TestChat_CompletionFailureIsNotPersisted(t *testing.T) {
	var prompts []string
	repo := &mockHistoryRepo{}
	uc := usecase.New(&mockLogger{}, newMockGemini(t, &prompts), repo)

	_, err := uc.Chat(context.Background(), chat.ChatInput{SessionID: "s1", Message: "cause_upstream_500"})
	if err == nil {
		t.Fatalf("expected completion error")
	}
	if repo.appendCalls != 0 {
		t.Errorf("a failed completion must not be persisted, got %d appends", repo.appendCalls)
	}
}

func TestChat_UnparseableModelOutputFallsBack(t *testing.T) {
	cases := []string{"cause_empty_candidates", "cause_empty_parts"}

	for _, message := range cases {
		t.Run(message, func(t *testing.T) {
			var prompts []string
			repo := &mockHistoryRepo{}
			uc := usecase.New(&mockLogger{}, newMockGemini(t, &prompts), repo)

			out, err := uc.Chat(context.Background(), chat.ChatInput{SessionID: "s1", Message: message})
			if err != nil {
				t.Fatalf("lenient parsing must not fail the turn: %v", err)
			}
			if out.Reply != usecase.FallbackReply {
				t.Errorf("expected fallback reply, got %q", out.Reply)
			}
			if repo.appendCalls != 1 || repo.appended[0].Bot != usecase.FallbackReply {
				t.Errorf("fallback turn must still be persisted: calls=%d appended=%+v",
					repo.appendCalls, repo.appended)
			}
		})
	}
}

func TestChat_PersistFailureFailsTheRequest(t *testing.T) {
	var prompts []string
	repo := &mockHistoryRepo{failAppend: true}
	uc := usecase.New(&mockLogger{}, newMockGemini(t, &prompts), repo)

	_, err := uc.Chat(context.Background(), chat.ChatInput{SessionID: "s1", Message: "hi"})
	if !errors.Is(err, repository.ErrFailedToAppend) {
		t.Fatalf("expected wrapped ErrFailedToAppend, got %v", err)
	}
	// The model was called (no undo exists), but the caller still gets an error.
	if len(prompts) != 1 {
		t.Errorf("expected the model call to have happened, got %d", len(prompts))
	}
}

func TestChat_FirstTurnUsesNoHistoryMarker(t *testing.T) {
	var prompts []string
	repo := &mockHistoryRepo{}
	uc := usecase.New(&mockLogger{}, newMockGemini(t, &prompts), repo)

	if _, err := uc.Chat(context.Background(), chat.ChatInput{SessionID: "fresh", Message: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := fmt.Sprintf("%s\n%s\nUser: hello", usecase.PromptPreamble, usecase.PromptNoHistory)
	if prompts[0] != want {
		t.Errorf("first turn prompt mismatch:\ngot:  %q\nwant: %q", prompts[0], want)
	}
}
