package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/zhouzirui/medmind/backend/internal/config"
)

func TestOpenAIGeneratorMapsChoicesToCandidates(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": "You are not alone."}},
				{"index": 1, "message": map[string]string{"role": "assistant", "content": "second"}},
			},
		})
	}))
	defer srv.Close()

	maxTokens := 128
	gen := NewOpenAIGenerator(config.AIConfig{
		Provider:  config.ProviderOpenAI,
		APIKey:    "sk-test",
		Model:     "gpt-4o-mini",
		BaseURL:   srv.URL + "/v1",
		MaxTokens: &maxTokens,
	})

	result, err := gen.Generate(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}

	if result.Text != "" {
		t.Fatalf("expected no top-level text, got %q", result.Text)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(result.Candidates))
	}
	if reply := Extract(result); reply != "You are not alone." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if got.Model != "gpt-4o-mini" || got.MaxTokens != 128 {
		t.Fatalf("unexpected request: model=%s max_tokens=%d", got.Model, got.MaxTokens)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != openai.ChatMessageRoleUser || got.Messages[0].Content != "hello there" {
		t.Fatalf("unexpected messages: %+v", got.Messages)
	}
}

func TestOpenAIGeneratorServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream down","type":"server_error"}}`))
	}))
	defer srv.Close()

	gen := NewOpenAIGenerator(config.AIConfig{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	if _, err := gen.Generate(context.Background(), "hello"); err == nil {
		t.Fatal("expected error from failing service")
	}
}

func TestOpenAIGeneratorRejectsEmptyPrompt(t *testing.T) {
	gen := NewOpenAIGenerator(config.AIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"})
	if _, err := gen.Generate(context.Background(), "  "); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
}
