package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/medmind/backend/internal/model/chat"
)

type recordingReplier struct {
	reply string
	got   []chat.Request
}

func (r *recordingReplier) Reply(_ context.Context, req chat.Request) string {
	r.got = append(r.got, req)
	return r.reply
}

func setupRouter(reply string) (*chi.Mux, *recordingReplier) {
	replier := &recordingReplier{reply: reply}
	r := chi.NewRouter()
	New(replier).RegisterRoutes(r)
	return r, replier
}

func postChat(r http.Handler, body []byte) *httptest.ResponseRecorder {
	return postChatAs(r, "application/json", body)
}

func postChatAs(r http.Handler, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeReply(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("expected a single reply field, got %v", body)
	}
	return body["reply"]
}

func TestChatTrimsFieldsAndReplies(t *testing.T) {
	r, replier := setupRouter("Let's breathe together.")

	resp := postChat(r, []byte(`{"message": "  I feel anxious ", "name": " Sam ", "mood": " Stressed "}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := decodeReply(t, resp); got != "Let's breathe together." {
		t.Fatalf("unexpected reply: %q", got)
	}
	want := chat.Request{Message: "I feel anxious", Name: "Sam", Mood: "Stressed"}
	if len(replier.got) != 1 || replier.got[0] != want {
		t.Fatalf("unexpected request passed to replier: %+v", replier.got)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	bodies := map[string]string{
		"empty string": `{"message": ""}`,
		"whitespace":   `{"message": "   \n"}`,
		"missing":      `{"name": "Sam"}`,
		"null":         `{"message": null}`,
		"invalid json": `not json`,
		"empty body":   ``,
		"wrong type":   `{"message": 42}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			r, replier := setupRouter("unused")
			resp := postChat(r, []byte(body))

			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
			if got := decodeReply(t, resp); got != EmptyMessageReply {
				t.Fatalf("unexpected reply: %q", got)
			}
			if len(replier.got) != 0 {
				t.Fatalf("replier must not be called, got %d calls", len(replier.got))
			}
		})
	}
}

func TestChatRequiresJSONContentType(t *testing.T) {
	body := []byte(`{"message": "hi"}`)

	for _, ct := range []string{"", "text/plain", "application/x-www-form-urlencoded"} {
		t.Run("rejects "+ct, func(t *testing.T) {
			r, replier := setupRouter("unused")
			resp := postChatAs(r, ct, body)

			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
			if got := decodeReply(t, resp); got != EmptyMessageReply {
				t.Fatalf("unexpected reply: %q", got)
			}
			if len(replier.got) != 0 {
				t.Fatalf("replier must not be called, got %d calls", len(replier.got))
			}
		})
	}

	for _, ct := range []string{"application/json; charset=utf-8", "Application/JSON", "application/vnd.medmind+json"} {
		t.Run("accepts "+ct, func(t *testing.T) {
			r, replier := setupRouter("hello")
			resp := postChatAs(r, ct, body)

			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			if len(replier.got) != 1 || replier.got[0].Message != "hi" {
				t.Fatalf("unexpected request passed to replier: %+v", replier.got)
			}
		})
	}
}
