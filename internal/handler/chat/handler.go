package chat

import (
	"context"
	"encoding/json"
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/medmind/backend/internal/model/chat"
	"github.com/zhouzirui/medmind/backend/pkg/utils"
)

// EmptyMessageReply asks the user to write something.
const EmptyMessageReply = "Please share a message so I can support you."

// Replier produces the reply text for a normalized chat request.
type Replier interface {
	Reply(ctx context.Context, req chat.Request) string
}

// Handler 聊天服务的HTTP处理器
type Handler struct {
	replier Replier
}

// New 创建聊天处理器
func New(replier Replier) *Handler {
	return &Handler{replier: replier}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// handleChat 生成一条回复
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chat.Request
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			// 无法解析的请求体按空请求处理。
			payload = chat.Request{}
		}
	}
	payload = payload.Normalize()

	if payload.Message == "" {
		utils.RespondJSON(w, http.StatusBadRequest, chat.Reply{Reply: EmptyMessageReply})
		return
	}

	reply := h.replier.Reply(r.Context(), payload)
	log.Printf("[chat] replied message_len=%d reply_len=%d", len(payload.Message), len(reply))
	utils.RespondJSON(w, http.StatusOK, chat.Reply{Reply: reply})
}

// isJSON reports whether the request declares a JSON body
// (application/json or application/*+json).
func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	if mediaType == "application/json" {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}
