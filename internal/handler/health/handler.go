package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/medmind/backend/pkg/utils"
)

// Status is the liveness payload. It never carries the credential itself.
type Status struct {
	Status    string `json:"status"`
	Model     string `json:"model"`
	HasAPIKey bool   `json:"has_api_key"`
}

// Handler reports process liveness and generation configuration.
type Handler struct {
	model     string
	hasAPIKey bool
}

// New 创建健康检查处理器
func New(model string, hasAPIKey bool) *Handler {
	return &Handler{model: model, hasAPIKey: hasAPIKey}
}

// RegisterRoutes 注册健康检查路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, Status{
		Status:    "ok",
		Model:     h.model,
		HasAPIKey: h.hasAPIKey,
	})
}
