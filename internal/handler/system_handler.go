package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolfinder/internal/service"
)

// SystemHandler 系统处理器
type SystemHandler struct {
	svc *service.Services
}

// NewSystemHandler 创建系统处理器
func NewSystemHandler(svc *service.Services) *SystemHandler {
	return &SystemHandler{svc: svc}
}

// Health 健康检查
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{
		"status":          "ok",
		"storage":         h.svc.Config.Storage.Driver,
		"externalRanking": h.svc.ChatModel != nil,
		"searchHistory":   h.svc.History.Enabled(),
	}
	if _, err := h.svc.Catalog.ListCategories(ctx); err != nil {
		status["status"] = "degraded"
		status["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	Success(c, status)
}
