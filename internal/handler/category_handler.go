package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolfinder/internal/service"
)

// CategoryHandler 分类处理器
type CategoryHandler struct {
	svc *service.Services
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(svc *service.Services) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ListCategories 获取分类列表
// GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		Error(c, err, "Failed to retrieve categories")
		return
	}
	Success(c, categories)
}
