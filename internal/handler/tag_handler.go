package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolfinder/internal/service"
)

// TagHandler 标签处理器
type TagHandler struct {
	svc *service.Services
}

// NewTagHandler 创建标签处理器
func NewTagHandler(svc *service.Services) *TagHandler {
	return &TagHandler{svc: svc}
}

// ListTags 获取标签列表
// @Summary      获取标签列表
// @Tags         标签
// @Produce      json
// @Success      200  {array}   model.Tag      "标签列表"
// @Failure      500  {object}  ErrorResponse  "服务器错误"
// @Router       /api/tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.svc.Catalog.ListTags(c.Request.Context())
	if err != nil {
		Error(c, err, "Failed to retrieve tags")
		return
	}
	Success(c, tags)
}
