package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashwinyue/toolfinder/internal/middleware"
	"github.com/ashwinyue/toolfinder/internal/service"
)

// SearchSourceHeader 标明搜索结果来源
const SearchSourceHeader = "X-Search-Source"

// SearchHandler 搜索处理器
type SearchHandler struct {
	svc *service.Services
}

// NewSearchHandler 创建搜索处理器
func NewSearchHandler(svc *service.Services) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// SearchRequest 搜索请求
type SearchRequest struct {
	Query string `json:"query" binding:"required,min=1"`
}

// Search 搜索工具
// @Summary      搜索工具
// @Description  使用语言模型排序，失败时回退到本地关键词排序
// @Tags         搜索
// @Accept       json
// @Produce      json
// @Param        request  body      SearchRequest       true  "查询"
// @Success      200      {object}  model.SearchResult  "搜索结果"
// @Failure      400      {object}  ErrorResponse       "请求参数错误"
// @Failure      500      {object}  ErrorResponse       "目录存储不可用"
// @Router       /api/search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid search query: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		BadRequest(c, "Invalid search query: query must not be empty")
		return
	}

	ctx := c.Request.Context()
	result, err := h.svc.Search.Search(ctx, req.Query)
	if err != nil {
		Error(c, err, "Failed to search for tools")
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.svc.History.Record(ctx, userID, req.Query); err != nil {
		h.svc.Logger.Warn("failed to record search history",
			zap.String("user", userID),
			zap.Error(err),
		)
	}

	c.Header(SearchSourceHeader, string(result.Source))
	Success(c, result)
}

// History 获取当前用户最近的搜索
// GET /api/search/history
func (h *SearchHandler) History(c *gin.Context) {
	queries, err := h.svc.History.Recent(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		Error(c, err, "Failed to retrieve search history")
		return
	}
	Success(c, gin.H{"queries": queries})
}
