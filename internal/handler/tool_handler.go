package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolfinder/internal/service"
	"github.com/ashwinyue/toolfinder/internal/service/catalog"
)

// ToolHandler 工具处理器
type ToolHandler struct {
	svc *service.Services
}

// NewToolHandler 创建工具处理器
func NewToolHandler(svc *service.Services) *ToolHandler {
	return &ToolHandler{svc: svc}
}

// ListTools 列出全部工具
// GET /api/tools
func (h *ToolHandler) ListTools(c *gin.Context) {
	tools, err := h.svc.Catalog.ListTools(c.Request.Context())
	if err != nil {
		Error(c, err, "Failed to retrieve tools")
		return
	}
	Success(c, tools)
}

// ListFeatured 列出推荐工具
// GET /api/tools/featured?limit=4
func (h *ToolHandler) ListFeatured(c *gin.Context) {
	limit := catalog.DefaultFeaturedLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			BadRequest(c, "Invalid limit")
			return
		}
		limit = n
	}

	tools, err := h.svc.Catalog.Featured(c.Request.Context(), limit)
	if err != nil {
		Error(c, err, "Failed to retrieve featured tools")
		return
	}
	Success(c, tools)
}

// ListByCategory 列出分类下的工具
// GET /api/tools/category/:id
func (h *ToolHandler) ListByCategory(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid category ID")
	if !ok {
		return
	}

	tools, err := h.svc.Catalog.ByCategory(c.Request.Context(), id)
	if err != nil {
		Error(c, err, "Failed to retrieve tools by category")
		return
	}
	Success(c, tools)
}

// GetTool 获取工具
// GET /api/tools/:id
func (h *ToolHandler) GetTool(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid tool ID")
	if !ok {
		return
	}

	tool, err := h.svc.Catalog.GetTool(c.Request.Context(), id)
	if err != nil {
		Error(c, err, "Failed to retrieve tool")
		return
	}
	Success(c, tool)
}

// CreateTool 创建工具
// POST /api/tools
func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req catalog.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	tool, err := h.svc.Catalog.CreateTool(c.Request.Context(), &req)
	if err != nil {
		Error(c, err, "Failed to create tool")
		return
	}
	Created(c, tool)
}

// parseID 解析路径中的数字 ID，失败时直接写出 400
func parseID(c *gin.Context, param, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, msg)
		return 0, false
	}
	return id, true
}
