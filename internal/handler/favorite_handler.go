package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolfinder/internal/middleware"
	"github.com/ashwinyue/toolfinder/internal/service"
)

// FavoriteHandler 收藏处理器
type FavoriteHandler struct {
	svc *service.Services
}

// NewFavoriteHandler 创建收藏处理器
func NewFavoriteHandler(svc *service.Services) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// FavoritesResponse 收藏列表响应
type FavoritesResponse struct {
	SavedTools []int64 `json:"savedTools"`
}

// List 获取收藏
// GET /api/users/me/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	ids, err := h.svc.Preference.SavedTools(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		Error(c, err, "Failed to retrieve favorites")
		return
	}
	Success(c, FavoritesResponse{SavedTools: ids})
}

// Save 收藏工具
// POST /api/users/me/favorites/:toolId
func (h *FavoriteHandler) Save(c *gin.Context) {
	toolID, ok := parseID(c, "toolId", "Invalid tool ID")
	if !ok {
		return
	}

	ids, err := h.svc.Preference.SaveTool(c.Request.Context(), middleware.GetUserID(c), toolID)
	if err != nil {
		Error(c, err, "Failed to save favorite")
		return
	}
	Success(c, FavoritesResponse{SavedTools: ids})
}

// Remove 取消收藏
// DELETE /api/users/me/favorites/:toolId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	toolID, ok := parseID(c, "toolId", "Invalid tool ID")
	if !ok {
		return
	}

	ids, err := h.svc.Preference.RemoveTool(c.Request.Context(), middleware.GetUserID(c), toolID)
	if err != nil {
		Error(c, err, "Failed to remove favorite")
		return
	}
	Success(c, FavoritesResponse{SavedTools: ids})
}
