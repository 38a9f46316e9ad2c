package handler

import (
	"github.com/ashwinyue/toolfinder/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Tool     *ToolHandler
	Category *CategoryHandler
	Tag      *TagHandler
	Search   *SearchHandler
	Favorite *FavoriteHandler
	System   *SystemHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Tool:     NewToolHandler(svc),
		Category: NewCategoryHandler(svc),
		Tag:      NewTagHandler(svc),
		Search:   NewSearchHandler(svc),
		Favorite: NewFavoriteHandler(svc),
		System:   NewSystemHandler(svc),
	}
}
