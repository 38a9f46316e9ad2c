package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ashwinyue/toolfinder/internal/handler"
	"github.com/ashwinyue/toolfinder/internal/middleware"
)

// SetupRouter 设置路由
// gatherer 为 nil 时使用默认注册器
func SetupRouter(h *handler.Handlers, logger *zap.Logger, gatherer prometheus.Gatherer) *gin.Engine {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := gin.New()

	// 中间件
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.UserMiddleware())

	// 健康检查与指标
	r.GET("/health", h.System.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		// Tool 工具
		tools := api.Group("/tools")
		{
			tools.GET("", h.Tool.ListTools)
			tools.POST("", h.Tool.CreateTool)
			tools.GET("/featured", h.Tool.ListFeatured)
			tools.GET("/category/:id", h.Tool.ListByCategory)
			tools.GET("/:id", h.Tool.GetTool)
		}

		// Category 分类
		api.GET("/categories", h.Category.ListCategories)

		// Tag 标签
		api.GET("/tags", h.Tag.ListTags)

		// Search 搜索
		search := api.Group("/search")
		{
			search.POST("", h.Search.Search)
			search.GET("/history", h.Search.History)
		}

		// Favorite 收藏
		favorites := api.Group("/users/me/favorites")
		{
			favorites.GET("", h.Favorite.List)
			favorites.POST("/:toolId", h.Favorite.Save)
			favorites.DELETE("/:toolId", h.Favorite.Remove)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		handler.NotFound(c, "route not found: "+c.Request.URL.Path)
	})

	return r
}
