// Package service 组装各业务服务
package service

import (
	"context"
	"time"

	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ashwinyue/toolfinder/internal/config"
	"github.com/ashwinyue/toolfinder/internal/metrics"
	"github.com/ashwinyue/toolfinder/internal/repository"
	"github.com/ashwinyue/toolfinder/internal/service/catalog"
	"github.com/ashwinyue/toolfinder/internal/service/history"
	"github.com/ashwinyue/toolfinder/internal/service/preference"
	"github.com/ashwinyue/toolfinder/internal/service/search"
)

// Services 服务集合
type Services struct {
	// 业务服务
	Catalog    *catalog.Service
	Search     *search.Orchestrator
	History    *history.Recorder
	Preference *preference.Service

	// 配置
	Config *config.Config
	Logger *zap.Logger

	// 组件
	ChatModel ecomodel.BaseChatModel // 未配置凭据时为 nil
	Metrics   *metrics.SearchMetrics
	Repos     *repository.Repositories
}

// NewServices 创建所有服务
func NewServices(repo *repository.Repositories, cfg *config.Config, redisClient *redis.Client, registerer prometheus.Registerer, logger *zap.Logger) (*Services, error) {
	ctx := context.Background()
	if logger == nil {
		logger = zap.NewNop()
	}

	// 创建 ChatModel，失败时降级为本地排序
	chatModel, err := newChatModel(ctx, cfg)
	if err != nil {
		logger.Warn("failed to create chat model, search will use local ranking", zap.Error(err))
		chatModel = nil
	}

	var ranker search.Ranker
	if chatModel != nil {
		ranker = search.NewLLMRanker(chatModel, cfg.AI.OpenAI.RepairJSON)
		logger.Info("external ranking enabled", zap.String("model", cfg.AI.OpenAI.Model))
	} else {
		logger.Info("no ai credential configured, search will use local ranking")
	}

	searchMetrics := metrics.NewSearchMetrics(registerer)
	assembler := catalog.NewAssembler(repo.Catalog, cfg.Search.DecorateConcurrency)

	return &Services{
		Catalog: catalog.NewService(repo.Catalog, assembler, logger.Named("catalog")),
		Search: search.NewOrchestrator(repo.Catalog, assembler, search.Options{
			Ranker:  ranker,
			Timeout: time.Duration(cfg.AI.OpenAI.Timeout) * time.Second,
			Metrics: searchMetrics,
			Logger:  logger.Named("search"),
		}),
		History:    history.NewRecorder(redisClient, cfg.Redis.HistorySize),
		Preference: preference.NewService(repo.Preference, repo.Catalog, logger.Named("preference")),

		Config: cfg,
		Logger: logger,

		ChatModel: chatModel,
		Metrics:   searchMetrics,
		Repos:     repo,
	}, nil
}
