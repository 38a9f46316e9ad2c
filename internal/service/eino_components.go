package service

import (
	"context"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/redis/go-redis/v9"

	"github.com/ashwinyue/toolfinder/internal/config"
)

// newChatModel 创建排序用的 ChatModel
// 未配置 API Key 时返回 nil，搜索降级为本地排序
func newChatModel(ctx context.Context, cfg *config.Config) (ecomodel.BaseChatModel, error) {
	aiCfg := cfg.AI.OpenAI
	if aiCfg.APIKey == "" {
		return nil, nil
	}

	modelName := aiCfg.Model
	if modelName == "" {
		modelName = "gpt-4o"
	}
	temperature := aiCfg.Temperature

	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      aiCfg.APIKey,
		BaseURL:     aiCfg.BaseURL,
		Model:       modelName,
		Temperature: &temperature,
		Timeout:     time.Duration(aiCfg.Timeout) * time.Second,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
}

// NewRedisClient 创建 Redis 客户端，未启用时返回 nil
func NewRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
