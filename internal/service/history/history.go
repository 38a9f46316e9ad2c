// Package history 基于 Redis 记录用户的搜索历史
package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	historyKeyPrefix = "toolfinder:history:"
	// DefaultSize 每个用户保留的历史条数
	DefaultSize = 20
	// AnonymousUser 未携带用户标识时使用的用户
	AnonymousUser = "anonymous"
)

// Recorder 搜索历史记录器
// redis 客户端为 nil 时所有操作均为空操作
type Recorder struct {
	redis *redis.Client
	size  int
}

// NewRecorder 创建搜索历史记录器
func NewRecorder(redisClient *redis.Client, size int) *Recorder {
	if size <= 0 {
		size = DefaultSize
	}
	return &Recorder{redis: redisClient, size: size}
}

// Enabled 是否启用了持久化
func (r *Recorder) Enabled() bool {
	return r != nil && r.redis != nil
}

// Record 记录一次搜索，最新的查询排在最前
func (r *Recorder) Record(ctx context.Context, userID, query string) error {
	if !r.Enabled() {
		return nil
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	key := historyKey(userID)
	pipe := r.redis.TxPipeline()
	pipe.LPush(ctx, key, query)
	pipe.LTrim(ctx, key, 0, int64(r.size-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record search history: %w", err)
	}
	return nil
}

// Recent 返回用户最近的查询，最新的在前
func (r *Recorder) Recent(ctx context.Context, userID string) ([]string, error) {
	if !r.Enabled() {
		return []string{}, nil
	}
	queries, err := r.redis.LRange(ctx, historyKey(userID), 0, int64(r.size-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load search history: %w", err)
	}
	if queries == nil {
		queries = []string{}
	}
	return queries, nil
}

// historyKey 生成用户历史的 Redis key
func historyKey(userID string) string {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = AnonymousUser
	}
	return historyKeyPrefix + userID
}
