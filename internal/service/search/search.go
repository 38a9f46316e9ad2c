// Package search 实现工具搜索：语言模型排序，失败时回退到本地关键词排序
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ashwinyue/toolfinder/internal/metrics"
	"github.com/ashwinyue/toolfinder/internal/model"
	"github.com/ashwinyue/toolfinder/internal/repository"
	"github.com/ashwinyue/toolfinder/internal/service/catalog"
)

// DefaultRankTimeout 外部排序默认超时
const DefaultRankTimeout = 15 * time.Second

// 回退原因，用作指标标签
const (
	reasonNoCredential  = "no_credential"
	reasonAdapterError  = "adapter_error"
	reasonTimeout       = "timeout"
	reasonDecorateError = "decorate_error"
	reasonInvalidResult = "invalid_result"
)

// Options 搜索编排器选项
type Options struct {
	Ranker  Ranker // 为 nil 时直接使用本地排序
	Timeout time.Duration
	Metrics *metrics.SearchMetrics
	Logger  *zap.Logger
}

// Orchestrator 搜索编排器
// 每次请求独立执行，不保存跨请求状态
type Orchestrator struct {
	store     repository.CatalogStore
	assembler *catalog.Assembler
	ranker    Ranker
	timeout   time.Duration
	metrics   *metrics.SearchMetrics
	logger    *zap.Logger
}

// NewOrchestrator 创建搜索编排器
func NewOrchestrator(store repository.CatalogStore, assembler *catalog.Assembler, opts Options) *Orchestrator {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultRankTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Orchestrator{
		store:     store,
		assembler: assembler,
		ranker:    opts.Ranker,
		timeout:   opts.Timeout,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
	}
}

// Search 执行搜索
// 只有目录存储失败会返回错误，排序失败一律回退到本地排序
func (o *Orchestrator) Search(ctx context.Context, query string) (*model.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	tools, err := o.store.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	candidates, err := o.assembler.DecorateAll(ctx, tools)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrity) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	result, reason, err := o.rankExternal(ctx, query, tools)
	if err != nil {
		o.logger.Warn("external ranking failed, using local search",
			zap.String("query", query),
			zap.String("reason", reason),
			zap.Error(err),
		)
		o.metrics.ObserveFallback(reason)
		result = FallbackResult(query, candidates)
	}

	o.metrics.ObserveSearch(string(result.Source), len(result.Tools))
	o.logger.Debug("search completed",
		zap.String("query", query),
		zap.String("source", string(result.Source)),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(result.Tools)),
	)
	return result, nil
}

// rankExternal 调用外部排序并装配、校验结果，失败时返回回退原因
func (o *Orchestrator) rankExternal(ctx context.Context, query string, tools []*model.Tool) (*model.SearchResult, string, error) {
	if o.ranker == nil {
		return nil, reasonNoCredential, ErrNoCredential
	}

	rctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	ranking, err := o.ranker.Rank(rctx, query, tools)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(rctx.Err(), context.DeadlineExceeded) {
			o.metrics.ObserveRanker(metrics.RankerStatusTimeout, elapsed)
			return nil, reasonTimeout, err
		}
		o.metrics.ObserveRanker(metrics.RankerStatusError, elapsed)
		if errors.Is(err, ErrNoCredential) {
			return nil, reasonNoCredential, err
		}
		return nil, reasonAdapterError, err
	}
	o.metrics.ObserveRanker(metrics.RankerStatusSuccess, elapsed)

	decorated, err := o.assembler.DecorateAll(ctx, ranking.Tools)
	if err != nil {
		return nil, reasonDecorateError, err
	}

	searchCtx := ranking.Context
	result := &model.SearchResult{
		Tools:   decorated,
		Context: &searchCtx,
		Source:  model.SearchSourceExternal,
	}
	if err := ValidateResult(result); err != nil {
		return nil, reasonInvalidResult, err
	}
	return result, "", nil
}
