package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ashwinyue/toolfinder/internal/model"
	"github.com/ashwinyue/toolfinder/internal/repository"
)

// Assembler 为工具附加分类名和标签名
// 结果完全由请求时的关联表内容决定，不做缓存
type Assembler struct {
	store       repository.CatalogStore
	concurrency int
}

// NewAssembler 创建装配器，concurrency 为批量装配时的并发上限
func NewAssembler(store repository.CatalogStore, concurrency int) *Assembler {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Assembler{store: store, concurrency: concurrency}
}

// Decorate 装配单个工具
func (a *Assembler) Decorate(ctx context.Context, tool *model.Tool) (*model.DecoratedTool, error) {
	categories, err := a.store.GetToolCategories(ctx, tool.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories of tool %d: %w", tool.ID, err)
	}
	tags, err := a.store.GetToolTags(ctx, tool.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags of tool %d: %w", tool.ID, err)
	}

	decorated := &model.DecoratedTool{
		Tool:       *tool,
		Categories: make([]string, 0, len(categories)),
		Tags:       make([]string, 0, len(tags)),
	}
	for _, c := range categories {
		decorated.Categories = append(decorated.Categories, c.Name)
	}
	for _, t := range tags {
		decorated.Tags = append(decorated.Tags, t.Name)
	}
	return decorated, nil
}

// DecorateAll 并发装配一组工具，输出顺序与输入一致
// 任一工具失败则整体失败
func (a *Assembler) DecorateAll(ctx context.Context, tools []*model.Tool) ([]*model.DecoratedTool, error) {
	out := make([]*model.DecoratedTool, len(tools))
	if len(tools) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, tool := range tools {
		g.Go(func() error {
			decorated, err := a.Decorate(gctx, tool)
			if err != nil {
				return err
			}
			out[i] = decorated
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
