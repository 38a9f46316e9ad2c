// Package testutil 提供测试辅助工具
package testutil

import (
	"context"
	"testing"

	"github.com/ashwinyue/toolfinder/internal/model"
	"github.com/ashwinyue/toolfinder/internal/repository"
)

// CatalogBuilder 在内存存储中构造测试目录
// 分类与标签按名称自动创建
type CatalogBuilder struct {
	t          testing.TB
	ctx        context.Context
	store      *repository.MemoryStore
	categories map[string]int64
	tags       map[string]int64
}

// NewCatalog 创建空目录构造器
func NewCatalog(t testing.TB) *CatalogBuilder {
	return &CatalogBuilder{
		t:          t,
		ctx:        context.Background(),
		store:      repository.NewMemoryStore(),
		categories: make(map[string]int64),
		tags:       make(map[string]int64),
	}
}

// Store 返回底层存储
func (b *CatalogBuilder) Store() *repository.MemoryStore {
	return b.store
}

// ToolSpec 测试工具定义
type ToolSpec struct {
	Name        string
	Description string
	Rating      string // 为空时使用 "4.5"
	Featured    bool
	Categories  []string
	Tags        []string
}

// Add 添加工具并建立分类、标签关联
func (b *CatalogBuilder) Add(in ToolSpec) *model.Tool {
	b.t.Helper()

	rating := in.Rating
	if rating == "" {
		rating = "4.5"
	}
	tool := &model.Tool{
		Name:        in.Name,
		Description: in.Description,
		CompanyName: "Test Co",
		Rating:      rating,
		Pricing:     "Free",
		WebsiteURL:  "https://example.com",
		Featured:    in.Featured,
	}
	b.must(b.store.CreateTool(b.ctx, tool))

	for _, name := range in.Categories {
		b.must(b.store.AddToolCategory(b.ctx, tool.ID, b.category(name)))
	}
	for _, name := range in.Tags {
		b.must(b.store.AddToolTag(b.ctx, tool.ID, b.tag(name)))
	}
	return tool
}

func (b *CatalogBuilder) category(name string) int64 {
	if id, ok := b.categories[name]; ok {
		return id
	}
	c := &model.Category{Name: name}
	b.must(b.store.CreateCategory(b.ctx, c))
	b.categories[name] = c.ID
	return c.ID
}

func (b *CatalogBuilder) tag(name string) int64 {
	if id, ok := b.tags[name]; ok {
		return id
	}
	tag := &model.Tag{Name: name}
	b.must(b.store.CreateTag(b.ctx, tag))
	b.tags[name] = tag.ID
	return tag.ID
}

func (b *CatalogBuilder) must(err error) {
	b.t.Helper()
	if err != nil {
		b.t.Fatalf("failed to build catalog: %v", err)
	}
}
