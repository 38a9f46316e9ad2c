// Package catalog 提供工具目录的查询、创建与装配
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ashwinyue/toolfinder/internal/model"
	"github.com/ashwinyue/toolfinder/internal/repository"
)

// DefaultFeaturedLimit 推荐工具默认数量
const DefaultFeaturedLimit = 4

// ErrInvalidTool 创建工具的参数不合法
var ErrInvalidTool = errors.New("invalid tool")

// Service 目录服务
type Service struct {
	store     repository.CatalogStore
	assembler *Assembler
	logger    *zap.Logger
}

// NewService 创建目录服务
func NewService(store repository.CatalogStore, assembler *Assembler, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		assembler: assembler,
		logger:    logger,
	}
}

// Assembler 返回服务使用的装配器
func (s *Service) Assembler() *Assembler {
	return s.assembler
}

// ListTools 列出全部工具
func (s *Service) ListTools(ctx context.Context) ([]*model.DecoratedTool, error) {
	tools, err := s.store.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return s.assembler.DecorateAll(ctx, tools)
}

// Featured 列出推荐工具，limit <= 0 时使用默认数量
func (s *Service) Featured(ctx context.Context, limit int) ([]*model.DecoratedTool, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	tools, err := s.store.ListFeaturedTools(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured tools: %w", err)
	}
	return s.assembler.DecorateAll(ctx, tools)
}

// ByCategory 列出分类下的工具
func (s *Service) ByCategory(ctx context.Context, categoryID int64) ([]*model.DecoratedTool, error) {
	tools, err := s.store.ListToolsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools of category %d: %w", categoryID, err)
	}
	return s.assembler.DecorateAll(ctx, tools)
}

// GetTool 获取单个工具
func (s *Service) GetTool(ctx context.Context, id int64) (*model.DecoratedTool, error) {
	tool, err := s.store.GetTool(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assembler.Decorate(ctx, tool)
}

// ListCategories 列出全部分类
func (s *Service) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.store.ListCategories(ctx)
}

// ListTags 列出全部标签
func (s *Service) ListTags(ctx context.Context) ([]*model.Tag, error) {
	return s.store.ListTags(ctx)
}

// CreateToolRequest 创建工具请求
type CreateToolRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	CompanyName string   `json:"companyName" binding:"required"`
	LogoURL     string   `json:"logoUrl"`
	ImageURL    string   `json:"imageUrl"`
	Rating      string   `json:"rating" binding:"required"`
	Pricing     string   `json:"pricing" binding:"required"`
	WebsiteURL  string   `json:"websiteUrl" binding:"required"`
	Featured    bool     `json:"featured"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
}

// CreateTool 创建工具，分类与标签按名称查找，不存在时创建
func (s *Service) CreateTool(ctx context.Context, req *CreateToolRequest) (*model.DecoratedTool, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidTool)
	}
	if !model.ValidRating(req.Rating) {
		return nil, fmt.Errorf("%w: rating %q must be a decimal between 0 and 5", ErrInvalidTool, req.Rating)
	}

	tool := &model.Tool{
		Name:        req.Name,
		Description: req.Description,
		CompanyName: req.CompanyName,
		LogoURL:     req.LogoURL,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
		Pricing:     req.Pricing,
		WebsiteURL:  req.WebsiteURL,
		Featured:    req.Featured,
	}
	if err := s.store.CreateTool(ctx, tool); err != nil {
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}

	for _, name := range uniqueNames(req.Categories) {
		category, err := s.findOrCreateCategory(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := s.store.AddToolCategory(ctx, tool.ID, category.ID); err != nil {
			return nil, fmt.Errorf("failed to link category %q: %w", name, err)
		}
	}
	for _, name := range uniqueNames(req.Tags) {
		tag, err := s.findOrCreateTag(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := s.store.AddToolTag(ctx, tool.ID, tag.ID); err != nil {
			return nil, fmt.Errorf("failed to link tag %q: %w", name, err)
		}
	}

	s.logger.Info("tool created",
		zap.Int64("id", tool.ID),
		zap.String("name", tool.Name),
		zap.Int("categories", len(req.Categories)),
		zap.Int("tags", len(req.Tags)),
	)
	return s.assembler.Decorate(ctx, tool)
}

func (s *Service) findOrCreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category, err := s.store.GetCategoryByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to get category %q: %w", name, err)
	}
	category = &model.Category{Name: name, Icon: "fa-robot"}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category %q: %w", name, err)
	}
	return category, nil
}

func (s *Service) findOrCreateTag(ctx context.Context, name string) (*model.Tag, error) {
	tag, err := s.store.GetTagByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to get tag %q: %w", name, err)
	}
	tag = &model.Tag{Name: name}
	if err := s.store.CreateTag(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return tag, nil
}

// uniqueNames 去除空白与重复（忽略大小写），保持首次出现的顺序
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
