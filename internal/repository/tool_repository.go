package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ashwinyue/toolfinder/internal/model"
)

// ToolRepository 工具数据访问
type ToolRepository struct {
	db *gorm.DB
}

// NewToolRepository 创建工具仓库
func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

// CreateTool 创建工具
func (r *ToolRepository) CreateTool(ctx context.Context, tool *model.Tool) error {
	return translateError(r.db.WithContext(ctx).Create(tool).Error)
}

// GetTool 获取工具
func (r *ToolRepository) GetTool(ctx context.Context, id int64) (*model.Tool, error) {
	var tool model.Tool
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tool).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &tool, nil
}

// ListTools 列出全部工具
func (r *ToolRepository) ListTools(ctx context.Context) ([]*model.Tool, error) {
	var tools []*model.Tool
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tools).Error
	return tools, err
}

// ListFeaturedTools 列出推荐工具
func (r *ToolRepository) ListFeaturedTools(ctx context.Context, limit int) ([]*model.Tool, error) {
	var tools []*model.Tool
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("id ASC").
		Limit(limit).
		Find(&tools).Error
	return tools, err
}

// ListToolsByCategory 列出分类下的工具
// 关联行引用了不存在的工具时返回 ErrIntegrity
func (r *ToolRepository) ListToolsByCategory(ctx context.Context, categoryID int64) ([]*model.Tool, error) {
	var links []model.ToolCategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tool categories: %w", err)
	}

	ids := make([]int64, 0, len(links))
	seen := make(map[int64]struct{}, len(links))
	for _, link := range links {
		if _, ok := seen[link.ToolID]; ok {
			continue
		}
		seen[link.ToolID] = struct{}{}
		ids = append(ids, link.ToolID)
	}
	if len(ids) == 0 {
		return []*model.Tool{}, nil
	}

	var found []*model.Tool
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to load tools: %w", err)
	}
	byID := make(map[int64]*model.Tool, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	tools := make([]*model.Tool, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: tool %d referenced by category %d not found", ErrIntegrity, id, categoryID)
		}
		tools = append(tools, t)
	}
	return tools, nil
}

// CountTools 统计工具数量
func (r *ToolRepository) CountTools(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Tool{}).Count(&total).Error
	return total, err
}

// translateError 将 gorm 错误转换为仓库层错误
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}
