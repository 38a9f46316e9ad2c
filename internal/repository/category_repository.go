package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ashwinyue/toolfinder/internal/model"
)

// CategoryRepository 分类仓库
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// CreateCategory 创建分类
func (r *CategoryRepository) CreateCategory(ctx context.Context, category *model.Category) error {
	return translateError(r.db.WithContext(ctx).Create(category).Error)
}

// GetCategory 根据 ID 获取分类
func (r *CategoryRepository) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// GetCategoryByName 根据名称获取分类（忽略大小写）
func (r *CategoryRepository) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// ListCategories 列出全部分类
func (r *CategoryRepository) ListCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

// ========== 工具-分类关联 ==========

// AddToolCategory 为工具添加分类
func (r *CategoryRepository) AddToolCategory(ctx context.Context, toolID, categoryID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Tool{}, toolID); err != nil {
			return fmt.Errorf("tool %d: %w", toolID, err)
		}
		if err := requireRow(tx, &model.Category{}, categoryID); err != nil {
			return fmt.Errorf("category %d: %w", categoryID, err)
		}
		return tx.Create(&model.ToolCategory{ToolID: toolID, CategoryID: categoryID}).Error
	})
}

// GetToolCategories 获取工具的所有分类，保持关联行顺序
func (r *CategoryRepository) GetToolCategories(ctx context.Context, toolID int64) ([]*model.Category, error) {
	var links []model.ToolCategory
	err := r.db.WithContext(ctx).Where("tool_id = ?", toolID).Order("id ASC").Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tool categories: %w", err)
	}
	if len(links) == 0 {
		return []*model.Category{}, nil
	}

	ids := make([]int64, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.CategoryID)
	}

	var found []*model.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	byID := make(map[int64]*model.Category, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	categories := make([]*model.Category, 0, len(links))
	for _, link := range links {
		c, ok := byID[link.CategoryID]
		if !ok {
			return nil, fmt.Errorf("%w: category %d referenced by tool %d not found", ErrIntegrity, link.CategoryID, toolID)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// requireRow 检查记录是否存在
func requireRow(tx *gorm.DB, value interface{}, id int64) error {
	var count int64
	if err := tx.Model(value).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
