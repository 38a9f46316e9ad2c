package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ashwinyue/toolfinder/internal/model"
)

// TagRepository 标签仓库
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓库
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// CreateTag 创建标签
func (r *TagRepository) CreateTag(ctx context.Context, tag *model.Tag) error {
	return translateError(r.db.WithContext(ctx).Create(tag).Error)
}

// GetTag 根据 ID 获取标签
func (r *TagRepository) GetTag(ctx context.Context, id int64) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &tag, nil
}

// GetTagByName 根据名称获取标签（忽略大小写）
func (r *TagRepository) GetTagByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&tag).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &tag, nil
}

// ListTags 列出全部标签
func (r *TagRepository) ListTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tags).Error
	return tags, err
}

// ========== 工具-标签关联 ==========

// AddToolTag 为工具添加标签
func (r *TagRepository) AddToolTag(ctx context.Context, toolID, tagID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Tool{}, toolID); err != nil {
			return fmt.Errorf("tool %d: %w", toolID, err)
		}
		if err := requireRow(tx, &model.Tag{}, tagID); err != nil {
			return fmt.Errorf("tag %d: %w", tagID, err)
		}
		return tx.Create(&model.ToolTag{ToolID: toolID, TagID: tagID}).Error
	})
}

// GetToolTags 获取工具的所有标签
func (r *TagRepository) GetToolTags(ctx context.Context, toolID int64) ([]*model.Tag, error) {
	var links []model.ToolTag
	err := r.db.WithContext(ctx).
		Where("tool_id = ?", toolID).
		Order("id ASC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tool tags: %w", err)
	}
	if len(links) == 0 {
		return []*model.Tag{}, nil
	}

	ids := make([]int64, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.TagID)
	}

	var found []*model.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	byID := make(map[int64]*model.Tag, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	tags := make([]*model.Tag, 0, len(links))
	for _, link := range links {
		t, ok := byID[link.TagID]
		if !ok {
			return nil, fmt.Errorf("%w: tag %d referenced by tool %d not found", ErrIntegrity, link.TagID, toolID)
		}
		tags = append(tags, t)
	}
	return tags, nil
}
