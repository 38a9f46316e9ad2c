// Package repository 定义目录数据访问接口及其实现
// 接口抽象使依赖注入和单元测试成为可能
package repository

import (
	"context"
	"errors"

	"github.com/ashwinyue/toolfinder/internal/model"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 唯一约束冲突
	ErrDuplicate = errors.New("record already exists")
	// ErrIntegrity 关联表引用了不存在的工具、分类或标签
	ErrIntegrity = errors.New("catalog integrity violation")
)

// ========== CatalogStore 接口 ==========

// CatalogStore 目录数据访问接口
// 搜索与列表服务只依赖该接口，与具体存储无关
type CatalogStore interface {
	// 工具
	GetTool(ctx context.Context, id int64) (*model.Tool, error)
	ListTools(ctx context.Context) ([]*model.Tool, error)
	ListFeaturedTools(ctx context.Context, limit int) ([]*model.Tool, error)
	ListToolsByCategory(ctx context.Context, categoryID int64) ([]*model.Tool, error)
	CreateTool(ctx context.Context, tool *model.Tool) error
	CountTools(ctx context.Context) (int64, error)

	// 分类
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error

	// 标签
	ListTags(ctx context.Context) ([]*model.Tag, error)
	GetTag(ctx context.Context, id int64) (*model.Tag, error)
	GetTagByName(ctx context.Context, name string) (*model.Tag, error)
	CreateTag(ctx context.Context, tag *model.Tag) error

	// 关联
	AddToolCategory(ctx context.Context, toolID, categoryID int64) error
	AddToolTag(ctx context.Context, toolID, tagID int64) error
	GetToolCategories(ctx context.Context, toolID int64) ([]*model.Category, error)
	GetToolTags(ctx context.Context, toolID int64) ([]*model.Tag, error)
}

// ========== PreferenceStore 接口 ==========

// PreferenceStore 用户偏好数据访问接口
type PreferenceStore interface {
	GetPreference(ctx context.Context, userID string) (*model.UserPreference, error)
	SavePreference(ctx context.Context, pref *model.UserPreference) error
}

// 确保实现了接口
var (
	_ CatalogStore    = (*GormStore)(nil)
	_ CatalogStore    = (*MemoryStore)(nil)
	_ PreferenceStore = (*PreferenceRepository)(nil)
	_ PreferenceStore = (*MemoryStore)(nil)
)
