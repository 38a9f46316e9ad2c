package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/ashwinyue/toolfinder/internal/model"
)

// arena 按插入顺序保存记录，并维护 id 到下标的索引
type arena[T any] struct {
	items  []*T
	index  map[int64]int
	nextID int64
}

func newArena[T any]() *arena[T] {
	return &arena[T]{index: make(map[int64]int), nextID: 1}
}

func (a *arena[T]) get(id int64) (*T, bool) {
	i, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return a.items[i], true
}

func (a *arena[T]) put(id int64, item *T) {
	a.index[id] = len(a.items)
	a.items = append(a.items, item)
}

func (a *arena[T]) allocate() int64 {
	id := a.nextID
	a.nextID++
	return id
}

// MemoryStore 内存目录存储
// 所有返回值均为副本，调用方修改不会影响存储内容
type MemoryStore struct {
	mu             sync.RWMutex
	tools          *arena[model.Tool]
	categories     *arena[model.Category]
	tags           *arena[model.Tag]
	toolCategories *arena[model.ToolCategory]
	toolTags       *arena[model.ToolTag]
	preferences    map[string]*model.UserPreference
	now            func() time.Time
}

// NewMemoryStore 创建内存目录存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tools:          newArena[model.Tool](),
		categories:     newArena[model.Category](),
		tags:           newArena[model.Tag](),
		toolCategories: newArena[model.ToolCategory](),
		toolTags:       newArena[model.ToolTag](),
		preferences:    make(map[string]*model.UserPreference),
		now:            time.Now,
	}
}

// ========== 工具 ==========

// GetTool 获取工具
func (s *MemoryStore) GetTool(ctx context.Context, id int64) (*model.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tools.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return copyTool(t), nil
}

// ListTools 按创建顺序列出全部工具
func (s *MemoryStore) ListTools(ctx context.Context) ([]*model.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]*model.Tool, 0, len(s.tools.items))
	for _, t := range s.tools.items {
		tools = append(tools, copyTool(t))
	}
	return tools, nil
}

// ListFeaturedTools 列出推荐工具
func (s *MemoryStore) ListFeaturedTools(ctx context.Context, limit int) ([]*model.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]*model.Tool, 0)
	for _, t := range s.tools.items {
		if len(tools) >= limit {
			break
		}
		if t.Featured {
			tools = append(tools, copyTool(t))
		}
	}
	return tools, nil
}

// ListToolsByCategory 列出分类下的工具
func (s *MemoryStore) ListToolsByCategory(ctx context.Context, categoryID int64) ([]*model.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]*model.Tool, 0)
	seen := make(map[int64]struct{})
	for _, link := range s.toolCategories.items {
		if link.CategoryID != categoryID {
			continue
		}
		if _, ok := seen[link.ToolID]; ok {
			continue
		}
		seen[link.ToolID] = struct{}{}

		t, ok := s.tools.get(link.ToolID)
		if !ok {
			return nil, fmt.Errorf("%w: tool %d referenced by category %d not found", ErrIntegrity, link.ToolID, categoryID)
		}
		tools = append(tools, copyTool(t))
	}
	return tools, nil
}

// CreateTool 创建工具，回填 ID 与创建时间
func (s *MemoryStore) CreateTool(ctx context.Context, tool *model.Tool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tool.ID = s.tools.allocate()
	if tool.CreatedAt == nil {
		now := s.now()
		tool.CreatedAt = &now
	}
	s.tools.put(tool.ID, copyTool(tool))
	return nil
}

// CountTools 统计工具数量
func (s *MemoryStore) CountTools(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.tools.items)), nil
}

// ========== 分类 ==========

// ListCategories 列出全部分类
func (s *MemoryStore) ListCategories(ctx context.Context) ([]*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]*model.Category, 0, len(s.categories.items))
	for _, c := range s.categories.items {
		cp := *c
		categories = append(categories, &cp)
	}
	return categories, nil
}

// GetCategory 根据 ID 获取分类
func (s *MemoryStore) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

// GetCategoryByName 根据名称获取分类（忽略大小写）
func (s *MemoryStore) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories.items {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// CreateCategory 创建分类，名称唯一
func (s *MemoryStore) CreateCategory(ctx context.Context, category *model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories.items {
		if c.Name == category.Name {
			return fmt.Errorf("%w: category %q", ErrDuplicate, category.Name)
		}
	}
	category.ID = s.categories.allocate()
	cp := *category
	s.categories.put(cp.ID, &cp)
	return nil
}

// ========== 标签 ==========

// ListTags 列出全部标签
func (s *MemoryStore) ListTags(ctx context.Context) ([]*model.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]*model.Tag, 0, len(s.tags.items))
	for _, t := range s.tags.items {
		cp := *t
		tags = append(tags, &cp)
	}
	return tags, nil
}

// GetTag 根据 ID 获取标签
func (s *MemoryStore) GetTag(ctx context.Context, id int64) (*model.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tags.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

// GetTagByName 根据名称获取标签（忽略大小写）
func (s *MemoryStore) GetTagByName(ctx context.Context, name string) (*model.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tags.items {
		if strings.EqualFold(t.Name, name) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// CreateTag 创建标签，名称唯一
func (s *MemoryStore) CreateTag(ctx context.Context, tag *model.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tags.items {
		if t.Name == tag.Name {
			return fmt.Errorf("%w: tag %q", ErrDuplicate, tag.Name)
		}
	}
	tag.ID = s.tags.allocate()
	cp := *tag
	s.tags.put(cp.ID, &cp)
	return nil
}

// ========== 关联 ==========

// AddToolCategory 为工具添加分类
func (s *MemoryStore) AddToolCategory(ctx context.Context, toolID, categoryID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tools.get(toolID); !ok {
		return fmt.Errorf("tool %d: %w", toolID, ErrNotFound)
	}
	if _, ok := s.categories.get(categoryID); !ok {
		return fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}
	id := s.toolCategories.allocate()
	s.toolCategories.put(id, &model.ToolCategory{ID: id, ToolID: toolID, CategoryID: categoryID})
	return nil
}

// AddToolTag 为工具添加标签
func (s *MemoryStore) AddToolTag(ctx context.Context, toolID, tagID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tools.get(toolID); !ok {
		return fmt.Errorf("tool %d: %w", toolID, ErrNotFound)
	}
	if _, ok := s.tags.get(tagID); !ok {
		return fmt.Errorf("tag %d: %w", tagID, ErrNotFound)
	}
	id := s.toolTags.allocate()
	s.toolTags.put(id, &model.ToolTag{ID: id, ToolID: toolID, TagID: tagID})
	return nil
}

// GetToolCategories 获取工具的所有分类，保持关联行顺序
func (s *MemoryStore) GetToolCategories(ctx context.Context, toolID int64) ([]*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]*model.Category, 0)
	for _, link := range s.toolCategories.items {
		if link.ToolID != toolID {
			continue
		}
		c, ok := s.categories.get(link.CategoryID)
		if !ok {
			return nil, fmt.Errorf("%w: category %d referenced by tool %d not found", ErrIntegrity, link.CategoryID, toolID)
		}
		cp := *c
		categories = append(categories, &cp)
	}
	return categories, nil
}

// GetToolTags 获取工具的所有标签，保持关联行顺序
func (s *MemoryStore) GetToolTags(ctx context.Context, toolID int64) ([]*model.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]*model.Tag, 0)
	for _, link := range s.toolTags.items {
		if link.ToolID != toolID {
			continue
		}
		t, ok := s.tags.get(link.TagID)
		if !ok {
			return nil, fmt.Errorf("%w: tag %d referenced by tool %d not found", ErrIntegrity, link.TagID, toolID)
		}
		cp := *t
		tags = append(tags, &cp)
	}
	return tags, nil
}

// ========== 用户偏好 ==========

// GetPreference 获取用户偏好
func (s *MemoryStore) GetPreference(ctx context.Context, userID string) (*model.UserPreference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.preferences[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyPreference(p), nil
}

// SavePreference 保存用户偏好
func (s *MemoryStore) SavePreference(ctx context.Context, pref *model.UserPreference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.preferences[pref.UserID]; ok {
		pref.ID = existing.ID
		pref.CreatedAt = existing.CreatedAt
	} else {
		pref.ID = int64(len(s.preferences) + 1)
		pref.CreatedAt = now
	}
	pref.UpdatedAt = now
	s.preferences[pref.UserID] = copyPreference(pref)
	return nil
}

func copyTool(t *model.Tool) *model.Tool {
	cp := *t
	if t.CreatedAt != nil {
		createdAt := *t.CreatedAt
		cp.CreatedAt = &createdAt
	}
	return &cp
}

func copyPreference(p *model.UserPreference) *model.UserPreference {
	cp := *p
	cp.FavoriteCategories = append(pq.StringArray{}, p.FavoriteCategories...)
	cp.SavedTools = append(pq.Int64Array{}, p.SavedTools...)
	return &cp
}
