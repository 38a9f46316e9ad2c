package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashwinyue/toolfinder/internal/model"
)

func newTool(name string, featured bool) *model.Tool {
	return &model.Tool{
		Name:        name,
		Description: name + " description",
		CompanyName: "Acme",
		Rating:      "4.5",
		Pricing:     "Free",
		WebsiteURL:  "https://example.com/" + name,
		Featured:    featured,
	}
}

func TestMemoryStore_CreateAndGetTool(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first := newTool("alpha", false)
	second := newTool("beta", true)
	require.NoError(t, s.CreateTool(ctx, first))
	require.NoError(t, s.CreateTool(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.NotNil(t, first.CreatedAt)

	got, err := s.GetTool(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "beta", got.Name)

	_, err = s.GetTool(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := s.CountTools(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	tool := newTool("alpha", false)
	require.NoError(t, s.CreateTool(ctx, tool))

	got, err := s.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := s.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, "alpha", again.Name)
}

func TestMemoryStore_ListFeaturedTools(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i, featured := range []bool{true, false, true, true} {
		require.NoError(t, s.CreateTool(ctx, newTool(string(rune('a'+i)), featured)))
	}

	tools, err := s.ListFeaturedTools(ctx, 2)
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "a", tools[0].Name)
	assert.Equal(t, "c", tools[1].Name)
}

func TestMemoryStore_CategoriesAndTags(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	tool := newTool("alpha", false)
	require.NoError(t, s.CreateTool(ctx, tool))

	image := &model.Category{Name: "Image Generation", Icon: "fa-image"}
	video := &model.Category{Name: "Video Editing", Icon: "fa-film"}
	require.NoError(t, s.CreateCategory(ctx, image))
	require.NoError(t, s.CreateCategory(ctx, video))

	err := s.CreateCategory(ctx, &model.Category{Name: "Image Generation"})
	assert.ErrorIs(t, err, ErrDuplicate)

	// 关联顺序按插入顺序返回
	require.NoError(t, s.AddToolCategory(ctx, tool.ID, video.ID))
	require.NoError(t, s.AddToolCategory(ctx, tool.ID, image.ID))

	categories, err := s.GetToolCategories(ctx, tool.ID)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Video Editing", categories[0].Name)
	assert.Equal(t, "Image Generation", categories[1].Name)

	byName, err := s.GetCategoryByName(ctx, "image generation")
	require.NoError(t, err)
	assert.Equal(t, image.ID, byName.ID)

	art := &model.Tag{Name: "Art"}
	require.NoError(t, s.CreateTag(ctx, art))
	require.NoError(t, s.AddToolTag(ctx, tool.ID, art.ID))

	tags, err := s.GetToolTags(ctx, tool.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Art", tags[0].Name)

	err = s.AddToolTag(ctx, tool.ID, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	err = s.AddToolCategory(ctx, 42, image.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ListToolsByCategory(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	a, b, c := newTool("a", false), newTool("b", false), newTool("c", false)
	for _, tool := range []*model.Tool{a, b, c} {
		require.NoError(t, s.CreateTool(ctx, tool))
	}
	cat := &model.Category{Name: "Chatbots"}
	require.NoError(t, s.CreateCategory(ctx, cat))
	require.NoError(t, s.AddToolCategory(ctx, c.ID, cat.ID))
	require.NoError(t, s.AddToolCategory(ctx, a.ID, cat.ID))
	require.NoError(t, s.AddToolCategory(ctx, a.ID, cat.ID))

	tools, err := s.ListToolsByCategory(ctx, cat.ID)
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "c", tools[0].Name)
	assert.Equal(t, "a", tools[1].Name)

	empty, err := s.ListToolsByCategory(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_IntegrityViolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	tool := newTool("alpha", false)
	require.NoError(t, s.CreateTool(ctx, tool))
	cat := &model.Category{Name: "Chatbots"}
	require.NoError(t, s.CreateCategory(ctx, cat))
	tag := &model.Tag{Name: "Art"}
	require.NoError(t, s.CreateTag(ctx, tag))
	require.NoError(t, s.AddToolCategory(ctx, tool.ID, cat.ID))
	require.NoError(t, s.AddToolTag(ctx, tool.ID, tag.ID))

	// 模拟关联行指向已删除的记录
	delete(s.categories.index, cat.ID)
	delete(s.tags.index, tag.ID)

	_, err := s.GetToolCategories(ctx, tool.ID)
	assert.True(t, errors.Is(err, ErrIntegrity))

	_, err = s.GetToolTags(ctx, tool.ID)
	assert.True(t, errors.Is(err, ErrIntegrity))

	delete(s.tools.index, tool.ID)
	s.categories.index[cat.ID] = 0
	_, err = s.ListToolsByCategory(ctx, cat.ID)
	assert.True(t, errors.Is(err, ErrIntegrity))
}

func TestMemoryStore_Preferences(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetPreference(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	pref := &model.UserPreference{UserID: "u1", SavedTools: []int64{3}}
	require.NoError(t, s.SavePreference(ctx, pref))
	assert.Equal(t, int64(1), pref.ID)

	pref.SavedTools = append(pref.SavedTools, 5)
	require.NoError(t, s.SavePreference(ctx, pref))

	got, err := s.GetPreference(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5}, []int64(got.SavedTools))
	assert.Equal(t, int64(1), got.ID)
}

func TestMemoryStore_ConcurrentReads(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	tool := newTool("alpha", false)
	require.NoError(t, s.CreateTool(ctx, tool))
	cat := &model.Category{Name: "Chatbots"}
	require.NoError(t, s.CreateCategory(ctx, cat))
	require.NoError(t, s.AddToolCategory(ctx, tool.ID, cat.ID))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			categories, err := s.GetToolCategories(ctx, tool.ID)
			assert.NoError(t, err)
			assert.Len(t, categories, 1)
		}()
	}
	wg.Wait()
}
