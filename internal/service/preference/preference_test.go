package preference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashwinyue/toolfinder/internal/repository"
	"github.com/ashwinyue/toolfinder/internal/testutil"
)

func newService(t *testing.T) *Service {
	t.Helper()
	b := testutil.NewCatalog(t)
	b.Add(testutil.ToolSpec{Name: "DALL-E", Categories: []string{"Image Generation"}})
	b.Add(testutil.ToolSpec{Name: "ChatGPT", Categories: []string{"Chatbots"}})
	return NewService(b.Store(), b.Store(), nil)
}

func TestService_SavedToolsEmpty(t *testing.T) {
	svc := newService(t)

	ids, err := svc.SavedTools(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestService_SaveTool(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	ids, err := svc.SaveTool(ctx, "alice", 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	// 重复收藏
	ids, err = svc.SaveTool(ctx, "alice", 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	ids, err = svc.SaveTool(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids)

	// 用户之间相互隔离
	ids, err = svc.SavedTools(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestService_SaveUnknownTool(t *testing.T) {
	svc := newService(t)

	_, err := svc.SaveTool(context.Background(), "alice", 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestService_RemoveTool(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.SaveTool(ctx, "alice", 1)
	require.NoError(t, err)
	_, err = svc.SaveTool(ctx, "alice", 2)
	require.NoError(t, err)

	ids, err := svc.RemoveTool(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	// 未收藏的工具
	ids, err = svc.RemoveTool(ctx, "alice", 42)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	ids, err = svc.SavedTools(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)
}
