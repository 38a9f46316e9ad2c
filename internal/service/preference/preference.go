// Package preference 管理用户收藏的工具
package preference

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/ashwinyue/toolfinder/internal/model"
	"github.com/ashwinyue/toolfinder/internal/repository"
)

// Service 收藏服务
type Service struct {
	prefs   repository.PreferenceStore
	catalog repository.CatalogStore
	logger  *zap.Logger
}

// NewService 创建收藏服务
func NewService(prefs repository.PreferenceStore, catalog repository.CatalogStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{prefs: prefs, catalog: catalog, logger: logger}
}

// SavedTools 返回用户收藏的工具 ID，按收藏顺序
func (s *Service) SavedTools(ctx context.Context, userID string) ([]int64, error) {
	pref, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return []int64(pref.SavedTools), nil
}

// SaveTool 收藏工具，重复收藏不产生副作用
// 工具不存在时返回 repository.ErrNotFound
func (s *Service) SaveTool(ctx context.Context, userID string, toolID int64) ([]int64, error) {
	if _, err := s.catalog.GetTool(ctx, toolID); err != nil {
		return nil, fmt.Errorf("tool %d: %w", toolID, err)
	}

	pref, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref.HasSavedTool(toolID) {
		return []int64(pref.SavedTools), nil
	}

	pref.SavedTools = append(pref.SavedTools, toolID)
	if err := s.prefs.SavePreference(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to save preference: %w", err)
	}
	s.logger.Debug("tool saved", zap.String("user", userID), zap.Int64("tool", toolID))
	return []int64(pref.SavedTools), nil
}

// RemoveTool 取消收藏，未收藏时不做任何操作
func (s *Service) RemoveTool(ctx context.Context, userID string, toolID int64) ([]int64, error) {
	pref, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !pref.HasSavedTool(toolID) {
		return []int64(pref.SavedTools), nil
	}

	pref.SavedTools = slices.DeleteFunc(pref.SavedTools, func(id int64) bool { return id == toolID })
	if err := s.prefs.SavePreference(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to save preference: %w", err)
	}
	return []int64(pref.SavedTools), nil
}

// load 读取用户偏好，不存在时返回空偏好
func (s *Service) load(ctx context.Context, userID string) (*model.UserPreference, error) {
	pref, err := s.prefs.GetPreference(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &model.UserPreference{
			UserID:             userID,
			FavoriteCategories: []string{},
			SavedTools:         []int64{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	if pref.SavedTools == nil {
		pref.SavedTools = []int64{}
	}
	return pref, nil
}
