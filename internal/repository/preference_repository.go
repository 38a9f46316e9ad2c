package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ashwinyue/toolfinder/internal/model"
)

// PreferenceRepository 用户偏好仓库
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository 创建用户偏好仓库
func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetPreference 获取用户偏好
func (r *PreferenceRepository) GetPreference(ctx context.Context, userID string) (*model.UserPreference, error) {
	var pref model.UserPreference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &pref, nil
}

// SavePreference 保存用户偏好（按 user_id 覆盖写入）
func (r *PreferenceRepository) SavePreference(ctx context.Context, pref *model.UserPreference) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"favorite_categories", "saved_tools", "updated_at"}),
	}).Create(pref).Error
}
