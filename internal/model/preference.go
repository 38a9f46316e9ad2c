package model

import (
	"time"

	"github.com/lib/pq"
)

// UserPreference 用户偏好（收藏的工具与分类）
type UserPreference struct {
	ID                 int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             string         `gorm:"type:varchar(64);not null;uniqueIndex" json:"userId"`
	FavoriteCategories pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"favoriteCategories"`
	SavedTools         pq.Int64Array  `gorm:"type:bigint[];not null;default:'{}'" json:"savedTools"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// TableName 指定表名
func (UserPreference) TableName() string {
	return "user_preferences"
}

// HasSavedTool 是否已收藏该工具
func (p *UserPreference) HasSavedTool(toolID int64) bool {
	for _, id := range p.SavedTools {
		if id == toolID {
			return true
		}
	}
	return false
}
