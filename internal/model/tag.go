package model

// Tag 工具标签
type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:text;not null;uniqueIndex" json:"name"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// ToolTag 工具-标签关联表
type ToolTag struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ToolID int64 `gorm:"not null;index" json:"toolId"`
	TagID  int64 `gorm:"not null;index" json:"tagId"`
}

// TableName 指定表名
func (ToolTag) TableName() string {
	return "tool_tags"
}
