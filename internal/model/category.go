package model

// Category 工具分类
type Category struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Icon        string `gorm:"type:text;not null" json:"icon"`
	Description string `gorm:"type:text;not null" json:"description"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// ToolCategory 工具-分类关联表
type ToolCategory struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ToolID     int64 `gorm:"not null;index" json:"toolId"`
	CategoryID int64 `gorm:"not null;index" json:"categoryId"`
}

// TableName 指定表名
func (ToolCategory) TableName() string {
	return "tool_categories"
}
