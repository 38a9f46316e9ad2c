package model

import (
	"strconv"
	"time"
)

// Tool AI 工具
type Tool struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id" validate:"gt=0"`
	Name        string     `gorm:"type:text;not null" json:"name" validate:"required"`
	Description string     `gorm:"type:text;not null" json:"description"`
	CompanyName string     `gorm:"column:company_name;type:text;not null" json:"companyName"`
	LogoURL     string     `gorm:"column:logo_url;type:text;not null" json:"logoUrl"`
	ImageURL    string     `gorm:"column:image_url;type:text;not null" json:"imageUrl"`
	Rating      string     `gorm:"type:text;not null" json:"rating" validate:"rating"`
	Pricing     string     `gorm:"type:text;not null" json:"pricing"`
	WebsiteURL  string     `gorm:"column:website_url;type:text;not null" json:"websiteUrl"`
	Featured    bool       `gorm:"not null;default:false;index" json:"featured"`
	CreatedAt   *time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName 指定表名
func (Tool) TableName() string {
	return "tools"
}

// ValidRating 评分以十进制文本保存，取值范围 0-5
func ValidRating(rating string) bool {
	v, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		return false
	}
	return v >= 0 && v <= 5
}

// ToolSummary 发送给排序模型的精简工具信息
type ToolSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CompanyName string `json:"companyName"`
	Pricing     string `json:"pricing"`
}

// Summary 返回工具的精简投影
func (t *Tool) Summary() ToolSummary {
	return ToolSummary{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CompanyName: t.CompanyName,
		Pricing:     t.Pricing,
	}
}

// DecoratedTool 附带分类名与标签名的工具视图，按请求计算，不落库
type DecoratedTool struct {
	Tool
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}
