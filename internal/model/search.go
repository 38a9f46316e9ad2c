package model

// SearchSource 搜索结果来源
type SearchSource string

const (
	SearchSourceExternal SearchSource = "external" // 语言模型排序
	SearchSourceFallback SearchSource = "fallback" // 本地关键词排序
)

// MaxSearchResults 单次搜索最多返回的工具数
const MaxSearchResults = 5

// SearchContext 搜索结果的标题与说明
type SearchContext struct {
	Heading     string `json:"heading" validate:"required"`
	Description string `json:"description"`
}

// SearchResult 搜索结果，按相关度从高到低排列
type SearchResult struct {
	Tools   []*DecoratedTool `json:"tools" validate:"max=5,dive,required"`
	Context *SearchContext   `json:"context" validate:"required"`
	Source  SearchSource     `json:"-"`
}
