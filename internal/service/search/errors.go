package search

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery 查询为空或仅包含空白
	ErrEmptyQuery = errors.New("query must not be empty")
	// ErrAdapter 外部排序失败，所有排序错误均包装该错误
	ErrAdapter = errors.New("external ranking failed")
	// ErrNoCredential 未配置语言模型凭据
	ErrNoCredential = fmt.Errorf("%w: no api credential configured", ErrAdapter)
	// ErrInvalidResult 搜索结果不符合响应结构
	ErrInvalidResult = errors.New("invalid search result")
	// ErrStoreUnavailable 目录存储不可用，无法回退
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)
