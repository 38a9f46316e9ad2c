package search

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/ashwinyue/toolfinder/internal/model"
)

// 字段权重
const (
	nameWeight     = 3
	categoryWeight = 2
	baseWeight     = 1
)

// FallbackResult 本地关键词排序
// 无可用词项时返回空列表，不视为错误
func FallbackResult(query string, candidates []*model.DecoratedTool) *model.SearchResult {
	terms := queryTerms(query)

	type scored struct {
		tool  *model.DecoratedTool
		score int
	}
	matched := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if s := score(terms, c); s > 0 {
			matched = append(matched, scored{tool: c, score: s})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})
	if len(matched) > model.MaxSearchResults {
		matched = matched[:model.MaxSearchResults]
	}

	tools := make([]*model.DecoratedTool, 0, len(matched))
	for _, m := range matched {
		tools = append(tools, m.tool)
	}
	return &model.SearchResult{
		Tools: tools,
		Context: &model.SearchContext{
			Heading:     fmt.Sprintf("AI Tools for \"%s\"", query),
			Description: fmt.Sprintf("Here are some AI tools that might help you with %s. (Using local search)", query),
		},
		Source: model.SearchSourceFallback,
	}
}

// queryTerms 小写、按空白切分、去掉首尾标点并去重
func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]struct{}, len(fields))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		term := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	return terms
}

// variants 返回词项本身，以及复数词项的单数形式
func variants(term string) []string {
	if len(term) > 3 && strings.HasSuffix(term, "s") && !strings.HasSuffix(term, "ss") {
		return []string{term, strings.TrimSuffix(term, "s")}
	}
	return []string{term}
}

func containsAny(s string, forms []string) bool {
	for _, f := range forms {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func score(terms []string, tool *model.DecoratedTool) int {
	name := strings.ToLower(tool.Name)
	categories := make([]string, 0, len(tool.Categories))
	for _, c := range tool.Categories {
		categories = append(categories, strings.ToLower(c))
	}
	haystack := strings.Join([]string{
		name,
		strings.ToLower(tool.Description),
		strings.Join(categories, " "),
		strings.ToLower(strings.Join(tool.Tags, " ")),
	}, " ")

	total := 0
	for _, term := range terms {
		forms := variants(term)
		if !containsAny(haystack, forms) {
			continue
		}
		if containsAny(name, forms) {
			total += nameWeight
		}
		for _, c := range categories {
			if containsAny(c, forms) {
				total += categoryWeight
				break
			}
		}
		total += baseWeight
	}
	return total
}
