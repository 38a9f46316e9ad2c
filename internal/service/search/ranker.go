package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/kaptinlin/jsonrepair"

	"github.com/ashwinyue/toolfinder/internal/model"
)

// Ranking 外部排序结果，工具已映射回完整记录
type Ranking struct {
	Tools   []*model.Tool
	Context model.SearchContext
}

// Ranker 外部排序接口
type Ranker interface {
	Rank(ctx context.Context, query string, candidates []*model.Tool) (*Ranking, error)
}

// LLMRanker 基于语言模型的排序器
type LLMRanker struct {
	chatModel  ecomodel.BaseChatModel
	repairJSON bool
}

// NewLLMRanker 创建语言模型排序器
// repairJSON 为 true 时，先尝试修复格式错误的模型输出再解析
func NewLLMRanker(chatModel ecomodel.BaseChatModel, repairJSON bool) *LLMRanker {
	return &LLMRanker{chatModel: chatModel, repairJSON: repairJSON}
}

const rankPrompt = `I want you to act as an AI tool recommendation engine.
Given a user query about what they want to achieve with AI, recommend the most relevant AI tools from the provided list.

USER QUERY: "%s"

AVAILABLE TOOLS:
%s

Please analyze the user's query and provide a list of the most relevant tools from the available tools.
Return your response as a JSON object with the following structure:
{
  "tools": [Array of tool IDs that are most relevant, with the most relevant first],
  "context": {
    "heading": "A short, catchy heading summarizing the user's need",
    "description": "A 1-2 sentence description explaining what the user is looking for and how AI can help"
  }
}

Only include tools that are truly relevant to the user's query. If none of the tools match the query well, return an empty array for "tools".
Limit your response to at most %d relevant tools.`

// rankingPayload 模型返回的 JSON，指针字段用于区分缺失与零值
type rankingPayload struct {
	Tools   *[]int64 `json:"tools"`
	Context *struct {
		Heading     *string `json:"heading"`
		Description *string `json:"description"`
	} `json:"context"`
}

// Rank 调用语言模型对候选工具排序
func (r *LLMRanker) Rank(ctx context.Context, query string, candidates []*model.Tool) (*Ranking, error) {
	if r.chatModel == nil {
		return nil, ErrNoCredential
	}

	summaries := make([]model.ToolSummary, 0, len(candidates))
	for _, c := range candidates {
		summaries = append(summaries, c.Summary())
	}
	toolsJSON, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode candidates: %v", ErrAdapter, err)
	}

	messages := []*schema.Message{
		schema.UserMessage(fmt.Sprintf(rankPrompt, query, toolsJSON, model.MaxSearchResults)),
	}
	resp, err := r.chatModel.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAdapter, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return nil, fmt.Errorf("%w: empty response from model", ErrAdapter)
	}

	payload, err := r.parse(resp.Content)
	if err != nil {
		return nil, err
	}
	return mapRanking(payload, candidates), nil
}

func (r *LLMRanker) parse(content string) (*rankingPayload, error) {
	var payload rankingPayload
	err := json.Unmarshal([]byte(content), &payload)
	if err != nil && r.repairJSON {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr == nil {
			payload = rankingPayload{}
			err = json.Unmarshal([]byte(repaired), &payload)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: malformed model response: %v", ErrAdapter, err)
	}

	switch {
	case payload.Tools == nil:
		return nil, fmt.Errorf("%w: missing field \"tools\"", ErrAdapter)
	case payload.Context == nil:
		return nil, fmt.Errorf("%w: missing field \"context\"", ErrAdapter)
	case payload.Context.Heading == nil:
		return nil, fmt.Errorf("%w: missing field \"context.heading\"", ErrAdapter)
	case payload.Context.Description == nil:
		return nil, fmt.Errorf("%w: missing field \"context.description\"", ErrAdapter)
	}
	return &payload, nil
}

// mapRanking 将 id 映射回候选工具，丢弃未知与重复的 id，最多保留 MaxSearchResults 个
func mapRanking(payload *rankingPayload, candidates []*model.Tool) *Ranking {
	byID := make(map[int64]*model.Tool, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	ranking := &Ranking{
		Tools: make([]*model.Tool, 0, model.MaxSearchResults),
		Context: model.SearchContext{
			Heading:     *payload.Context.Heading,
			Description: *payload.Context.Description,
		},
	}
	seen := make(map[int64]struct{}, len(*payload.Tools))
	for _, id := range *payload.Tools {
		if len(ranking.Tools) == model.MaxSearchResults {
			break
		}
		tool, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ranking.Tools = append(ranking.Tools, tool)
	}
	return ranking
}
