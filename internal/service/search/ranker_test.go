package search

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudwego/eino-ext/components/model/openai"
	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashwinyue/toolfinder/internal/model"
	"github.com/ashwinyue/toolfinder/internal/testutil"
)

// ========== Mock ChatModel ==========

type mockChatModel struct {
	response  string
	err       error
	callCount int
	lastInput []*schema.Message
}

func (m *mockChatModel) Generate(ctx context.Context, messages []*schema.Message, opts ...ecomodel.Option) (*schema.Message, error) {
	m.callCount++
	m.lastInput = messages
	if m.err != nil {
		return nil, m.err
	}
	return &schema.Message{Role: schema.Assistant, Content: m.response}, nil
}

func (m *mockChatModel) Stream(ctx context.Context, messages []*schema.Message, opts ...ecomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, nil
}

func (m *mockChatModel) BindTools(tools []*schema.ToolInfo) error {
	return nil
}

func candidateTools() []*model.Tool {
	return []*model.Tool{
		{ID: 1, Name: "DALL-E", Description: "Creates images", CompanyName: "OpenAI", Rating: "4.8", Pricing: "Paid"},
		{ID: 2, Name: "ChatGPT", Description: "Conversational AI", CompanyName: "OpenAI", Rating: "4.9", Pricing: "Free"},
		{ID: 3, Name: "Midjourney", Description: "Artistic images", CompanyName: "Midjourney, Inc.", Rating: "4.9", Pricing: "$10/mo"},
	}
}

func toolIDs(tools []*model.Tool) []int64 {
	ids := make([]int64, 0, len(tools))
	for _, t := range tools {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestLLMRanker_Rank(t *testing.T) {
	m := &mockChatModel{response: `{"tools":[3,99,1,3],"context":{"heading":"Make pictures","description":"Image generators"}}`}
	r := NewLLMRanker(m, false)

	ranking, err := r.Rank(context.Background(), "generate images", candidateTools())
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, toolIDs(ranking.Tools))
	assert.Equal(t, "Make pictures", ranking.Context.Heading)
	assert.Equal(t, "Image generators", ranking.Context.Description)

	require.Len(t, m.lastInput, 1)
	prompt := m.lastInput[0].Content
	assert.Contains(t, prompt, `USER QUERY: "generate images"`)
	assert.Contains(t, prompt, `"companyName": "Midjourney, Inc."`)
	// 只发送精简字段
	assert.NotContains(t, prompt, "rating")
}

func TestLLMRanker_TruncatesToMaxResults(t *testing.T) {
	candidates := make([]*model.Tool, 0, 8)
	for i := int64(1); i <= 8; i++ {
		candidates = append(candidates, &model.Tool{ID: i, Name: "tool", Rating: "4"})
	}
	m := &mockChatModel{response: `{"tools":[8,7,6,5,4,3,2],"context":{"heading":"h","description":"d"}}`}

	ranking, err := NewLLMRanker(m, false).Rank(context.Background(), "q", candidates)
	require.NoError(t, err)
	assert.Equal(t, []int64{8, 7, 6, 5, 4}, toolIDs(ranking.Tools))
}

func TestLLMRanker_Errors(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
	}{
		{"empty response", "  ", nil},
		{"not json", "I recommend DALL-E", nil},
		{"missing tools", `{"context":{"heading":"h","description":"d"}}`, nil},
		{"missing context", `{"tools":[1]}`, nil},
		{"missing heading", `{"tools":[1],"context":{"description":"d"}}`, nil},
		{"non numeric ids", `{"tools":["one"],"context":{"heading":"h","description":"d"}}`, nil},
		{"model error", "", errors.New("rate limited")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockChatModel{response: tt.response, err: tt.err}
			_, err := NewLLMRanker(m, false).Rank(context.Background(), "q", candidateTools())
			assert.ErrorIs(t, err, ErrAdapter)
		})
	}
}

func TestLLMRanker_NoModel(t *testing.T) {
	_, err := NewLLMRanker(nil, false).Rank(context.Background(), "q", candidateTools())
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.ErrorIs(t, err, ErrAdapter)
}

func TestLLMRanker_RepairJSON(t *testing.T) {
	truncated := `{"tools":[2,1],"context":{"heading":"Chat","description":"Assistants"}`

	_, err := NewLLMRanker(&mockChatModel{response: truncated}, false).Rank(context.Background(), "q", candidateTools())
	assert.ErrorIs(t, err, ErrAdapter)

	ranking, err := NewLLMRanker(&mockChatModel{response: truncated}, true).Rank(context.Background(), "q", candidateTools())
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, toolIDs(ranking.Tools))
	assert.Equal(t, "Chat", ranking.Context.Heading)
}

// fakeCompletionServer 模拟 OpenAI chat completions 接口
func fakeCompletionServer(t *testing.T, content string, status int) (*httptest.Server, *[]string) {
	t.Helper()
	var prompts []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.Unmarshal(body, &req)
		for _, m := range req.Messages {
			prompts = append(prompts, m.Content)
		}

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `{"error":{"message":"upstream unavailable","type":"server_error"}}`)
			return
		}
		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-4o",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(ts.Close)
	return ts, &prompts
}

func newOpenAIModel(t *testing.T, ts *httptest.Server) ecomodel.BaseChatModel {
	t.Helper()
	cm, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		APIKey:     "test-key",
		Model:      "gpt-4o",
		HTTPClient: testutil.NewTestClient(ts),
	})
	require.NoError(t, err)
	return cm
}

func TestLLMRanker_OpenAIClient(t *testing.T) {
	ts, prompts := fakeCompletionServer(t, `{"tools":[2],"context":{"heading":"Chat assistants","description":"Talk to AI"}}`, http.StatusOK)

	r := NewLLMRanker(newOpenAIModel(t, ts), false)
	ranking, err := r.Rank(context.Background(), "chat with ai", candidateTools())
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, toolIDs(ranking.Tools))
	assert.Equal(t, "Chat assistants", ranking.Context.Heading)

	require.Len(t, *prompts, 1)
	assert.Contains(t, (*prompts)[0], `USER QUERY: "chat with ai"`)
}

func TestLLMRanker_OpenAIServerError(t *testing.T) {
	ts, _ := fakeCompletionServer(t, "", http.StatusInternalServerError)

	_, err := NewLLMRanker(newOpenAIModel(t, ts), false).Rank(context.Background(), "q", candidateTools())
	assert.ErrorIs(t, err, ErrAdapter)
}
