package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashwinyue/toolfinder/internal/model"
)

func TestValidateResult(t *testing.T) {
	valid := func() *model.SearchResult {
		return &model.SearchResult{
			Tools:   []*model.DecoratedTool{decorated(1, "DALL-E", "images", nil, nil)},
			Context: &model.SearchContext{Heading: "Image tools", Description: "Tools for images"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *model.SearchResult)
		wantErr bool
	}{
		{"valid", func(r *model.SearchResult) {}, false},
		{"empty tools", func(r *model.SearchResult) { r.Tools = []*model.DecoratedTool{} }, false},
		{"missing context", func(r *model.SearchResult) { r.Context = nil }, true},
		{"empty heading", func(r *model.SearchResult) { r.Context.Heading = "" }, true},
		{"bad rating", func(r *model.SearchResult) { r.Tools[0].Rating = "five stars" }, true},
		{"rating out of range", func(r *model.SearchResult) { r.Tools[0].Rating = "7.2" }, true},
		{"missing name", func(r *model.SearchResult) { r.Tools[0].Name = "" }, true},
		{"nil tool", func(r *model.SearchResult) { r.Tools = append(r.Tools, nil) }, true},
		{"too many tools", func(r *model.SearchResult) {
			for i := 2; i <= 6; i++ {
				r.Tools = append(r.Tools, decorated(int64(i), "tool", "", nil, nil))
			}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(r)
			err := ValidateResult(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidResult)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.ErrorIs(t, ValidateResult(nil), ErrInvalidResult)
}
