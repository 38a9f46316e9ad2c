package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRating(t *testing.T) {
	tests := []struct {
		rating string
		want   bool
	}{
		{"4.8", true},
		{"0", true},
		{"5", true},
		{"5.1", false},
		{"-1", false},
		{"", false},
		{"great", false},
	}

	for _, tt := range tests {
		t.Run(tt.rating, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRating(tt.rating))
		})
	}
}

func TestTool_Summary(t *testing.T) {
	tool := &Tool{
		ID:          7,
		Name:        "Descript",
		Description: "Edit audio",
		CompanyName: "Descript",
		Pricing:     "Free trial",
		Rating:      "4.8",
		Featured:    true,
	}

	s := tool.Summary()
	assert.Equal(t, ToolSummary{
		ID:          7,
		Name:        "Descript",
		Description: "Edit audio",
		CompanyName: "Descript",
		Pricing:     "Free trial",
	}, s)
}
