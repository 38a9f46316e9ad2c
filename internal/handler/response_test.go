package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ashwinyue/toolfinder/internal/repository"
	"github.com/ashwinyue/toolfinder/internal/service/catalog"
	"github.com/ashwinyue/toolfinder/internal/service/search"
)

func TestError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"empty query", search.ErrEmptyQuery, http.StatusBadRequest, search.ErrEmptyQuery.Error()},
		{"invalid tool", fmt.Errorf("%w: bad rating", catalog.ErrInvalidTool), http.StatusBadRequest, "invalid tool: bad rating"},
		{"not found", fmt.Errorf("tool 9: %w", repository.ErrNotFound), http.StatusNotFound, "tool 9: record not found"},
		{"duplicate", repository.ErrDuplicate, http.StatusConflict, repository.ErrDuplicate.Error()},
		{"integrity", fmt.Errorf("%w: tag 3", repository.ErrIntegrity), http.StatusInternalServerError, "Failed"},
		{"store", fmt.Errorf("%w: %w", search.ErrStoreUnavailable, errors.New("dial")), http.StatusInternalServerError, "Failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err, "Failed")

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"code":%d,"msg":%q}`, tt.status, tt.msg), w.Body.String())
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestError_Nil(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, nil, "Failed")
	assert.Empty(t, c.Errors)
	assert.Equal(t, 0, w.Body.Len())
}
