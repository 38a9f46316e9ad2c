package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestClient_RewritesHost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.URL.Path)
	}))
	defer ts.Close()

	client := NewTestClient(ts, "api.openai.com")
	resp, err := client.Get("https://api.openai.com/v1/chat/completions")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "/v1/chat/completions", string(body))
}

func TestRedirectTransport_SkipsOtherHosts(t *testing.T) {
	rt := NewRedirectTransport("http://127.0.0.1:1", "api.openai.com")
	req, err := http.NewRequest(http.MethodGet, "https://example.com/", nil)
	require.NoError(t, err)
	assert.False(t, rt.shouldRewrite(req))
}
