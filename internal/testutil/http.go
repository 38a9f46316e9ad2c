package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"
)

// RedirectTransport 将发往外部 API 的请求改写到测试服务器
// hosts 为空时改写全部请求
type RedirectTransport struct {
	target *url.URL
	hosts  map[string]struct{}
	next   http.RoundTripper
}

// NewRedirectTransport 创建请求改写器
func NewRedirectTransport(target string, hosts ...string) *RedirectTransport {
	u, _ := url.Parse(target)
	rt := &RedirectTransport{
		target: u,
		hosts:  make(map[string]struct{}, len(hosts)),
		next:   http.DefaultTransport,
	}
	for _, h := range hosts {
		rt.hosts[h] = struct{}{}
	}
	return rt
}

// RoundTrip 实现 http.RoundTripper 接口
func (t *RedirectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.shouldRewrite(req) {
		cloned := req.Clone(req.Context())
		cloned.URL.Scheme = t.target.Scheme
		cloned.URL.Host = t.target.Host
		cloned.Host = t.target.Host
		req = cloned
	}
	return t.next.RoundTrip(req)
}

func (t *RedirectTransport) shouldRewrite(req *http.Request) bool {
	if len(t.hosts) == 0 {
		return true
	}
	_, ok := t.hosts[req.URL.Host]
	return ok
}

// NewTestClient 创建测试用 HTTP 客户端，请求被改写到 ts
func NewTestClient(ts *httptest.Server, hosts ...string) *http.Client {
	return &http.Client{
		Timeout:   5 * time.Second,
		Transport: NewRedirectTransport(ts.URL, hosts...),
	}
}
