// Package metrics 定义搜索相关的 prometheus 指标
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 排序调用状态
const (
	RankerStatusSuccess = "success"
	RankerStatusError   = "error"
	RankerStatusTimeout = "timeout"
)

// SearchMetrics 搜索指标
// nil 接收者上的方法均为空操作
type SearchMetrics struct {
	requests      *prometheus.CounterVec
	fallbacks     *prometheus.CounterVec
	rankerLatency *prometheus.HistogramVec
	results       prometheus.Histogram
}

// NewSearchMetrics 在给定的注册器上创建指标，registerer 为 nil 时使用默认注册器
func NewSearchMetrics(registerer prometheus.Registerer) *SearchMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &SearchMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolfinder_search_requests_total",
				Help: "Total number of search requests by result source",
			},
			[]string{"source"},
		),
		fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolfinder_search_fallbacks_total",
				Help: "Total number of searches answered by local ranking",
			},
			[]string{"reason"},
		),
		rankerLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "toolfinder_ranker_latency_seconds",
				Help:    "Latency of language model ranking calls in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 15, 30},
			},
			[]string{"status"},
		),
		results: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "toolfinder_search_results",
				Help:    "Number of tools returned per search",
				Buckets: []float64{0, 1, 2, 3, 4, 5},
			},
		),
	}
}

// ObserveSearch 记录一次完成的搜索
func (m *SearchMetrics) ObserveSearch(source string, results int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(source).Inc()
	m.results.Observe(float64(results))
}

// ObserveFallback 记录一次回退
func (m *SearchMetrics) ObserveFallback(reason string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(reason).Inc()
}

// ObserveRanker 记录一次排序调用耗时
func (m *SearchMetrics) ObserveRanker(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.rankerLatency.WithLabelValues(status).Observe(d.Seconds())
}
