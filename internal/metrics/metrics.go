// Package metrics exposes the Prometheus collectors shared by the cache,
// upstream clients, image normalizer and render pipeline. Collectors are
// registered on the default registry and served at /-/metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheLookups 按层（stats/artifact）统计命中与未命中。
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modfolio_cache_lookups_total",
			Help: "Cache lookups by layer and result",
		},
		[]string{"layer", "result"},
	)

	// UpstreamRequests 统计各平台上游请求结果。
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modfolio_upstream_requests_total",
			Help: "Upstream API requests by platform and outcome",
		},
		[]string{"platform", "outcome"},
	)

	// BreakerState 0=closed 1=half-open 2=open。
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "modfolio_upstream_breaker_state",
			Help: "Circuit breaker state per platform (0 closed, 1 half-open, 2 open)",
		},
		[]string{"platform"},
	)

	// ImageConversions 统计图片转码结果。
	ImageConversions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modfolio_image_normalizations_total",
			Help: "Image normalizations by outcome",
		},
		[]string{"outcome"},
	)

	// RenderDuration 记录 compose + 可选栅格化耗时。
	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "modfolio_render_duration_seconds",
			Help:    "Time spent composing and encoding artifacts",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"artifact", "format"},
	)
)

// RecordCacheLookup 记录一次缓存查询。
func RecordCacheLookup(layer string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(layer, result).Inc()
}

// RecordUpstream 记录一次上游请求结果。
func RecordUpstream(platform, outcome string) {
	UpstreamRequests.WithLabelValues(platform, outcome).Inc()
}

// RecordRender 记录一次渲染耗时。
func RecordRender(artifact, format string, elapsed time.Duration) {
	RenderDuration.WithLabelValues(artifact, format).Observe(elapsed.Seconds())
}
