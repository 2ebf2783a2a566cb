package platform

import (
	"context"
	"time"

	"github.com/modfolio/modfolio/internal/upstream"
)

// Icon 抓取单张图片并转换为 data URI 结果，同时返回转码耗时。
func Icon(ctx context.Context, src ImageSource, rawURL string, wantsRaster bool) (upstream.Result[string], time.Duration) {
	if src == nil || rawURL == "" {
		return upstream.Missing[string](), 0
	}
	res := src.Normalize(ctx, rawURL, wantsRaster)
	img, ok := res.Get()
	if !ok {
		return upstream.Fail[string](res.Err()), 0
	}
	return upstream.Ok(img.DataURI), img.ConversionTime
}

type iconOutcome struct {
	result upstream.Result[string]
	took   time.Duration
}

// Icons 以 limit 为并发上限抓取多张图片，结果与 urls 一一对应。
func Icons(ctx context.Context, src ImageSource, limit int, urls []string, wantsRaster bool) ([]upstream.Result[string], time.Duration) {
	outcomes := upstream.Map(ctx, limit, urls, func(ctx context.Context, rawURL string) iconOutcome {
		res, took := Icon(ctx, src, rawURL, wantsRaster)
		return iconOutcome{result: res, took: took}
	})
	results := make([]upstream.Result[string], len(outcomes))
	var total time.Duration
	for i, o := range outcomes {
		results[i] = o.result
		total += o.took
	}
	return results, total
}

// Limit 返回 Deps 中的并发上限，未设置时为 5。
func (d Deps) Limit() int {
	if d.Concurrency <= 0 {
		return 5
	}
	return d.Concurrency
}
