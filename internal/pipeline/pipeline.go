package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/cache"
	"github.com/modfolio/modfolio/internal/logging"
	"github.com/modfolio/modfolio/internal/metrics"
	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/raster"
	"github.com/modfolio/modfolio/internal/render"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/svg"
	"github.com/modfolio/modfolio/internal/upstream"
)

const (
	ContentTypeSVG = "image/svg+xml"
	ContentTypePNG = "image/png"

	defaultUpstreamTimeout = 10 * time.Second
)

// ArtifactKind 区分卡片与徽章。
type ArtifactKind int

const (
	ArtifactCard ArtifactKind = iota + 1
	ArtifactBadge
)

func (k ArtifactKind) String() string {
	if k == ArtifactBadge {
		return "badge"
	}
	return "card"
}

// Request 描述一次渲染请求。
type Request struct {
	Platform string
	Kind     stats.EntityKind
	ID       string
	Artifact ArtifactKind
	// Stat 仅对徽章有效。
	Stat    string
	Options render.Options
	// Raster 为 true 时输出 PNG。
	Raster bool
}

// Artifact 是可直接写回客户端的渲染结果。
type Artifact struct {
	Body        []byte
	ContentType string
	Status      int
	FromCache   bool
	ETag        string
	RenderTime  time.Duration
	// MaxAge 为成功结果的 Cache-Control 时长，错误结果为 0。
	MaxAge time.Duration
	// Err 为错误结果的原因，成功时为 nil。
	Err *upstream.FetchError
}

// Failed 判断是否为错误结果。
func (a Artifact) Failed() bool { return a.Err != nil }

// Rasterizer 把文档树绘制为 PNG。
type Rasterizer interface {
	Rasterize(doc *svg.Document) (raster.Bitmap, error)
}

// Source 是单个平台在管线中的全部依赖，TTL 与缓存按平台隔离。
type Source struct {
	Meta      platform.Metadata
	Provider  platform.Provider
	TTL       time.Duration
	Stats     cache.Store
	Artifacts cache.Store
}

// Options 构造 Pipeline。
type Options struct {
	Sources  map[string]Source
	Composer *render.Composer
	// RasterComposer 使用栅格字体度量，缺省复用 Composer。
	RasterComposer  *render.Composer
	Rasterizer      Rasterizer
	UpstreamTimeout time.Duration
	Logger          *logrus.Logger
	Now             func() time.Time
}

// Pipeline 是 getOrRender 的实现，可并发使用。
type Pipeline struct {
	sources        map[string]Source
	composer       *render.Composer
	rasterComposer *render.Composer
	rasterizer     Rasterizer
	timeout        time.Duration
	logger         *logrus.Logger
	now            func() time.Time
	records        *upstream.Deduplicator[*stats.Record]
}

// New 校验依赖并创建 Pipeline。
func New(opts Options) (*Pipeline, error) {
	if opts.Composer == nil {
		return nil, errors.New("composer is required")
	}
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	sources := make(map[string]Source, len(opts.Sources))
	for key, src := range opts.Sources {
		if src.Provider == nil || src.Stats == nil || src.Artifacts == nil {
			return nil, fmt.Errorf("platform %s: provider and caches are required", key)
		}
		sources[strings.ToLower(key)] = src
	}
	p := &Pipeline{
		sources:        sources,
		composer:       opts.Composer,
		rasterComposer: opts.RasterComposer,
		rasterizer:     opts.Rasterizer,
		timeout:        opts.UpstreamTimeout,
		logger:         opts.Logger,
		now:            opts.Now,
		records:        upstream.NewDeduplicator[*stats.Record](),
	}
	if p.rasterComposer == nil {
		p.rasterComposer = p.composer
	}
	if p.timeout <= 0 {
		p.timeout = defaultUpstreamTimeout
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p, nil
}

// Source 按平台键查找已启用的平台。
func (p *Pipeline) Source(key string) (Source, bool) {
	src, ok := p.sources[strings.ToLower(strings.TrimSpace(key))]
	return src, ok
}

// GetOrRender 返回请求的产物；任何主请求失败都会转换为错误卡片或错误徽章，不会返回裸错误。
func (p *Pipeline) GetOrRender(ctx context.Context, req Request) Artifact {
	started := p.now()
	src, ok := p.Source(req.Platform)
	if !ok {
		pres := platform.DefaultPresentation()
		return p.failure(req, pres, upstream.NotFound("Platform not found"))
	}
	pres := src.Meta.Presentation
	req.Options = req.Options.Normalize(pres.DefaultColor)

	if req.Artifact == ArtifactBadge {
		if _, ok := pres.Badge(req.Kind, req.Stat); !ok {
			return p.failure(req, pres, upstream.NotFound("Unknown badge"))
		}
	}

	artifactKey := p.artifactKey(req)
	if value, ok := src.Artifacts.Get(artifactKey); ok {
		if cached, ok := value.(Artifact); ok {
			metrics.RecordCacheLookup("artifact", true)
			cached.FromCache = true
			return cached
		}
	}
	metrics.RecordCacheLookup("artifact", false)

	rec, fromCache, err := p.record(ctx, src, req.Kind, req.ID, req.Raster)
	if err != nil {
		return p.failure(req, pres, upstream.AsFetchError(err))
	}

	opts := req.Options
	opts.FromCache = fromCache
	art, err := p.compose(req, rec, pres, opts)
	if err != nil {
		return p.failure(req, pres, upstream.AsFetchError(err))
	}
	art.FromCache = fromCache
	art.MaxAge = src.TTL
	art.RenderTime = p.now().Sub(started)

	// 此后统计数据均来自缓存，写入产物缓存的版本需带新鲜度标记。
	stored := art
	if !fromCache {
		opts.FromCache = true
		if marked, err := p.compose(req, rec, pres, opts); err == nil {
			marked.MaxAge = src.TTL
			marked.RenderTime = art.RenderTime
			stored = marked
		}
	}
	src.Artifacts.Set(artifactKey, stored)

	metrics.RecordRender(req.Artifact.String(), formatLabel(art.ContentType), art.RenderTime)
	fields := logging.RenderFields(src.Meta.Key, req.Kind.String(), req.ID, req.Artifact.String(), fromCache)
	fields["action"] = "render_done"
	fields["format"] = formatLabel(art.ContentType)
	fields["fetch_ms"] = rec.Timings.Fetch.Milliseconds()
	fields["image_conversion_ms"] = rec.Timings.ImageConversion.Milliseconds()
	fields["render_ms"] = art.RenderTime.Milliseconds()
	p.logger.WithFields(fields).Info("artifact rendered")
	return art
}

// compose 按产物类型生成文档并编码为 SVG 或 PNG。
func (p *Pipeline) compose(req Request, rec *stats.Record, pres platform.Presentation, opts render.Options) (Artifact, error) {
	composer := p.composer
	if req.Raster {
		composer = p.rasterComposer
	}
	var doc *svg.Document
	switch req.Artifact {
	case ArtifactBadge:
		var err error
		doc, err = composer.Badge(rec, pres, req.Stat, opts)
		if err != nil {
			return Artifact{}, upstream.NotFound("Unknown badge")
		}
	default:
		doc = composer.Card(rec, pres, opts)
	}
	art := p.encode(req, doc)
	art.Status = http.StatusOK
	return art, nil
}

// record 读取统计缓存，未命中时通过去重器发起唯一一次抓取并写回缓存。
// 共享抓取脱离首个调用方的取消，但受 UpstreamTimeout 约束。
func (p *Pipeline) record(ctx context.Context, src Source, kind stats.EntityKind, id string, wantsRaster bool) (*stats.Record, bool, error) {
	if !src.Meta.Supports(kind) {
		return nil, false, upstream.NotFound(src.Meta.Presentation.NotFoundMessage(kind))
	}
	key := StatsKey(src.Meta.Key, kind, id, wantsRaster)
	if value, ok := src.Stats.Get(key); ok {
		if rec, ok := value.(*stats.Record); ok {
			metrics.RecordCacheLookup("stats", true)
			return rec, true, nil
		}
	}
	metrics.RecordCacheLookup("stats", false)

	var cached bool
	rec, err := p.records.DoContext(ctx, key, func() (*stats.Record, error) {
		// 上一轮共享抓取可能刚写回缓存。
		if value, ok := src.Stats.Get(key); ok {
			if rec, ok := value.(*stats.Record); ok {
				cached = true
				return rec, nil
			}
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		defer cancel()
		rec, err := src.Provider.FetchStats(fetchCtx, kind, id, platform.FetchOptions{WantsRaster: wantsRaster})
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, upstream.NotFound(src.Meta.Presentation.NotFoundMessage(kind))
		}
		src.Stats.Set(key, rec)
		return rec, nil
	})
	if err != nil {
		fe := upstream.AsFetchError(err)
		fields := logging.RenderFields(src.Meta.Key, kind.String(), id, "", false)
		fields["action"] = "stats_fetch_failed"
		fields["status"] = fe.Status
		p.logger.WithFields(fields).WithError(err).Warn("stats unavailable")
		return nil, false, fe
	}
	return rec, cached, nil
}

// StatsKey 生成统计缓存键；栅格请求的记录内嵌 PNG 图片，单独缓存。
func StatsKey(platformKey string, kind stats.EntityKind, id string, wantsRaster bool) string {
	if wantsRaster {
		return cache.Key(platformKey, kind.String(), id, "raster")
	}
	return cache.Key(platformKey, kind.String(), id)
}

func (p *Pipeline) artifactKey(req Request) string {
	digest := optionsDigest(req.Options, req.Raster)
	if req.Artifact == ArtifactBadge {
		return cache.Key(req.Platform, req.Kind.String(), req.ID, "badge", req.Stat, digest)
	}
	return cache.Key(req.Platform, req.Kind.String(), req.ID, "card", digest)
}

// optionsDigest 对规范化后的选项与输出格式做 xxhash。
func optionsDigest(opts render.Options, wantsRaster bool) string {
	format := "svg"
	if wantsRaster {
		format = "png"
	}
	canonical := fmt.Sprintf("%d|%t|%t|%t|%s|%s|%s",
		opts.MaxItems, opts.ShowList, opts.ShowSparklines, opts.RelativeTime,
		strings.ToLower(opts.AccentColor), strings.ToLower(opts.BackgroundColor), format)
	return fmt.Sprintf("%016x", xxhash.Sum64String(canonical))
}

// encode 输出 SVG 或 PNG；栅格化失败时回退为 SVG。
func (p *Pipeline) encode(req Request, doc *svg.Document) Artifact {
	if req.Raster && p.rasterizer != nil {
		bmp, err := p.rasterizer.Rasterize(doc)
		if err == nil {
			return Artifact{Body: bmp.PNG, ContentType: ContentTypePNG, ETag: etag(bmp.PNG)}
		}
		p.logger.WithFields(logrus.Fields{
			"action":   "rasterize_failed",
			"platform": req.Platform,
			"artifact": req.Artifact.String(),
		}).WithError(err).Error("falling back to svg")
	}
	body := doc.Markup()
	return Artifact{Body: body, ContentType: ContentTypeSVG, ETag: etag(body)}
}

// failure 渲染错误产物。栅格请求始终以 200 返回，便于预览爬虫展示。
func (p *Pipeline) failure(req Request, pres platform.Presentation, fe *upstream.FetchError) Artifact {
	title, detail := describe(fe)
	var doc *svg.Document
	composer := p.composer
	if req.Raster {
		composer = p.rasterComposer
	}
	if req.Artifact == ArtifactBadge {
		doc = composer.ErrorBadge(title, pres)
	} else {
		doc = composer.ErrorCard(title, detail, pres)
	}
	if fe.Status == 0 {
		fe = upstream.Upstream(http.StatusInternalServerError, fe.Message, fe.Err)
	}
	art := p.encode(req, doc)
	art.Status = fe.Status
	if req.Raster {
		art.Status = http.StatusOK
	}
	art.Err = fe
	return art
}

// describe 将错误转换为标题与详情：不存在时标题为平台文案，上游错误使用状态标题并附带上游原文。
func describe(fe *upstream.FetchError) (string, string) {
	if fe.Kind == upstream.KindNotFound {
		return fe.Message, ""
	}
	status := fe.Status
	detail := fe.Message
	marker := fmt.Sprintf("error: %d: ", status)
	if idx := strings.Index(detail, marker); idx >= 0 {
		detail = detail[idx+len(marker):]
	}
	return render.StatusTitle(status), strings.TrimSpace(detail)
}

func etag(body []byte) string {
	return fmt.Sprintf("\"%016x\"", xxhash.Sum64(body))
}

func formatLabel(contentType string) string {
	if contentType == ContentTypePNG {
		return "png"
	}
	return "svg"
}
