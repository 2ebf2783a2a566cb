package pipeline

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/modfolio/modfolio/internal/logging"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/upstream"
)

// MetaInfo 是 /:platform/meta/:kind/:id 的响应体。
type MetaInfo struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Meta 返回实体名称与站点链接；优先复用统计缓存中的记录（含栅格变体）。
func (p *Pipeline) Meta(ctx context.Context, platformKey string, kind stats.EntityKind, id string) (MetaInfo, error) {
	src, ok := p.Source(platformKey)
	if !ok {
		return MetaInfo{}, upstream.NotFound("Platform not found")
	}

	for _, raster := range []bool{false, true} {
		entry, ok := src.Stats.GetWithMeta(StatsKey(src.Meta.Key, kind, id, raster))
		if !ok {
			continue
		}
		rec, ok := entry.Value.(*stats.Record)
		if !ok {
			continue
		}
		age := entry.Age(p.now())
		fields := logging.RenderFields(src.Meta.Key, kind.String(), id, "meta", true)
		fields["action"] = "meta_cache_hit"
		fields["cache_age_seconds"] = int64(age / time.Second)
		p.logger.WithFields(fields).Infof("meta served from cache (cached %s)", humanize.RelTime(entry.CachedAt, p.now(), "ago", "from now"))
		return p.metaFrom(src, rec, id), nil
	}

	rec, _, err := p.record(ctx, src, kind, id, false)
	if err != nil {
		return MetaInfo{}, err
	}
	fields := logging.RenderFields(src.Meta.Key, kind.String(), id, "meta", false)
	fields["action"] = "meta_fetched"
	p.logger.WithFields(fields).Info("meta fetched")
	return p.metaFrom(src, rec, id), nil
}

func (p *Pipeline) metaFrom(src Source, rec *stats.Record, id string) MetaInfo {
	info := MetaInfo{Name: rec.Entity.Name, URL: rec.Entity.URL}
	if info.Name == "" {
		info.Name = id
	}
	if info.URL == "" {
		slug := rec.Entity.Slug
		if slug == "" {
			slug = id
		}
		info.URL = src.Meta.Presentation.EntityURL(rec.Kind, slug)
	}
	return info
}
