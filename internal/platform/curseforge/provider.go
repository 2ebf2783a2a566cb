package curseforge

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/upstream"
)

const maxListed = 5

// Provider 读取 CurseForge v1 API；未配置 API Key 时 Configured 返回 false。
type Provider struct {
	client *upstream.Client
	images platform.ImageSource
	limit  int
	apiKey string
	logger *logrus.Logger
}

func New(deps platform.Deps) *Provider {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Provider{
		client: deps.Client,
		images: deps.Images,
		limit:  deps.Limit(),
		apiKey: deps.APIKey,
		logger: logger,
	}
}

func (p *Provider) Configured() bool { return p.apiKey != "" }

// FetchStats 支持数字 ID 与 slug；slug 通过搜索接口解析。
func (p *Provider) FetchStats(ctx context.Context, kind stats.EntityKind, id string, opts platform.FetchOptions) (*stats.Record, error) {
	if kind != stats.KindProject {
		return nil, nil
	}
	start := time.Now()
	modID, err := p.resolveID(ctx, id)
	if err != nil {
		if upstream.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var m envelope[mod]
	if err := p.client.GetJSON(ctx, fmt.Sprintf("/v1/mods/%d", modID), &m); err != nil {
		if upstream.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var (
		icon  upstream.Result[string]
		took  time.Duration
		files envelope[[]file]
		fErr  error
	)
	upstream.RunLimited(ctx, p.limit, []upstream.Task{
		func(ctx context.Context) error {
			icon, took = platform.Icon(ctx, p.images, m.Data.logoURL(), opts.WantsRaster)
			return nil
		},
		func(ctx context.Context) error {
			fErr = p.client.GetJSON(ctx, fmt.Sprintf("/v1/mods/%d/files", modID), &files)
			return nil
		},
	})

	rec := p.record(m.Data, icon)
	rec.Timings.ImageConversion = took
	if fErr != nil {
		p.logger.WithFields(logrus.Fields{
			"action":   "files_fetch_failed",
			"platform": platformKey,
			"id":       modID,
		}).WithError(fErr).Warn("curseforge files unavailable")
		rec.Related = upstream.Fail[[]stats.Item](fErr)
		rec.Activity = upstream.Fail[[]time.Time](fErr)
	} else {
		p.attachFiles(rec, files)
	}
	rec.Timings.Fetch = time.Since(start)
	return rec, nil
}

func (p *Provider) resolveID(ctx context.Context, id string) (int, error) {
	if n, err := strconv.Atoi(id); err == nil && n > 0 {
		return n, nil
	}
	var found envelope[[]mod]
	path := fmt.Sprintf("/v1/mods/search?gameId=%d&slug=%s", minecraftGameID, url.QueryEscape(id))
	if err := p.client.GetJSON(ctx, path, &found); err != nil {
		return 0, err
	}
	if len(found.Data) == 0 {
		return 0, upstream.NotFound(presentation.NotFoundMessage(stats.KindProject))
	}
	return found.Data[0].ID, nil
}

func (p *Provider) record(m mod, icon upstream.Result[string]) *stats.Record {
	site := m.Links.WebsiteURL
	if site == "" {
		site = presentation.EntityURL(stats.KindProject, m.Slug)
	}
	agg := stats.Aggregates{
		stats.FieldDownloads: m.DownloadCount,
		stats.FieldLikes:     m.ThumbsUpCount,
	}
	if m.GamePopularityRank > 0 {
		agg[stats.FieldRank] = m.GamePopularityRank
	}
	return &stats.Record{
		Platform: platformKey,
		Kind:     stats.KindProject,
		Entity: stats.Entity{
			ID:   strconv.Itoa(m.ID),
			Slug: m.Slug,
			Name: m.Name,
			URL:  site,
			Type: projectType(m.ClassID),
			Icon: icon,
		},
		Aggregates: agg,
	}
}

func (p *Provider) attachFiles(rec *stats.Record, files envelope[[]file]) {
	total := files.Pagination.TotalCount
	if total < len(files.Data) {
		total = len(files.Data)
	}
	rec.Aggregates[stats.FieldVersions] = float64(total)

	items := make([]stats.Item, 0, len(files.Data))
	dates := make([]time.Time, 0, len(files.Data))
	for _, f := range files.Data {
		published, err := time.Parse(time.RFC3339, f.FileDate)
		if err == nil {
			dates = append(dates, published)
		}
		name := f.DisplayName
		if name == "" {
			name = f.FileName
		}
		loaders, versions := f.split()
		items = append(items, stats.Item{
			Kind:         stats.ItemVersion,
			ID:           strconv.Itoa(f.ID),
			Name:         name,
			Downloads:    f.DownloadCount,
			Loaders:      loaders,
			GameVersions: versions,
			Published:    published,
			Icon:         upstream.Missing[string](),
			Activity:     upstream.Missing[[]time.Time](),
		})
	}
	stats.SortByPublished(items)
	rec.Related = upstream.Ok(items[:min(len(items), maxListed)])
	rec.Activity = upstream.Ok(dates)
}
