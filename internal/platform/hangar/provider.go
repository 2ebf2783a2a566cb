package hangar

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/upstream"
)

const (
	maxListed = 5
	// 用户卡片按下载量排序前拉取的项目数。
	userProjectPage = 50
	// 每个项目用于活跃度曲线的版本数。
	activityVersions = 10
)

type Provider struct {
	client   *upstream.Client
	images   platform.ImageSource
	limit    int
	versions *upstream.Deduplicator[page[version]]
	logger   *logrus.Logger
}

func New(deps platform.Deps) *Provider {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Provider{
		client:   deps.Client,
		images:   deps.Images,
		limit:    deps.Limit(),
		versions: upstream.NewDeduplicator[page[version]](),
		logger:   logger,
	}
}

func (p *Provider) Configured() bool { return true }

func (p *Provider) FetchStats(ctx context.Context, kind stats.EntityKind, id string, opts platform.FetchOptions) (*stats.Record, error) {
	start := time.Now()
	var (
		rec *stats.Record
		err error
	)
	switch kind {
	case stats.KindProject:
		rec, err = p.project(ctx, id, opts)
	case stats.KindUser:
		rec, err = p.user(ctx, id, opts)
	default:
		return nil, nil
	}
	if err != nil {
		if upstream.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	rec.Timings.Fetch = time.Since(start)
	return rec, nil
}

func (p *Provider) project(ctx context.Context, slug string, opts platform.FetchOptions) (*stats.Record, error) {
	var proj project
	if err := p.client.GetJSON(ctx, "/api/v1/projects/"+url.PathEscape(slug), &proj); err != nil {
		return nil, err
	}

	var (
		icon    upstream.Result[string]
		took    time.Duration
		listing upstream.Result[page[version]]
	)
	upstream.RunLimited(ctx, p.limit, []upstream.Task{
		func(ctx context.Context) error {
			icon, took = platform.Icon(ctx, p.images, proj.AvatarURL, opts.WantsRaster)
			return nil
		},
		func(ctx context.Context) error {
			listing = p.projectVersions(ctx, slug, 25)
			return nil
		},
	})

	rec := &stats.Record{
		Platform: platformKey,
		Kind:     stats.KindProject,
		Entity: stats.Entity{
			ID:   proj.Namespace.Slug,
			Slug: proj.Namespace.Slug,
			Name: proj.Name,
			URL:  presentation.EntityURL(stats.KindProject, proj.path()),
			Type: "plugin",
			Icon: icon,
		},
		Aggregates: stats.Aggregates{
			stats.FieldDownloads: proj.Stats.Downloads,
			stats.FieldStars:     proj.Stats.Stars,
			stats.FieldViews:     proj.Stats.Views,
		},
		Timings: stats.Timings{ImageConversion: took},
	}

	versions, ok := listing.Get()
	if !ok {
		rec.Related = upstream.Fail[[]stats.Item](listing.Err())
		rec.Activity = upstream.Fail[[]time.Time](listing.Err())
		return rec, nil
	}
	total := versions.Pagination.Count
	if total < len(versions.Result) {
		total = len(versions.Result)
	}
	rec.Aggregates[stats.FieldVersions] = float64(total)

	items := make([]stats.Item, 0, len(versions.Result))
	dates := make([]time.Time, 0, len(versions.Result))
	for _, v := range versions.Result {
		published := parseTime(v.CreatedAt)
		if !published.IsZero() {
			dates = append(dates, published)
		}
		items = append(items, stats.Item{
			Kind:         stats.ItemVersion,
			ID:           v.Name,
			Name:         v.Name,
			Downloads:    v.Stats.TotalDownloads,
			Loaders:      v.platforms(),
			GameVersions: v.gameVersions(),
			Published:    published,
			Icon:         upstream.Missing[string](),
			Activity:     upstream.Missing[[]time.Time](),
		})
	}
	stats.SortByPublished(items)
	rec.Related = upstream.Ok(items[:min(len(items), maxListed)])
	rec.Activity = upstream.Ok(dates)
	return rec, nil
}

func (p *Provider) user(ctx context.Context, name string, opts platform.FetchOptions) (*stats.Record, error) {
	var u user
	if err := p.client.GetJSON(ctx, "/api/v1/users/"+url.PathEscape(name), &u); err != nil {
		return nil, err
	}
	rec := &stats.Record{
		Platform: platformKey,
		Kind:     stats.KindUser,
		Entity: stats.Entity{
			ID:   u.Name,
			Slug: u.Name,
			Name: u.Name,
			URL:  presentation.EntityURL(stats.KindUser, u.Name),
		},
	}

	var projects page[project]
	path := fmt.Sprintf("/api/v1/projects?owner=%s&limit=%d", url.QueryEscape(name), userProjectPage)
	if err := p.client.GetJSON(ctx, path, &projects); err != nil {
		p.logger.WithFields(logrus.Fields{
			"action":   "project_list_failed",
			"platform": platformKey,
			"id":       name,
		}).WithError(err).Warn("hangar project list unavailable")
		rec.Entity.Icon, rec.Timings.ImageConversion = platform.Icon(ctx, p.images, u.AvatarURL, opts.WantsRaster)
		rec.Aggregates = stats.Aggregates{}
		rec.Related = upstream.Fail[[]stats.Item](err)
		rec.Activity = upstream.Fail[[]time.Time](err)
		return rec, nil
	}

	var downloads, stars float64
	items := make([]stats.Item, len(projects.Result))
	for i, proj := range projects.Result {
		downloads += proj.Stats.Downloads
		stars += proj.Stats.Stars
		items[i] = stats.Item{
			Kind:        stats.ItemProject,
			ID:          proj.Namespace.Slug,
			Name:        proj.Name,
			Downloads:   proj.Stats.Downloads,
			Followers:   proj.Stats.Stars,
			ProjectType: "plugin",
			Published:   parseTime(proj.CreatedAt),
		}
	}
	count := u.ProjectCount
	if count == 0 {
		count = len(projects.Result)
	}
	rec.Aggregates = stats.Aggregates{
		stats.FieldDownloads: downloads,
		stats.FieldStars:     stars,
		stats.FieldProjects:  float64(count),
	}

	stats.SortByDownloads(items)
	top := items[:min(len(items), maxListed)]
	icons := make(map[string]string, len(projects.Result))
	for _, proj := range projects.Result {
		icons[proj.Namespace.Slug] = proj.AvatarURL
	}

	urls := []string{u.AvatarURL}
	for _, item := range top {
		urls = append(urls, icons[item.ID])
	}
	var (
		results []upstream.Result[string]
		took    time.Duration
		series  []upstream.Result[[]time.Time]
	)
	upstream.RunLimited(ctx, 2, []upstream.Task{
		func(ctx context.Context) error {
			results, took = platform.Icons(ctx, p.images, p.limit, urls, opts.WantsRaster)
			return nil
		},
		func(ctx context.Context) error {
			series = upstream.Map(ctx, p.limit, top, func(ctx context.Context, item stats.Item) upstream.Result[[]time.Time] {
				listing := p.projectVersions(ctx, item.ID, activityVersions)
				versions, ok := listing.Get()
				if !ok {
					return upstream.Fail[[]time.Time](listing.Err())
				}
				dates := make([]time.Time, 0, len(versions.Result))
				for _, v := range versions.Result {
					if ts := parseTime(v.CreatedAt); !ts.IsZero() {
						dates = append(dates, ts)
					}
				}
				return upstream.Ok(dates)
			})
			return nil
		},
	})

	rec.Entity.Icon = results[0]
	for i := range top {
		top[i].Icon = results[i+1]
		top[i].Activity = series[i]
	}
	rec.Timings.ImageConversion = took
	rec.Related = upstream.Ok(top)
	rec.Activity = stats.MergeActivity(top)
	return rec, nil
}

// projectVersions 拉取项目的版本分页；相同项目与数量的并发请求只发起一次。
func (p *Provider) projectVersions(ctx context.Context, slug string, limit int) upstream.Result[page[version]] {
	key := fmt.Sprintf("versions:%s:%s:%d", platformKey, slug, limit)
	out, err := p.versions.DoContext(ctx, key, func() (page[version], error) {
		var pg page[version]
		path := fmt.Sprintf("/api/v1/projects/%s/versions?limit=%d", url.PathEscape(slug), limit)
		err := p.client.GetJSON(context.WithoutCancel(ctx), path, &pg)
		return pg, err
	})
	if err != nil {
		return upstream.Fail[page[version]](err)
	}
	return upstream.Ok(out)
}

func parseTime(value string) time.Time {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}
