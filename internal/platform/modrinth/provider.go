package modrinth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/upstream"
)

const maxListed = 5

// Provider 通过 v2/v3 API 组装 Modrinth 统计记录。
type Provider struct {
	client   *upstream.Client
	images   platform.ImageSource
	limit    int
	versions *upstream.Deduplicator[[]version]
	logger   *logrus.Logger
}

// New 创建 Provider；版本列表请求按项目去重。
func New(deps platform.Deps) *Provider {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Provider{
		client:   deps.Client,
		images:   deps.Images,
		limit:    deps.Limit(),
		versions: upstream.NewDeduplicator[[]version](),
		logger:   logger,
	}
}

// Configured 恒为 true，Modrinth 不需要 API Key。
func (p *Provider) Configured() bool { return true }

// FetchStats 实现 platform.Provider。
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
	case stats.KindOrganization:
		rec, err = p.organization(ctx, id, opts)
	case stats.KindCollection:
		rec, err = p.collection(ctx, id, opts)
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

func (p *Provider) project(ctx context.Context, id string, opts platform.FetchOptions) (*stats.Record, error) {
	var proj project
	if err := p.client.GetJSON(ctx, "/v2/project/"+url.PathEscape(id), &proj); err != nil {
		return nil, err
	}

	var (
		icon    upstream.Result[string]
		took    time.Duration
		listing upstream.Result[[]version]
	)
	upstream.RunLimited(ctx, p.limit, []upstream.Task{
		func(ctx context.Context) error {
			icon, took = platform.Icon(ctx, p.images, proj.IconURL, opts.WantsRaster)
			return nil
		},
		func(ctx context.Context) error {
			listing = p.projectVersions(ctx, proj.ref())
			return nil
		},
	})

	rec := &stats.Record{
		Platform: platformKey,
		Kind:     stats.KindProject,
		Entity: stats.Entity{
			ID:   proj.ID,
			Slug: proj.Slug,
			Name: proj.displayName(),
			URL:  presentation.EntityURL(stats.KindProject, proj.Slug),
			Type: proj.projectType(),
			Icon: icon,
		},
		Aggregates: stats.Aggregates{
			stats.FieldDownloads: proj.Downloads,
			stats.FieldFollowers: proj.Followers,
		},
		Timings: stats.Timings{ImageConversion: took},
	}

	versions, ok := listing.Get()
	if !ok {
		rec.Related = upstream.Fail[[]stats.Item](listing.Err())
		rec.Activity = upstream.Fail[[]time.Time](listing.Err())
		return rec, nil
	}
	rec.Aggregates[stats.FieldVersions] = float64(len(versions))

	items := make([]stats.Item, 0, len(versions))
	dates := make([]time.Time, 0, len(versions))
	for _, v := range versions {
		published := v.published()
		if !published.IsZero() {
			dates = append(dates, published)
		}
		name := v.VersionNumber
		if name == "" {
			name = v.Name
		}
		items = append(items, stats.Item{
			Kind:         stats.ItemVersion,
			ID:           v.ID,
			Name:         name,
			Downloads:    v.Downloads,
			Loaders:      v.Loaders,
			GameVersions: v.GameVersions,
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

func (p *Provider) user(ctx context.Context, id string, opts platform.FetchOptions) (*stats.Record, error) {
	var u user
	if err := p.client.GetJSON(ctx, "/v2/user/"+url.PathEscape(id), &u); err != nil {
		return nil, err
	}
	var projects []project
	err := p.client.GetJSON(ctx, "/v2/user/"+url.PathEscape(id)+"/projects", &projects)

	rec := &stats.Record{
		Platform: platformKey,
		Kind:     stats.KindUser,
		Entity: stats.Entity{
			ID:   u.ID,
			Slug: u.Username,
			Name: u.Username,
			URL:  presentation.EntityURL(stats.KindUser, u.Username),
		},
	}
	p.aggregate(ctx, rec, u.AvatarURL, projects, err, true, opts)
	return rec, nil
}

func (p *Provider) organization(ctx context.Context, id string, opts platform.FetchOptions) (*stats.Record, error) {
	var org organization
	if err := p.client.GetJSON(ctx, "/v3/organization/"+url.PathEscape(id), &org); err != nil {
		return nil, err
	}
	var projects []project
	err := p.client.GetJSON(ctx, "/v3/organization/"+url.PathEscape(id)+"/projects", &projects)

	slug := org.Slug
	if slug == "" {
		slug = id
	}
	rec := &stats.Record{
		Platform: platformKey,
		Kind:     stats.KindOrganization,
		Entity: stats.Entity{
			ID:   org.ID,
			Slug: slug,
			Name: org.Name,
			URL:  presentation.EntityURL(stats.KindOrganization, slug),
		},
	}
	p.aggregate(ctx, rec, org.IconURL, projects, err, true, opts)
	return rec, nil
}

func (p *Provider) collection(ctx context.Context, id string, opts platform.FetchOptions) (*stats.Record, error) {
	var col collection
	if err := p.client.GetJSON(ctx, "/v3/collection/"+url.PathEscape(id), &col); err != nil {
		return nil, err
	}

	var (
		projects []project
		err      error
	)
	if len(col.Projects) > 0 {
		ids, marshalErr := json.Marshal(col.Projects)
		if marshalErr != nil {
			return nil, fmt.Errorf("encode collection project ids: %w", marshalErr)
		}
		err = p.client.GetJSON(ctx, "/v2/projects?ids="+url.QueryEscape(string(ids)), &projects)
	}

	rec := &stats.Record{
		Platform: platformKey,
		Kind:     stats.KindCollection,
		Entity: stats.Entity{
			ID:   col.ID,
			Slug: col.ID,
			Name: col.Name,
			URL:  presentation.EntityURL(stats.KindCollection, col.ID),
		},
	}
	p.aggregate(ctx, rec, col.IconURL, projects, err, false, opts)
	return rec, nil
}

// aggregate 汇总项目列表：总下载/关注、按下载排序的前五项，以及可选的版本活跃度。
// listErr 非空时列表与聚合值都视为不可用，卡片仍可渲染头部。
func (p *Provider) aggregate(ctx context.Context, rec *stats.Record, iconURL string, projects []project, listErr error, withActivity bool, opts platform.FetchOptions) {
	if listErr != nil {
		p.logger.WithFields(logrus.Fields{
			"action":   "project_list_failed",
			"platform": platformKey,
			"kind":     rec.Kind.String(),
			"id":       rec.Entity.ID,
		}).WithError(listErr).Warn("modrinth project list unavailable")
		rec.Entity.Icon, rec.Timings.ImageConversion = platform.Icon(ctx, p.images, iconURL, opts.WantsRaster)
		rec.Aggregates = stats.Aggregates{}
		rec.Related = upstream.Fail[[]stats.Item](listErr)
		rec.Activity = upstream.Fail[[]time.Time](listErr)
		return
	}

	var downloads, followers float64
	items := make([]stats.Item, len(projects))
	for i, proj := range projects {
		downloads += proj.Downloads
		followers += proj.Followers
		items[i] = stats.Item{
			Kind:         stats.ItemProject,
			ID:           proj.ref(),
			Name:         proj.displayName(),
			Downloads:    proj.Downloads,
			Followers:    proj.Followers,
			ProjectType:  proj.projectType(),
			Loaders:      proj.Loaders,
			GameVersions: proj.GameVersions,
			Published:    parseTime(proj.Published),
			Icon:         upstream.Missing[string](),
			Activity:     upstream.Missing[[]time.Time](),
		}
	}
	rec.Aggregates = stats.Aggregates{
		stats.FieldDownloads: downloads,
		stats.FieldFollowers: followers,
		stats.FieldProjects:  float64(len(projects)),
	}

	if withActivity {
		series := upstream.Map(ctx, p.limit, items, func(ctx context.Context, item stats.Item) upstream.Result[[]time.Time] {
			listing := p.projectVersions(ctx, item.ID)
			versions, ok := listing.Get()
			if !ok {
				return upstream.Fail[[]time.Time](listing.Err())
			}
			dates := make([]time.Time, 0, len(versions))
			for _, v := range versions {
				if ts := v.published(); !ts.IsZero() {
					dates = append(dates, ts)
				}
			}
			return upstream.Ok(dates)
		})
		for i := range items {
			items[i].Activity = series[i]
		}
		rec.Activity = stats.MergeActivity(items)
	} else {
		rec.Activity = upstream.Missing[[]time.Time]()
	}

	stats.SortByDownloads(items)
	top := items[:min(len(items), maxListed)]

	urls := make([]string, 0, len(top)+1)
	urls = append(urls, iconURL)
	byID := make(map[string]string, len(projects))
	for _, proj := range projects {
		byID[proj.ref()] = proj.IconURL
	}
	for _, item := range top {
		urls = append(urls, byID[item.ID])
	}
	icons, took := platform.Icons(ctx, p.images, p.limit, urls, opts.WantsRaster)
	rec.Entity.Icon = icons[0]
	for i := range top {
		top[i].Icon = icons[i+1]
	}
	rec.Timings.ImageConversion = took
	rec.Related = upstream.Ok(top)
}

// projectVersions 拉取项目全部版本；并发的相同项目请求只发起一次。
func (p *Provider) projectVersions(ctx context.Context, ref string) upstream.Result[[]version] {
	key := fmt.Sprintf("versions:%s:%s", platformKey, ref)
	versions, err := p.versions.DoContext(ctx, key, func() ([]version, error) {
		var out []version
		err := p.client.GetJSON(context.WithoutCancel(ctx), "/v2/project/"+url.PathEscape(ref)+"/version", &out)
		return out, err
	})
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"action":   "versions_fetch_failed",
			"platform": platformKey,
			"project":  ref,
		}).WithError(err).Debug("modrinth versions unavailable")
		return upstream.Fail[[]version](err)
	}
	return upstream.Ok(versions)
}

func parseTime(value string) time.Time {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}
