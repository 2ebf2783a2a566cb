package spigot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/upstream"
)

const (
	maxListed       = 5
	versionPage     = 10
	authorResources = 50
)

type Provider struct {
	client *upstream.Client
	images platform.ImageSource
	limit  int
	logger *logrus.Logger
}

func New(deps platform.Deps) *Provider {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Provider{client: deps.Client, images: deps.Images, limit: deps.Limit(), logger: logger}
}

func (p *Provider) Configured() bool { return true }

// FetchStats 对非数字 ID 直接视为不存在，不访问上游。
func (p *Provider) FetchStats(ctx context.Context, kind stats.EntityKind, id string, opts platform.FetchOptions) (*stats.Record, error) {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return nil, nil
	}
	start := time.Now()
	var rec *stats.Record
	switch kind {
	case stats.KindProject:
		rec, err = p.resource(ctx, n, opts)
	case stats.KindUser:
		rec, err = p.author(ctx, n, opts)
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

func (p *Provider) resource(ctx context.Context, id int, opts platform.FetchOptions) (*stats.Record, error) {
	var res resource
	if err := p.client.GetJSON(ctx, fmt.Sprintf("/v2/resources/%d", id), &res); err != nil {
		return nil, err
	}

	var (
		icon     upstream.Result[string]
		took     time.Duration
		versions []version
		vErr     error
	)
	upstream.RunLimited(ctx, p.limit, []upstream.Task{
		func(ctx context.Context) error {
			icon, took = platform.Icon(ctx, p.images, p.client.URL(fmt.Sprintf("/v2/resources/%d/icon", id)), opts.WantsRaster)
			return nil
		},
		func(ctx context.Context) error {
			vErr = p.client.GetJSON(ctx, fmt.Sprintf("/v2/resources/%d/versions?size=%d&sort=-releaseDate", id, versionPage), &versions)
			return nil
		},
	})

	slug := strconv.Itoa(id)
	rec := &stats.Record{
		Platform: platformKey,
		Kind:     stats.KindProject,
		Entity: stats.Entity{
			ID:   slug,
			Slug: slug,
			Name: res.Name,
			URL:  presentation.EntityURL(stats.KindProject, slug),
			Type: "plugin",
			Icon: icon,
		},
		Aggregates: stats.Aggregates{
			stats.FieldDownloads: res.Downloads,
			stats.FieldLikes:     res.Likes,
		},
		Timings: stats.Timings{ImageConversion: took},
	}
	if res.Rating.Count > 0 {
		rec.Aggregates[stats.FieldRating] = res.Rating.Average
	}

	if vErr != nil {
		p.logger.WithFields(logrus.Fields{
			"action":   "versions_fetch_failed",
			"platform": platformKey,
			"id":       id,
		}).WithError(vErr).Warn("spiget versions unavailable")
		rec.Related = upstream.Fail[[]stats.Item](vErr)
		rec.Activity = upstream.Fail[[]time.Time](vErr)
		return rec, nil
	}
	rec.Aggregates[stats.FieldVersions] = float64(len(versions))

	items := make([]stats.Item, 0, len(versions))
	dates := make([]time.Time, 0, len(versions))
	for _, v := range versions {
		published := unix(v.ReleaseDate)
		if !published.IsZero() {
			dates = append(dates, published)
		}
		items = append(items, stats.Item{
			Kind:      stats.ItemVersion,
			ID:        strconv.Itoa(v.ID),
			Name:      v.Name,
			Downloads: v.Downloads,
			Published: published,
			Icon:      upstream.Missing[string](),
			Activity:  upstream.Missing[[]time.Time](),
		})
	}
	stats.SortByPublished(items)
	rec.Related = upstream.Ok(items[:min(len(items), maxListed)])
	rec.Activity = upstream.Ok(dates)
	return rec, nil
}

func (p *Provider) author(ctx context.Context, id int, opts platform.FetchOptions) (*stats.Record, error) {
	var a author
	if err := p.client.GetJSON(ctx, fmt.Sprintf("/v2/authors/%d", id), &a); err != nil {
		return nil, err
	}
	slug := fmt.Sprintf("%s.%d", a.Name, id)
	rec := &stats.Record{
		Platform: platformKey,
		Kind:     stats.KindUser,
		Entity: stats.Entity{
			ID:   strconv.Itoa(id),
			Slug: slug,
			Name: a.Name,
			URL:  presentation.EntityURL(stats.KindUser, slug),
		},
		// Spiget 不提供作者维度的时间序列。
		Activity: upstream.Missing[[]time.Time](),
	}
	avatar := p.client.URL(fmt.Sprintf("/v2/authors/%d/avatar", id))

	var resources []resource
	path := fmt.Sprintf("/v2/authors/%d/resources?size=%d&sort=-downloads", id, authorResources)
	if err := p.client.GetJSON(ctx, path, &resources); err != nil {
		p.logger.WithFields(logrus.Fields{
			"action":   "resource_list_failed",
			"platform": platformKey,
			"id":       id,
		}).WithError(err).Warn("spiget author resources unavailable")
		rec.Entity.Icon, rec.Timings.ImageConversion = platform.Icon(ctx, p.images, avatar, opts.WantsRaster)
		rec.Aggregates = stats.Aggregates{}
		rec.Related = upstream.Fail[[]stats.Item](err)
		return rec, nil
	}

	var (
		downloads float64
		rated     int
		ratingSum float64
	)
	items := make([]stats.Item, len(resources))
	for i, r := range resources {
		downloads += r.Downloads
		if r.Rating.Average > 0 {
			rated++
			ratingSum += r.Rating.Average
		}
		items[i] = stats.Item{
			Kind:        stats.ItemProject,
			ID:          strconv.Itoa(r.ID),
			Name:        r.Name,
			Downloads:   r.Downloads,
			Followers:   r.Likes,
			ProjectType: "plugin",
			Published:   unix(r.ReleaseDate),
			Activity:    upstream.Missing[[]time.Time](),
		}
	}
	rec.Aggregates = stats.Aggregates{
		stats.FieldDownloads: downloads,
		stats.FieldProjects:  float64(len(resources)),
	}
	if rated > 0 {
		rec.Aggregates[stats.FieldRating] = ratingSum / float64(rated)
	}

	stats.SortByDownloads(items)
	top := items[:min(len(items), maxListed)]
	urls := []string{avatar}
	for _, item := range top {
		urls = append(urls, p.client.URL("/v2/resources/"+item.ID+"/icon"))
	}
	icons, took := platform.Icons(ctx, p.images, p.limit, urls, opts.WantsRaster)
	rec.Entity.Icon = icons[0]
	for i := range top {
		top[i].Icon = icons[i+1]
	}
	rec.Timings.ImageConversion = took
	rec.Related = upstream.Ok(top)
	return rec, nil
}
