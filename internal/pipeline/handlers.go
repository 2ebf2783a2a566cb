package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/render"
	"github.com/modfolio/modfolio/internal/server"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/upstream"
)

const errorCacheControl = "no-cache, no-store, must-revalidate"

// Handlers 将 Pipeline 适配为 server.RenderHandler。
type Handlers struct {
	pipeline *Pipeline
	logger   *logrus.Logger
}

// NewHandlers 构造 Fiber handler 集合。
func NewHandlers(p *Pipeline, logger *logrus.Logger) *Handlers {
	return &Handlers{pipeline: p, logger: logger}
}

var _ server.RenderHandler = (*Handlers)(nil)

// Card 处理 GET /:platform/:kind/:id。
func (h *Handlers) Card(c fiber.Ctx, route *server.PlatformRoute, kind stats.EntityKind) error {
	return h.render(c, Request{
		Platform: route.Key(),
		Kind:     kind,
		ID:       c.Params("id"),
		Artifact: ArtifactCard,
		Options:  ParseOptions(c),
		Raster:   server.WantsRaster(c),
	})
}

// Badge 处理 GET /:platform/:kind/:id/:stat。
func (h *Handlers) Badge(c fiber.Ctx, route *server.PlatformRoute, kind stats.EntityKind) error {
	return h.render(c, Request{
		Platform: route.Key(),
		Kind:     kind,
		ID:       c.Params("id"),
		Artifact: ArtifactBadge,
		Stat:     strings.ToLower(c.Params("stat")),
		Options:  ParseOptions(c),
		Raster:   server.WantsRaster(c),
	})
}

// Meta 处理 GET /:platform/meta/:kind/:id，返回 {name,url}。
func (h *Handlers) Meta(c fiber.Ctx, route *server.PlatformRoute, kind stats.EntityKind) error {
	id := c.Params("id")
	info, err := h.pipeline.Meta(requestContext(c), route.Key(), kind, id)
	if err != nil {
		fe := upstream.AsFetchError(err)
		h.logger.WithFields(logrus.Fields{
			"action":     "meta_failed",
			"platform":   route.Key(),
			"kind":       kind.String(),
			"id":         id,
			"status":     fe.Status,
			"request_id": server.RequestID(c),
		}).Warn(fe.Error())
		code := "upstream_error"
		if fe.Kind == upstream.KindNotFound {
			code = "not_found"
		}
		c.Set(fiber.HeaderCacheControl, errorCacheControl)
		return c.Status(fe.Status).JSON(fiber.Map{"error": code, "message": fe.Message})
	}
	c.Set(fiber.HeaderCacheControl, cacheControl(route.CacheTTL))
	return c.JSON(info)
}

func (h *Handlers) render(c fiber.Ctx, req Request) error {
	art := h.pipeline.GetOrRender(requestContext(c), req)

	fields := logrus.Fields{
		"action":     "render_request",
		"platform":   req.Platform,
		"kind":       req.Kind.String(),
		"id":         req.ID,
		"artifact":   req.Artifact.String(),
		"status":     art.Status,
		"from_cache": art.FromCache,
		"request_id": server.RequestID(c),
	}
	if crawler := server.Crawler(c); crawler != "" {
		fields["crawler"] = crawler
	}

	c.Set(fiber.HeaderContentType, art.ContentType)
	if art.Failed() {
		fields["error"] = art.Err.Error()
		h.logger.WithFields(fields).Warn("render failed")
		c.Set(fiber.HeaderCacheControl, errorCacheControl)
		c.Set("X-Error-Status", strconv.Itoa(art.Err.Status))
		return c.Status(art.Status).Send(art.Body)
	}

	h.logger.WithFields(fields).Info("render served")
	c.Set(fiber.HeaderCacheControl, cacheControl(art.MaxAge))
	c.Set(fiber.HeaderETag, art.ETag)
	if match := c.Get(fiber.HeaderIfNoneMatch); match != "" && match == art.ETag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	return c.Status(art.Status).Send(art.Body)
}

// ParseOptions 读取渲染选项，兼容 maxProjects/maxVersions 与 showProjects/showVersions 别名。
func ParseOptions(c fiber.Ctx) render.Options {
	opts := render.DefaultOptions()
	if raw := firstQuery(c, "maxItems", "maxProjects", "maxVersions"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			opts.MaxItems = n
		}
	}
	opts.ShowList = boolQuery(firstQuery(c, "showList", "showProjects", "showVersions"), opts.ShowList)
	opts.ShowSparklines = boolQuery(c.Query("showSparklines"), opts.ShowSparklines)
	opts.RelativeTime = boolQuery(c.Query("relativeTime"), opts.RelativeTime)
	opts.AccentColor = colorQuery(c.Query("color"))
	opts.BackgroundColor = colorQuery(c.Query("backgroundColor"))
	return opts
}

func firstQuery(c fiber.Ctx, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			return v
		}
	}
	return ""
}

func boolQuery(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

// colorQuery 允许省略 #（URL 中 # 需要转义）。
func colorQuery(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "#") {
		return raw
	}
	return "#" + raw
}

func cacheControl(ttl time.Duration) string {
	return fmt.Sprintf("public, max-age=%d", int64(ttl/time.Second))
}

func requestContext(c fiber.Ctx) context.Context {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}
