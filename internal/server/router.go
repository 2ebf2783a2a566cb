package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/stats"
)

// RenderHandler describes the component that turns a resolved platform route
// into a card, badge or meta response. It allows injecting fake handlers
// during tests.
type RenderHandler interface {
	Card(fiber.Ctx, *PlatformRoute, stats.EntityKind) error
	Badge(fiber.Ctx, *PlatformRoute, stats.EntityKind) error
	Meta(fiber.Ctx, *PlatformRoute, stats.EntityKind) error
}

// AppOptions controls how the Fiber application should behave.
type AppOptions struct {
	Logger     *logrus.Logger
	Registry   *PlatformRegistry
	Handler    RenderHandler
	ListenPort int
}

const (
	contextKeyRequestID = "_modfolio_request_id"
	contextKeyCrawler   = "_modfolio_crawler"
	contextKeyRaster    = "_modfolio_raster"
)

// NewApp builds a Fiber application with platform routing, crawler detection
// and structured JSON errors.
func NewApp(opts AppOptions) (*fiber.App, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.Registry == nil {
		return nil, errors.New("platform registry is required")
	}
	if opts.Handler == nil {
		return nil, errors.New("render handler is required")
	}
	if opts.ListenPort <= 0 {
		return nil, fmt.Errorf("invalid listen port: %d", opts.ListenPort)
	}

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		// 路由参数会进入缓存的统计记录，需脱离 fasthttp 的请求缓冲。
		Immutable:    true,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: jsonErrorHandler(opts.Logger),
	})

	app.Use(recover.New())
	app.Use(requestContextMiddleware())
	app.Use(crawlerMiddleware())

	app.Get("/:platform/meta/:kind/:id", withRoute(opts, opts.Handler.Meta))
	app.Get("/:platform/:kind/:id/:stat", withRoute(opts, opts.Handler.Badge))
	app.Get("/:platform/:kind/:id", withRoute(opts, opts.Handler.Card))

	return app, nil
}

// requestContextMiddleware 负责生成请求 ID 并写入响应头。
func requestContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		reqID := uuid.NewString()
		c.Locals(contextKeyRequestID, reqID)
		c.Set("X-Request-ID", reqID)
		return c.Next()
	}
}

// withRoute 解析平台与实体类型；诊断路径交给后续注册的路由处理。
func withRoute(opts AppOptions, next func(fiber.Ctx, *PlatformRoute, stats.EntityKind) error) fiber.Handler {
	return func(c fiber.Ctx) error {
		if isDiagnosticsPath(string(c.Request().URI().Path())) {
			return c.Next()
		}

		key := c.Params("platform")
		route, ok := opts.Registry.Lookup(key)
		if !ok {
			return renderRouteError(c, opts.Logger, fiber.StatusNotFound, "platform_not_found", logrus.Fields{"platform": key})
		}

		rawKind := c.Params("kind")
		kind, err := stats.ParseEntityKind(rawKind)
		if err != nil || !route.Meta.Supports(kind) {
			return renderRouteError(c, opts.Logger, fiber.StatusNotFound, "kind_not_supported", logrus.Fields{
				"platform": route.Key(),
				"kind":     rawKind,
			})
		}

		if !route.Configured {
			return renderRouteError(c, opts.Logger, fiber.StatusInternalServerError, "api_key_missing", logrus.Fields{
				"platform": route.Key(),
			})
		}
		return next(c, route, kind)
	}
}

func renderRouteError(c fiber.Ctx, logger *logrus.Logger, status int, code string, fields logrus.Fields) error {
	fields["action"] = "route_lookup"
	fields["error"] = code
	fields["request_id"] = RequestID(c)
	logger.WithFields(fields).Warn("route rejected")

	return c.Status(status).JSON(fiber.Map{
		"error": code,
	})
}

func jsonErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
		code := "internal_error"
		switch status {
		case fiber.StatusNotFound:
			code = "route_not_found"
		case fiber.StatusMethodNotAllowed:
			code = "method_not_allowed"
		}
		if status >= fiber.StatusInternalServerError {
			logger.WithFields(logrus.Fields{
				"action":     "request_failed",
				"path":       c.Path(),
				"request_id": RequestID(c),
			}).WithError(err).Error("unhandled error")
		}
		return c.Status(status).JSON(fiber.Map{"error": code})
	}
}

// RequestID returns the request identifier stored by the router middleware.
func RequestID(c fiber.Ctx) string {
	if value := c.Locals(contextKeyRequestID); value != nil {
		if reqID, ok := value.(string); ok {
			return reqID
		}
	}
	return ""
}

func isDiagnosticsPath(path string) bool {
	return strings.HasPrefix(path, "/-/")
}
