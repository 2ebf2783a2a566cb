package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/cache"
	"github.com/modfolio/modfolio/internal/config"
	"github.com/modfolio/modfolio/internal/logging"
	"github.com/modfolio/modfolio/internal/media"
	"github.com/modfolio/modfolio/internal/pipeline"
	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/raster"
	"github.com/modfolio/modfolio/internal/render"
	"github.com/modfolio/modfolio/internal/server"
	"github.com/modfolio/modfolio/internal/server/routes"
	"github.com/modfolio/modfolio/internal/upstream"
	"github.com/modfolio/modfolio/internal/version"
)

// cliOptions 汇总 CLI 标志解析后的结果，便于在测试中注入。
type cliOptions struct {
	configPath  string
	checkOnly   bool
	showVersion bool
}

var (
	stdOut io.Writer = os.Stdout
	stdErr io.Writer = os.Stderr
)

func main() {
	opts, err := parseCLIFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(stdErr, err.Error())
		os.Exit(2)
	}
	os.Exit(run(opts))
}

// run 根据解析到的 CLI 选项执行业务流程，并返回退出码，方便测试。
func run(opts cliOptions) int {
	if opts.showVersion {
		printVersion()
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stdErr, "加载配置失败: %v\n", err)
		return 1
	}

	logger, err := logging.InitLogger(cfg.Global)
	if err != nil {
		fmt.Fprintf(stdErr, "初始化日志失败: %v\n", err)
		return 1
	}

	if opts.checkOnly {
		fields := logging.BaseFields("check_config", opts.configPath)
		fields["platforms"] = len(cfg.Platforms)
		fields["auth"] = config.AuthModes(cfg.Platforms)
		fields["result"] = "ok"
		logger.WithFields(fields).Info("配置校验通过")
		return 0
	}

	app, registry, err := buildApp(cfg, logger)
	if err != nil {
		fmt.Fprintf(stdErr, "初始化服务失败: %v\n", err)
		return 1
	}

	fields := logging.BaseFields("startup", opts.configPath)
	fields["platforms"] = platformKeys(registry)
	fields["listen_port"] = cfg.Global.ListenPort
	fields["auth"] = config.AuthModes(cfg.Platforms)
	fields["version"] = version.Full()
	logger.WithFields(fields).Info("配置加载完成")

	if err := startHTTPServer(app, cfg.Global.ListenPort, logger); err != nil {
		fmt.Fprintf(stdErr, "HTTP 服务启动失败: %v\n", err)
		return 1
	}
	return 0
}

// parseCLIFlags 解析 CLI 参数，并结合环境变量计算最终的配置路径。
func parseCLIFlags(args []string) (cliOptions, error) {
	fs := flag.NewFlagSet("modfolio", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configFlag string
		checkOnly  bool
		showVer    bool
	)

	fs.StringVar(&configFlag, "config", "", "配置文件路径（默认 ./config.toml，可被 MODFOLIO_CONFIG 覆盖）")
	fs.BoolVar(&checkOnly, "check-config", false, "仅校验配置后退出")
	fs.BoolVar(&showVer, "version", false, "显示版本信息")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, fmt.Errorf("解析参数失败: %w", err)
	}

	return cliOptions{
		configPath:  config.ResolvePath(configFlag),
		checkOnly:   checkOnly,
		showVersion: showVer,
	}, nil
}

// buildApp 按“配置 → 平台注册表 → 客户端/缓存/provider → 管线 → Fiber”的顺序装配，
// 所有请求共享同一组缓存与去重器。
func buildApp(cfg *config.Config, logger *logrus.Logger) (*fiber.App, *server.PlatformRegistry, error) {
	registry, err := server.NewPlatformRegistry(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("构建平台注册表失败: %w", err)
	}

	g := cfg.Global
	httpClient := upstream.NewHTTPClient(g.UpstreamTimeout.DurationValue() + g.ImageTimeout.DurationValue())
	images := media.NewNormalizer(media.Options{
		Client:    httpClient,
		UserAgent: g.UserAgent,
		Timeout:   g.ImageTimeout.DurationValue(),
		Logger:    logger,
	})

	sources := make(map[string]pipeline.Source)
	for _, route := range registry.List() {
		src, err := buildSource(cfg, route, httpClient, images, logger)
		if err != nil {
			return nil, nil, err
		}
		sources[route.Key()] = src
	}

	rasterizer, err := raster.New(raster.Options{
		Width:   g.RasterWidth,
		FontDir: g.FontDir,
		Logger:  logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("初始化栅格器失败: %w", err)
	}

	composer := &render.Composer{Version: version.Version, Attribution: g.Attribution}
	rasterComposer := &render.Composer{
		Version:     version.Version,
		Attribution: g.Attribution,
		Measurer:    rasterizer.Measurer(),
	}

	p, err := pipeline.New(pipeline.Options{
		Sources:         sources,
		Composer:        composer,
		RasterComposer:  rasterComposer,
		Rasterizer:      rasterizer,
		UpstreamTimeout: g.UpstreamTimeout.DurationValue(),
		Logger:          logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("初始化渲染管线失败: %w", err)
	}

	app, err := server.NewApp(server.AppOptions{
		Logger:     logger,
		Registry:   registry,
		Handler:    pipeline.NewHandlers(p, logger),
		ListenPort: g.ListenPort,
	})
	if err != nil {
		return nil, nil, err
	}
	routes.RegisterPlatformRoutes(app, registry)
	routes.RegisterMetricsRoute(app)
	return app, registry, nil
}

// buildSource 为单个平台创建 API 客户端、provider 与按平台 TTL 隔离的两级缓存。
func buildSource(cfg *config.Config, route server.PlatformRoute, httpClient *http.Client, images platform.ImageSource, logger *logrus.Logger) (pipeline.Source, error) {
	g := cfg.Global
	headers := http.Header{}
	headers.Set("User-Agent", g.UserAgent)
	if route.Meta.APIKeyHeader != "" && route.Config.HasAPIKey() {
		headers.Set(route.Meta.APIKeyHeader, route.Config.APIKey)
	}

	client, err := upstream.NewClient(httpClient, upstream.ClientOptions{
		Platform:        route.Meta.Presentation.DisplayName,
		BaseURL:         route.UpstreamURL.String(),
		Headers:         headers,
		Timeout:         g.UpstreamTimeout.DurationValue(),
		RateLimit:       route.Config.RateLimit,
		RateBurst:       route.Config.RateBurst,
		BreakerFailures: route.Config.BreakerFailures,
		Logger:          logger,
	})
	if err != nil {
		return pipeline.Source{}, fmt.Errorf("platform %s: %w", route.Key(), err)
	}

	provider := route.Meta.NewProvider(platform.Deps{
		Client:      client,
		APIKey:      route.Config.APIKey,
		Images:      images,
		Concurrency: g.FetchConcurrency,
		Logger:      logger,
	})

	statsStore, err := newStore(route.CacheTTL, g.MaxCacheEntries)
	if err != nil {
		return pipeline.Source{}, fmt.Errorf("platform %s: %w", route.Key(), err)
	}
	artifactStore, err := newStore(route.CacheTTL, g.MaxCacheEntries)
	if err != nil {
		return pipeline.Source{}, fmt.Errorf("platform %s: %w", route.Key(), err)
	}

	return pipeline.Source{
		Meta:      route.Meta,
		Provider:  provider,
		TTL:       route.CacheTTL,
		Stats:     statsStore,
		Artifacts: artifactStore,
	}, nil
}

func newStore(ttl time.Duration, maxEntries int) (cache.Store, error) {
	return cache.NewStore(cache.Options{TTL: ttl, MaxEntries: maxEntries})
}

func platformKeys(registry *server.PlatformRegistry) []string {
	list := registry.List()
	keys := make([]string, len(list))
	for i, route := range list {
		keys[i] = route.Key()
	}
	return keys
}

func startHTTPServer(app *fiber.App, port int, logger *logrus.Logger) error {
	logger.WithFields(logrus.Fields{
		"action": "listen",
		"port":   port,
	}).Info("Fiber 服务启动")

	return app.Listen(fmt.Sprintf(":%d", port))
}
