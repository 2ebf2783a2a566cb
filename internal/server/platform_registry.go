package server

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/modfolio/modfolio/internal/config"
	"github.com/modfolio/modfolio/internal/platform"
)

// PlatformRoute 将平台配置与派生属性（生效 TTL、解析后的上游地址）聚合在一起，
// 供路由与管线直接复用，避免重复解析配置。
type PlatformRoute struct {
	// Config 是 config.toml 中声明的字段副本，未声明时只有 Name。
	Config config.PlatformConfig
	Meta   platform.Metadata
	// ListenPort 记录当前监听端口，方便日志输出。
	ListenPort  int
	CacheTTL    time.Duration
	UpstreamURL *url.URL
	// Configured 为 false 表示平台需要 API Key 但未提供。
	Configured bool
}

// Key 返回平台键。
func (r *PlatformRoute) Key() string { return r.Meta.Key }

// PlatformRegistry 提供平台键到 PlatformRoute 的查询能力。
// 所有已注册且未被禁用的平台都会启用，配置只做覆盖。
type PlatformRegistry struct {
	routes  map[string]*PlatformRoute
	ordered []*PlatformRoute
}

// NewPlatformRegistry 根据配置构建平台映射。调用方应在启动阶段创建一次并复用。
func NewPlatformRegistry(cfg *config.Config) (*PlatformRegistry, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	metas := platform.List()
	registry := &PlatformRegistry{
		routes: make(map[string]*PlatformRoute, len(metas)),
	}
	for _, meta := range metas {
		pc := cfg.Platform(meta.Key)
		if pc.Disabled {
			continue
		}
		route, err := buildPlatformRoute(cfg, meta, pc)
		if err != nil {
			return nil, err
		}
		registry.routes[meta.Key] = route
		registry.ordered = append(registry.ordered, route)
	}
	return registry, nil
}

// Lookup 根据路由参数查找平台，大小写不敏感。
func (r *PlatformRegistry) Lookup(key string) (*PlatformRoute, bool) {
	if r == nil {
		return nil, false
	}
	route, ok := r.routes[strings.ToLower(strings.TrimSpace(key))]
	return route, ok
}

// List 返回启用的平台（按键排序），用于诊断输出与启动装配。
func (r *PlatformRegistry) List() []PlatformRoute {
	if r == nil || len(r.ordered) == 0 {
		return nil
	}
	result := make([]PlatformRoute, len(r.ordered))
	for i, route := range r.ordered {
		result[i] = *route
	}
	return result
}

func buildPlatformRoute(cfg *config.Config, meta platform.Metadata, pc config.PlatformConfig) (*PlatformRoute, error) {
	raw := pc.Upstream
	if raw == "" {
		raw = meta.DefaultUpstream
	}
	upstreamURL, err := url.Parse(raw)
	if err != nil || upstreamURL.Host == "" {
		return nil, fmt.Errorf("invalid upstream for platform %s: %q", meta.Key, raw)
	}

	return &PlatformRoute{
		Config:      pc,
		Meta:        meta,
		ListenPort:  cfg.Global.ListenPort,
		CacheTTL:    cfg.EffectiveCacheTTL(pc),
		UpstreamURL: upstreamURL,
		Configured:  !meta.RequiresAPIKey || pc.HasAPIKey(),
	}, nil
}
