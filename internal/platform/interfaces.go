package platform

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/media"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/upstream"
)

// FetchOptions 影响次要资源的抓取方式。
type FetchOptions struct {
	// WantsRaster 为 true 时图片会被转成栅格器可解码的格式。
	WantsRaster bool
}

// Provider 从平台 API 抓取一个实体并产出规范化记录。
// 返回 (nil, nil) 表示实体不存在。
type Provider interface {
	FetchStats(ctx context.Context, kind stats.EntityKind, id string, opts FetchOptions) (*stats.Record, error)
	Configured() bool
}

// ImageSource 由 media.Normalizer 实现。
type ImageSource interface {
	Normalize(ctx context.Context, rawURL string, wantsRaster bool) upstream.Result[media.Image]
}

// Deps 是构造 Provider 所需的共享依赖，由 main 一次性创建后注入。
type Deps struct {
	Client      *upstream.Client
	APIKey      string
	Images      ImageSource
	Concurrency int
	Logger      *logrus.Logger
}

// Metadata 记录一个平台的静态信息，供配置校验、路由和诊断端使用。
type Metadata struct {
	Key             string
	Description     string
	DefaultUpstream string
	RequiresAPIKey  bool
	// APIKeyHeader 为携带 APIKey 的请求头名称。
	APIKeyHeader string
	Kinds        []stats.EntityKind
	Presentation Presentation
	NewProvider  func(Deps) Provider
}

// Supports 判断平台是否提供该实体类型。
func (m Metadata) Supports(kind stats.EntityKind) bool {
	for _, k := range m.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
