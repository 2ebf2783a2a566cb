package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/modfolio/modfolio/internal/platform"
)

const (
	minRasterWidth = 100
	maxRasterWidth = 4000
)

// Validate 针对语义级别做进一步校验，防止非法配置启动服务。
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("配置为空")
	}

	g := c.Global
	if g.ListenPort <= 0 || g.ListenPort > 65535 {
		return newFieldError("Global.ListenPort", "必须在 1-65535")
	}
	if g.CacheTTL.DurationValue() <= 0 {
		return newFieldError("Global.CacheTTL", "必须大于 0")
	}
	if g.MaxCacheEntries <= 0 {
		return newFieldError("Global.MaxCacheEntries", "必须大于 0")
	}
	if g.FetchConcurrency <= 0 {
		return newFieldError("Global.FetchConcurrency", "必须大于 0")
	}
	if g.UpstreamTimeout.DurationValue() <= 0 {
		return newFieldError("Global.UpstreamTimeout", "必须大于 0")
	}
	if g.ImageTimeout.DurationValue() <= 0 {
		return newFieldError("Global.ImageTimeout", "必须大于 0")
	}
	if g.RasterWidth < minRasterWidth || g.RasterWidth > maxRasterWidth {
		return newFieldError("Global.RasterWidth", fmt.Sprintf("必须在 %d-%d", minRasterWidth, maxRasterWidth))
	}

	seen := map[string]struct{}{}
	for i := range c.Platforms {
		p := &c.Platforms[i]
		if p.Name == "" {
			return newFieldError("Platform[].Name", "不能为空")
		}
		if _, exists := seen[p.Name]; exists {
			return newFieldError(platformField(p.Name, "Name"), "重复")
		}
		seen[p.Name] = struct{}{}

		if _, ok := platform.Resolve(p.Name); !ok {
			return newFieldError(platformField(p.Name, "Name"), fmt.Sprintf("未注册平台: %s", p.Name))
		}
		if p.Upstream != "" {
			if err := validateUpstream(p.Upstream); err != nil {
				return fmt.Errorf("%s: %w", platformField(p.Name, "Upstream"), err)
			}
		}
		if p.RateLimit < 0 {
			return newFieldError(platformField(p.Name, "RateLimit"), "不能为负数")
		}
		if p.RateBurst < 0 {
			return newFieldError(platformField(p.Name, "RateBurst"), "不能为负数")
		}
	}

	return nil
}

func validateUpstream(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("仅支持 http/https，上游: %s", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("上游缺少 Host: %s", raw)
	}
	return nil
}

// EffectiveCacheTTL 返回特定平台生效的 TTL，未覆盖时回退至全局值。
func (c *Config) EffectiveCacheTTL(p PlatformConfig) time.Duration {
	if p.CacheTTL.DurationValue() > 0 {
		return p.CacheTTL.DurationValue()
	}
	return c.Global.CacheTTL.DurationValue()
}
