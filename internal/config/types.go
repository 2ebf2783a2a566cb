package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration 提供更灵活的反序列化能力，同时兼容纯秒整数与 Go Duration 字符串。
type Duration time.Duration

// UnmarshalText 使 Viper 可以识别诸如 "30s"、"5m" 或纯数字秒值等配置写法。
func (d *Duration) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*d = Duration(0)
		return nil
	}

	if parsed, err := time.ParseDuration(raw); err == nil {
		*d = Duration(parsed)
		return nil
	}

	if intVal, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*d = Duration(time.Duration(intVal) * time.Second)
		return nil
	}

	return fmt.Errorf("invalid duration value: %s", raw)
}

// DurationValue 返回真实的 time.Duration，便于调用方计算。
func (d Duration) DurationValue() time.Duration {
	return time.Duration(d)
}

// GlobalConfig 描述全局运行时行为，所有平台共享同一份参数。
type GlobalConfig struct {
	ListenPort       int      `mapstructure:"ListenPort"`
	LogLevel         string   `mapstructure:"LogLevel"`
	LogFilePath      string   `mapstructure:"LogFilePath"`
	LogMaxSize       int      `mapstructure:"LogMaxSize"`
	LogMaxBackups    int      `mapstructure:"LogMaxBackups"`
	LogCompress      bool     `mapstructure:"LogCompress"`
	CacheTTL         Duration `mapstructure:"CacheTTL"`
	MaxCacheEntries  int      `mapstructure:"MaxCacheEntries"`
	FetchConcurrency int      `mapstructure:"FetchConcurrency"`
	UpstreamTimeout  Duration `mapstructure:"UpstreamTimeout"`
	ImageTimeout     Duration `mapstructure:"ImageTimeout"`
	RasterWidth      int      `mapstructure:"RasterWidth"`
	// FontDir 为空时栅格器使用内嵌的 Go 字体。
	FontDir     string `mapstructure:"FontDir"`
	UserAgent   string `mapstructure:"UserAgent"`
	Attribution string `mapstructure:"Attribution"`
}

// PlatformConfig 覆盖单个平台的上游地址、凭证与限流参数。
type PlatformConfig struct {
	Name     string   `mapstructure:"Name"`
	Upstream string   `mapstructure:"Upstream"`
	APIKey   string   `mapstructure:"APIKey"`
	CacheTTL Duration `mapstructure:"CacheTTL"`
	// RateLimit 为每秒请求数，0 表示不限流。
	RateLimit       float64 `mapstructure:"RateLimit"`
	RateBurst       int     `mapstructure:"RateBurst"`
	BreakerFailures uint32  `mapstructure:"BreakerFailures"`
	Disabled        bool    `mapstructure:"Disabled"`
}

// Config 是 TOML 文件映射的整体结构。
type Config struct {
	Global    GlobalConfig     `mapstructure:",squash"`
	Platforms []PlatformConfig `mapstructure:"Platform"`
}

// HasAPIKey 表示当前平台是否配置了 API Key。
func (p PlatformConfig) HasAPIKey() bool {
	return strings.TrimSpace(p.APIKey) != ""
}

// AuthMode 输出 `keyed` 或 `anonymous`，供日志字段使用。
func (p PlatformConfig) AuthMode() string {
	if p.HasAPIKey() {
		return "keyed"
	}
	return "anonymous"
}

// Platform 返回指定平台的配置；未声明时返回仅含名称的零值配置。
func (c *Config) Platform(name string) PlatformConfig {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range c.Platforms {
		if p.Name == key {
			return p
		}
	}
	return PlatformConfig{Name: key}
}

// AuthModes 返回已声明平台的鉴权模式摘要，例如 curseforge:keyed。
func AuthModes(platforms []PlatformConfig) []string {
	if len(platforms) == 0 {
		return nil
	}
	result := make([]string, len(platforms))
	for i, p := range platforms {
		result[i] = fmt.Sprintf("%s:%s", p.Name, p.AuthMode())
	}
	return result
}
