package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	// EnvConfigPath 在未传入 --config 时指定配置文件路径。
	EnvConfigPath = "MODFOLIO_CONFIG"
	envPrefix     = "MODFOLIO"
	defaultPath   = "config.toml"
)

// ResolvePath 按 --config、MODFOLIO_CONFIG、config.toml 的顺序确定配置路径。
func ResolvePath(flagPath string) string {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	return defaultPath
}

// Load 读取并解析 TOML 配置文件，同时注入默认值与校验逻辑。
// 全局字段可通过 MODFOLIO_<KEY> 环境变量覆盖，平台 API Key 可通过 MODFOLIO_<NAME>_API_KEY 提供。
func Load(path string) (*Config, error) {
	path = ResolvePath(path)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置失败: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(durationDecodeHook())); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	applyGlobalDefaults(&cfg.Global)
	for i := range cfg.Platforms {
		applyPlatformDefaults(v, &cfg.Platforms[i])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ListenPort", 3000)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogFilePath", "")
	v.SetDefault("LogMaxSize", 100)
	v.SetDefault("LogMaxBackups", 10)
	v.SetDefault("LogCompress", true)
	v.SetDefault("CacheTTL", "1h")
	v.SetDefault("MaxCacheEntries", 5000)
	v.SetDefault("FetchConcurrency", 5)
	v.SetDefault("UpstreamTimeout", "10s")
	v.SetDefault("ImageTimeout", "5s")
	v.SetDefault("RasterWidth", 800)
	v.SetDefault("FontDir", "")
	v.SetDefault("UserAgent", "modfolio (+https://github.com/modfolio/modfolio)")
	v.SetDefault("Attribution", "")
}

func applyGlobalDefaults(g *GlobalConfig) {
	if g.ListenPort == 0 {
		g.ListenPort = 3000
	}
	if g.CacheTTL.DurationValue() == 0 {
		g.CacheTTL = Duration(time.Hour)
	}
	if g.MaxCacheEntries == 0 {
		g.MaxCacheEntries = 5000
	}
	if g.FetchConcurrency == 0 {
		g.FetchConcurrency = 5
	}
	if g.UpstreamTimeout.DurationValue() == 0 {
		g.UpstreamTimeout = Duration(10 * time.Second)
	}
	if g.ImageTimeout.DurationValue() == 0 {
		g.ImageTimeout = Duration(5 * time.Second)
	}
	if g.RasterWidth == 0 {
		g.RasterWidth = 800
	}
}

func applyPlatformDefaults(v *viper.Viper, p *PlatformConfig) {
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
	p.Upstream = strings.TrimRight(strings.TrimSpace(p.Upstream), "/")
	if p.CacheTTL.DurationValue() < 0 {
		p.CacheTTL = Duration(0)
	}
	if p.APIKey == "" && p.Name != "" {
		p.APIKey = strings.TrimSpace(v.GetString(p.Name + "_API_KEY"))
	}
}

func durationDecodeHook() mapstructure.DecodeHookFunc {
	targetType := reflect.TypeOf(Duration(0))

	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != targetType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			if v == "" {
				return Duration(0), nil
			}
			if parsed, err := time.ParseDuration(v); err == nil {
				return Duration(parsed), nil
			}
			if seconds, err := strconv.ParseFloat(v, 64); err == nil {
				return Duration(time.Duration(seconds * float64(time.Second))), nil
			}
			return nil, fmt.Errorf("无法解析 Duration 字段: %s", v)
		case int:
			return Duration(time.Duration(v) * time.Second), nil
		case int64:
			return Duration(time.Duration(v) * time.Second), nil
		case float64:
			return Duration(time.Duration(v * float64(time.Second))), nil
		case time.Duration:
			return Duration(v), nil
		case Duration:
			return v, nil
		default:
			return nil, fmt.Errorf("不支持的 Duration 类型: %T", v)
		}
	}
}
