package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testConfigPath 返回 testdata 下的样例配置。
func testConfigPath(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join("testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("样例配置不存在: %v", err)
	}
	return path
}

// writeTempConfig 把 TOML 片段写入临时 modfolio.toml 并返回路径。
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modfolio.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("写入临时配置失败: %v", err)
	}
	return path
}

func TestLoadFailsWithMissingFields(t *testing.T) {
	if _, err := Load(testConfigPath(t, "missing.toml")); err == nil {
		t.Fatalf("缺失字段的配置应返回错误")
	}
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	cfg := `
LogLevel = "info"
CacheTTL = "boom"

[[Platform]]
Name = "modrinth"
`
	path := writeTempConfig(t, cfg)
	if _, err := Load(path); err == nil {
		t.Fatalf("无效 Duration 应失败")
	}
}

func TestLoadAcceptsIntegerSeconds(t *testing.T) {
	path := writeTempConfig(t, "CacheTTL = 120\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 返回错误: %v", err)
	}
	if cfg.Global.CacheTTL.DurationValue() != 2*time.Minute {
		t.Fatalf("纯数字应按秒解析, got %s", cfg.Global.CacheTTL.DurationValue())
	}
}

func TestLoadReadsAPIKeyFromEnv(t *testing.T) {
	t.Setenv("MODFOLIO_CURSEFORGE_API_KEY", "env-key")
	path := writeTempConfig(t, "[[Platform]]\nName = \"CurseForge\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 返回错误: %v", err)
	}
	if got := cfg.Platform("curseforge").APIKey; got != "env-key" {
		t.Fatalf("API Key 应从环境变量读取, got %q", got)
	}
}

func TestResolvePathOrder(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/modfolio.toml")
	if got := ResolvePath("custom.toml"); got != "custom.toml" {
		t.Fatalf("--config 应优先, got %s", got)
	}
	if got := ResolvePath(""); got != "/etc/modfolio.toml" {
		t.Fatalf("应读取 %s, got %s", EnvConfigPath, got)
	}
	t.Setenv(EnvConfigPath, "")
	if got := ResolvePath(""); got != "config.toml" {
		t.Fatalf("默认路径应为 config.toml, got %s", got)
	}
}
