package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modfolio/modfolio/internal/config"
)

func TestConfigureDefaultsToStdout(t *testing.T) {
	logger, err := InitLogger(config.GlobalConfig{LogLevel: "info"})
	if err != nil {
		t.Fatalf("配置失败: %v", err)
	}
	if logger.Out != os.Stdout {
		t.Fatalf("未指定文件时应输出到 stdout")
	}
}

func TestInitLoggerFallbackOnPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root 不受目录权限限制")
	}
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	if err := os.Mkdir(blocked, 0o755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	if err := os.Chmod(blocked, 0o000); err != nil {
		t.Fatalf("设置目录权限失败: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(blocked, 0o755) })

	cfg := config.GlobalConfig{
		LogLevel:    "info",
		LogFilePath: filepath.Join(blocked, "sub", "modfolio.log"),
	}
	logger, err := InitLogger(cfg)
	if err != nil {
		t.Fatalf("初始化不应失败: %v", err)
	}
	if logger.Out != os.Stdout {
		t.Fatalf("fallback 时应退回 stdout")
	}
}

func TestConfigureCreatesRotatingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modfolio.log")
	cfg := config.GlobalConfig{LogLevel: "debug", LogFilePath: path}
	logger, err := InitLogger(cfg)
	if err != nil {
		t.Fatalf("配置失败: %v", err)
	}
	logger.Info("test")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("预期创建日志文件: %v", err)
	}
}

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := InitLogger(config.GlobalConfig{LogLevel: "chatty"}); err == nil {
		t.Fatalf("未知日志级别应返回错误")
	}
}

func TestRenderFields(t *testing.T) {
	fields := RenderFields("modrinth", "project", "sodium", "badge", true)
	if fields["platform"] != "modrinth" || fields["kind"] != "project" || fields["id"] != "sodium" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if fields["artifact"] != "badge" || fields["cache_hit"] != true {
		t.Fatalf("artifact/cache_hit 字段缺失: %v", fields)
	}
	if _, ok := RenderFields("modrinth", "user", "jellysquid", "", false)["artifact"]; ok {
		t.Fatalf("空 artifact 不应写入字段")
	}
}

func TestInitLoggerStampsServiceFields(t *testing.T) {
	logger, err := InitLogger(config.GlobalConfig{})
	if err != nil {
		t.Fatalf("空级别应默认为 info: %v", err)
	}
	if logger.GetLevel().String() != "info" {
		t.Fatalf("unexpected level: %s", logger.GetLevel())
	}
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.WithField("action", "probe").Info("hello")
	line := buf.String()
	if !strings.Contains(line, `"service":"modfolio"`) || !strings.Contains(line, `"version":`) {
		t.Fatalf("日志缺少 service/version 字段: %s", line)
	}
}
