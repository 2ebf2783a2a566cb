package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/config"
)

func TestParseCLIFlagsPriority(t *testing.T) {
	t.Setenv("MODFOLIO_CONFIG", "/tmp/env.toml")

	opts, err := parseCLIFlags([]string{})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if opts.configPath != "/tmp/env.toml" {
		t.Fatalf("应优先使用环境变量，得到 %s", opts.configPath)
	}

	opts, err = parseCLIFlags([]string{"--config", "/tmp/flag.toml"})
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if opts.configPath != "/tmp/flag.toml" {
		t.Fatalf("flag 应高于环境变量，得到 %s", opts.configPath)
	}

	if _, err := parseCLIFlags([]string{"--bogus"}); err == nil {
		t.Fatalf("未知参数应返回错误")
	}
}

func TestRunCheckConfigSuccess(t *testing.T) {
	useBufferWriters(t)
	code := run(cliOptions{configPath: configFixture(t, "valid.toml"), checkOnly: true})
	if code != 0 {
		t.Fatalf("期望退出码 0，得到 %d (stderr=%s)", code, stdErrBuffer().String())
	}
}

func TestRunCheckConfigFailure(t *testing.T) {
	useBufferWriters(t)
	code := run(cliOptions{configPath: configFixture(t, "missing.toml"), checkOnly: true})
	if code == 0 {
		t.Fatalf("无效配置应返回非零退出码")
	}
	if !strings.Contains(stdErrBuffer().String(), "加载配置失败") {
		t.Fatalf("stderr 应包含失败原因")
	}
}

func TestRunVersionOutput(t *testing.T) {
	useBufferWriters(t)
	code := run(cliOptions{showVersion: true})
	if code != 0 {
		t.Fatalf("version 模式应成功退出，得到 %d", code)
	}
	if !strings.Contains(stdOutBuffer().String(), "modfolio") {
		t.Fatalf("version 输出应包含 modfolio 标识")
	}
}

func TestBuildAppServesCardsEndToEnd(t *testing.T) {
	var (
		mu            sync.Mutex
		sawUA, sawKey string
	)
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		sawUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v2/project/sodium":
			fmt.Fprint(w, `{"id":"AANobbMI","slug":"sodium","title":"Sodium","downloads":1234567,"followers":4321,"project_type":"mod"}`)
		case "/v2/project/AANobbMI/version":
			fmt.Fprint(w, `[{"id":"v1","version_number":"0.6.3","downloads":5000,"loaders":["fabric"],"date_published":"2026-02-20T00:00:00Z"}]`)
		case "/v1/mods/238222":
			sawKey = r.Header.Get("x-api-key")
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstreamSrv.Close()

	cfg := testConfig(t, fmt.Sprintf(`
UserAgent = "modfolio-test"

[[Platform]]
Name = "modrinth"
Upstream = "%[1]s"

[[Platform]]
Name = "curseforge"
Upstream = "%[1]s"
APIKey = "cf-key"

[[Platform]]
Name = "spigot"
Disabled = true
`, upstreamSrv.URL))

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	app, registry, err := buildApp(cfg, logger)
	if err != nil {
		t.Fatalf("buildApp 返回错误: %v", err)
	}
	if keys := platformKeys(registry); strings.Join(keys, ",") != "curseforge,hangar,modrinth" {
		t.Fatalf("unexpected platforms %v", keys)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/modrinth/project/sodium", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "Sodium") {
		t.Fatalf("unexpected card response %d %s", resp.StatusCode, body)
	}
	mu.Lock()
	if sawUA != "modfolio-test" {
		t.Fatalf("上游请求应携带配置的 User-Agent, got %q", sawUA)
	}
	mu.Unlock()

	resp, err = app.Test(httptest.NewRequest("GET", "/curseforge/project/238222", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound || resp.Header.Get("X-Error-Status") != "404" {
		t.Fatalf("expected 404 error card, got %d", resp.StatusCode)
	}
	mu.Lock()
	if sawKey != "cf-key" {
		t.Fatalf("curseforge 请求应携带 x-api-key, got %q", sawKey)
	}
	mu.Unlock()

	resp, err = app.Test(httptest.NewRequest("GET", "/-/platforms", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("诊断接口应可访问, got %d", resp.StatusCode)
	}
}

func testConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	cfg, err := config.Load(writeConfigFile(t, content))
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	return cfg
}
