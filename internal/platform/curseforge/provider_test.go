package curseforge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modfolio/modfolio/internal/media"
	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/upstream"
)

type okImages struct{}

func (okImages) Normalize(context.Context, string, bool) upstream.Result[media.Image] {
	return upstream.Ok(media.Image{DataURI: "data:image/png;base64,AA=="})
}

func newProvider(t *testing.T, handler http.Handler, apiKey string) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	headers := http.Header{}
	if apiKey != "" {
		headers.Set("x-api-key", apiKey)
	}
	client, err := upstream.NewClient(upstream.NewHTTPClient(time.Second), upstream.ClientOptions{
		Platform: "CurseForge",
		BaseURL:  srv.URL,
		Headers:  headers,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return New(platform.Deps{Client: client, APIKey: apiKey, Images: okImages{}})
}

func modHandler(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/mods/238222", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "secret" {
			t.Errorf("缺少 x-api-key 请求头")
		}
		_, _ = w.Write([]byte(`{"data":{"id":238222,"name":"Just Enough Items","slug":"jei","classId":6,
			"downloadCount":350000000,"thumbsUpCount":12,"gamePopularityRank":3,
			"logo":{"url":"https://media.forgecdn.net/jei.png"},
			"links":{"websiteUrl":"https://www.curseforge.com/minecraft/mc-mods/jei"}}}`))
	})
	mux.HandleFunc("/v1/mods/238222/files", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"displayName":"jei-1.20","fileDate":"2025-05-01T00:00:00Z","downloadCount":5,"gameVersions":["1.20.1","Forge"]},
			{"id":2,"fileName":"jei-1.21.jar","fileDate":"2025-06-01T00:00:00Z","downloadCount":9,
			 "gameVersions":["1.21","NeoForge","Fabric"],"sortableGameVersions":[{"gameVersionTypeId":68441}]}
		],"pagination":{"totalCount":240}}`))
	})
	mux.HandleFunc("/v1/mods/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("gameId") != "432" {
			t.Errorf("unexpected gameId %s", q.Get("gameId"))
		}
		if q.Get("slug") == "jei" {
			_, _ = w.Write([]byte(`{"data":[{"id":238222}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	return mux
}

func TestFetchModStats(t *testing.T) {
	p := newProvider(t, modHandler(t), "secret")
	rec, err := p.FetchStats(context.Background(), stats.KindProject, "238222", platform.FetchOptions{})
	if err != nil || rec == nil {
		t.Fatalf("fetch error: %v", err)
	}
	if rec.Entity.Name != "Just Enough Items" || rec.Entity.Type != "mod" {
		t.Fatalf("unexpected entity %+v", rec.Entity)
	}
	if v, ok := rec.Aggregates.Value(stats.FieldRank); !ok || v != 3 {
		t.Fatalf("rank should come from gamePopularityRank, got %v", v)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldVersions); v != 240 {
		t.Fatalf("file count should use pagination total, got %v", v)
	}
	items, ok := rec.Related.Get()
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 files, got %+v", rec.Related)
	}
	latest := items[0]
	if latest.Name != "jei-1.21.jar" {
		t.Fatalf("文件应按日期倒序且缺少 displayName 时使用 fileName: %s", latest.Name)
	}
	if len(latest.Loaders) != 2 || latest.Loaders[0] != "NeoForge" || latest.Loaders[1] != "Fabric" {
		t.Fatalf("unexpected loaders %v", latest.Loaders)
	}
	if len(latest.GameVersions) != 1 || latest.GameVersions[0] != "1.21" {
		t.Fatalf("loaders should be removed from game versions: %v", latest.GameVersions)
	}
}

func TestFetchModBySlug(t *testing.T) {
	p := newProvider(t, modHandler(t), "secret")
	rec, err := p.FetchStats(context.Background(), stats.KindProject, "jei", platform.FetchOptions{})
	if err != nil || rec == nil || rec.Entity.ID != "238222" {
		t.Fatalf("slug lookup failed: %+v, %v", rec, err)
	}

	rec, err = p.FetchStats(context.Background(), stats.KindProject, "missing-mod", platform.FetchOptions{})
	if err != nil || rec != nil {
		t.Fatalf("unknown slug should be not found, got %+v, %v", rec, err)
	}
}

func TestMissingRankIsUnavailable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/mods/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":1,"name":"Tiny","downloadCount":3}}`))
	})
	mux.HandleFunc("/v1/mods/1/files", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	p := newProvider(t, mux, "secret")
	rec, err := p.FetchStats(context.Background(), stats.KindProject, "1", platform.FetchOptions{})
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if _, ok := rec.Aggregates.Value(stats.FieldRank); ok {
		t.Fatalf("rank should be unavailable")
	}
	if rec.Related.OK() {
		t.Fatalf("files failure should leave related unavailable")
	}
	if rec.Entity.Icon.OK() {
		t.Fatalf("mod without logo should have no icon")
	}
	if rec.Entity.URL != "" {
		t.Fatalf("no slug and no website url, got %s", rec.Entity.URL)
	}
}

func TestConfiguredRequiresKey(t *testing.T) {
	if New(platform.Deps{}).Configured() {
		t.Fatalf("provider without api key should not be configured")
	}
	if !New(platform.Deps{APIKey: "k"}).Configured() {
		t.Fatalf("provider with api key should be configured")
	}
	meta, ok := platform.Resolve(platformKey)
	if !ok || !meta.RequiresAPIKey || meta.APIKeyHeader != "x-api-key" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if meta.Supports(stats.KindUser) {
		t.Fatalf("curseforge only serves projects")
	}
}

func TestFileSplitDeduplicatesLoaders(t *testing.T) {
	f := file{
		GameVersions:         []string{"NeoForge", "1.21", "Forge"},
		SortableGameVersions: []sortableGameVersion{{GameVersionTypeID: 68441}},
	}
	loaders, versions := f.split()
	if len(loaders) != 2 || loaders[0] != "NeoForge" || loaders[1] != "Forge" {
		t.Fatalf("unexpected loaders %v", loaders)
	}
	if len(versions) != 1 {
		t.Fatalf("unexpected versions %v", versions)
	}
}
