package modrinth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/modfolio/modfolio/internal/media"
	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/upstream"
)

type stubImages struct {
	calls atomic.Int32
}

func (s *stubImages) Normalize(_ context.Context, rawURL string, wantsRaster bool) upstream.Result[media.Image] {
	s.calls.Add(1)
	if strings.Contains(rawURL, "broken") {
		return upstream.Fail[media.Image](upstream.Transient(nil))
	}
	return upstream.Ok(media.Image{DataURI: "data:image/png;base64,AA==", MediaType: "image/png"})
}

func newProvider(t *testing.T, handler http.Handler) (*Provider, *stubImages) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := upstream.NewClient(upstream.NewHTTPClient(time.Second), upstream.ClientOptions{
		Platform: "Modrinth",
		BaseURL:  srv.URL,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	images := &stubImages{}
	return New(platform.Deps{Client: client, Images: images, Concurrency: 2}), images
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestFetchProjectStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/project/sodium", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":"AANobbMI","slug":"sodium","title":"Sodium","downloads":1234567,"followers":42,"icon_url":"https://cdn/icon.png","project_type":"mod"}`)
	})
	mux.HandleFunc("/v2/project/AANobbMI/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[
			{"id":"v1","version_number":"0.5.0","downloads":10,"loaders":["fabric"],"game_versions":["1.21"],"date_published":"2025-06-01T00:00:00Z"},
			{"id":"v3","version_number":"0.6.0","downloads":30,"loaders":["fabric","neoforge"],"game_versions":["1.21.1"],"date_published":"2025-06-10T00:00:00Z"},
			{"id":"v2","version_number":"0.5.1","downloads":20,"date_published":"2025-06-05T00:00:00Z"}
		]`)
	})
	p, _ := newProvider(t, mux)

	rec, err := p.FetchStats(context.Background(), stats.KindProject, "sodium", platform.FetchOptions{})
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if rec == nil || rec.Entity.Name != "Sodium" || rec.Entity.Type != "mod" {
		t.Fatalf("unexpected entity: %+v", rec)
	}
	if rec.Entity.URL != "https://modrinth.com/project/sodium" {
		t.Fatalf("unexpected url %s", rec.Entity.URL)
	}
	if !rec.Entity.Icon.OK() {
		t.Fatalf("icon should be loaded")
	}
	if v, _ := rec.Aggregates.Value(stats.FieldVersions); v != 3 {
		t.Fatalf("expected 3 versions, got %v", v)
	}
	items, ok := rec.Related.Get()
	if !ok || len(items) != 3 {
		t.Fatalf("expected 3 related versions, got %+v", rec.Related)
	}
	if items[0].Name != "0.6.0" || items[2].Name != "0.5.0" {
		t.Fatalf("版本应按发布时间倒序: %s, %s", items[0].Name, items[2].Name)
	}
	if items[0].Kind != stats.ItemVersion {
		t.Fatalf("related items should be versions")
	}
	if series, ok := rec.Activity.Get(); !ok || len(series) != 3 {
		t.Fatalf("expected 3 activity stamps, got %v", series)
	}
}

func TestFetchProjectVersionsFailureKeepsHeader(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/project/sodium", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":"AANobbMI","slug":"sodium","title":"Sodium","downloads":5}`)
	})
	mux.HandleFunc("/v2/project/AANobbMI/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	p, _ := newProvider(t, mux)

	rec, err := p.FetchStats(context.Background(), stats.KindProject, "sodium", platform.FetchOptions{})
	if err != nil {
		t.Fatalf("次要请求失败不应导致整体失败: %v", err)
	}
	if rec.Related.OK() || rec.Activity.OK() {
		t.Fatalf("related and activity should be failed results")
	}
	if _, ok := rec.Aggregates.Value(stats.FieldVersions); ok {
		t.Fatalf("version count should be unavailable")
	}
	if rec.Entity.Icon.OK() {
		t.Fatalf("missing icon url should yield a failed icon result")
	}
}

func TestFetchUserStatsAggregates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/user/alice", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":"u1","username":"alice","avatar_url":"https://cdn/avatar.png"}`)
	})
	mux.HandleFunc("/v2/user/alice/projects", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[
			{"id":"p1","title":"One","downloads":100,"followers":1,"icon_url":"https://cdn/1.png"},
			{"id":"p2","title":"Two","downloads":600,"followers":2,"icon_url":"https://cdn/broken.png"},
			{"id":"p3","title":"Three","downloads":300,"followers":3},
			{"id":"p4","title":"Four","downloads":50,"followers":4},
			{"id":"p5","title":"Five","downloads":500,"followers":5},
			{"id":"p6","title":"Six","downloads":400,"followers":6}
		]`)
	})
	mux.HandleFunc("/v2/project/", func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/p3/") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, `[{"id":"v","version_number":"1","date_published":"2025-06-14T00:00:00Z"}]`)
	})
	p, images := newProvider(t, mux)

	rec, err := p.FetchStats(context.Background(), stats.KindUser, "alice", platform.FetchOptions{})
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldDownloads); v != 1950 {
		t.Fatalf("expected total downloads 1950, got %v", v)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldFollowers); v != 21 {
		t.Fatalf("expected total followers 21, got %v", v)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldProjects); v != 6 {
		t.Fatalf("expected 6 projects, got %v", v)
	}
	items, ok := rec.Related.Get()
	if !ok || len(items) != maxListed {
		t.Fatalf("expected top %d projects, got %d", maxListed, len(items))
	}
	if items[0].Name != "Two" || items[4].Name != "One" {
		t.Fatalf("项目应按下载量倒序: %+v", items)
	}
	if items[0].Icon.OK() {
		t.Fatalf("broken icon should be a failed result")
	}
	if items[1].Icon.OK() {
		t.Fatalf("project without icon url should be missing")
	}
	for _, item := range items {
		if item.Name == "Three" && item.Activity.OK() {
			t.Fatalf("failed versions fetch should leave activity unavailable")
		}
		if item.Name == "Six" && !item.Activity.OK() {
			t.Fatalf("activity should be loaded for Six")
		}
	}
	if series, ok := rec.Activity.Get(); !ok || len(series) != 5 {
		t.Fatalf("expected merged activity of 5 stamps, got %v", series)
	}
	if !rec.Entity.Icon.OK() {
		t.Fatalf("avatar should be loaded")
	}
	// 头像 + 前五项中有图标地址的两项
	if got := images.calls.Load(); got != 3 {
		t.Fatalf("expected 3 image fetches, got %d", got)
	}
}

func TestFetchCollectionUsesBulkProjects(t *testing.T) {
	var gotIDs string
	mux := http.NewServeMux()
	mux.HandleFunc("/v3/collection/c1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":"c1","name":"Favourites","projects":["a","b"]}`)
	})
	mux.HandleFunc("/v2/projects", func(w http.ResponseWriter, r *http.Request) {
		gotIDs = r.URL.Query().Get("ids")
		writeJSON(w, `[{"id":"a","title":"A","downloads":1},{"id":"b","title":"B","downloads":2}]`)
	})
	p, _ := newProvider(t, mux)

	rec, err := p.FetchStats(context.Background(), stats.KindCollection, "c1", platform.FetchOptions{})
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if gotIDs != `["a","b"]` {
		t.Fatalf("unexpected ids query %q", gotIDs)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldProjects); v != 2 {
		t.Fatalf("expected 2 projects, got %v", v)
	}
	if rec.Activity.OK() {
		t.Fatalf("collections carry no activity series")
	}
}

func TestFetchOrganizationUsesV3Fields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v3/organization/caffeine", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":"o1","slug":"caffeinemc","name":"CaffeineMC"}`)
	})
	mux.HandleFunc("/v3/organization/caffeine/projects", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[{"id":"p1","name":"Lithium","project_types":["mod"],"downloads":10}]`)
	})
	mux.HandleFunc("/v2/project/p1/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[]`)
	})
	p, _ := newProvider(t, mux)

	rec, err := p.FetchStats(context.Background(), stats.KindOrganization, "caffeine", platform.FetchOptions{})
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	items, _ := rec.Related.Get()
	if len(items) != 1 || items[0].Name != "Lithium" || items[0].ProjectType != "mod" {
		t.Fatalf("unexpected items %+v", items)
	}
	if rec.Entity.URL != "https://modrinth.com/organization/caffeinemc" {
		t.Fatalf("unexpected url %s", rec.Entity.URL)
	}
}

func TestFetchNotFoundReturnsNil(t *testing.T) {
	p, _ := newProvider(t, http.NotFoundHandler())
	rec, err := p.FetchStats(context.Background(), stats.KindUser, "ghost", platform.FetchOptions{})
	if err != nil || rec != nil {
		t.Fatalf("expected (nil, nil), got %+v, %v", rec, err)
	}
}

func TestFetchUpstreamErrorPropagates(t *testing.T) {
	p, _ := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, `{"description":"maintenance"}`)
	}))
	_, err := p.FetchStats(context.Background(), stats.KindProject, "sodium", platform.FetchOptions{})
	fe := upstream.AsFetchError(err)
	if fe == nil || fe.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500 fetch error, got %v", err)
	}
	if !strings.Contains(fe.Message, "maintenance") {
		t.Fatalf("message should carry upstream description: %s", fe.Message)
	}
}

func TestProjectVersionsCollapse(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	p, _ := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		writeJSON(w, `[]`)
	}))

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			p.projectVersions(context.Background(), "p1")
			done <- struct{}{}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	for i := 0; i < 4; i++ {
		<-done
	}
	if hits.Load() != 1 {
		t.Fatalf("并发的版本请求应合并为一次, got %d", hits.Load())
	}
}

func TestRegisteredMetadata(t *testing.T) {
	meta, ok := platform.Resolve("Modrinth")
	if !ok {
		t.Fatalf("modrinth should be registered")
	}
	if meta.RequiresAPIKey || len(meta.Kinds) != 4 {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if _, ok := meta.Presentation.Badge(stats.KindProject, "versions"); !ok {
		t.Fatalf("project versions badge missing")
	}
}
