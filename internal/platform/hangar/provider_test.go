package hangar

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

func newProvider(t *testing.T, mux *http.ServeMux) *Provider {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client, err := upstream.NewClient(upstream.NewHTTPClient(time.Second), upstream.ClientOptions{
		Platform: "Hangar",
		BaseURL:  srv.URL,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return New(platform.Deps{Client: client, Images: okImages{}, Concurrency: 3})
}

func TestFetchProjectStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/projects/ViaVersion", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"ViaVersion","namespace":{"owner":"ViaVersion","slug":"ViaVersion"},
			"stats":{"downloads":90000,"views":1000,"stars":321},"avatarUrl":"https://hangar/avatar.png"}`))
	})
	mux.HandleFunc("/api/v1/projects/ViaVersion/versions", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "25" {
			t.Errorf("unexpected limit %s", r.URL.Query().Get("limit"))
		}
		_, _ = w.Write([]byte(`{"pagination":{"count":42},"result":[
			{"name":"5.0.0","createdAt":"2025-06-01T00:00:00Z","stats":{"totalDownloads":10},
			 "downloads":{"PAPER":{},"VELOCITY":{}},"platformDependencies":{"PAPER":["1.21","1.20.6"],"VELOCITY":["3.3"]}},
			{"name":"5.1.0","createdAt":"2025-06-10T00:00:00Z","stats":{"totalDownloads":20},"downloads":{"PAPER":{}}}
		]}`))
	})
	p := newProvider(t, mux)

	rec, err := p.FetchStats(context.Background(), stats.KindProject, "ViaVersion", platform.FetchOptions{})
	if err != nil || rec == nil {
		t.Fatalf("fetch error: %v", err)
	}
	if rec.Entity.URL != "https://hangar.papermc.io/ViaVersion/ViaVersion" {
		t.Fatalf("unexpected url %s", rec.Entity.URL)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldStars); v != 321 {
		t.Fatalf("expected 321 stars, got %v", v)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldVersions); v != 42 {
		t.Fatalf("version count should use pagination, got %v", v)
	}
	items, _ := rec.Related.Get()
	if len(items) != 2 || items[0].Name != "5.1.0" {
		t.Fatalf("版本应按时间倒序: %+v", items)
	}
	older := items[1]
	if len(older.Loaders) != 2 || older.Loaders[0] != "paper" || older.Loaders[1] != "velocity" {
		t.Fatalf("unexpected platforms %v", older.Loaders)
	}
	if len(older.GameVersions) != 3 {
		t.Fatalf("unexpected game versions %v", older.GameVersions)
	}
}

func TestFetchUserStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/kennytv", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"kennytv","avatarUrl":"https://hangar/k.png","projectCount":3}`))
	})
	mux.HandleFunc("/api/v1/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("owner") != "kennytv" {
			t.Errorf("unexpected owner %s", r.URL.Query().Get("owner"))
		}
		_, _ = w.Write([]byte(`{"result":[
			{"name":"A","namespace":{"owner":"kennytv","slug":"A"},"stats":{"downloads":5,"stars":1}},
			{"name":"B","namespace":{"owner":"kennytv","slug":"B"},"stats":{"downloads":50,"stars":2}},
			{"name":"C","namespace":{"owner":"kennytv","slug":"C"},"stats":{"downloads":20,"stars":3}}
		]}`))
	})
	mux.HandleFunc("/api/v1/projects/B/versions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":[{"name":"1","createdAt":"2025-06-14T00:00:00Z"}]}`))
	})
	mux.HandleFunc("/api/v1/projects/A/versions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":[]}`))
	})
	mux.HandleFunc("/api/v1/projects/C/versions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	p := newProvider(t, mux)

	rec, err := p.FetchStats(context.Background(), stats.KindUser, "kennytv", platform.FetchOptions{})
	if err != nil || rec == nil {
		t.Fatalf("fetch error: %v", err)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldDownloads); v != 75 {
		t.Fatalf("expected 75 downloads, got %v", v)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldStars); v != 6 {
		t.Fatalf("expected 6 stars, got %v", v)
	}
	items, _ := rec.Related.Get()
	if len(items) != 3 || items[0].Name != "B" || items[2].Name != "A" {
		t.Fatalf("项目应按下载量倒序: %+v", items)
	}
	if items[1].Activity.OK() {
		t.Fatalf("failed versions should leave activity unavailable")
	}
	if series, ok := rec.Activity.Get(); !ok || len(series) != 1 {
		t.Fatalf("expected one merged stamp, got %v", series)
	}
	if !rec.Entity.Icon.OK() {
		t.Fatalf("avatar should be loaded")
	}
}

func TestFetchUnknownProject(t *testing.T) {
	p := newProvider(t, http.NewServeMux())
	rec, err := p.FetchStats(context.Background(), stats.KindProject, "nope", platform.FetchOptions{})
	if err != nil || rec != nil {
		t.Fatalf("expected not found, got %+v, %v", rec, err)
	}
	rec, err = p.FetchStats(context.Background(), stats.KindCollection, "nope", platform.FetchOptions{})
	if err != nil || rec != nil {
		t.Fatalf("unsupported kind should be not found, got %+v, %v", rec, err)
	}
}
