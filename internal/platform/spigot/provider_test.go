package spigot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/modfolio/modfolio/internal/media"
	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
	"github.com/modfolio/modfolio/internal/upstream"
)

type recordingImages struct {
	mu   sync.Mutex
	urls []string
}

func (r *recordingImages) Normalize(_ context.Context, rawURL string, _ bool) upstream.Result[media.Image] {
	r.mu.Lock()
	r.urls = append(r.urls, rawURL)
	r.mu.Unlock()
	return upstream.Ok(media.Image{DataURI: "data:image/png;base64,AA=="})
}

func newProvider(t *testing.T, handler http.Handler) (*Provider, *recordingImages, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := upstream.NewClient(upstream.NewHTTPClient(time.Second), upstream.ClientOptions{
		Platform: "Spigot",
		BaseURL:  srv.URL,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	images := &recordingImages{}
	return New(platform.Deps{Client: client, Images: images}), images, srv.URL
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	var hits atomic.Int32
	p, _, _ := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	for _, id := range []string{"essentials", "12a", "-1", ""} {
		rec, err := p.FetchStats(context.Background(), stats.KindProject, id, platform.FetchOptions{})
		if rec != nil || err != nil {
			t.Fatalf("id %q should be not found, got %+v, %v", id, rec, err)
		}
	}
	if hits.Load() != 0 {
		t.Fatalf("非数字 ID 不应访问上游")
	}
}

func TestFetchResourceStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/resources/9089", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":9089,"name":"EssentialsX","downloads":2500000,"likes":900,"rating":{"count":120,"average":4.8}}`))
	})
	mux.HandleFunc("/v2/resources/9089/versions", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("size") != "10" {
			t.Errorf("unexpected size %s", r.URL.Query().Get("size"))
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"2.20.0","releaseDate":1717200000,"downloads":5},{"id":2,"name":"2.21.0","releaseDate":1749000000,"downloads":7}]`))
	})
	p, images, base := newProvider(t, mux)

	rec, err := p.FetchStats(context.Background(), stats.KindProject, "9089", platform.FetchOptions{})
	if err != nil || rec == nil {
		t.Fatalf("fetch error: %v", err)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldRating); v != 4.8 {
		t.Fatalf("expected rating 4.8, got %v", v)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldVersions); v != 2 {
		t.Fatalf("expected 2 versions, got %v", v)
	}
	items, _ := rec.Related.Get()
	if len(items) != 2 || items[0].Name != "2.21.0" {
		t.Fatalf("unexpected items %+v", items)
	}
	if rec.Entity.URL != "https://www.spigotmc.org/resources/9089/" {
		t.Fatalf("unexpected url %s", rec.Entity.URL)
	}
	if len(images.urls) != 1 || images.urls[0] != base+"/v2/resources/9089/icon" {
		t.Fatalf("icon should use the spiget icon endpoint, got %v", images.urls)
	}
}

func TestFetchAuthorStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/authors/1234", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1234,"name":"md_5"}`))
	})
	mux.HandleFunc("/v2/authors/1234/resources", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Low","downloads":10,"rating":{"average":0}},
			{"id":2,"name":"High","downloads":100,"rating":{"average":5}},
			{"id":3,"name":"Mid","downloads":50,"rating":{"average":4}}
		]`))
	})
	p, images, _ := newProvider(t, mux)

	rec, err := p.FetchStats(context.Background(), stats.KindUser, "1234", platform.FetchOptions{})
	if err != nil || rec == nil {
		t.Fatalf("fetch error: %v", err)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldRating); v != 4.5 {
		t.Fatalf("未评分资源不计入平均分, got %v", v)
	}
	if v, _ := rec.Aggregates.Value(stats.FieldDownloads); v != 160 {
		t.Fatalf("expected 160 downloads, got %v", v)
	}
	items, _ := rec.Related.Get()
	if len(items) != 3 || items[0].Name != "High" {
		t.Fatalf("unexpected order %+v", items)
	}
	if rec.Entity.URL != "https://www.spigotmc.org/members/md_5.1234/" {
		t.Fatalf("unexpected url %s", rec.Entity.URL)
	}
	if rec.Activity.OK() {
		t.Fatalf("author cards carry no activity")
	}
	foundAvatar := false
	for _, u := range images.urls {
		if strings.HasSuffix(u, "/v2/authors/1234/avatar") {
			foundAvatar = true
		}
	}
	if !foundAvatar || len(images.urls) != 4 {
		t.Fatalf("expected avatar plus 3 icons, got %v", images.urls)
	}
}
