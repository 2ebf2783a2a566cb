package platform

import (
	"context"
	"testing"

	"github.com/modfolio/modfolio/internal/stats"
)

type nopProvider struct{}

func (nopProvider) FetchStats(context.Context, stats.EntityKind, string, FetchOptions) (*stats.Record, error) {
	return nil, nil
}

func (nopProvider) Configured() bool { return true }

func newNop(Deps) Provider { return nopProvider{} }

func replaceRegistry(t *testing.T) func() {
	t.Helper()
	prev := globalRegistry
	globalRegistry = newRegistry()
	return func() { globalRegistry = prev }
}

func TestRegisterResolveAndList(t *testing.T) {
	cleanup := replaceRegistry(t)
	defer cleanup()

	if err := Register(Metadata{Key: "Spigot", NewProvider: newNop}); err != nil {
		t.Fatalf("register spigot failed: %v", err)
	}
	if err := Register(Metadata{Key: "hangar", NewProvider: newNop}); err != nil {
		t.Fatalf("register hangar failed: %v", err)
	}

	meta, ok := Resolve("SPIGOT")
	if !ok {
		t.Fatalf("resolve should be case-insensitive")
	}
	if meta.Presentation.Key != "spigot" {
		t.Fatalf("presentation key should default to platform key, got %q", meta.Presentation.Key)
	}

	list := List()
	if len(list) != 2 || list[0].Key != "hangar" || list[1].Key != "spigot" {
		t.Fatalf("unexpected order: %+v", Keys())
	}
}

func TestRegisterRejectsInvalid(t *testing.T) {
	cleanup := replaceRegistry(t)
	defer cleanup()

	if err := Register(Metadata{Key: " "}); err == nil {
		t.Fatalf("empty key should fail")
	}
	if err := Register(Metadata{Key: "x"}); err == nil {
		t.Fatalf("missing provider constructor should fail")
	}
	if err := Register(Metadata{Key: "x", NewProvider: newNop}); err != nil {
		t.Fatalf("first registration should succeed: %v", err)
	}
	if err := Register(Metadata{Key: "x", NewProvider: newNop}); err == nil {
		t.Fatalf("duplicate registration should fail")
	}
}

func TestPresentationLookups(t *testing.T) {
	p := Presentation{
		Badges: map[stats.EntityKind]map[string]BadgeSpec{
			stats.KindProject: {"downloads": {Label: "Downloads", Field: stats.FieldDownloads}},
		},
		NotFound: map[stats.EntityKind]string{stats.KindUser: "Author not found"},
		SiteURL:  map[stats.EntityKind]string{stats.KindProject: "https://example.com/p/%s"},
	}
	if _, ok := p.Badge(stats.KindProject, "downloads"); !ok {
		t.Fatalf("badge lookup failed")
	}
	if _, ok := p.Badge(stats.KindUser, "downloads"); ok {
		t.Fatalf("unknown kind should not resolve a badge")
	}
	if p.NotFoundMessage(stats.KindUser) != "Author not found" || p.NotFoundMessage(stats.KindProject) != "Resource not found" {
		t.Fatalf("unexpected not-found messages")
	}
	if got := p.EntityURL(stats.KindProject, "sodium"); got != "https://example.com/p/sodium" {
		t.Fatalf("unexpected url %s", got)
	}
	if p.Section(stats.KindProject) != "Latest Versions" || p.Section(stats.KindUser) != "Top Projects" {
		t.Fatalf("unexpected default sections")
	}
	if !(Metadata{Kinds: []stats.EntityKind{stats.KindUser}}).Supports(stats.KindUser) {
		t.Fatalf("supports should match declared kinds")
	}
}
