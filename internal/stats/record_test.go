package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/modfolio/modfolio/internal/upstream"
)

func TestParseEntityKindAliases(t *testing.T) {
	cases := map[string]EntityKind{
		"project":      KindProject,
		"Mod":          KindProject,
		"resource":     KindProject,
		"user":         KindUser,
		"author":       KindUser,
		"organization": KindOrganization,
		"org":          KindOrganization,
		"collection":   KindCollection,
	}
	for raw, want := range cases {
		got, err := ParseEntityKind(raw)
		if err != nil || got != want {
			t.Fatalf("%s: got %v err=%v", raw, got, err)
		}
	}
	if _, err := ParseEntityKind("team"); err == nil {
		t.Fatalf("unknown kind should fail")
	}
}

func TestSortHelpers(t *testing.T) {
	items := []Item{{Name: "a", Downloads: 1}, {Name: "b", Downloads: 5}, {Name: "c", Downloads: 3}}
	SortByDownloads(items)
	if items[0].Name != "b" || items[2].Name != "a" {
		t.Fatalf("unexpected download order: %+v", items)
	}

	now := time.Now()
	versions := []Item{{Name: "old", Published: now.Add(-time.Hour)}, {Name: "new", Published: now}}
	SortByPublished(versions)
	if versions[0].Name != "new" {
		t.Fatalf("latest version should come first")
	}
}

func TestMergeActivity(t *testing.T) {
	now := time.Now()
	items := []Item{
		{Activity: upstream.Ok([]time.Time{now})},
		{Activity: upstream.Fail[[]time.Time](errors.New("boom"))},
		{Activity: upstream.Ok([]time.Time{now, now})},
	}
	merged, ok := MergeActivity(items).Get()
	if !ok || len(merged) != 3 {
		t.Fatalf("expected 3 merged stamps, got %d ok=%v", len(merged), ok)
	}
	if MergeActivity([]Item{{Activity: upstream.Missing[[]time.Time]()}}).OK() {
		t.Fatalf("all failures should produce a failed result")
	}
}

func TestParseTimesSkipsInvalid(t *testing.T) {
	got := ParseTimes([]string{"2024-01-02T03:04:05Z", "garbage", "2024-01-03T00:00:00.123Z"})
	if len(got) != 2 {
		t.Fatalf("expected 2 parsed times, got %d", len(got))
	}
}
