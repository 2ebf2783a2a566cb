package render

import (
	"testing"

	"github.com/modfolio/modfolio/internal/platform"
	"github.com/modfolio/modfolio/internal/stats"
)

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:         "0",
		999:       "999",
		1000:      "1.0K",
		15_300:    "15.3K",
		1_234_567: "1.2M",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Fatalf("FormatNumber(%v) = %s, want %s", in, got, want)
		}
	}
}

func TestFormatStat(t *testing.T) {
	agg := stats.Aggregates{stats.FieldRank: 42, stats.FieldRating: 4.56, stats.FieldProjects: 1234}
	if got := FormatStat(agg, platform.StatSlot{Field: stats.FieldRank, Format: platform.FormatRank}); got != "#42" {
		t.Fatalf("rank = %s", got)
	}
	if got := FormatStat(agg, platform.StatSlot{Field: stats.FieldRating, Format: platform.FormatRating}); got != "4.6" {
		t.Fatalf("rating = %s", got)
	}
	if got := FormatStat(agg, platform.StatSlot{Field: stats.FieldProjects, Format: platform.FormatInteger}); got != "1234" {
		t.Fatalf("integer = %s", got)
	}
	if got := FormatStat(stats.Aggregates{}, platform.StatSlot{Field: stats.FieldRank, Format: platform.FormatRank}); got != "N/A" {
		t.Fatalf("缺失的排名应显示 N/A, got %s", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Sodium", 22); got != "Sodium" {
		t.Fatalf("short text should stay, got %s", got)
	}
	if got := Truncate("abcdefghij", 4); got != "abcd..." {
		t.Fatalf("unexpected truncate: %s", got)
	}
	if got := Truncate("模组统计卡片生成器", 3); got != "模组统..." {
		t.Fatalf("truncate should count runes, got %s", got)
	}
}

func TestHeuristicMeasurer(t *testing.T) {
	m := HeuristicMeasurer{}
	if got := m.Measure("il", 10, 0); got != 6 {
		t.Fatalf("narrow glyphs: %v", got)
	}
	if got := m.Measure("mW", 10, 0); got != 15 {
		t.Fatalf("wide glyphs: %v", got)
	}
	if got := m.Measure("ab", 10, 0); got != 11 {
		t.Fatalf("normal glyphs: %v", got)
	}
	if got := m.Measure("a", 14, 0); got != 8 {
		t.Fatalf("width should be rounded up, got %v", got)
	}
}

func TestOptionsNormalize(t *testing.T) {
	opts := Options{MaxItems: 9, AccentColor: "#ABCDEF", BackgroundColor: "#abc"}.Normalize("#1bd96a")
	if opts.MaxItems != 5 {
		t.Fatalf("max items should clamp to 5, got %d", opts.MaxItems)
	}
	if opts.AccentColor != "#ABCDEF" {
		t.Fatalf("valid accent should be kept, got %s", opts.AccentColor)
	}
	if opts.BackgroundColor != "transparent" {
		t.Fatalf("short hex background should fall back, got %s", opts.BackgroundColor)
	}

	opts = Options{MaxItems: 0, AccentColor: "red"}.Normalize("#F16436")
	if opts.MaxItems != 1 || opts.AccentColor != "#F16436" {
		t.Fatalf("unexpected normalization: %+v", opts)
	}
}
